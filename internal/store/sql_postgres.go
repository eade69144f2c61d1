package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-datasource-check/internal/logger"
	"github.com/MKhiriev/go-datasource-check/internal/utils"
	"github.com/MKhiriev/go-datasource-check/models"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	timeout            time.Duration
}

// NewConnectPostgres opens a session for ds through the pgx database/sql
// driver and pings the server. timeout bounds the ping; a non-positive
// timeout leaves the deadline to ctx.
func NewConnectPostgres(ctx context.Context, ds models.NormalizedDatasource, timeout time.Duration, log *logger.Logger) (*DB, error) {
	if checkID, ok := utils.GetCheckIDFromContext(ctx); ok {
		log = log.WithCheckID(checkID)
	}

	// establish connection
	conn, err := sql.Open("pgx", ds.DSN())
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrOpeningConnection, err)
	}

	// a check needs one session
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
		timeout:            timeout,
	}

	// ping database
	pingCtx, cancel := db.withTimeout(ctx)
	defer cancel()

	if err = conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		log.Err(err).
			Str("func", "NewConnectPostgres").
			Object("datasource", ds).
			Str("diagnosis", string(db.errorClassificator.Classify(err).Kind)).
			Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: %w", ErrPingingDatabase, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Object("datasource", ds).Msg("connected to database successfully")

	return db, nil
}

// Probe reports the server version, the connected database and role, and
// the role's privileges on schema.
func (db *DB) Probe(ctx context.Context, schema string) (models.ProbeResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildProbeQuery(schema)
	if err != nil {
		log.Err(err).Str("func", "DB.Probe").Msg("failed to build probe query")
		return models.ProbeResult{}, err
	}

	queryCtx, cancel := db.withTimeout(ctx)
	defer cancel()

	result := models.ProbeResult{Schema: schema}
	err = db.QueryRowContext(queryCtx, query, args...).Scan(
		&result.ServerVersion,
		&result.Database,
		&result.CurrentUser,
		&result.SchemaExists,
		&result.SchemaUsage,
		&result.SchemaCreate,
	)
	if err != nil {
		log.Err(err).
			Str("func", "DB.Probe").
			Str("schema", schema).
			Str("diagnosis", string(db.classifier().Classify(err).Kind)).
			Msg("failed to execute probe query")
		return models.ProbeResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "DB.Probe").
		Str("database", result.Database).
		Str("current_user", result.CurrentUser).
		Bool("schema_usage", result.SchemaUsage).
		Bool("schema_create", result.SchemaCreate).
		Msg("probe finished")

	return result, nil
}

func (db *DB) classifier() ErrorClassificator {
	if db.errorClassificator == nil {
		return NewPostgresErrorClassifier()
	}
	return db.errorClassificator
}

func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.timeout)
}

// PostgresConnector implements [Connector] with [NewConnectPostgres].
type PostgresConnector struct {
	timeout time.Duration
	logger  *logger.Logger
}

func NewPostgresConnector(timeout time.Duration, log *logger.Logger) *PostgresConnector {
	return &PostgresConnector{timeout: timeout, logger: log}
}

func (c *PostgresConnector) Connect(ctx context.Context, ds models.NormalizedDatasource) (Prober, error) {
	db, err := NewConnectPostgres(ctx, ds, c.timeout, c.logger)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
