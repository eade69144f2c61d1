package store

import (
	"context"
	"errors"
	"net"

	"github.com/MKhiriev/go-datasource-check/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to the operator-facing [models.DiagnosisKind].
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. A server error is classified by
// its SQLSTATE code (see [ClassifyPgError]); failures that never reached a
// server, such as refused connections, DNS errors and timeouts, are
// [models.DiagnosisServerUnreachable]. A nil err is [models.DiagnosisOK].
func (c *PostgresErrorClassifier) Classify(err error) models.Diagnosis {
	if err == nil {
		return models.NewDiagnosis(models.DiagnosisOK, "")
	}

	// Attempt to unwrap to a pgconn.PgError.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		diagnosis := models.NewDiagnosis(ClassifyPgError(pgErr), pgErr.Message)
		diagnosis.Code = postgresError(err)
		return diagnosis
	}

	if unreachable(err) {
		return models.NewDiagnosis(models.DiagnosisServerUnreachable, err.Error())
	}

	return models.NewDiagnosis(models.DiagnosisUnknown, err.Error())
}

func unreachable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// ClassifyPgError maps a *pgconn.PgError to a [models.DiagnosisKind] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - Class 28 (invalid authorization) is an authentication failure.
//   - 42501 (insufficient privilege) and 3F000 (invalid schema name) are
//     schema permission problems.
//   - 3D000 (invalid catalog name) is a missing database.
//   - Class 08 and 57P03 (cannot connect now) mean the server is not
//     accepting sessions.
//
// Any code not listed above is [models.DiagnosisUnknown].
func ClassifyPgError(pgErr *pgconn.PgError) models.DiagnosisKind {
	switch pgErr.Code {
	// Class 28: invalid authorization specification
	case pgerrcode.InvalidPassword, // 28P01
		pgerrcode.InvalidAuthorizationSpecification: // 28000
		return models.DiagnosisAuthenticationFailed

	case pgerrcode.InsufficientPrivilege, // 42501
		pgerrcode.InvalidSchemaName: // 3F000
		return models.DiagnosisSchemaPermissionDenied

	case pgerrcode.InvalidCatalogName: // 3D000
		return models.DiagnosisDatabaseMissing

	// Class 08 (connection exceptions) and Class 57 (operator intervention)
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection,
		pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown:
		return models.DiagnosisServerUnreachable
	}

	// Default: leave the cause to the operator.
	return models.DiagnosisUnknown
}
