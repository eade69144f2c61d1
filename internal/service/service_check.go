package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-datasource-check/internal/logger"
	"github.com/MKhiriev/go-datasource-check/internal/store"
	"github.com/MKhiriev/go-datasource-check/internal/utils"
	"github.com/MKhiriev/go-datasource-check/internal/validators"
	"github.com/MKhiriev/go-datasource-check/models"
)

type checkService struct {
	normalizer validators.Normalizer
	connector  store.Connector
	classifier store.ErrorClassificator
	ids        idGenerator

	logger *logger.Logger
}

func NewCheckService(
	normalizer validators.Normalizer,
	connector store.Connector,
	classifier store.ErrorClassificator,
	logger *logger.Logger,
) CheckService {
	return &checkService{
		normalizer: normalizer,
		connector:  connector,
		classifier: classifier,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

func (s *checkService) Validate(ctx context.Context, ds models.Datasource) (models.Report, error) {
	ctx, report := s.start(ctx)

	if _, err := s.normalize(ctx, ds, &report); err != nil {
		return report, err
	}

	report.Diagnosis = models.NewDiagnosis(models.DiagnosisOK, "")
	return report, nil
}

func (s *checkService) Check(ctx context.Context, ds models.Datasource) (models.Report, error) {
	ctx, report := s.start(ctx)
	log := logger.FromContext(ctx)

	normalized, err := s.normalize(ctx, ds, &report)
	if err != nil {
		return report, err
	}

	prober, err := s.connector.Connect(ctx, normalized)
	if err != nil {
		return s.fail(ctx, report, err)
	}
	defer func() {
		if closeErr := prober.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("func", "checkService.Check").Msg("failed to close database session")
		}
	}()

	probe, err := prober.Probe(ctx, normalized.JDBC.Schema())
	if err != nil {
		return s.fail(ctx, report, err)
	}
	report.Probe = &probe

	report.Diagnosis = diagnoseProbe(normalized, probe)
	if !report.Diagnosis.OK() {
		log.Warn().
			Str("func", "checkService.Check").
			Str("diagnosis", string(report.Diagnosis.Kind)).
			Msg(report.Diagnosis.Cause)
		return report, fmt.Errorf("%w: %s", ErrCheckFailed, report.Diagnosis.Cause)
	}

	log.Info().
		Str("func", "checkService.Check").
		Str("server_version", probe.ServerVersion).
		Msg("datasource is usable")
	return report, nil
}

// start issues the check ID and attaches a logger carrying it to ctx.
func (s *checkService) start(ctx context.Context) (context.Context, models.Report) {
	checkID := s.ids.Generate()
	ctx = utils.WithCheckID(ctx, checkID)
	ctx = s.logger.WithCheckID(checkID).WithContext(ctx)

	return ctx, models.Report{CheckID: checkID}
}

func (s *checkService) normalize(ctx context.Context, ds models.Datasource, report *models.Report) (models.NormalizedDatasource, error) {
	log := logger.FromContext(ctx)

	normalized, err := s.normalizer.Normalize(ds)
	if err != nil {
		log.Warn().
			Err(err).
			Str("func", "checkService.normalize").
			Object("datasource", ds).
			Msg("datasource is invalid")
		report.Diagnosis = models.NewDiagnosis(models.DiagnosisInvalidConfig, err.Error())
		return models.NormalizedDatasource{}, fmt.Errorf("%w: %w", ErrInvalidDatasource, err)
	}

	report.Datasource = &normalized
	log.Debug().Str("func", "checkService.normalize").Object("datasource", normalized).Msg("datasource is valid")
	return normalized, nil
}

func (s *checkService) fail(ctx context.Context, report models.Report, err error) (models.Report, error) {
	report.Diagnosis = s.classifier.Classify(err)

	logger.FromContext(ctx).Err(err).
		Str("func", "checkService.fail").
		Str("diagnosis", string(report.Diagnosis.Kind)).
		Str("sqlstate", report.Diagnosis.Code).
		Msg("datasource check failed")

	return report, fmt.Errorf("%w: %w", ErrCheckFailed, err)
}

// diagnoseProbe judges whether the role can do what the application will
// ask of it at startup.
func diagnoseProbe(ds models.NormalizedDatasource, probe models.ProbeResult) models.Diagnosis {
	switch {
	case !probe.SchemaExists:
		return models.NewDiagnosis(models.DiagnosisSchemaPermissionDenied,
			fmt.Sprintf("schema %q does not exist in database %q", probe.Schema, probe.Database))
	case !probe.SchemaUsage:
		return models.NewDiagnosis(models.DiagnosisSchemaPermissionDenied,
			fmt.Sprintf("role %q has no USAGE privilege on schema %q", probe.CurrentUser, probe.Schema))
	case ds.DDLAuto.CreatesTables() && !probe.SchemaCreate:
		return models.NewDiagnosis(models.DiagnosisSchemaPermissionDenied,
			fmt.Sprintf("ddl-auto=%s creates tables but role %q has no CREATE privilege on schema %q", ds.DDLAuto, probe.CurrentUser, probe.Schema))
	}

	return models.NewDiagnosis(models.DiagnosisOK, "")
}
