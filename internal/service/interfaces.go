package service

import (
	"context"

	"github.com/MKhiriev/go-datasource-check/models"
)

// CheckService validates datasource records and checks them against the
// server they point to.
type CheckService interface {
	// Validate runs the configuration validator only. No I/O is performed.
	Validate(ctx context.Context, ds models.Datasource) (models.Report, error)

	// Check validates ds, connects with it and probes the session. Any
	// failure is classified into the report's diagnosis.
	Check(ctx context.Context, ds models.Datasource) (models.Report, error)
}

// AppInfoService reports how the binary was built.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// idGenerator issues check identifiers.
type idGenerator interface {
	Generate() string
}
