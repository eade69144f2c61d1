package store

import (
	"context"

	"github.com/MKhiriev/go-datasource-check/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Connector opens a session for a validated datasource.
type Connector interface {
	Connect(ctx context.Context, ds models.NormalizedDatasource) (Prober, error)
}

// Prober inspects an open session. Close releases it.
type Prober interface {
	Probe(ctx context.Context, schema string) (models.ProbeResult, error)
	Close() error
}

// ErrorClassificator turns a driver error into an operator diagnosis.
type ErrorClassificator interface {
	Classify(err error) models.Diagnosis
}
