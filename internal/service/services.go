package service

import (
	"github.com/MKhiriev/go-datasource-check/internal/config"
	"github.com/MKhiriev/go-datasource-check/internal/logger"
	"github.com/MKhiriev/go-datasource-check/internal/store"
	"github.com/MKhiriev/go-datasource-check/internal/validators"
)

type Services struct {
	CheckService CheckService
}

// NewServices wires the services against PostgreSQL using the connect
// timeout from cfg. Build information is served separately by
// [NewAppInfoService] since it needs no configuration.
func NewServices(cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		CheckService: NewCheckService(
			validators.NewDatasourceValidator(),
			store.NewPostgresConnector(cfg.Tool.ConnectTimeout, logger),
			store.NewPostgresErrorClassifier(),
			logger,
		),
	}
}
