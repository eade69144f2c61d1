package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-datasource-check/models"
)

// Environment variables the rendered application.yml reads its connection
// values from.
const (
	EnvURL      = "SPRING_DATASOURCE_URL"
	EnvUsername = "SPRING_DATASOURCE_USERNAME"
	EnvPassword = "SPRING_DATASOURCE_PASSWORD"
)

type applicationYAML struct {
	Spring springYAML `yaml:"spring"`
}

type springYAML struct {
	Datasource datasourceYAML `yaml:"datasource"`
	JPA        jpaYAML        `yaml:"jpa"`
}

type datasourceYAML struct {
	URL             string `yaml:"url"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	DriverClassName string `yaml:"driver-class-name"`
}

type jpaYAML struct {
	Hibernate hibernateYAML `yaml:"hibernate"`
	ShowSQL   bool          `yaml:"show-sql"`
}

type hibernateYAML struct {
	DDLAuto string `yaml:"ddl-auto"`
}

// RenderApplicationYAML writes the application.yml an application should
// commit for ds: url and username read from the environment with the
// current values as local defaults, and the password read from the
// environment only. A url that does not parse gets no default, since it may
// embed credentials.
func RenderApplicationYAML(w io.Writer, ds models.Datasource) error {
	var url string
	if jdbc, err := models.ParseJDBCURL(ds.URL); err == nil {
		url = jdbc.String()
	}

	driver := ds.DriverClassName
	if driver == "" {
		driver = models.PostgresDriverClassName
	}
	ddlAuto := ds.DDLAuto
	if ddlAuto == "" {
		ddlAuto = models.DDLAutoNone
	}

	doc := applicationYAML{
		Spring: springYAML{
			Datasource: datasourceYAML{
				URL:             placeholder(EnvURL, url),
				Username:        placeholder(EnvUsername, ds.Username),
				Password:        placeholder(EnvPassword, ""),
				DriverClassName: driver,
			},
			JPA: jpaYAML{
				Hibernate: hibernateYAML{DDLAuto: ddlAuto.String()},
				ShowSQL:   ds.ShowSQL,
			},
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("error encoding application.yml: %w", err)
	}
	return enc.Close()
}

func placeholder(env, fallback string) string {
	if fallback == "" {
		return "${" + env + "}"
	}
	return "${" + env + ":" + fallback + "}"
}
