// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// Flags binds the configuration flags to a pflag.FlagSet. Values are read
// after the set has been parsed (by cobra or by the caller).
type Flags struct {
	fs *pflag.FlagSet

	configPath     string
	envFiles       []string
	profiles       []string
	url            string
	username       string
	password       string
	driver         string
	ddlAuto        string
	showSQL        bool
	connectTimeout time.Duration
	logLevel       string
	output         string
}

// RegisterFlags defines all configuration flags on fs.
//
// Flags:
//
//	-c/--config           application.yml path
//	--env-file            .env file to load (repeatable)
//	--profile             active Spring profile (repeatable)
//	--url                 spring.datasource.url
//	--username            spring.datasource.username
//	--password            spring.datasource.password
//	--driver-class-name   spring.datasource.driver-class-name
//	--ddl-auto            spring.jpa.hibernate.ddl-auto
//	--show-sql            spring.jpa.show-sql
//	--timeout             connect and probe timeout (e.g. "5s")
//	--log-level           log level (trace, debug, info, warn, error)
//	-o/--output           report format: text or json
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVarP(&f.configPath, "config", "c", "", "Spring application.yml path")
	fs.StringArrayVar(&f.envFiles, "env-file", nil, ".env file to load before reading the environment (repeatable)")
	fs.StringArrayVar(&f.profiles, "profile", nil, "active Spring profile (repeatable)")
	fs.StringVar(&f.url, "url", "", "JDBC url, e.g. jdbc:postgresql://localhost:5432/app")
	fs.StringVar(&f.username, "username", "", "database role")
	fs.StringVar(&f.password, "password", "", "database password (prefer SPRING_DATASOURCE_PASSWORD)")
	fs.StringVar(&f.driver, "driver-class-name", "", "JDBC driver class")
	fs.StringVar(&f.ddlAuto, "ddl-auto", "", "schema synchronization mode (none, validate, update, create, create-drop)")
	fs.BoolVar(&f.showSQL, "show-sql", false, "print executed SQL statements")
	fs.DurationVar(&f.connectTimeout, "timeout", 0, "connect and probe timeout (e.g. 5s)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	fs.StringVarP(&f.output, "output", "o", "", "report format: text or json")

	return f
}

// config returns the flag layer. Only flags that were set contribute.
func (f *Flags) config() *StructuredConfig {
	cfg := &StructuredConfig{
		Spring: Spring{
			Datasource: Datasource{
				URL:             f.url,
				Username:        f.username,
				Password:        f.password,
				DriverClassName: f.driver,
			},
			JPA: JPA{
				Hibernate: Hibernate{DDLAuto: f.ddlAuto},
			},
			ActiveProfiles: f.profiles,
		},
		Tool: Tool{
			ConfigPath:     f.configPath,
			EnvFiles:       f.envFiles,
			ConnectTimeout: f.connectTimeout,
			LogLevel:       f.logLevel,
			Output:         f.output,
		},
	}

	if f.fs != nil && f.fs.Changed("show-sql") {
		cfg.Spring.JPA.ShowSQL = strconv.FormatBool(f.showSQL)
	}

	markSources(cfg, SourceFlag)
	return cfg
}
