// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the dscheck command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-datasource-check/internal/app"
	"github.com/MKhiriev/go-datasource-check/internal/config"
	"github.com/MKhiriev/go-datasource-check/internal/logger"
	"github.com/MKhiriev/go-datasource-check/internal/service"
	"github.com/MKhiriev/go-datasource-check/models"
)

// errCheckFailed is returned by commands whose report was already written
// and only the exit code is left to set.
var errCheckFailed = errors.New("check failed")

// invocation is the state shared by the commands of one invocation.
type invocation struct {
	flags     *config.Flags
	buildInfo models.AppBuildInfo
	log       *logger.Logger

	cfg      *config.StructuredConfig
	services *service.Services
}

// Execute runs dscheck with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, buildInfo models.AppBuildInfo) int {
	rt := &invocation{
		buildInfo: buildInfo,
		log:       logger.NewLoggerWithWriter("dscheck", stderr),
	}

	rootCmd := newRootCommand(rt)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return app.ExitOK
	case errors.Is(err, errCheckFailed):
		return app.ExitCheckFailed
	default:
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return app.ExitUsage
	}
}

func newRootCommand(rt *invocation) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dscheck",
		Short: "Check the PostgreSQL datasource of a Spring Boot application",
		Long: `dscheck reads spring.datasource.* the way a Spring Boot application does
(application.yml, SPRING_DATASOURCE_* environment variables, command-line
flags), validates the record and checks that the server accepts it.

Use it before starting the application to turn "authentication failed",
"permission denied for schema public" or "database does not exist" into a
diagnosis with a remedy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip configuration for commands that do not need it
			if cmd.Name() == "version" {
				return nil
			}
			return rt.load()
		},
	}

	rt.flags = config.RegisterFlags(rootCmd.PersistentFlags())

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(newValidateCommand(rt))
	rootCmd.AddCommand(newCheckCommand(rt))
	rootCmd.AddCommand(newRenderCommand(rt))
	rootCmd.AddCommand(newVersionCommand(rt))

	return rootCmd
}

// load builds the configuration and the services from the parsed flags.
func (rt *invocation) load() error {
	cfg, err := config.GetStructuredConfig(rt.flags)
	if err != nil {
		return fmt.Errorf("%s: %w", app.MsgConfigLoadFailed, err)
	}

	if err = rt.log.SetLevel(cfg.Tool.LogLevel); err != nil {
		return err
	}

	rt.cfg = cfg
	rt.services = service.NewServices(*cfg, rt.log)
	rt.log.Debug().
		Object("datasource", cfg.Datasource()).
		Str("url_source", cfg.Sources.URL.String()).
		Str("username_source", cfg.Sources.Username.String()).
		Str("password_source", cfg.Sources.Password.String()).
		Msg("received configs")
	return nil
}
