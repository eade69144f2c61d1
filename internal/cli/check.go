package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-datasource-check/internal/app"
	"github.com/MKhiriev/go-datasource-check/internal/config"
	"github.com/MKhiriev/go-datasource-check/internal/report"
	"github.com/MKhiriev/go-datasource-check/models"
)

func newValidateCommand(rt *invocation) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the datasource configuration without connecting",
		Long: `Validate checks that url, username and password are present, that the url
is a jdbc:postgresql://host[:port]/database string, and that the driver class
and ddl-auto mode are supported. Nothing is sent over the network.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.run(cmd, rt.services.CheckService.Validate)
		},
	}
}

func newCheckCommand(rt *invocation) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the datasource and check it against the server",
		Long: `Check validates the configuration, connects with it and probes the session:
server version, connected database and role, and the role's USAGE and CREATE
privileges on the schema. Failures are classified as authentication failure,
schema permission denial, missing database or unreachable server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.run(cmd, rt.services.CheckService.Check)
		},
	}
}

// run executes one check operation, attaches the configuration findings and
// writes the report. A failed check is reported through errCheckFailed
// after the report has been written.
func (rt *invocation) run(cmd *cobra.Command, op func(context.Context, models.Datasource) (models.Report, error)) error {
	result, checkErr := op(cmd.Context(), rt.cfg.Datasource())
	result.Findings = config.Lint(rt.cfg)

	if err := report.Render(cmd.OutOrStdout(), rt.cfg.Tool.Output, result); err != nil {
		rt.log.Err(err).Str("func", "invocation.run").Msg(app.MsgRenderingFailed)
		return fmt.Errorf("%s: %w", app.MsgRenderingFailed, err)
	}

	if checkErr != nil {
		rt.log.Debug().Err(checkErr).Str("check_id", result.CheckID).Msg(app.MsgCheckFailed)
		return fmt.Errorf("%w: %w", errCheckFailed, checkErr)
	}

	rt.log.Debug().Str("check_id", result.CheckID).Msg(app.MsgDatasourceOK)
	return nil
}
