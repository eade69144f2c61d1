package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-datasource-check/internal/app"
	"github.com/MKhiriev/go-datasource-check/internal/report"
)

func newRenderCommand(rt *invocation) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print an application.yml that reads credentials from the environment",
		Long: `Render prints the spring.datasource and spring.jpa sections for the current
configuration with url and username behind ${SPRING_DATASOURCE_*} placeholders
(current values kept as local defaults) and the password read from
SPRING_DATASOURCE_PASSWORD only, so no secret has to be committed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := rt.cfg.Datasource()

			// prefer the canonical form when the record is valid
			if result, err := rt.services.CheckService.Validate(cmd.Context(), ds); err == nil {
				ds = result.Datasource.Datasource
			} else {
				rt.log.Warn().Err(err).Msg(app.MsgDatasourceInvalid)
			}

			if err := report.RenderApplicationYAML(cmd.OutOrStdout(), ds); err != nil {
				return fmt.Errorf("%s: %w", app.MsgRenderingFailed, err)
			}
			return nil
		},
	}
}
