package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-datasource-check/models"
)

// RenderText writes r as a styled, human-readable block.
func RenderText(w io.Writer, r models.Report) error {
	var sections []string

	sections = append(sections, titleStyle.Render("Datasource check ")+infoStyle.Render(r.CheckID))

	if ds := r.Datasource; ds != nil {
		sections = append(sections, rows(
			"url", ds.URL,
			"host", ds.JDBC.Address(),
			"database", ds.JDBC.Database,
			"username", ds.Username,
			"password", passwordState(ds.Password),
			"ddl-auto", ds.DDLAuto.String(),
			"show-sql", strconv.FormatBool(ds.ShowSQL),
		))
	}

	if p := r.Probe; p != nil {
		sections = append(sections, rows(
			"server", p.ServerVersion,
			"connected as", p.CurrentUser+"@"+p.Database,
			"schema", p.Schema,
			"usage", yesNo(p.SchemaUsage),
			"create", yesNo(p.SchemaCreate),
		))
	}

	if len(r.Findings) > 0 {
		lines := make([]string, 0, len(r.Findings))
		for _, f := range r.Findings {
			lines = append(lines, finding(f))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	sections = append(sections, diagnosis(r.Diagnosis))

	_, err := fmt.Fprintln(w, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, spaced(sections)...)))
	return err
}

func rows(pairs ...string) string {
	lines := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(pairs[i]), pairs[i+1]))
	}
	return strings.Join(lines, "\n")
}

func spaced(sections []string) []string {
	out := make([]string, 0, 2*len(sections))
	for i, s := range sections {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, s)
	}
	return out
}

func finding(f models.Finding) string {
	switch f.Severity {
	case models.SeverityWarning:
		return warningStyle.Render("! "+f.Code) + " " + f.Message
	default:
		return infoStyle.Render("i "+f.Code) + " " + f.Message
	}
}

func diagnosis(d models.Diagnosis) string {
	if d.OK() {
		return okStyle.Render("OK")
	}

	lines := []string{failStyle.Render(strings.ToUpper(string(d.Kind)))}
	if d.Cause != "" {
		cause := d.Cause
		if d.Code != "" {
			cause += " (SQLSTATE " + d.Code + ")"
		}
		lines = append(lines, rows("cause", cause))
	}
	if d.Remedy != "" {
		lines = append(lines, rows("remedy", d.Remedy))
	}
	return strings.Join(lines, "\n")
}

func passwordState(password string) string {
	if password == "" {
		return "not set"
	}
	return "set"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
