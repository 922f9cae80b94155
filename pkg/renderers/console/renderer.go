package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/panels"
	"github.com/goliatone/go-reportgen/pkg/render"
)

// Renderer prints report models as ANSI-styled terminal tables with the
// debug panels below. Styling is optional so output stays byte-stable for
// snapshots and pipes.
type Renderer struct {
	color      bool
	driver     PromptDriver
	panels     *panels.Registry
	panelNames []string

	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	mutedStyle  lipgloss.Style
	bandStyles  map[string]lipgloss.Style
}

// New constructs a console renderer with defaults (color on, survey-backed
// prompts for interactive exploration).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		color:  true,
		driver: newSurveyDriver(),
		panels: panels.NewRegistry(),

		titleStyle:  lipgloss.NewStyle().Bold(true),
		headerStyle: lipgloss.NewStyle().Bold(true),
		mutedStyle:  lipgloss.NewStyle().Faint(true),
		bandStyles: map[string]lipgloss.Style{
			"low":  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			"mid":  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			"high": lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	return r, nil
}

func (r *Renderer) Name() string {
	return "console"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes the table and the selected panels. Output ends with a single
// trailing newline.
func (r *Renderer) Render(_ context.Context, report model.ReportModel, opts render.RenderOptions) ([]byte, error) {
	report.Columns = append([]model.Column(nil), report.Columns...)
	render.LocalizeReportModel(&report, opts)
	if opts.Title != "" {
		report.Title = opts.Title
	}

	names := opts.Panels
	if len(names) == 0 {
		names = r.panelNames
	}
	selected, err := r.panels.Select(names)
	if err != nil {
		return nil, fmt.Errorf("console renderer: %w", err)
	}

	var out strings.Builder

	if report.Title != "" {
		out.WriteString(r.style(r.titleStyle, report.Title))
		out.WriteString("\n\n")
	}

	r.writeTable(&out, report)

	for _, panel := range selected {
		out.WriteString("\n")
		switch panel.Name {
		case panels.PanelSummary:
			r.writeSummary(&out, report)
		case panels.PanelColumns:
			r.writeColumns(&out, report)
		case panels.PanelAverage:
			r.writeAverage(&out, report)
		}
	}

	return []byte(out.String()), nil
}

func (r *Renderer) writeTable(out *strings.Builder, report model.ReportModel) {
	if len(report.Columns) == 0 {
		out.WriteString(r.style(r.mutedStyle, "(no columns)"))
		out.WriteString("\n")
		return
	}

	widths := make([]int, len(report.Columns))
	for i, column := range report.Columns {
		widths[i] = len(column.Label)
		for _, row := range report.Rows {
			if w := len(cellText(row, column.Key)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i, column := range report.Columns {
		if i > 0 {
			out.WriteString("  ")
		}
		out.WriteString(r.style(r.headerStyle, pad(column.Label, widths[i], column.Key == "completion")))
	}
	out.WriteString("\n")

	for i := range report.Columns {
		if i > 0 {
			out.WriteString("  ")
		}
		out.WriteString(strings.Repeat("-", widths[i]))
	}
	out.WriteString("\n")

	for _, row := range report.Rows {
		band := completionBand(row.CompletionValue)
		for i, column := range report.Columns {
			if i > 0 {
				out.WriteString("  ")
			}
			cell := pad(cellText(row, column.Key), widths[i], column.Key == "completion")
			if column.Key == "completion" {
				cell = r.style(r.bandStyles[band], cell)
			}
			out.WriteString(cell)
		}
		out.WriteString("\n")
	}
}

func (r *Renderer) writeSummary(out *strings.Builder, report model.ReportModel) {
	out.WriteString(r.style(r.headerStyle, "Summary"))
	out.WriteString("\n")
	fmt.Fprintf(out, "  rows: %d  edges: %d  skipped: %d\n", len(report.Rows), report.TotalEdges, report.Skipped)
	if lines := render.WarningLines(report); len(lines) > 0 {
		out.WriteString("  warnings:\n")
		for _, line := range lines {
			fmt.Fprintf(out, "    - %s\n", r.style(r.mutedStyle, line))
		}
	}
}

func (r *Renderer) writeColumns(out *strings.Builder, report model.ReportModel) {
	out.WriteString(r.style(r.headerStyle, "Columns"))
	out.WriteString("\n")
	for _, column := range report.Columns {
		fmt.Fprintf(out, "  %s: %s\n", column.Key, column.Label)
	}
}

func (r *Renderer) writeAverage(out *strings.Builder, report model.ReportModel) {
	out.WriteString(r.style(r.headerStyle, "Average"))
	out.WriteString("\n")
	value := report.Average
	if report.AverageValid {
		value = r.style(r.bandStyles[completionBand(report.AverageValue)], value)
	} else {
		value = r.style(r.mutedStyle, value)
	}
	fmt.Fprintf(out, "  %s\n", value)
}

// Explore drives an interactive row inspection session: pick a row, print
// its detail, repeat until the user stops or aborts.
func (r *Renderer) Explore(ctx context.Context, report model.ReportModel) error {
	if r.driver == nil {
		return fmt.Errorf("console renderer: prompt driver is nil")
	}
	if len(report.Rows) == 0 {
		return r.driver.Info(ctx, "no rows to explore")
	}

	options := make([]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		options = append(options, fmt.Sprintf("%s (%s)", row.Name, row.Completion))
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message: "Inspect row",
			Options: options,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(report.Rows) {
			return nil
		}

		row := report.Rows[idx]
		detail := fmt.Sprintf("%s\n  completion: %s (%.4f, band %s)",
			row.Name, row.Completion, row.CompletionValue, completionBand(row.CompletionValue))
		for key, value := range row.Attrs {
			detail += fmt.Sprintf("\n  %s: %v", key, value)
		}
		if err := r.driver.Info(ctx, detail); err != nil {
			return err
		}

		more, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: "Inspect another row?",
			Default: true,
		})
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (r *Renderer) style(style lipgloss.Style, value string) string {
	if !r.color {
		return value
	}
	return style.Render(value)
}

func cellText(row model.Row, key string) string {
	switch key {
	case "name":
		return row.Name
	case "completion":
		return row.Completion
	}
	if value, ok := row.Attrs[key]; ok {
		return fmt.Sprint(value)
	}
	return ""
}

func pad(value string, width int, rightAlign bool) string {
	if len(value) >= width {
		return value
	}
	fill := strings.Repeat(" ", width-len(value))
	if rightAlign {
		return fill + value
	}
	return value + fill
}

func completionBand(fraction float64) string {
	switch {
	case fraction < 1.0/3:
		return "low"
	case fraction < 2.0/3:
		return "mid"
	default:
		return "high"
	}
}
