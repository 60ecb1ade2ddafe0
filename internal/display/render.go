// Package display renders workout reports for the terminal.
package display

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"fittracker/internal/workout"
)

// Renderer writes reports to an output stream in the configured style
type Renderer struct {
	w     io.Writer
	card  bool
	chart bool
}

// NewRenderer creates a renderer. card selects the boxed layout;
// chart adds a calories chart to the run summary.
func NewRenderer(w io.Writer, card, chart bool) *Renderer {
	return &Renderer{w: w, card: card, chart: chart}
}

// Report writes one report. The plain style is exactly the summary line.
func (r *Renderer) Report(m workout.InfoMessage) error {
	var err error
	if r.card {
		_, err = fmt.Fprintln(r.w, RenderCard(m))
	} else {
		_, err = fmt.Fprintln(r.w, m.Message())
	}
	return err
}

// Summary writes the end-of-run chart when enabled and there is something to plot
func (r *Renderer) Summary(msgs []workout.InfoMessage) error {
	if !r.chart || len(msgs) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(r.w, RenderCaloriesChart(msgs))
	return err
}

// Totals writes calories per workout type, sorted by name
func (r *Renderer) Totals(totals map[string]float64) error {
	_, err := fmt.Fprintln(r.w, RenderTotals(totals))
	return err
}

// RenderCard renders a report as a bordered card
func RenderCard(m workout.InfoMessage) string {
	title := cardTitleStyle.Render(m.TrainingType)

	lines := []string{
		RenderMetric("Duration", fmt.Sprintf("%.3f h", m.Duration)),
		RenderMetric("Distance", fmt.Sprintf("%.3f km", m.Distance)),
		RenderMetric("Avg speed", fmt.Sprintf("%.3f km/h", m.Speed)),
		RenderMetric("Calories", fmt.Sprintf("%.3f", m.Calories)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

// RenderCaloriesChart plots calories per report in run order
func RenderCaloriesChart(msgs []workout.InfoMessage) string {
	title := cardTitleStyle.Render("Calories burned")

	data := make([]float64, len(msgs))
	flat := true
	for i, m := range msgs {
		data[i] = m.Calories
		if data[i] != data[0] {
			flat = false
		}
	}
	if flat {
		note := RenderMetric("Each workout", fmt.Sprintf("%.3f", data[0]))
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, note))
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(40),
		asciigraph.Precision(1),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

// RenderTotals renders total calories per type name
func RenderTotals(totals map[string]float64) string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := []string{headerStyle.Render("Calories by workout type")}
	for _, name := range names {
		lines = append(lines, RenderMetric(name, fmt.Sprintf("%.3f", totals[name])))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderFailure renders a failed package line for stderr
func RenderFailure(code string, err error) string {
	return errorStyle.Render(fmt.Sprintf("%s: %v", code, err))
}

// RenderOK renders a short success note
func RenderOK(msg string) string {
	return successStyle.Render(msg)
}
