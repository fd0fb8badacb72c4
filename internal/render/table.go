// Package render lays out candidate pools and traces as text tables. It
// consumes remaining-set snapshots for display only and never feeds back
// into filtering.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/cheryl/internal/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	columnStyle = lipgloss.NewStyle().PaddingRight(3)
	emptyStyle  = lipgloss.NewStyle().Italic(true)
)

// PoolTable renders one remaining set with a column per player. Each column
// lists the candidates sorted by that player's own coordinate value — a
// display convenience with no semantic weight.
func PoolTable(space *domain.Space, rem []domain.Candidate) string {
	if len(rem) == 0 {
		return emptyStyle.Render("(no candidates remain)")
	}
	widths := maxWidths(rem)
	rowWidth := len(widths) - 1
	for _, w := range widths {
		rowWidth += w
	}

	columns := make([]string, len(space.Players))
	for i, name := range space.Players {
		var b strings.Builder
		b.WriteString(headerStyle.Width(rowWidth).Align(lipgloss.Center).Render(name))
		for _, c := range sortByCoord(rem, i) {
			b.WriteString("\n")
			b.WriteString(formatCandidate(c, widths))
		}
		columns[i] = columnStyle.Render(b.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// TraceTable renders the pre-filtering snapshot followed by one table per
// applied statement.
func TraceTable(space *domain.Space, tr domain.Trace) string {
	sections := make([]string, 0, len(tr))
	for i, snap := range tr {
		title := "Before filtering"
		if i > 0 {
			title = fmt.Sprintf("After statement %d", i)
		}
		sections = append(sections, titleStyle.Render(title)+"\n"+PoolTable(space, snap))
	}
	return strings.Join(sections, "\n\n")
}

func sortByCoord(rem []domain.Candidate, coord int) []domain.Candidate {
	out := make([]domain.Candidate, len(rem))
	copy(out, rem)
	sort.SliceStable(out, func(i, j int) bool { return out[i][coord] < out[j][coord] })
	return out
}

func maxWidths(rem []domain.Candidate) []int {
	widths := make([]int, len(rem[0]))
	for _, c := range rem {
		for i, v := range c {
			if w := lipgloss.Width(v); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func formatCandidate(c domain.Candidate, widths []int) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = fmt.Sprintf("%-*s", widths[i], v)
	}
	return strings.Join(parts, " ")
}
