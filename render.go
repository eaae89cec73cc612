package nxcube

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var faceBorderStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	Padding(0, 1)

// Render returns a bordered textual layout of all six faces, unfolded as
// a cross: top above, then left/front/right/back side by side, then
// down. Each cell holds the quoted colour label, or a quoted blank for
// an unpainted cell; borders grow with the cube size.
func (c *Cube) Render() string {
	block := func(f Face) string {
		grid, _ := c.Face(f)
		rows := make([]string, len(grid))
		for r, row := range grid {
			cells := make([]string, len(row))
			for i, label := range row {
				if label == "" {
					label = " "
				}
				cells[i] = `"` + label + `"`
			}
			rows[r] = strings.Join(cells, " ")
		}
		return faceBorderStyle.Render(strings.Join(rows, "\n"))
	}

	left := block(FaceLeft)
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		left, block(FaceFront), block(FaceRight), block(FaceBack))
	spacer := strings.Repeat(" ", lipgloss.Width(left))
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, spacer, block(FaceTop)),
		middle,
		lipgloss.JoinHorizontal(lipgloss.Top, spacer, block(FaceDown)),
	)
}
