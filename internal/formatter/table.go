// Package formatter renders a fetched result set as an aligned text table
// for terminal output.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ItsHarfer/My-Zootopia/internal/models"
	"github.com/ItsHarfer/My-Zootopia/pkg/textutil"
)

const maxCellWidth = 40

// SummaryTable renders animals as a pipe-delimited table with runewidth-aware
// column alignment. Returns an empty string for an empty result set.
func SummaryTable(animals []models.Animal) string {
	if len(animals) == 0 {
		return ""
	}

	rows := [][]string{{"Name", "Type", "Diet", "Location"}}

	for _, animal := range animals {
		rows = append(rows, []string{
			textutil.Truncate(animal.Name, maxCellWidth),
			textutil.Truncate(animal.Type, maxCellWidth),
			textutil.Truncate(animal.Diet, maxCellWidth),
			textutil.Truncate(animal.Location, maxCellWidth),
		})
	}

	return alignRows(rows)
}

// alignRows pads every cell to its column's display width and joins the rows
// into markdown-style table lines, with a separator under the header.
func alignRows(rows [][]string) string {
	colCount := len(rows[0])
	widths := make([]int, colCount)

	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var lines []string

	for idx, row := range rows {
		cells := make([]string, colCount)
		for i, cell := range row {
			padding := widths[i] - runewidth.StringWidth(cell)
			cells[i] = cell + strings.Repeat(" ", padding)
		}

		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")

		if idx == 0 {
			seps := make([]string, colCount)
			for i, width := range widths {
				seps[i] = strings.Repeat("-", width)
			}

			lines = append(lines, "| "+strings.Join(seps, " | ")+" |")
		}
	}

	return strings.Join(lines, "\n")
}
