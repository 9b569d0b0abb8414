// Package lipgloss renders word frequency summaries for the terminal.
package lipgloss

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fwojciec/wordchart"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	countStyle   = cellStyle.Align(lipgloss.Right)
)

// WriteSummary writes a ranked table of the topN words in m, headed by
// title. An empty map prints a short notice instead of a table.
func WriteSummary(w io.Writer, title string, m *wordchart.FrequencyMap, topN int) error {
	top, err := wordchart.TopWords(m, topN)
	if err != nil {
		if wordchart.ErrorCode(err) != wordchart.ENODATA {
			return err
		}
		_, err = fmt.Fprintln(w, mutedStyle.Render("No words to chart."))
		return err
	}

	rows := make([][]string, 0, len(top))
	for i, wc := range top {
		rows = append(rows, []string{strconv.Itoa(i + 1), wc.Word, strconv.Itoa(wc.Count)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "WORD", "COUNT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headingStyle.Padding(0, 1)
			}
			if col == 0 || col == 2 {
				return countStyle
			}
			return cellStyle
		})

	_, err = fmt.Fprintf(w, "%s\n%s\n%s\n",
		headingStyle.Render(wordchart.ChartTitle(len(top), title)),
		t.Render(),
		mutedStyle.Render(fmt.Sprintf("%d words, %d distinct", m.Total(), m.Len())),
	)
	return err
}
