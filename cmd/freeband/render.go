package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/katalvlaran/freeband/rewrite"
	"github.com/katalvlaran/freeband/word"
	"golang.org/x/term"
)

var (
	removeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	insertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))
)

// useColor resolves the color setting for out.
func useColor(setting string, out io.Writer) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderStep prints one rewrite of w as "a(bcbc)bab -> a(bc)bab", the
// rewritten factor in parentheses on both sides.
func renderStep(w word.Word, s rewrite.Step, color bool) string {
	head, tail := s.Split(w)
	before, after := "("+s.Before().String()+")", "("+s.After().String()+")"
	if color {
		st := removeStyle
		if s.Kind == rewrite.Insert {
			st = insertStyle
		}
		before, after = st.Render(before), st.Render(after)
	}
	return plain(head) + before + plain(tail) + " -> " + plain(head) + after + plain(tail)
}

// plain renders a factor, where an empty factor prints as nothing.
func plain(w word.Word) string {
	if len(w) == 0 {
		return ""
	}
	return w.String()
}

// renderTable draws the multiplication table with element names as headers.
func renderTable(elems []word.Word, product [][]int, color bool) string {
	headers := make([]string, 0, len(elems)+1)
	headers = append(headers, "·")
	for _, e := range elems {
		headers = append(headers, e.String())
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for i, row := range product {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, elems[i].String())
		for _, k := range row {
			cells = append(cells, elems[k].String())
		}
		t.Row(cells...)
	}
	if color {
		t.StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})
	}
	return t.String()
}
