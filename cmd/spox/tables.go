// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"github.com/spoxml/spox/pkg/support/sets"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	headerStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 2).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	warnStyle   = cellStyle.Foreground(lipgloss.Color("9")).Bold(true)
)

// disableColors makes all the styles render as plain text.
func disableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// reportTable is a lipgloss table whose rows can be flagged, e.g. an import failure, and are then
// rendered in warnStyle.
type reportTable struct {
	table   *lgtable.Table
	numRows int
	flagged sets.Set[int]
}

// newTable creates a table with the given column alignments. Columns beyond the alignments given take
// the last one. An empty header renders no header row.
func newTable(header []string, alignments ...lipgloss.Position) *reportTable {
	t := &reportTable{flagged: sets.Make[int]()}
	t.table = lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 { // Header.
				return headerStyle
			}
			style := cellStyle.Faint(row%2 == 1)
			if t.flagged.Has(row) {
				style = warnStyle
			}
			if len(alignments) > 0 {
				style = style.Align(alignments[min(col, len(alignments)-1)])
			}
			return style
		})
	if len(header) > 0 {
		t.table.Headers(header...)
	}
	return t
}

// Row appends a row, flagged or not.
func (t *reportTable) Row(flagged bool, cells ...string) {
	if flagged {
		t.flagged.Insert(t.numRows)
	}
	t.table.Row(cells...)
	t.numRows++
}

// Render returns the table as a string.
func (t *reportTable) Render() string { return t.table.Render() }
