// Package table flattens Markdown pipe tables into bullet lists.
//
// Chat clients render monospace tables poorly, so every data row becomes one
// line of "header: cell" pairs.
package table

import "strings"

// DefaultBullet prefixes every converted row.
const DefaultBullet = "•"

// Convert turns a pipe table block into bullet lines.
//
// The first line is the header and the second the separator row, which is
// discarded. Blocks with fewer than two lines, or whose first line is not
// pipe-delimited, are returned unchanged.
func Convert(block string) string {
	return ConvertWithBullet(block, DefaultBullet)
}

// ConvertWithBullet is Convert with a custom row prefix.
func ConvertWithBullet(block, bullet string) string {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) < 2 || !isPipeRow(lines[0]) {
		return block
	}

	header := splitCells(lines[0])
	rows := make([][]string, 0, len(lines)-2)
	for _, line := range lines[2:] {
		rows = append(rows, splitCells(line))
	}
	return FromRows(header, rows, bullet)
}

// FromRows formats already split cells. Rows without cells are skipped and
// cells beyond the header count are emitted without a label.
func FromRows(header []string, rows [][]string, bullet string) string {
	if bullet == "" {
		bullet = DefaultBullet
	}

	out := make([]string, 0, len(rows))
	for _, cells := range rows {
		if len(cells) == 0 {
			continue
		}
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if i < len(header) && header[i] != "" {
				parts[i] = header[i] + ": " + cell
			} else {
				parts[i] = cell
			}
		}
		out = append(out, bullet+" "+strings.Join(parts, " | "))
	}
	return strings.Join(out, "\n")
}

// splitCells splits a row on pipes, trimming cells and dropping empty ones.
func splitCells(line string) []string {
	raw := strings.Split(line, "|")
	cells := make([]string, 0, len(raw))
	for _, c := range raw {
		if c = strings.TrimSpace(c); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

func isPipeRow(line string) bool {
	line = strings.TrimSpace(line)
	return len(line) >= 2 && strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|")
}
