// Package layout groups rendered worksheet items into lines and pages.
package layout

import "strings"

// DefaultSeparator is the gap placed between items sharing a line.
const DefaultSeparator = "    "

// Option customises a Layout.
type Option func(*Layout)

// WithSeparator overrides the inter-item separator.
func WithSeparator(sep string) Option {
	return func(l *Layout) {
		l.separator = sep
	}
}

// WithLinesPerPage enables page grouping in Pages. Zero keeps every line on
// a single page.
func WithLinesPerPage(n int) Option {
	return func(l *Layout) {
		if n > 0 {
			l.linesPerPage = n
		}
	}
}

// Layout paginates a stream of rendered items.
type Layout struct {
	perLine      int
	separator    string
	linesPerPage int
}

// New returns a Layout placing perLine items on each line. Values below one
// are treated as one.
func New(perLine int, options ...Option) Layout {
	if perLine < 1 {
		perLine = 1
	}
	l := Layout{perLine: perLine, separator: DefaultSeparator}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&l)
	}
	return l
}

// PerLine reports the configured items per line.
func (l Layout) PerLine() int {
	return l.perLine
}

// Lines joins items perLine at a time. The final line holds whatever remains
// when the stream ends. Trailing whitespace is trimmed from every line.
func (l Layout) Lines(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	lines := make([]string, 0, (len(items)+l.perLine-1)/l.perLine)
	for start := 0; start < len(items); start += l.perLine {
		end := min(start+l.perLine, len(items))
		lines = append(lines, strings.TrimRight(strings.Join(items[start:end], l.separator), " \t"))
	}
	return lines
}

// Pages groups the laid out lines into pages of linesPerPage lines.
func (l Layout) Pages(items []string) [][]string {
	lines := l.Lines(items)
	if len(lines) == 0 {
		return nil
	}
	if l.linesPerPage == 0 {
		return [][]string{lines}
	}
	var pages [][]string
	for start := 0; start < len(lines); start += l.linesPerPage {
		end := min(start+l.linesPerPage, len(lines))
		pages = append(pages, lines[start:end])
	}
	return pages
}
