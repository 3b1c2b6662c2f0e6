// Package source maps byte offsets of token literals to line and column numbers.
package source

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Source is a named text with an index of line starts.
// Source is immutable and safe for concurrent use.
type Source struct {
	name       string
	content    string
	lineStarts []int
}

func New(name, content string) *Source {
	s := &Source{name: name, content: content}
	s.lineStarts = make([]int, 1, strings.Count(content, "\n")+1)
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() string {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// NumOfLines returns the number of lines, a text without line feeds has one line.
func (s *Source) NumOfLines() int {
	return len(s.lineStarts)
}

// LineCol converts byte offset to 1-based line and column (in runes) numbers.
// Offsets out of range are clamped to the content.
func (s *Source) LineCol(offset int) (line, col int) {
	offset = max(0, min(offset, len(s.content)))
	index := sort.SearchInts(s.lineStarts, offset+1) - 1
	return index + 1, utf8.RuneCountInString(s.content[s.lineStarts[index]:offset]) + 1
}

// Offset converts 1-based line and column (in runes) numbers to byte offset.
// Returns 0 for non-positive arguments, positions past the end are clamped to content length.
func (s *Source) Offset(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}
	if line > len(s.lineStarts) {
		return len(s.content)
	}

	res := s.lineStarts[line-1]
	for ; col > 1 && res < len(s.content); col-- {
		_, size := utf8.DecodeRuneInString(s.content[res:])
		res += size
	}
	return res
}

// Pos is a resolved position within Source.
type Pos struct {
	src               *Source
	offset, line, col int
}

// Pos returns resolved position for byte offset.
func (s *Source) Pos(offset int) Pos {
	line, col := s.LineCol(offset)
	return Pos{s, offset, line, col}
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) Offset() int {
	return p.offset
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}

// String returns position in "name:line:col" form, name is omitted if empty.
func (p Pos) String() string {
	lc := strconv.Itoa(p.line) + ":" + strconv.Itoa(p.col)
	if p.src == nil || p.src.name == "" {
		return lc
	}
	return p.src.name + ":" + lc
}
