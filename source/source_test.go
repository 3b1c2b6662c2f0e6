package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type result struct {
	offset, line, col int
}

func TestSourceLineCol(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 1, 1},
			{100, 1, 1},
			{-1, 1, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 2, 1},
			{100, 2, 1},
		},
		"0\n2\n4\n6789abcde\ng\ni\n": {
			{4, 3, 1},
			{5, 3, 2},
			{6, 4, 1},
			{7, 4, 2},
			{14, 4, 9},
			{19, 6, 2},
			{20, 7, 1},
			{9, 4, 4},
			{5, 3, 2},
		},
		"привет\nмир": {
			{2, 1, 2},
			{12, 1, 7},
			{13, 2, 1},
			{17, 2, 3},
		},
	}

	for text, results := range samples {
		src := New("", text)
		for _, res := range results {
			l, c := src.LineCol(res.offset)
			assert.Equal(t, res, result{res.offset, l, c}, "sample %q", text)
		}
	}
}

func TestSourceOffset(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 0, 1},
			{0, 1, 0},
			{0, 1, 1},
			{0, 1, 2},
			{0, 2, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 1, 2},
			{1, 2, 1},
			{1, 2, 2},
			{1, 3, 1},
		},
		"hello\nworld\n": {
			{0, 1, 1},
			{1, 1, 2},
			{6, 2, 1},
			{7, 2, 2},
			{12, 2, 10},
			{12, 3, 1},
			{12, 4, 1},
		},
		"привет\nмир": {
			{2, 1, 2},
			{13, 2, 1},
			{17, 2, 3},
			{19, 2, 5},
		},
	}

	for text, results := range samples {
		src := New("", text)
		for _, res := range results {
			assert.Equal(t, res.offset, src.Offset(res.line, res.col), "sample %q: %v", text, res)
		}
	}
}

func TestPos(t *testing.T) {
	src := New("input.txt", "foo\nbar baz")
	assert.Equal(t, "input.txt", src.Name())
	assert.Equal(t, 11, src.Len())
	assert.Equal(t, 2, src.NumOfLines())

	p := src.Pos(8)
	assert.Same(t, src, p.Source())
	assert.Equal(t, 8, p.Offset())
	assert.Equal(t, 2, p.Line())
	assert.Equal(t, 5, p.Col())
	assert.Equal(t, "input.txt:2:5", p.String())
	assert.Equal(t, "1:1", New("", "x").Pos(0).String())
}
