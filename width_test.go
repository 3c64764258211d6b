package doclayout_test

import (
	"testing"

	"github.com/sjakobi/doclayout"
	"github.com/teleivo/assertive/assert"
)

func TestCharWidth(t *testing.T) {
	tests := map[string]struct {
		in   rune
		want int
	}{
		"ASCIILetter":      {in: 'a', want: 1},
		"CombiningAcute":   {in: '́', want: 0},
		"CJKWideIdeograph": {in: '中', want: 2},
		"FullwidthLatinA":  {in: 'Ａ', want: 2},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := doclayout.CharWidth(tc.in)
			assert.EqualValues(t, got, tc.want)
		})
	}
}

func TestRealLength(t *testing.T) {
	tests := map[string]struct {
		in   string
		want int
	}{
		"Empty": {in: "", want: 0},
		"ASCII": {in: "hello", want: 5},
		"CJK":   {in: "中文", want: 4},
		"Mixed": {in: "a中b", want: 4},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := doclayout.RealLength(tc.in)
			assert.EqualValues(t, got, tc.want)
		})
	}
}
