package doclayout_test

import (
	"testing"

	"github.com/sjakobi/doclayout"
	"github.com/teleivo/assertive/assert"
)

func TestIsEmpty(t *testing.T) {
	tests := map[string]struct {
		in   doclayout.Doc
		want bool
	}{
		"EmptyDoc":            {in: doclayout.Doc{}, want: true},
		"SoftSpaceOnly":       {in: doclayout.Space(), want: true},
		"ZeroWidthBoxIsEmpty": {in: doclayout.Box(0, doclayout.Doc{}), want: true},
		"Text":                {in: doclayout.Lit("x"), want: false},
		"Newline":             {in: doclayout.Newline(), want: false},
		"BlankLine":           {in: doclayout.BlankLine(), want: false},
		"BoxWithContent":      {in: doclayout.Box(3, doclayout.Lit("x")), want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := doclayout.IsEmpty(tc.in)
			assert.EqualValues(t, got, tc.want)
		})
	}
}

func TestGetDimensions(t *testing.T) {
	dim := doclayout.GetDimensions(words("the", "quick", "brown", "fox", "jumps"), 10)

	assert.EqualValues(t, dim.Height, 3)
	assert.EqualValues(t, dim.Offset, 5) // final line is "jumps"
}

func TestOffsetIgnoresTheWrapWidth(t *testing.T) {
	got := doclayout.Offset(words("a", "bb", "ccc"))

	assert.EqualValues(t, got, 8) // "a bb ccc" unwrapped is 8 columns wide
}

func TestMinOffsetIsTheWidestUnbreakableRun(t *testing.T) {
	got := doclayout.MinOffset(words("a", "bb", "ccc"))

	assert.EqualValues(t, got, 3) // "ccc" is the widest single word
}

func TestHeight(t *testing.T) {
	got := doclayout.Height(words("the", "quick", "brown", "fox", "jumps"), 10)

	assert.EqualValues(t, got, 3)
}

func TestRenderStringIsRenderOfText(t *testing.T) {
	got := doclayout.RenderString("the quick brown fox jumps", 10)
	want := doclayout.Render(doclayout.Text("the quick brown fox jumps"), 10)

	assert.EqualValues(t, got, want)
}
