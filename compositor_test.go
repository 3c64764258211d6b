package doclayout_test

import (
	"testing"

	"github.com/sjakobi/doclayout"
	"github.com/teleivo/assertive/assert"
)

func TestBoxesCompositeSideBySide(t *testing.T) {
	d := doclayout.Concat(
		doclayout.LBlock(5, doclayout.Lit("ab")),
		doclayout.RBlock(5, doclayout.Lit("xy")),
	)

	got := doclayout.Render(d, 20)

	assert.EqualValues(t, got, "ab      xy")
}

func TestVFillBoxRepeatsToMatchTallerNeighbor(t *testing.T) {
	short := doclayout.Box(3, doclayout.VFillText("-"))
	tall := doclayout.Box(3, doclayout.Concat(doclayout.Lit("x"), doclayout.Newline(), doclayout.Lit("y")))

	got := doclayout.Render(doclayout.Concat(short, tall), 20)

	assert.EqualValues(t, got, "-  x  \n-  y  ")
}

func TestBoxShorterThanNeighborWithoutVFillPadsWithBlank(t *testing.T) {
	short := doclayout.Box(3, doclayout.Lit("x"))
	tall := doclayout.Box(3, doclayout.Concat(doclayout.Lit("a"), doclayout.Newline(), doclayout.Lit("b")))

	got := doclayout.Render(doclayout.Concat(short, tall), 20)

	assert.EqualValues(t, got, "x  a  \n   b  ")
}

func TestNestedBoxesCompositeRecursively(t *testing.T) {
	inner := doclayout.Concat(
		doclayout.LBlock(2, doclayout.Lit("a")),
		doclayout.LBlock(2, doclayout.Lit("b")),
	)
	outer := doclayout.Box(4, inner)

	got := doclayout.Render(outer, 20)

	assert.EqualValues(t, got, "a b ")
}

func TestCenterBlockPadsExtraColumnToTheRight(t *testing.T) {
	// A center split of an odd deficit puts the extra column on the right
	// (floor on the left, ceil on the right): deficit 3 over "hi" splits 1/2.
	d := doclayout.CBlock(5, doclayout.Text("hi"))

	got := doclayout.Render(d, 20)

	assert.EqualValues(t, got, " hi  ")
}

func TestSideBySideBoxesWithVFillMatchesSpecScenario(t *testing.T) {
	d := doclayout.Concat(
		doclayout.LBlock(3, doclayout.Text("a\nb\nc")),
		doclayout.LBlock(1, doclayout.VFillText("|")),
	)

	got := doclayout.Render(d, 20)

	assert.EqualValues(t, got, "a  |\nb  |\nc  |")
}
