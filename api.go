package doclayout

// unboundedWidth stands in for "no wrap limit" when a caller wants to know
// how wide a document would be if nothing ever wrapped.
const unboundedWidth = 1 << 30

// Render lays d out at the given line width and serializes it to a single
// string: width oracle and stream normalization happen implicitly (every
// Text atom already carries its own precomputed display width), followed by
// the line-builder interpreter, the box compositor, and the line
// serializer, in that order.
func Render(d Doc, width int) string {
	return serialize(compositeBoxes(layoutDoc(d, width), width), width)
}

// RenderString is a convenience for the common case of laying out a single
// unstructured string at width: embedded newlines in s become line breaks,
// but s is not split at spaces to wrap prose — that requires building a Doc
// out of [Lit] and [Space] explicitly, since word-wrapping is a caller
// concern this package does not provide on its own.
func RenderString(s string, width int) string {
	return Render(Text(s), width)
}

// Dimensions describes the shape a document renders to at a given width.
type Dimensions struct {
	// Height is the number of output lines.
	Height int
	// Offset is the display width of the final line's own atoms; the nesting
	// indent and alignment padding that rendering adds to that line are not
	// counted.
	Offset int
}

// GetDimensions reports the height and final-line offset of d rendered at
// width, without allocating the serialized string.
func GetDimensions(d Doc, width int) Dimensions {
	lines := compositeBoxes(layoutDoc(d, width), width)
	dim := Dimensions{Height: len(lines)}
	if len(lines) > 0 {
		last := lines[len(lines)-1]
		dim.Offset = sumWidths(trimTrailingSoftSpaces(last.Atoms))
	}
	return dim
}

// Offset returns the width of d's final line, as [Dimensions.Offset] measures
// it, if rendered with no wrap limit.
// It is the building block [Nest] functions use to hang a continuation
// line under the end of some sibling content.
func Offset(d Doc) int {
	return GetDimensions(d, unboundedWidth).Offset
}

// Height returns the number of lines d renders to at the given width.
func Height(d Doc, width int) int {
	return len(compositeBoxes(layoutDoc(d, width), width))
}

// MinOffset returns the width of the widest run of atoms between soft
// spaces (or hard breaks) in d: the narrowest line width at which d can be
// rendered without any single line overflowing. Nesting indent is not
// folded into the computation, matching the rest of this package's
// position on guaranteed fit: it is a lower bound, not a promise.
func MinOffset(d Doc) int {
	d = normalize(d)
	max, cur := 0, 0
	flush := func() {
		if cur > max {
			max = cur
		}
		cur = 0
	}
	for _, a := range d {
		switch t := a.(type) {
		case textAtom:
			cur += t.width
		case boxAtom:
			cur += t.width
		case softSpaceAtom:
			flush()
		case newlineAtom:
			flush()
		case blanksAtom:
			flush()
		}
	}
	flush()
	return max
}
