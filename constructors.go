package doclayout

import "strings"

// NestFunc computes a nesting level (the hang indent used by wrapped
// continuation lines) from the column a PushNesting atom was encountered at
// and the nesting level it is pushed on top of.
type NestFunc = nestFunc

// ConstNest always hangs continuation lines at column n, regardless of
// where the nested Doc started.
func ConstNest(n int) NestFunc {
	return func(col, prev int) int { return n }
}

// DeltaNest hangs continuation lines n columns deeper than the enclosing
// nesting level.
func DeltaNest(n int) NestFunc {
	return func(col, prev int) int { return prev + n }
}

// ColumnNest hangs continuation lines under whatever column the nested Doc
// happens to start at.
func ColumnNest() NestFunc {
	return func(col, prev int) int { return col }
}

// Lit is a single indivisible run of text: it never contributes a wrap
// point and is never broken internally.
func Lit(s string) Doc {
	return Doc{textAtom{fill: NoFill, width: RealLength(s), s: s}}
}

// Char is Lit for a single rune.
func Char(r rune) Doc {
	return Lit(string(r))
}

// VFillText is like Lit, except when it is the sole content of a Box placed
// next to a taller box, in which case its line is repeated to fill the
// extra height (see the box compositor).
func VFillText(s string) Doc {
	return Doc{textAtom{fill: VFill, width: RealLength(s), s: s}}
}

// Text splits s on "\n" and emits Lit of each resulting line, interleaved
// with Newline. Interior spaces, including runs of them, are kept as
// literal content: introducing soft spaces at spaces so prose can wrap is
// hsep behavior, which this package does not provide. Callers that want
// wrapping prose build it explicitly out of [Lit] and [Space].
func Text(s string) Doc {
	lines := strings.Split(s, "\n")
	d := make(Doc, 0, 2*len(lines)-1)
	for i, line := range lines {
		if i > 0 {
			d = append(d, newlineAtom{})
		}
		d = append(d, textAtom{fill: NoFill, width: RealLength(line), s: line})
	}
	return d
}

// Space is a single soft space: a potential line break that prints as a
// literal space if the line does not wrap there.
func Space() Doc {
	return Doc{softSpaceAtom{}}
}

// Newline is a hard line break: it always starts a new output line.
func Newline() Doc {
	return Doc{newlineAtom{}}
}

// BlankLine inserts one blank output line. Adjacent Blanks atoms, however
// they arise, merge into one requiring the larger of their two counts
// (Blanks(n) means "at least n blank lines here"), so two adjacent
// BlankLine calls require the same single trailing blank line a lone
// BlankLine call would.
func BlankLine() Doc {
	return Doc{blanksAtom{n: 1}}
}

// BlankLines inserts n blank output lines.
func BlankLines(n int) Doc {
	if n <= 0 {
		return Doc{}
	}
	return Doc{blanksAtom{n: n}}
}

// Box lays inner out independently at the given column width and embeds the
// result as a fixed-width cell on the line it appears on. Boxes on the same
// source line are composited side by side; a box shorter than its
// neighbors is padded with blank lines unless its content is a single
// [VFillText] line, which is repeated to fill the extra height instead.
func Box(width int, inner Doc) Doc {
	return Doc{boxAtom{width: width, inner: inner}}
}

// ResizableBox sizes a box to the natural (unwrapped) width of its own
// content, rather than a caller-supplied width.
func ResizableBox(inner Doc) Doc {
	width := 0
	for _, ln := range compositeBoxes(layoutDoc(inner, unboundedWidth), unboundedWidth) {
		if w := ln.Indent + sumWidths(trimTrailingSoftSpaces(ln.Atoms)); w > width {
			width = w
		}
	}
	return Box(width, inner)
}

// Nest hangs any continuation lines produced while rendering d according to
// fn, for the extent of d only.
func Nest(fn NestFunc, d Doc) Doc {
	out := make(Doc, 0, len(d)+2)
	out = append(out, pushNestingAtom{fn: fn})
	out = append(out, d...)
	out = append(out, popNestingAtom{})
	return out
}

// Hang renders start, then hangs any continuation lines produced while
// rendering body k columns deeper than the current nesting level.
func Hang(k int, start, body Doc) Doc {
	return Concat(start, Nest(DeltaNest(k), body))
}

// Aligned pads every line produced while rendering d to the render width
// according to align, for the extent of d only. The trailing Newline folded
// into the scope guarantees it closes on a line boundary, so alignment
// padding applies to d's last line too, not just the lines before it.
func Aligned(align Alignment, d Doc) Doc {
	out := make(Doc, 0, len(d)+3)
	out = append(out, pushAlignmentAtom{align: align})
	out = append(out, d...)
	out = append(out, newlineAtom{})
	out = append(out, popAlignmentAtom{})
	return out
}

func AlignLeft(d Doc) Doc   { return Aligned(AlignmentLeft, d) }
func AlignRight(d Doc) Doc  { return Aligned(AlignmentRight, d) }
func AlignCenter(d Doc) Doc { return Aligned(AlignmentCenter, d) }

// LBlock, RBlock and CBlock are fixed-width boxes whose own content is
// left-, right- or center-aligned within that width. d is chomped first, so
// trailing Blanks/Newline/SoftSpace atoms never leak a stray blank row or
// extra padding into the cell.
func LBlock(width int, d Doc) Doc { return Box(width, AlignLeft(Chomp(d))) }
func RBlock(width int, d Doc) Doc { return Box(width, AlignRight(Chomp(d))) }
func CBlock(width int, d Doc) Doc { return Box(width, AlignCenter(Chomp(d))) }

// Flush emits d and forces whatever follows onto a fresh output line.
func Flush(d Doc) Doc {
	out := make(Doc, 0, len(d)+1)
	out = append(out, d...)
	out = append(out, newlineAtom{})
	return out
}

// Chomp removes any trailing Blanks, Newline or SoftSpace atoms from the end
// of d. It is idempotent: chomping an already-chomped Doc is a no-op.
func Chomp(d Doc) Doc {
	end := len(d)
	for end > 0 {
		switch d[end-1].(type) {
		case blanksAtom, newlineAtom, softSpaceAtom:
			end--
			continue
		}
		break
	}
	out := make(Doc, end)
	copy(out, d[:end])
	return out
}

// AfterBreak prints s only when this point in the stream falls at true
// column 0, independent of any enclosing nesting: the very start of the
// document, or right after a break that was not itself hung at some
// nonzero indent. A break inside a [Hang] or [Nest] body resumes at that
// nesting's column, not column 0, so AfterBreak stays silent there even
// though a break did just happen.
func AfterBreak(s string) Doc {
	return Doc{withColumnAtom{fn: func(col int) Doc {
		if col == 0 {
			return Lit(s)
		}
		return Doc{}
	}}}
}

// Nowrap converts every soft space in d, including those inside any nested
// Box, into a literal space, so d never breaks internally even if doing so
// would avoid an overflow.
func Nowrap(d Doc) Doc {
	out := make(Doc, len(d))
	for i, a := range d {
		if _, ok := a.(softSpaceAtom); ok {
			out[i] = textAtom{fill: NoFill, width: 1, s: " "}
			continue
		}
		if b, ok := a.(boxAtom); ok {
			out[i] = boxAtom{width: b.width, inner: Nowrap(b.inner)}
			continue
		}
		out[i] = a
	}
	return out
}

// Prefixed renders d at the current remaining line length minus the width
// of prefix, then prepends prefix to every resulting line. Continuation
// lines line up under the first line's content, the way a block quote or a
// comment marker does.
func Prefixed(prefix string, d Doc) Doc {
	pw := RealLength(prefix)
	return Nest(ColumnNest(), Doc{withLineLengthAtom{fn: func(remaining int) Doc {
		inner := remaining - pw
		if inner < 1 {
			inner = 1
		}
		rendered := Render(d, inner)
		rawLines := strings.Split(rendered, "\n")
		out := make(Doc, 0, len(rawLines)*2)
		for i, l := range rawLines {
			if i > 0 {
				out = append(out, newlineAtom{})
			}
			out = append(out, textAtom{width: RealLength(prefix + l), s: prefix + l})
		}
		return out
	}}})
}
