package doclayout

import "strings"

// compositeBoxes resolves every Box atom found in lines into its own
// sub-layout, laying boxes on the same source line side by side with any
// literal text around them. Boxes are laid out recursively, so a Box whose
// inner document itself contains boxes is fully resolved before its parent
// row is assembled. The result contains no Box atoms: only Text and
// SoftSpace (soft spaces from the top-level stream; a box's own soft spaces
// are converted to literal spaces once spliced into a row, since a soft
// space's meaning — "collapsible trailing whitespace of this line" — only
// applies to the line it was produced for, not to the composited row it
// ends up contributing to).
func compositeBoxes(lines []Line, width int) []Line {
	out := make([]Line, 0, len(lines))
	for _, ln := range lines {
		if !lineHasBox(ln) {
			out = append(out, ln)
			continue
		}
		out = append(out, expandBoxLine(ln, width)...)
	}
	return out
}

func lineHasBox(ln Line) bool {
	for _, a := range ln.Atoms {
		if _, ok := a.(boxAtom); ok {
			return true
		}
	}
	return false
}

type boxCell struct {
	width    int
	subLines []Line // raw, pre soft-space-conversion
	isVFill  bool    // true if subLines is a single designated vfill line
}

type litCell struct {
	width int
	atoms []Atom
}

// expandBoxLine splits a line containing one or more Box atoms into literal
// runs and box cells, lays out each box independently, and zips the results
// into as many physical rows as the tallest box requires. Literal text
// around a box appears only on the row's first line; on subsequent rows its
// column span is blank-padded so later cells on the same row stay aligned.
func expandBoxLine(ln Line, width int) []Line {
	var lits []litCell
	var boxes []boxCell
	// order records, for each cell slot in sequence, whether it's a literal
	// run (false) or a box (true), indexing into lits/boxes respectively.
	type slot struct {
		isBox bool
		idx   int
	}
	var order []slot

	var curLit []Atom
	flushLit := func() {
		if len(curLit) == 0 {
			return
		}
		order = append(order, slot{isBox: false, idx: len(lits)})
		lits = append(lits, litCell{width: sumWidths(curLit), atoms: curLit})
		curLit = nil
	}

	for _, a := range ln.Atoms {
		if b, ok := a.(boxAtom); ok {
			flushLit()
			sub := layoutDoc(b.inner, b.width)
			sub = compositeBoxes(sub, b.width)
			vfill := len(sub) == 1 && isVFillLine(sub[0])
			order = append(order, slot{isBox: true, idx: len(boxes)})
			boxes = append(boxes, boxCell{width: b.width, subLines: sub, isVFill: vfill})
			continue
		}
		curLit = append(curLit, a)
	}
	flushLit()

	height := 1
	for _, b := range boxes {
		if len(b.subLines) > height {
			height = len(b.subLines)
		}
	}

	rows := make([]Line, height)
	for r := 0; r < height; r++ {
		var atoms []Atom
		for _, s := range order {
			if !s.isBox {
				lit := lits[s.idx]
				if r == 0 {
					atoms = append(atoms, lit.atoms...)
				} else if lit.width > 0 {
					atoms = append(atoms, spaceAtom(lit.width))
				}
				continue
			}
			b := boxes[s.idx]
			switch {
			case r < len(b.subLines):
				atoms = append(atoms, padToWidth(convertSoftSpacesToLiteral(b.subLines[r].Atoms), b.width, b.subLines[r].Align)...)
			case b.isVFill:
				atoms = append(atoms, padToWidth(convertSoftSpacesToLiteral(b.subLines[0].Atoms), b.width, b.subLines[0].Align)...)
			default:
				atoms = append(atoms, spaceAtom(b.width))
			}
		}
		rows[r] = Line{Atoms: atoms, Indent: ln.Indent, Align: ln.Align}
	}
	return rows
}

// isVFillLine reports whether ln is the single designated fill line of a
// box: once any trailing soft spaces are stripped, exactly one atom remains
// and it is a Text atom created with fill mode VFill.
func isVFillLine(ln Line) bool {
	atoms := ln.Atoms
	end := len(atoms)
	for end > 0 {
		if _, ok := atoms[end-1].(softSpaceAtom); ok {
			end--
			continue
		}
		break
	}
	if end != 1 {
		return false
	}
	t, ok := atoms[0].(textAtom)
	return ok && t.fill == VFill
}

func convertSoftSpacesToLiteral(atoms []Atom) []Atom {
	out := make([]Atom, len(atoms))
	for i, a := range atoms {
		if _, ok := a.(softSpaceAtom); ok {
			out[i] = textAtom{width: 1, s: " "}
			continue
		}
		out[i] = a
	}
	return out
}

func sumWidths(atoms []Atom) int {
	n := 0
	for _, a := range atoms {
		n += atomWidth(a)
	}
	return n
}

func spaceAtom(n int) textAtom {
	return textAtom{width: n, s: strings.Repeat(" ", n)}
}

// padToWidth pads atoms (already free of soft spaces and boxes) out to
// width columns per align. A row already at or beyond width is returned
// unchanged: truncating content that overflows the wrap width would
// guarantee a fit the rest of this package deliberately does not promise.
func padToWidth(atoms []Atom, width int, align Alignment) []Atom {
	deficit := width - sumWidths(atoms)
	if deficit <= 0 {
		return atoms
	}
	switch align {
	case AlignmentRight:
		out := make([]Atom, 0, len(atoms)+1)
		out = append(out, spaceAtom(deficit))
		out = append(out, atoms...)
		return out
	case AlignmentCenter:
		left := deficit / 2
		right := deficit - left
		out := make([]Atom, 0, len(atoms)+2)
		if left > 0 {
			out = append(out, spaceAtom(left))
		}
		out = append(out, atoms...)
		if right > 0 {
			out = append(out, spaceAtom(right))
		}
		return out
	default:
		out := make([]Atom, 0, len(atoms)+1)
		out = append(out, atoms...)
		out = append(out, spaceAtom(deficit))
		return out
	}
}
