package doclayout

import "github.com/sjakobi/doclayout/internal/assert"

// Line is one output line produced by the layout interpreter, before the box
// compositor expands any Box atoms it contains. Indent is the nesting level
// in effect when the line began. Align is the alignment in effect when the
// line's first atom of content was appended: captured there rather than at
// the line's start or completion, since a PushAlignment/PopAlignment pair
// can open and close entirely within what ends up being one physical line
// (the common case: Aligned wrapping a single short Doc).
type Line struct {
	Atoms  []Atom
	Indent int
	Align  Alignment
}

// render walks a normalized atom stream once, deciding where soft spaces
// turn into line breaks. It tracks a stack of nesting levels (for hang
// indent of wrapped continuation lines), a stack of alignments, and the
// current column.
type render struct {
	width int

	nesting   []int
	alignment []Alignment

	col        int
	cur        []Atom
	lineIndent int
	lineAlign  Alignment

	lines []Line
}

func layoutDoc(d Doc, width int) []Line {
	d = normalize(d)
	// Blanks(n) requires n blank lines to follow, unless it is the terminal
	// atom in the stream, in which case the requirement is dropped entirely
	// (the preceding content still needs flushing, which a bare Newline
	// does without adding any blank lines of its own).
	if n := len(d); n > 0 {
		if _, ok := d[n-1].(blanksAtom); ok {
			trimmed := make(Doc, n)
			copy(trimmed, d)
			trimmed[n-1] = newlineAtom{}
			d = trimmed
		}
	}
	s := &render{
		width:     width,
		nesting:   []int{0},
		alignment: []Alignment{AlignmentLeft},
	}
	s.newLine()
	s.processAtoms(d)
	s.finalize()
	return s.lines
}

func (s *render) topNesting() int {
	return s.nesting[len(s.nesting)-1]
}

func (s *render) topAlignment() Alignment {
	return s.alignment[len(s.alignment)-1]
}

func (s *render) newLine() {
	s.cur = nil
	s.lineIndent = s.topNesting()
	s.lineAlign = s.topAlignment()
	s.col = s.lineIndent
}

// noteContent captures this line's alignment the first time content lands
// on it; later atoms on the same line do not change it.
func (s *render) noteContent() {
	if len(s.cur) == 0 {
		s.lineAlign = s.topAlignment()
	}
}

func (s *render) completeLine(atoms []Atom) {
	cp := make([]Atom, len(atoms))
	copy(cp, atoms)
	s.lines = append(s.lines, Line{Atoms: cp, Indent: s.lineIndent, Align: s.lineAlign})
}

// hardBreak flushes whatever content is pending and starts a fresh line. A
// flush with nothing pending produces no line at all, matching the general
// line-flush rule that an empty emitted line is dropped rather than shown.
func (s *render) hardBreak() {
	if len(s.cur) > 0 {
		s.completeLine(s.cur)
	}
	s.newLine()
}

func atomWidth(a Atom) int {
	switch t := a.(type) {
	case textAtom:
		return t.width
	case boxAtom:
		return t.width
	case softSpaceAtom:
		return 1
	default:
		return 0
	}
}

// trySplitOnce looks for the rightmost soft space in the current line such
// that everything before it still fits within width, and splits there. It
// reports whether a split point was found. A text or box atom wider than the
// remaining line length is never broken internally: guaranteeing a fit for
// content intrinsically wider than the wrap width is explicitly out of
// scope.
func (s *render) trySplitOnce() bool {
	cum := s.lineIndent
	splitAt := -1
	for idx, a := range s.cur {
		if _, ok := a.(softSpaceAtom); ok && cum <= s.width {
			splitAt = idx
		}
		cum += atomWidth(a)
	}
	if splitAt == -1 {
		return false
	}

	first := s.cur[:splitAt]
	rest := s.cur[splitAt+1:]
	s.completeLine(first)
	s.newLine()
	for _, a := range rest {
		s.cur = append(s.cur, a)
		s.col += atomWidth(a)
	}
	return true
}

// maybeWrap splits the current line as many times as necessary to bring it
// back within width, stopping as soon as no more soft-space split points
// remain (the overflow is then accepted, per the no-guaranteed-fit
// non-goal).
func (s *render) maybeWrap() {
	for s.col > s.width {
		if !s.trySplitOnce() {
			return
		}
	}
}

func (s *render) finalize() {
	for len(s.cur) > 0 {
		if s.col <= s.width {
			s.completeLine(s.cur)
			s.cur = nil
			return
		}
		if !s.trySplitOnce() {
			s.completeLine(s.cur)
			s.cur = nil
			return
		}
	}
}

func (s *render) processAtoms(atoms []Atom) {
	for _, a := range atoms {
		s.processAtom(a)
	}
}

func (s *render) processAtom(a Atom) {
	switch t := a.(type) {
	case textAtom:
		s.noteContent()
		s.cur = append(s.cur, t)
		s.col += t.width
		s.maybeWrap()
	case softSpaceAtom:
		s.noteContent()
		s.cur = append(s.cur, t)
		s.col++
		s.maybeWrap()
	case boxAtom:
		s.noteContent()
		s.cur = append(s.cur, t)
		s.col += t.width
		s.maybeWrap()
	case newlineAtom:
		s.hardBreak()
	case blanksAtom:
		// Flush whatever content is pending once — that flush does not
		// count toward n — then emit n genuinely blank lines.
		s.hardBreak()
		for i := 0; i < t.n; i++ {
			s.completeLine(nil)
		}
	case pushNestingAtom:
		next := t.fn(s.col, s.topNesting())
		s.nesting = append(s.nesting, next)
	case popNestingAtom:
		if len(s.nesting) > 1 {
			s.nesting = s.nesting[:len(s.nesting)-1]
		}
		assert.That(len(s.nesting) >= 1, "nesting stack must never be empty")
	case pushAlignmentAtom:
		s.alignment = append(s.alignment, t.align)
	case popAlignmentAtom:
		if len(s.alignment) > 1 {
			s.alignment = s.alignment[:len(s.alignment)-1]
		}
		assert.That(len(s.alignment) >= 1, "alignment stack must never be empty")
	case withColumnAtom:
		s.processAtoms(t.fn(s.col))
	case withLineLengthAtom:
		remaining := s.width - s.col
		if remaining < 0 {
			remaining = 0
		}
		s.processAtoms(t.fn(remaining))
	}
}
