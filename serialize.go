package doclayout

import "strings"

// serialize turns composited, box-free lines into final text. Trailing soft
// spaces are elided entirely rather than printed (a soft space only ever
// marked a potential wrap point; once a line is fixed, an unused one at the
// end is not meaningful content). A soft space anywhere else on the line —
// one that did not become the line's break point — prints as a single
// literal space, since it still separated two words the writer asked to
// keep on the same line.
//
// Left-aligned lines (the default) are written ragged, with no padding:
// padding a left-aligned line to width would only add invisible trailing
// whitespace. Right- and center-aligned lines are padded to width, since
// the padding is exactly what makes the alignment visible.
func serialize(lines []Line, width int) string {
	var sb strings.Builder
	for i, ln := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(serializeLine(ln, width))
	}
	return sb.String()
}

func trimTrailingSoftSpaces(atoms []Atom) []Atom {
	end := len(atoms)
	for end > 0 {
		if _, ok := atoms[end-1].(softSpaceAtom); ok {
			end--
			continue
		}
		break
	}
	return atoms[:end]
}

func serializeLine(ln Line, width int) string {
	content := convertSoftSpacesToLiteral(trimTrailingSoftSpaces(ln.Atoms))
	// A line with no content left after trimming is a genuinely blank line
	// (produced by Blanks, or a hard break with nothing after it): it stays
	// fully empty rather than carrying the hang indent of whatever Nest was
	// active when it was produced.
	if len(content) > 0 && ln.Indent > 0 {
		withIndent := make([]Atom, 0, len(content)+1)
		withIndent = append(withIndent, spaceAtom(ln.Indent))
		withIndent = append(withIndent, content...)
		content = withIndent
	}
	if ln.Align != AlignmentLeft {
		content = padToWidth(content, width, ln.Align)
	}
	var sb strings.Builder
	for _, a := range content {
		if t, ok := a.(textAtom); ok {
			sb.WriteString(t.s)
		}
	}
	return sb.String()
}
