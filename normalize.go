package doclayout

// normalize coalesces adjacent atoms before the interpreter walks the stream:
// adjacent Text atoms sharing the same fill mode collapse into one, and
// adjacent Blanks atoms merge into one requiring the larger of their two
// counts. Merging Text atoms does not change what the document renders to.
// Merging Blanks does: the interpreter emits n blank lines for every Blanks
// atom it sees, so this merge is what keeps adjacent Blanks from adding up.
//
// Blanks(n) means "require at least n blank lines here", so two adjacent
// Blanks requirements merge to the larger of the two, not their sum:
// Blanks(2) immediately followed by Blanks(3) still only needs 3 trailing
// blank lines to satisfy both.
func normalize(d Doc) Doc {
	if len(d) == 0 {
		return d
	}
	out := make(Doc, 0, len(d))
	for _, a := range d {
		if len(out) == 0 {
			out = append(out, a)
			continue
		}
		last := out[len(out)-1]
		switch cur := a.(type) {
		case textAtom:
			if prev, ok := last.(textAtom); ok && prev.fill == cur.fill {
				out[len(out)-1] = textAtom{
					fill:  prev.fill,
					width: prev.width + cur.width,
					s:     prev.s + cur.s,
				}
				continue
			}
		case blanksAtom:
			if prev, ok := last.(blanksAtom); ok {
				n := prev.n
				if cur.n > n {
					n = cur.n
				}
				out[len(out)-1] = blanksAtom{n: n}
				continue
			}
		}
		out = append(out, a)
	}
	return out
}
