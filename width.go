package doclayout

import "github.com/mattn/go-runewidth"

// CharWidth returns the display width of a single rune: 0 for combining
// marks and other zero-width codepoints, 2 for East Asian wide and fullwidth
// codepoints, 1 otherwise.
func CharWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// RealLength returns the display width of s, summing [CharWidth] over its
// runes. This is what every width-sensitive layout decision uses in place of
// len(s) or utf8.RuneCountInString(s).
func RealLength(s string) int {
	n := 0
	for _, r := range s {
		n += CharWidth(r)
	}
	return n
}
