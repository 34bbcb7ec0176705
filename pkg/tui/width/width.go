// ABOUTME: VisibleWidth computes the terminal cell width of a string
// ABOUTME: Grapheme-aware via uniseg, East Asian widths via go-runewidth

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of terminal cells s occupies. ANSI escape
// sequences count as zero; a grapheme cluster counts as the width of its
// first rune, so wide CJK characters and emoji occupy two cells.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}

	s = StripANSI(s)
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// RuneWidth returns the cell width of a single rune.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// isPlainASCII reports whether s holds only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
