// ABOUTME: ANSI escape sequence stripping for width measurement
// ABOUTME: Recognises CSI, OSC, APC/DCS/PM and two-byte ESC sequences

package width

import "strings"

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			i = skipANSISequence(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// skipANSISequence returns the index just past the escape sequence that
// starts at s[i]. Unterminated sequences run to the end of s.
func skipANSISequence(s string, i int) int {
	if i >= len(s) || s[i] != '\x1b' {
		return i
	}
	i++
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		// CSI: parameters then a final byte in 0x40-0x7E.
		for i++; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
		}
		return i
	case ']':
		// OSC: terminated by BEL or ST.
		for i++; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if isST(s, i) {
				return i + 2
			}
		}
		return i
	case '_', 'P', '^':
		// APC (used by the cursor marker), DCS and PM: BEL or ST.
		for i++; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if isST(s, i) {
				return i + 2
			}
		}
		return i
	default:
		return i + 1
	}
}

func isST(s string, i int) bool {
	return s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\'
}
