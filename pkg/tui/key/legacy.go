// ABOUTME: Legacy escape sequence mappings for CSI and SS3 terminal key codes.
// ABOUTME: Covers arrows (plain and Shift), home, end, delete, and backtab.

package key

var legacySequences = map[string]Key{
	"\x1b[A":  {Type: KeyUp},
	"\x1b[B":  {Type: KeyDown},
	"\x1b[C":  {Type: KeyRight},
	"\x1b[D":  {Type: KeyLeft},
	"\x1b[H":  {Type: KeyHome},
	"\x1b[F":  {Type: KeyEnd},
	"\x1b[1~": {Type: KeyHome},
	"\x1b[4~": {Type: KeyEnd},
	"\x1b[3~": {Type: KeyDelete},
	"\x1b[Z":  {Type: KeyBackTab, Shift: true},

	// xterm modifier form: CSI 1;2 <final> is Shift+<arrow>
	"\x1b[1;2C": {Type: KeyRight, Shift: true},
	"\x1b[1;2D": {Type: KeyLeft, Shift: true},
	"\x1b[1;2H": {Type: KeyHome, Shift: true},
	"\x1b[1;2F": {Type: KeyEnd, Shift: true},

	// SS3 variants (application cursor mode)
	"\x1bOA": {Type: KeyUp},
	"\x1bOB": {Type: KeyDown},
	"\x1bOC": {Type: KeyRight},
	"\x1bOD": {Type: KeyLeft},
	"\x1bOH": {Type: KeyHome},
	"\x1bOF": {Type: KeyEnd},
}
