// ABOUTME: Fixes the lipgloss background to dark before the demo program starts
// ABOUTME: Blank-imported first by cmd/trigger-demo so no OSC colour query reaches the field

package termfix

import "github.com/charmbracelet/lipgloss"

// DarkBackground reports the value installed by init. The demo styles
// assume it.
const DarkBackground = true

func init() {
	// With an explicit background lipgloss skips its OSC 10/11 probe. The
	// terminal's reply would otherwise arrive as key input and land in the
	// focused field, where a stray "%{" could arm a binding.
	//
	// Importing bubbletea here would break the init ordering.
	lipgloss.SetHasDarkBackground(DarkBackground)
}
