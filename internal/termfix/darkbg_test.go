// ABOUTME: Verifies the package init fixed the lipgloss background
// ABOUTME: Runs without a terminal so no probe can answer

package termfix

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestInitSetsDarkBackground(t *testing.T) {
	if got := lipgloss.HasDarkBackground(); got != DarkBackground {
		t.Errorf("HasDarkBackground() = %v, want %v", got, DarkBackground)
	}
}
