// ABOUTME: Custom tea.Msg types used by the demo app
// ABOUTME: Delivered from background goroutines through tea.Program.Send

package btea

// WordsReloadedMsg carries the words read after a word file changed.
type WordsReloadedMsg struct {
	Words []string
}

// WordsReloadErrorMsg reports a failed word file reload.
type WordsReloadErrorMsg struct {
	Err error
}
