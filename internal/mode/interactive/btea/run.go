// ABOUTME: Entry point for the Bubble Tea demo app
// ABOUTME: Creates the tea.Program, starts the word file watcher, and blocks until exit

package btea

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/autocomplete-trigger/internal/config"
)

// ProgramSender is the interface for sending messages to Bubble Tea.
// Matches *tea.Program's Send method.
type ProgramSender interface {
	Send(msg tea.Msg)
}

// Run starts the app and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, deps AppDeps) error {
	m, err := NewAppModel(deps)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)

	if len(deps.WordFiles) > 0 {
		w := config.NewWatcher(deps.WordFiles, deps.WatchInterval, func() {
			reloadWords(ctx, p, deps.WordFiles)
		})
		go w.Run(ctx)
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}

// reloadWords re-reads the word files and reports the result to the program.
func reloadWords(ctx context.Context, p ProgramSender, files []string) {
	words, err := config.LoadWordFiles(ctx, files)
	if err != nil {
		p.Send(WordsReloadErrorMsg{Err: err})
		return
	}
	p.Send(WordsReloadedMsg{Words: words})
}
