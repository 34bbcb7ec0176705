// ABOUTME: Dependency injection struct for the Bubble Tea demo app
// ABOUTME: Carries the trigger delimiters, the suggestion source and list options

package btea

import (
	"time"

	"github.com/mauromedda/autocomplete-trigger/pkg/tui/component"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/trigger"
)

// AppDeps bundles everything the app needs from the command line and config.
type AppDeps struct {
	Trigger trigger.Config
	Source  *component.StaticSource
	Options component.SuggestionOptions
	Version string

	// Suggestions are the configured values. A word reload rebuilds Source
	// from them plus the reloaded words.
	Suggestions []string

	// WordFiles are polled while the app runs; see WordsReloadedMsg.
	WordFiles     []string
	WatchInterval time.Duration
}
