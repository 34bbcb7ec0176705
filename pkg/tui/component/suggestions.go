// ABOUTME: SuggestionList is the popup that a trigger binding feeds with queries
// ABOUTME: Ranks candidates from a Source, navigates with Up/Down, accepts with Enter/Tab

package component

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/mauromedda/autocomplete-trigger/internal/log"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/fuzzy"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/key"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/trigger"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/width"
)

// DefaultMaxHeight is the number of rows shown when no limit is configured.
const DefaultMaxHeight = 8

// Source produces candidate values for a query, best first.
type Source interface {
	Suggest(query string) []string
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(query string) []string

// Suggest calls f.
func (f SourceFunc) Suggest(query string) []string { return f(query) }

// StaticSource fuzzy-ranks a fixed list of values.
type StaticSource struct {
	items []string
}

// NewStaticSource builds a source from items, dropping duplicates while
// keeping first-seen order.
func NewStaticSource(items ...string) *StaticSource {
	s := &StaticSource{}
	s.Add(items...)
	return s
}

// Add appends values that are not already present.
func (s *StaticSource) Add(items ...string) {
	for _, it := range items {
		if it != "" && !slices.Contains(s.items, it) {
			s.items = append(s.items, it)
		}
	}
}

// Set replaces all values, dropping duplicates while keeping first-seen
// order.
func (s *StaticSource) Set(items ...string) {
	s.items = nil
	s.Add(items...)
}

// Items returns the values in insertion order.
func (s *StaticSource) Items() []string {
	return slices.Clone(s.items)
}

// Suggest returns the values matching query; an empty query returns all.
func (s *StaticSource) Suggest(query string) []string {
	return fuzzy.Rank(query, s.items)
}

// SuggestionOptions configures a SuggestionList.
type SuggestionOptions struct {
	// MinLength is the shortest query, in runes, that opens the list.
	MinLength int
	// MaxHeight caps the visible rows; 0 means DefaultMaxHeight.
	MaxHeight int
}

// SuggestionList shows the candidates for the current query and hands the
// accepted one to its Delegate. It implements trigger.Suggester.
type SuggestionList struct {
	source    Source
	opts      SuggestionOptions
	delegate  trigger.Delegate
	items     []string
	query     string
	selected  int
	scrollOff int
	open      bool
}

var (
	_ trigger.Suggester = (*SuggestionList)(nil)
	_ tui.Component     = (*SuggestionList)(nil)
)

// NewSuggestionList creates a closed list over source.
func NewSuggestionList(source Source, opts SuggestionOptions) *SuggestionList {
	if opts.MaxHeight <= 0 {
		opts.MaxHeight = DefaultMaxHeight
	}
	opts.MinLength = max(opts.MinLength, 0)
	return &SuggestionList{source: source, opts: opts}
}

// Bind installs the delegate that decides whether to search and receives
// the accepted value.
func (sl *SuggestionList) Bind(d trigger.Delegate) {
	sl.delegate = d
}

// Unbind drops the delegate and closes the list.
func (sl *SuggestionList) Unbind() {
	sl.delegate = nil
	sl.Close()
}

// Search re-ranks the candidates for query. It does nothing unless the
// delegate reports that a search is wanted. The list opens when there is at
// least one candidate and closes otherwise.
func (sl *SuggestionList) Search(query string) {
	if sl.delegate == nil || !sl.delegate.ShouldSearch() {
		return
	}
	if utf8.RuneCountInString(query) < sl.opts.MinLength {
		sl.Close()
		return
	}

	items, err := sl.suggest(query)
	if err != nil {
		log.Error("suggestions: %v", err)
		sl.Close()
		return
	}

	sl.query = query
	sl.items = items
	sl.selected = 0
	sl.scrollOff = 0
	sl.open = len(items) > 0
	log.Debug("suggestions: query %q matched %d", query, len(items))
}

// suggest shields the event loop from a panicking Source.
func (sl *SuggestionList) suggest(query string) (items []string, err error) {
	if sl.source == nil {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("source panicked on query %q: %v", query, r)
		}
	}()
	return sl.source.Suggest(query), nil
}

// Close hides the list and forgets the candidates.
func (sl *SuggestionList) Close() {
	if !sl.open && sl.items == nil {
		return
	}
	sl.open = false
	sl.items = nil
	sl.selected = 0
	sl.scrollOff = 0
}

// IsOpen reports whether the list is showing candidates.
func (sl *SuggestionList) IsOpen() bool {
	return sl.open
}

// Query returns the query of the last search that ran.
func (sl *SuggestionList) Query() string {
	return sl.query
}

// Items returns the current candidates.
func (sl *SuggestionList) Items() []string {
	return slices.Clone(sl.items)
}

// SelectedIndex returns the index of the highlighted candidate.
func (sl *SuggestionList) SelectedIndex() int {
	return sl.selected
}

// Selected returns the highlighted candidate, if the list is open.
func (sl *SuggestionList) Selected() (string, bool) {
	if !sl.open || len(sl.items) == 0 {
		return "", false
	}
	return sl.items[sl.selected], true
}

// HandleKey processes list keys while the list is open and reports whether
// it consumed k. Keys it does not consume belong to the field.
func (sl *SuggestionList) HandleKey(k key.Key) bool {
	if !sl.open {
		return false
	}
	switch k.Type {
	case key.KeyUp:
		sl.move(-1)
	case key.KeyDown:
		sl.move(1)
	case key.KeyEnter, key.KeyTab:
		sl.accept()
	case key.KeyEscape:
		sl.Close()
	default:
		return false
	}
	return true
}

func (sl *SuggestionList) move(delta int) {
	next := sl.selected + delta
	if next < 0 || next >= len(sl.items) {
		return
	}
	sl.selected = next
	sl.adjustScroll()
	if sl.delegate != nil {
		// The delegate never writes the hovered value into the field.
		sl.delegate.FocusHover(sl.items[sl.selected])
	}
}

func (sl *SuggestionList) adjustScroll() {
	if sl.selected < sl.scrollOff {
		sl.scrollOff = sl.selected
	}
	if sl.selected >= sl.scrollOff+sl.opts.MaxHeight {
		sl.scrollOff = sl.selected - sl.opts.MaxHeight + 1
	}
}

func (sl *SuggestionList) accept() {
	value, ok := sl.Selected()
	sl.Close()
	if !ok || sl.delegate == nil {
		return
	}
	if err := sl.delegate.Select(value); err != nil {
		log.Warn("suggestions: select %q: %v", value, err)
	}
}

// Render writes the visible window of candidates. A closed list renders
// nothing.
func (sl *SuggestionList) Render(out *tui.RenderBuffer, w int) {
	if !sl.open || w <= 0 {
		return
	}

	end := min(sl.scrollOff+sl.opts.MaxHeight, len(sl.items))
	for i := sl.scrollOff; i < end; i++ {
		out.WriteLine(formatSuggestion(sl.items[i], w, i == sl.selected))
	}
}

func formatSuggestion(item string, w int, selected bool) string {
	line := width.PadToWidth(" "+item, w)
	if selected {
		return "\x1b[1m\x1b[7m" + line + "\x1b[0m"
	}
	return line
}
