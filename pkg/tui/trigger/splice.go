// ABOUTME: Splice computation: replaces the active trigger span with start+value+end
// ABOUTME: Text after the caret is preserved; the new caret sits right after the end delimiter

package trigger

import "unicode/utf8"

// Result is the field state after a splice.
type Result struct {
	Text  string
	Caret int // rune offset, collapsed selection
}

// Splice replaces the span between the last cfg.Start before caret and the
// caret with chosen wrapped in cfg.End:
//
//	text[:trigger+len(Start)] + chosen + End + text[caret:]
//
// If no trigger precedes the caret it returns the input unchanged together
// with a *SpliceError.
func Splice(text string, caret int, cfg Config, chosen string) (Result, error) {
	if caret < 0 {
		caret = 0
	}
	before := runePrefix(text, caret)
	after := text[len(before):]
	caret = utf8.RuneCountInString(before)

	var query string
	ok := cfg.Start != ""
	if ok {
		_, query, ok = queryBefore(before, cfg.Start)
	}
	if !ok {
		return Result{Text: text, Caret: caret}, &SpliceError{Text: text, Caret: caret, Start: cfg.Start}
	}

	head := before[:len(before)-len(query)]
	prefix := head + chosen + cfg.End

	return Result{
		Text:  prefix + after,
		Caret: utf8.RuneCountInString(prefix),
	}, nil
}
