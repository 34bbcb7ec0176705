// ABOUTME: Tests for the pure splice computation and query derivation
// ABOUTME: Covers prefix/suffix preservation, empty values, repeated triggers, and missing triggers

package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		caret     int
		cfg       Config
		chosen    string
		wantText  string
		wantCaret int
	}{
		{
			name: "round trip", text: "abc%{", caret: 5, cfg: DefaultConfig(),
			chosen: "Java", wantText: "abc%{Java}", wantCaret: 10,
		},
		{
			name: "replaces query", text: "x %{ja", caret: 6, cfg: DefaultConfig(),
			chosen: "Java", wantText: "x %{Java}", wantCaret: 9,
		},
		{
			name: "keeps suffix", text: "a %{ja b", caret: 6, cfg: DefaultConfig(),
			chosen: "Java", wantText: "a %{Java} b", wantCaret: 9,
		},
		{
			name: "empty value", text: "pre %{ post", caret: 6, cfg: DefaultConfig(),
			chosen: "", wantText: "pre %{} post", wantCaret: 7,
		},
		{
			name: "empty end", text: "hi @bo", caret: 6, cfg: Config{Start: "@"},
			chosen: "bob", wantText: "hi @bob", wantCaret: 7,
		},
		{
			name: "uses nearest trigger", text: "%{Ruby} %{Ja", caret: 12, cfg: DefaultConfig(),
			chosen: "Java", wantText: "%{Ruby} %{Java}", wantCaret: 15,
		},
		{
			name: "ignores triggers after caret", text: "%{ja %{x", caret: 4, cfg: DefaultConfig(),
			chosen: "Java", wantText: "%{Java} %{x", wantCaret: 7,
		},
		{
			name: "multi-line", text: "one\n%{tw\nthree", caret: 8, cfg: DefaultConfig(),
			chosen: "two", wantText: "one\n%{two}\nthree", wantCaret: 10,
		},
		{
			name: "runes not bytes", text: "ñ %{é", caret: 5, cfg: Config{Start: "%{", End: "}"},
			chosen: "éclair", wantText: "ñ %{éclair}", wantCaret: 11,
		},
		{
			name: "caret past end clamps", text: "%{a", caret: 99, cfg: DefaultConfig(),
			chosen: "abc", wantText: "%{abc}", wantCaret: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := Splice(tt.text, tt.caret, tt.cfg, tt.chosen)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, res.Text)
			assert.Equal(t, tt.wantCaret, res.Caret)
		})
	}
}

func TestSplice_MissingTrigger(t *testing.T) {
	t.Parallel()

	res, err := Splice("abc %{", 3, DefaultConfig(), "Java")

	require.ErrorIs(t, err, ErrSpliceInvariant)
	var se *SpliceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "abc %{", se.Text)
	assert.Equal(t, 3, se.Caret)
	assert.Equal(t, "%{", se.Start)
	assert.Contains(t, se.Error(), "no trigger before caret")
	assert.Equal(t, "abc %{", res.Text)
	assert.Equal(t, 3, res.Caret)

	_, err = Splice("abc", 3, Config{}, "x")
	require.ErrorIs(t, err, ErrSpliceInvariant)
}

func TestQueryAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		caret  int
		start  string
		want   string
		wantOK bool
	}{
		{text: "x %{ja", caret: 6, start: "%{", want: "ja", wantOK: true},
		{text: "%{", caret: 2, start: "%{", want: "", wantOK: true},
		{text: "%{a} %{bc", caret: 9, start: "%{", want: "bc", wantOK: true},
		{text: "%{abc", caret: 3, start: "%{", want: "a", wantOK: true},
		{text: "abc", caret: 3, start: "%{", want: "", wantOK: false},
		{text: "%{abc", caret: 1, start: "%{", want: "", wantOK: false},
		{text: "abc", caret: 3, start: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := QueryAt(tt.text, tt.caret, tt.start)
		assert.Equal(t, tt.wantOK, ok, "QueryAt(%q, %d)", tt.text, tt.caret)
		assert.Equal(t, tt.want, got, "QueryAt(%q, %d)", tt.text, tt.caret)
	}
}

func TestArmState_QueryInvariant(t *testing.T) {
	t.Parallel()

	// For every caret position past an armed trigger, the query equals the
	// runes typed after the nearest trigger occurrence.
	for _, start := range []string{"%{", "@", "{{", "«"} {
		a := newArmState(start)
		text := "pre " + start + "x " + start
		query, emit := a.observe(text, len([]rune(text)))
		require.True(t, emit, start)
		require.Equal(t, "", query, start)

		typed := ""
		for _, r := range "Zeta 9" {
			typed += string(r)
			full := text + typed + " tail"
			query, emit = a.observe(full, len([]rune(text+typed)))
			require.True(t, emit, start)
			assert.Equal(t, typed, query, start)
			assert.Equal(t, len([]rune("pre "+start+"x ")), a.anchor, start)
		}
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "disarmed", Disarmed.String())
	assert.Equal(t, "armed", Armed.String())
	assert.Equal(t, "unknown", State(7).String())
}
