package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntryUrl(t *testing.T) {
	require.Equal(
		t,
		"https://www.merriam-webster.com/dictionary/apple",
		MerriamWebster.EntryUrl("apple"),
	)
	require.Equal(
		t,
		"https://www.ldoceonline.com/dictionary/ice%20cream",
		Longman.EntryUrl("ice cream"),
	)
}

func TestMatchSources(t *testing.T) {
	cases := []struct {
		queries []string
		expect  []Source
	}{
		{nil, Sources()},
		{[]string{"merriam"}, []Source{MerriamWebster}},
		{[]string{"longman"}, []Source{Longman}},
		{[]string{"chinese"}, []Source{CambridgeEnglishChinese}},
		// substring "cambridge" hits both editions
		{[]string{"cambridge"}, []Source{CambridgeEnglish, CambridgeEnglishChinese}},
		// misspelling picked up by similarity matching
		{[]string{"longmann dictionary"}, []Source{Longman}},
		{[]string{"merriam", "longman"}, []Source{MerriamWebster, Longman}},
		{[]string{"oxford"}, nil},
	}
	for _, test := range cases {
		require.Equal(t, test.expect, MatchSources(test.queries), "queries: %v", test.queries)
	}
}

func TestMatchSourcesNoDuplicates(t *testing.T) {
	got := MatchSources([]string{"cambridge", "chinese", "dictionary"})
	seen := map[Source]bool{}
	for _, s := range got {
		require.False(t, seen[s], "duplicate source %s", s)
		seen[s] = true
	}
}
