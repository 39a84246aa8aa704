package dict

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEnsuresDefinitions(t *testing.T) {
	res := Normalize(SourceResult{
		Source: Longman.Name(),
		Word:   "apple",
	})
	require.NotNil(t, res.Definitions)

	res = Normalize(SourceResult{
		Source: Longman.Name(),
		Word:   "apple",
		Definitions: []Definition{
			{Definition: "a round fruit"},
		},
	})
	require.NotNil(t, res.Definitions[0].Examples)
}

func TestErrorResultOmitsDefinitionsKey(t *testing.T) {
	res := Normalize(ErrorResult(Longman, "zzznotaword", ErrNotFound))
	require.Equal(t, "Longman Dictionary", res.Source)
	require.Equal(t, "zzznotaword", res.Word)
	require.NotEmpty(t, res.Error)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	require.False(t, strings.Contains(string(raw), `"definitions"`))
	require.True(t, strings.Contains(string(raw), `"error"`))
}

func TestNormalizeDropsEmptyOptionalCollections(t *testing.T) {
	res := Normalize(SourceResult{
		Source: Longman.Name(),
		Word:   "apple",
		Definitions: []Definition{{
			Definition:          "a round fruit",
			GrammaticalPatterns: []GrammarPattern{},
			Collocations:        []Collocation{},
		}},
		Frequency:      []string{},
		CorpusExamples: []CorpusExampleGroup{},
		VerbForms:      map[string]string{},
	})

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	for _, key := range []string{"grammatical_patterns", "collocations", "frequency", "corpus_examples", "verb_forms"} {
		require.NotContains(t, string(raw), key)
	}
}
