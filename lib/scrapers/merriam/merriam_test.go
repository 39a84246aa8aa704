package merriam

import (
	"bytes"
	"testing"

	"combinedicts/lib/dict"

	_ "embed"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/apple.html
var appleFixture []byte

//go:embed testdata/missing.html
var missingFixture []byte

//go:embed testdata/legacy.html
var legacyFixture []byte

func parse(t *testing.T, fixture []byte) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(fixture))
	require.NoError(t, err)
	return doc
}

func TestExtract(t *testing.T) {
	url := dict.MerriamWebster.EntryUrl("apple")
	result, err := Extract(parse(t, appleFixture), "apple", url)
	require.NoError(t, err)

	require.Equal(t, "Merriam-Webster", result.Source)
	require.Equal(t, "apple", result.Word)
	require.Equal(t, url, result.Url)
	require.Len(t, result.Definitions, 4)

	first := result.Definitions[0]
	require.Equal(t, "noun", first.Pos)
	require.Equal(t, "1", first.SenseNumber)
	require.Equal(t, "a", first.SenseLetter)
	require.Contains(t, first.Definition, "edible pome fruit")
	require.Equal(t, []string{"She ate an apple with her lunch."}, first.Examples)

	second := result.Definitions[1]
	require.Equal(t, "1", second.SenseNumber)
	require.Equal(t, "b", second.SenseLetter)
	require.Equal(t, "an apple tree", second.Definition)
	require.Empty(t, second.Examples)

	third := result.Definitions[2]
	require.Equal(t, "noun", third.Pos)
	require.Equal(t, "2", third.SenseNumber)
	require.Empty(t, third.SenseLetter)
	require.Equal(t, []string{"a custard apple"}, third.Examples)

	verb := result.Definitions[3]
	require.Equal(t, "transitive verb", verb.Pos)
	require.Equal(t, "1", verb.SenseNumber)
}

// sense identifiers must come out in document order: numeric part
// non-decreasing, letter part resetting when the number advances.
func TestSenseOrdering(t *testing.T) {
	result, err := Extract(parse(t, appleFixture), "apple", "")
	require.NoError(t, err)

	type senseId struct{ num, letter string }
	seen := map[string]map[senseId]bool{}
	lastNum := map[string]string{}
	for _, def := range result.Definitions {
		id := senseId{def.SenseNumber, def.SenseLetter}
		if seen[def.Pos] == nil {
			seen[def.Pos] = map[senseId]bool{}
		}
		require.False(t, seen[def.Pos][id], "duplicate sense %v in %q block", id, def.Pos)
		seen[def.Pos][id] = true

		require.GreaterOrEqual(t, def.SenseNumber, lastNum[def.Pos])
		lastNum[def.Pos] = def.SenseNumber
	}
}

func TestExtractNotFound(t *testing.T) {
	_, err := Extract(parse(t, missingFixture), "zzznotaword", "")
	require.ErrorIs(t, err, dict.ErrNotFound)
}

func TestLegacyMarkup(t *testing.T) {
	result, err := Extract(parse(t, legacyFixture), "cider", "")
	require.NoError(t, err)

	require.Len(t, result.Definitions, 2)
	require.Equal(t, "noun", result.Definitions[0].Pos)
	require.Contains(t, result.Definitions[0].Definition, "fermented apple juice")
	require.Equal(t, []string{"a glass of cider"}, result.Definitions[0].Examples)

	// leading numbering is stripped, cross-reference run-ons are dropped
	require.Equal(t, "unfermented apple juice", result.Definitions[1].Definition)
}
