package scrapers

import (
	"testing"

	"combinedicts/lib/dict"
	"combinedicts/lib/fetch"

	"github.com/stretchr/testify/require"
)

func TestExtractDispatch(t *testing.T) {
	page := &fetch.Page{
		Url: dict.CambridgeEnglish.EntryUrl("pear"),
		Body: []byte(`<html><body>
			<div class="entry-body__el">
				<span class="pos dpos">noun</span>
				<div class="def-block ddef_block">
					<div class="def ddef_d">a sweet fruit that is narrow at the top</div>
				</div>
			</div>
		</body></html>`),
	}

	result, err := Extract(dict.CambridgeEnglish, page, "pear")
	require.NoError(t, err)
	require.Equal(t, "Cambridge Dictionary", result.Source)
	require.Len(t, result.Definitions, 1)
	require.Equal(t, "noun", result.Definitions[0].Pos)
}

func TestExtractNotFoundPassthrough(t *testing.T) {
	page := &fetch.Page{Body: []byte(`<html><body><p>nothing here</p></body></html>`)}
	for _, source := range dict.Sources() {
		_, err := Extract(source, page, "zzznotaword")
		require.ErrorIs(t, err, dict.ErrNotFound, "source %s", source)
	}
}

func TestExtractRecoversPanic(t *testing.T) {
	// a body that parses but carries none of the expected structure
	// must never escape as a panic, whatever the extractor does
	page := &fetch.Page{Body: []byte("\x00\x01<div><<<")}
	for _, source := range dict.Sources() {
		_, err := Extract(source, page, "apple")
		require.Error(t, err, "source %s", source)
	}
}

func TestExtractUnknownSource(t *testing.T) {
	page := &fetch.Page{Body: []byte("<html></html>")}
	_, err := Extract(dict.Source(42), page, "apple")
	require.Error(t, err)
	require.NotErrorIs(t, err, dict.ErrNotFound)
}
