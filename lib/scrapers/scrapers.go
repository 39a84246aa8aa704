// Package scrapers routes a fetched page to the extractor that
// understands its markup. Extractors are pure document walkers; this
// layer owns parsing the raw body and containing extractor panics so a
// malformed page from one site can only ever fail its own source.
package scrapers

import (
	"bytes"
	"fmt"

	"combinedicts/lib/dict"
	"combinedicts/lib/fetch"
	"combinedicts/lib/scrapers/cambridge"
	"combinedicts/lib/scrapers/longman"
	"combinedicts/lib/scrapers/merriam"

	"github.com/PuerkitoBio/goquery"
)

// Extract parses the page body and runs the extractor registered for
// the source. A panic inside an extractor surfaces as a ParseError.
func Extract(source dict.Source, page *fetch.Page, word string) (result dict.SourceResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &dict.ParseError{Cause: fmt.Sprint(r)}
		}
	}()

	doc, parseErr := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
	if parseErr != nil {
		return dict.SourceResult{}, &dict.ParseError{Cause: parseErr.Error()}
	}

	switch source {
	case dict.MerriamWebster:
		return merriam.Extract(doc, word, page.Url)
	case dict.CambridgeEnglish:
		return cambridge.Extract(doc, word, page.Url, cambridge.English)
	case dict.CambridgeEnglishChinese:
		return cambridge.Extract(doc, word, page.Url, cambridge.EnglishChinese)
	case dict.Longman:
		return longman.Extract(doc, word, page.Url)
	}
	return dict.SourceResult{}, fmt.Errorf("no extractor for source %q", source.Name())
}
