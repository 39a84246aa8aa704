// Package cambridge extracts entries from Cambridge Dictionary pages.
// The monolingual English edition and the English-Chinese edition
// share one markup scheme; the bilingual pages additionally carry a
// translation per definition block, parsed in the same pass.
package cambridge

import (
	"combinedicts/lib/dict"
	"combinedicts/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

type Edition int

const (
	English Edition = iota
	EnglishChinese
)

func (e Edition) Source() dict.Source {
	if e == EnglishChinese {
		return dict.CambridgeEnglishChinese
	}
	return dict.CambridgeEnglish
}

// caps carried over from production scraping: the long tail of entry
// blocks on cambridge pages is idioms and cross references
const (
	maxEntries        = 2
	maxDefBlocks      = 5
	maxExamplesPerDef = 3
)

func Extract(doc *goquery.Document, word, url string, edition Edition) (dict.SourceResult, error) {
	entries := doc.Find(".entry-body__el")
	if entries.Length() == 0 {
		return dict.SourceResult{}, dict.ErrNotFound
	}

	result := dict.SourceResult{
		Source:        edition.Source().Name(),
		Word:          word,
		Url:           url,
		Pronunciation: htmlutil.CleanText(doc.Find(".ipa").First().Text()),
	}

	entries.EachWithBreak(func(i int, entry *goquery.Selection) bool {
		if i >= maxEntries {
			return false
		}
		pos := htmlutil.CleanText(entry.Find(".pos.dpos").First().Text())

		entry.Find(".def-block, .ddef_block").EachWithBreak(func(j int, block *goquery.Selection) bool {
			if j >= maxDefBlocks {
				return false
			}
			defElem := block.Find(".def, .ddef_d").First()
			if defElem.Length() == 0 {
				return true
			}

			def := dict.Definition{
				Definition: htmlutil.CleanText(defElem.Text()),
				Examples:   extractExamples(block),
				Pos:        pos,
			}
			if edition == EnglishChinese {
				def.Translation = htmlutil.CleanText(block.Find(".trans.dtrans").First().Text())
			}
			result.Definitions = append(result.Definitions, def)
			return true
		})
		return true
	})

	if len(result.Definitions) == 0 {
		return dict.SourceResult{}, dict.ErrNotFound
	}
	return result, nil
}

// extractExamples prefers the English sentence inside an example block
// so bilingual pages don't leak the translated copy into examples.
func extractExamples(block *goquery.Selection) []string {
	examples := []string{}
	block.Find(".examp, .dexamp").EachWithBreak(func(i int, example *goquery.Selection) bool {
		if i >= maxExamplesPerDef {
			return false
		}
		english := example.Find(".eg.deg").First()
		if english.Length() > 0 {
			examples = append(examples, htmlutil.CleanText(english.Text()))
		} else {
			examples = append(examples, htmlutil.CleanText(example.Text()))
		}
		return true
	})
	return examples
}
