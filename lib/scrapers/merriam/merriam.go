// Package merriam extracts entries from Merriam-Webster pages.
//
// Entries are grouped into part-of-speech blocks (".vg"), each holding
// a numbered sense sequence whose items may fan out into lettered
// sub-senses, e.g. 1a, 1b, 2. Pages using older markup fall back to a
// flat parse.
package merriam

import (
	"regexp"
	"strings"

	"combinedicts/lib/dict"
	"combinedicts/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var (
	leadingColon  = regexp.MustCompile(`^:\s*`)
	leadingNumber = regexp.MustCompile(`^\s*\d+\s*[:.)]?\s*`)
)

func Extract(doc *goquery.Document, word, url string) (dict.SourceResult, error) {
	// a spelling-suggestion page means the word has no entry
	if doc.Find(".missing-query, p.spelling-suggestion-text, .spelling-suggestions").Length() > 0 {
		return dict.SourceResult{}, dict.ErrNotFound
	}

	result := dict.SourceResult{
		Source: dict.MerriamWebster.Name(),
		Word:   word,
		Url:    url,
	}

	posBlocks := doc.Find(".vg")
	if posBlocks.Length() == 0 {
		return legacyExtract(doc, word, url)
	}

	posBlocks.Each(func(_ int, block *goquery.Selection) {
		pos := partOfSpeech(block)

		block.Find(".vg-sseq-entry-item").Each(func(_ int, senseItem *goquery.Selection) {
			senseNum := htmlutil.CleanText(
				senseItem.Find(".vg-sseq-entry-item-label").First().Text(),
			)

			subsenses := senseItem.Find(".sense.has-sn")
			if subsenses.Length() == 0 {
				subsenses = senseItem.Find(".sense-content").First()
			}

			subsenses.Each(func(_ int, subsense *goquery.Selection) {
				def, ok := extractSense(subsense, pos, senseNum)
				if ok {
					result.Definitions = append(result.Definitions, def)
				}
			})
		})
	})

	// some older pages carry .vg containers without parseable senses
	if len(result.Definitions) == 0 {
		return legacyExtract(doc, word, url)
	}
	return result, nil
}

// partOfSpeech reads the block's label, keeping compound labels such
// as "transitive verb" whole. Link-styled labels sometimes have no
// text, in which case the href tail carries the value.
func partOfSpeech(block *goquery.Selection) string {
	posElem := block.Find(".vd, .important-blue-link").First()
	if posElem.Length() == 0 {
		return ""
	}
	pos := htmlutil.CleanText(posElem.Text())
	if pos == "" && goquery.NodeName(posElem) == "a" {
		href := posElem.AttrOr("href", "")
		if idx := strings.LastIndex(href, "/"); idx >= 0 {
			pos = href[idx+1:]
		}
	}
	return pos
}

// extractSense builds one definition from a sense node. Examples are
// taken from within the node only, so each sentence stays attached to
// its nearest enclosing sense rather than the whole entry.
func extractSense(subsense *goquery.Selection, pos, senseNum string) (dict.Definition, bool) {
	defElem := subsense.Find(".dtText").First()
	if defElem.Length() == 0 {
		return dict.Definition{}, false
	}
	text := htmlutil.CleanText(defElem.Text())
	text = leadingColon.ReplaceAllString(text, "")
	if text == "" {
		return dict.Definition{}, false
	}

	examples := []string{}
	subsense.Find(".ex-sent").Each(func(_ int, ex *goquery.Selection) {
		examples = append(examples, htmlutil.CleanText(ex.Text()))
	})

	return dict.Definition{
		Definition:  text,
		Examples:    examples,
		Pos:         pos,
		SenseNumber: senseNum,
		SenseLetter: htmlutil.CleanText(subsense.Find(".letter").First().Text()),
	}, true
}

var exampleLabel = regexp.MustCompile(`(?i)^example\s*[:.]\s*`)

// legacyExtract handles the older flat markup some entries still use.
func legacyExtract(doc *goquery.Document, word, url string) (dict.SourceResult, error) {
	result := dict.SourceResult{
		Source: dict.MerriamWebster.Name(),
		Word:   word,
		Url:    url,
	}

	pos := htmlutil.CleanText(doc.Find("span.fl").First().Text())

	sections := doc.Find("div.sense")
	if sections.Length() == 0 {
		sections = doc.Find("span.dt")
	}

	sections.EachWithBreak(func(i int, section *goquery.Selection) bool {
		if i >= 7 {
			return false
		}

		var definition string
		defElem := section.Find(".dtText, .dt").First()
		sectionText := htmlutil.CleanText(section.Text())
		if defElem.Length() == 0 && strings.Contains(sectionText, ":") {
			definition = htmlutil.CleanText(strings.SplitN(sectionText, ":", 2)[1])
		} else if defElem.Length() > 0 {
			definition = htmlutil.CleanText(defElem.Text())
		} else {
			definition = sectionText
		}
		definition = leadingNumber.ReplaceAllString(definition, "")

		examples := []string{}
		section.Find(".ex-sent, .t, .vis-example").EachWithBreak(func(j int, ex *goquery.Selection) bool {
			if j >= 3 {
				return false
			}
			text := htmlutil.CleanText(ex.Text())
			examples = append(examples, exampleLabel.ReplaceAllString(text, ""))
			return true
		})

		// em-dash sections are run-ons and cross references, not senses
		if definition != "" && !strings.HasPrefix(definition, "—") {
			result.Definitions = append(result.Definitions, dict.Definition{
				Definition: definition,
				Examples:   examples,
				Pos:        pos,
			})
		}
		return true
	})

	if len(result.Definitions) == 0 {
		return dict.SourceResult{}, dict.ErrNotFound
	}
	return result, nil
}
