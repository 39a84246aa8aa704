// Package longman extracts entries from Longman Dictionary of
// Contemporary English pages. Longman is the richest of the sources:
// besides plain senses it carries word families, register frequency
// bands, grammatical patterns, collocations, corpus sentences and verb
// conjugation tables, all of which land on dedicated record fields.
package longman

import (
	"regexp"
	"strconv"
	"strings"

	"combinedicts/lib/dict"
	"combinedicts/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var glossParens = regexp.MustCompile(`^\s*\(\s*=\s*|\s*\)\s*$`)

func Extract(doc *goquery.Document, word, url string) (dict.SourceResult, error) {
	entries := doc.Find(".dictentry")
	if entries.Length() == 0 {
		return dict.SourceResult{}, dict.ErrNotFound
	}

	result := dict.SourceResult{
		Source:         dict.Longman.Name(),
		Word:           word,
		Url:            url,
		WordFamily:     extractWordFamily(doc),
		CorpusExamples: extractCorpusExamples(doc),
		VerbForms:      extractVerbForms(doc),
	}

	entries.Each(func(_ int, entry *goquery.Selection) {
		if result.Pronunciation == "" {
			result.Pronunciation = htmlutil.CleanText(entry.Find(".PRON").First().Text())
		}
		if result.Frequency == nil {
			entry.Find(".FREQ").Each(func(_ int, freq *goquery.Selection) {
				title, _ := freq.Attr("title")
				result.Frequency = append(result.Frequency, htmlutil.CleanText(title))
			})
		}

		entryPos := htmlutil.CleanText(entry.Find(".POS").First().Text())
		if result.Pos == "" {
			result.Pos = entryPos
		}

		entry.Find(".Sense").Each(func(i int, sense *goquery.Selection) {
			defElem := sense.Find(".DEF").First()
			if defElem.Length() == 0 {
				return
			}

			def := dict.Definition{
				Definition:          htmlutil.CleanText(defElem.Text()),
				Examples:            extractExamples(sense),
				Pos:                 entryPos,
				SenseNumber:         strconv.Itoa(i + 1),
				Grammar:             extractGrammar(sense),
				GrammaticalPatterns: extractPatterns(sense),
				Collocations:        extractCollocations(sense),
			}

			if related := sense.Find(".RELATEDWD").First(); related.Length() > 0 {
				def.RelatedWord = htmlutil.CleanText(strings.ReplaceAll(related.Text(), "→", ""))
			}
			if thesref := sense.Find(".Thesref .REFHWD").First(); thesref.Length() > 0 {
				def.ThesaurusRef = htmlutil.CleanText(thesref.Text())
			}

			result.Definitions = append(result.Definitions, def)
		})
	})

	if len(result.Definitions) == 0 {
		return dict.SourceResult{}, dict.ErrNotFound
	}
	return result, nil
}

// extractWordFamily walks the word family box in document order,
// grouping derived words under the part of speech label that precedes
// them. Words before the first label have no home and are skipped.
func extractWordFamily(doc *goquery.Document) map[string][]string {
	family := map[string][]string{}
	currentPos := ""
	doc.Find(".wordfams").Children().Each(func(_ int, child *goquery.Selection) {
		node := child.Get(0)
		switch {
		case node.Data == "span" && child.HasClass("pos"):
			currentPos = htmlutil.CleanText(child.Text())
			if _, ok := family[currentPos]; !ok {
				family[currentPos] = []string{}
			}
		case (node.Data == "span" && child.HasClass("w")) ||
			(node.Data == "a" && child.HasClass("crossRef")):
			if currentPos != "" && strings.TrimSpace(child.Text()) != "" {
				family[currentPos] = append(family[currentPos], htmlutil.CleanText(child.Text()))
			}
		}
	})
	if len(family) == 0 {
		return nil
	}
	return family
}

func extractGrammar(sense *goquery.Selection) string {
	gram := sense.Find(".GRAM").First()
	if gram.Length() == 0 {
		return ""
	}
	text := strings.NewReplacer("[", "", "]", "").Replace(gram.Text())
	return htmlutil.CleanText(text)
}

// extractExamples pulls the usage sentences of one sense. Audio
// speaker icons carry no text but still get dropped before extraction.
func extractExamples(scope *goquery.Selection) []string {
	examples := []string{}
	scope.Find(".EXAMPLE").Each(func(_ int, example *goquery.Selection) {
		example.Find(".speaker").Remove()
		examples = append(examples, htmlutil.CleanText(example.Text()))
	})
	return examples
}

func extractPatterns(sense *goquery.Selection) []dict.GrammarPattern {
	var patterns []dict.GrammarPattern
	sense.Find(".GramExa").Each(func(_ int, section *goquery.Selection) {
		form := section.Find(".PROPFORM").First()
		if form.Length() == 0 {
			return
		}
		pattern := dict.GrammarPattern{Pattern: htmlutil.CleanText(form.Text())}
		if examples := extractExamples(section); len(examples) > 0 {
			pattern.Examples = examples
		}
		patterns = append(patterns, pattern)
	})
	return patterns
}

func extractCollocations(sense *goquery.Selection) []dict.Collocation {
	var collocations []dict.Collocation
	sense.Find(".ColloExa").Each(func(_ int, section *goquery.Selection) {
		phrase := section.Find(".COLLO").First()
		if phrase.Length() == 0 {
			return
		}
		collocation := dict.Collocation{Phrase: htmlutil.CleanText(phrase.Text())}
		if gloss := section.Find(".GLOSS").First(); gloss.Length() > 0 {
			collocation.Meaning = glossParens.ReplaceAllString(htmlutil.CleanText(gloss.Text()), "")
		}
		if examples := extractExamples(section); len(examples) > 0 {
			collocation.Examples = examples
		}
		collocations = append(collocations, collocation)
	})
	return collocations
}

// extractCorpusExamples collects the "Examples from the Corpus" blocks
// at the bottom of the page. The headword inside each sentence is
// marked up as its own node; it is rewritten to [word] so the caller
// can still see which token matched.
func extractCorpusExamples(doc *goquery.Document) []dict.CorpusExampleGroup {
	var groups []dict.CorpusExampleGroup
	doc.Find(".exaGroup").Each(func(_ int, section *goquery.Selection) {
		title := section.Find(".title").First()
		if title.Length() == 0 {
			return
		}

		examples := []string{}
		section.Find(".exa").Each(func(_ int, example *goquery.Selection) {
			example.Find(".neutral").Remove()
			example.Find(".NodeW").Each(func(_ int, node *goquery.Selection) {
				node.ReplaceWithHtml("[" + html.EscapeString(node.Text()) + "]")
			})
			examples = append(examples, htmlutil.CleanText(example.Text()))
		})

		if len(examples) > 0 {
			groups = append(groups, dict.CorpusExampleGroup{
				Title:    htmlutil.CleanText(title.Text()),
				Examples: examples,
			})
		}
	})
	return groups
}

func extractVerbForms(doc *goquery.Document) map[string]string {
	table := doc.Find("table.verbTable").First()
	if table.Length() == 0 {
		return nil
	}

	forms := map[string]string{}
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		name := htmlutil.CleanText(row.Find("th").First().Text())
		value := htmlutil.CleanText(row.Find("td").First().Text())
		if name != "" && value != "" {
			forms[name] = value
		}
	})
	if len(forms) == 0 {
		return nil
	}
	return forms
}
