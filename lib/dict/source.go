package dict

import (
	"fmt"
	"net/url"

	"combinedicts/lib/textutil"

	"github.com/antzucaro/matchr"
)

// Source identifies one dictionary website and its extractor.
type Source int

const (
	MerriamWebster Source = iota
	CambridgeEnglish
	CambridgeEnglishChinese
	Longman
)

// Sources returns all supported sources in canonical order.
func Sources() []Source {
	return []Source{
		MerriamWebster,
		CambridgeEnglish,
		CambridgeEnglishChinese,
		Longman,
	}
}

func (s Source) Name() string {
	switch s {
	case MerriamWebster:
		return "Merriam-Webster"
	case CambridgeEnglish:
		return "Cambridge Dictionary"
	case CambridgeEnglishChinese:
		return "Cambridge Dictionary (English-Chinese)"
	case Longman:
		return "Longman Dictionary"
	}
	return fmt.Sprintf("unknown source (%d)", int(s))
}

func (s Source) String() string {
	return s.Name()
}

func (s Source) baseUrl() string {
	switch s {
	case MerriamWebster:
		return "https://www.merriam-webster.com/dictionary/"
	case CambridgeEnglish:
		return "https://dictionary.cambridge.org/dictionary/english/"
	case CambridgeEnglishChinese:
		return "https://dictionary.cambridge.org/dictionary/english-chinese-simplified/"
	case Longman:
		return "https://www.ldoceonline.com/dictionary/"
	}
	return ""
}

// EntryUrl builds the word-entry page address for this source.
func (s Source) EntryUrl(word string) string {
	return s.baseUrl() + url.PathEscape(word)
}

const fuzzyMatchThreshold = 0.85

// MatchSources resolves user-supplied dictionary names ("merriam",
// "longman", "cambridge chinese", ...) to sources. Substring matching
// comes first, then Jaro-Winkler similarity picks up near-misses like
// "longmann". Canonical order is preserved and no source is returned
// twice. An empty query list selects every source.
func MatchSources(queries []string) []Source {
	if len(queries) == 0 {
		return Sources()
	}

	var out []Source
	for _, s := range Sources() {
		name := textutil.NormalizeName(s.Name())
		if textutil.MatchName(s.Name(), queries) {
			out = append(out, s)
			continue
		}
		for _, q := range queries {
			similarity := matchr.JaroWinkler(name, textutil.NormalizeName(q), false)
			if similarity >= fuzzyMatchThreshold {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
