// Package dict holds the normalized record types that every source
// extractor produces and the combined document the orchestrator
// assembles. Field absence is meaningful: a missing key means the
// source does not carry that facet, so optional fields marshal with
// omitempty and are never filled with placeholders.
package dict

// Definition is one sense within a source's entry.
type Definition struct {
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
	Pos        string   `json:"pos,omitempty"`

	// Merriam-Webster sense tree coordinates ("1" + "a" -> sense 1a).
	SenseNumber string `json:"sense_number,omitempty"`
	SenseLetter string `json:"sense_letter,omitempty"`

	// Cambridge bilingual editions attach a translation per sense.
	Translation string `json:"translation,omitempty"`

	// Longman extras.
	Grammar             string           `json:"grammar,omitempty"`
	GrammaticalPatterns []GrammarPattern `json:"grammatical_patterns,omitempty"`
	Collocations        []Collocation    `json:"collocations,omitempty"`
	RelatedWord         string           `json:"related_word,omitempty"`
	ThesaurusRef        string           `json:"thesaurus_ref,omitempty"`
}

type GrammarPattern struct {
	Pattern  string   `json:"pattern"`
	Examples []string `json:"examples,omitempty"`
}

type Collocation struct {
	Phrase   string   `json:"phrase"`
	Meaning  string   `json:"meaning,omitempty"`
	Examples []string `json:"examples,omitempty"`
}

// CorpusExampleGroup is a block of real-world usage sentences keyed by
// a headword variant (Longman only).
type CorpusExampleGroup struct {
	Title    string   `json:"title"`
	Examples []string `json:"examples"`
}

// SourceResult is one dictionary's contribution to a lookup. Either
// Definitions is non-empty or Error is non-empty, never neither.
type SourceResult struct {
	Source        string   `json:"source"`
	Word          string   `json:"word,omitempty"`
	Url           string   `json:"url,omitempty"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	Pos           string   `json:"pos,omitempty"`
	Frequency     []string `json:"frequency,omitempty"`

	Definitions []Definition `json:"definitions,omitempty"`

	WordFamily     map[string][]string  `json:"word_family,omitempty"`
	CorpusExamples []CorpusExampleGroup `json:"corpus_examples,omitempty"`
	VerbForms      map[string]string    `json:"verb_forms,omitempty"`

	Error string `json:"error,omitempty"`
}

// CombinedResult is the outward document: one entry per requested
// source, in the order the caller asked for them.
type CombinedResult struct {
	Word      string         `json:"word"`
	Timestamp string         `json:"timestamp"`
	Sources   []SourceResult `json:"sources"`
}
