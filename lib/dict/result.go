package dict

// Normalize validates a freshly extracted result before it enters the
// combined document. It does no cross-source merging; each source's
// content is preserved verbatim. It only enforces the shape contract:
// definitions present and non-nil on success, empty optional
// collections dropped so their keys are omitted.
func Normalize(res SourceResult) SourceResult {
	if res.Error != "" {
		res.Definitions = nil
		return res
	}

	if res.Definitions == nil {
		res.Definitions = []Definition{}
	}
	for i := range res.Definitions {
		if res.Definitions[i].Examples == nil {
			res.Definitions[i].Examples = []string{}
		}
		if len(res.Definitions[i].GrammaticalPatterns) == 0 {
			res.Definitions[i].GrammaticalPatterns = nil
		}
		if len(res.Definitions[i].Collocations) == 0 {
			res.Definitions[i].Collocations = nil
		}
	}
	if len(res.Frequency) == 0 {
		res.Frequency = nil
	}
	if len(res.WordFamily) == 0 {
		res.WordFamily = nil
	}
	if len(res.CorpusExamples) == 0 {
		res.CorpusExamples = nil
	}
	if len(res.VerbForms) == 0 {
		res.VerbForms = nil
	}
	return res
}

// ErrorResult synthesizes the entry for a source whose pipeline
// failed, keeping the display name, requested word and entry address
// so the caller can still tell which lookup went wrong.
func ErrorResult(s Source, word string, err error) SourceResult {
	return SourceResult{
		Source: s.Name(),
		Word:   word,
		Url:    s.EntryUrl(word),
		Error:  err.Error(),
	}
}
