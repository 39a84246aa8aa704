// Package lookup fans a word out to every requested dictionary source
// and assembles the per-source results into one combined document.
package lookup

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"combinedicts/lib/dict"
	"combinedicts/lib/fetch"
	"combinedicts/lib/scrapers"
	"combinedicts/services/lookup/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/lookup")

// Fetcher retrieves the entry page for a word from one source.
// fetch.Client is the production implementation.
type Fetcher interface {
	Fetch(ctx context.Context, src dict.Source, word string) (*fetch.Page, error)
}

type Service struct {
	fetcher Fetcher
	db      *sql.DB
	qry     *db.Queries
}

// NewService wires a fetcher to the lookup pipeline. database may be
// nil, which disables lookup history.
func NewService(fetcher Fetcher, database *sql.DB) Service {
	s := Service{fetcher: fetcher, db: database}
	if database != nil {
		s.qry = db.New(database)
	}
	return s
}

// Lookup queries the given sources concurrently and returns one entry
// per source, in the order requested. A source that fails contributes
// an error entry; Lookup itself never fails. An empty source list
// means all sources.
func (s Service) Lookup(ctx context.Context, word string, sources []dict.Source) dict.CombinedResult {
	ctx, span := tracer.Start(ctx, "Lookup")
	defer span.End()
	span.SetAttributes(attribute.String("word", word))

	if len(sources) == 0 {
		sources = dict.Sources()
	}

	results := make([]dict.SourceResult, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src dict.Source) {
			defer wg.Done()
			results[i] = s.lookupSource(ctx, src, word)
		}(i, src)
	}
	wg.Wait()

	result := dict.CombinedResult{
		Word:      word,
		Timestamp: time.Now().Format(time.RFC3339),
		Sources:   results,
	}
	s.noteLookup(ctx, result, sources)
	return result
}

func (s Service) lookupSource(ctx context.Context, src dict.Source, word string) dict.SourceResult {
	ctx, span := tracer.Start(ctx, "lookupSource")
	defer span.End()
	span.SetAttributes(attribute.String("source", src.Name()))

	page, err := s.fetcher.Fetch(ctx, src, word)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Warn("fetch failed", "source", src.Name(), "word", word, "err", err)
		return dict.Normalize(dict.ErrorResult(src, word, err))
	}

	res, err := scrapers.Extract(src, page, word)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Warn("extraction failed", "source", src.Name(), "word", word, "err", err)
		return dict.Normalize(dict.ErrorResult(src, word, err))
	}

	slog.Debug("extracted entry",
		"source", src.Name(),
		"word", word,
		"definitions", len(res.Definitions),
	)
	return dict.Normalize(res)
}

// noteLookup records the query and its combined document in history.
// History is best effort and never fails the lookup.
func (s Service) noteLookup(ctx context.Context, result dict.CombinedResult, sources []dict.Source) {
	if s.qry == nil {
		return
	}
	names := make([]string, len(sources))
	for i, src := range sources {
		names[i] = src.Name()
	}
	encoded, err := json.Marshal(result)
	if err != nil {
		slog.Warn("failed to encode lookup history", "word", result.Word, "err", err)
		return
	}
	err = s.qry.CreateLookup(ctx, db.CreateLookupParams{
		Word:    result.Word,
		Sources: strings.Join(names, ", "),
		Result:  string(encoded),
		Time:    time.Now().Unix(),
	})
	if err != nil {
		slog.Warn("failed to record lookup history", "word", result.Word, "err", err)
	}
}

// RecentLookups returns the newest history rows, most recent first.
func (s Service) RecentLookups(ctx context.Context, limit int64) ([]db.LookupHistory, error) {
	if s.qry == nil {
		return nil, nil
	}
	return s.qry.GetRecentLookups(ctx, limit)
}
