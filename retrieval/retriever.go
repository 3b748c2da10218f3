package retrieval

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/zakaut/core"
	"github.com/poiesic/zakaut/hebrew"
)

const (
	// DefaultMaxPerQuery is the number of sections returned per query.
	DefaultMaxPerQuery = 1

	// DefaultMaxSnippetChars is the snippet limit in runes. A longer segment
	// is cut at this limit and the ellipsis appended, so a truncated snippet
	// is exactly DefaultMaxSnippetChars+1 runes long.
	DefaultMaxSnippetChars = 700

	// DefaultWindowRadius is the number of runes searched before and after a
	// segment when it carries no inline section citation.
	DefaultWindowRadius = 400

	// Ellipsis marks a truncated snippet.
	Ellipsis = "…"
)

// Retriever matches criteria queries against criteria documents.
// It is safe for concurrent use; every call produces a fresh output value and
// no state is carried between calls.
type Retriever struct {
	profile         *hebrew.Profile
	maxPerQuery     int
	maxSnippetChars int
	windowRadius    int
	pool            *ants.Pool
	logger          *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithProfile sets the language profile used for normalization, keyword
// extraction and citation detection. Default is hebrew.DefaultProfile().
func WithProfile(profile *hebrew.Profile) Option {
	return func(r *Retriever) error {
		if profile == nil {
			profile = hebrew.DefaultProfile()
		}
		r.profile = profile
		return nil
	}
}

// WithMaxPerQuery sets how many sections are returned per query, in document
// order. Values below 1 are clamped to 1. Default is DefaultMaxPerQuery.
func WithMaxPerQuery(n int) Option {
	return func(r *Retriever) error {
		if n < 1 {
			n = 1
		}
		r.maxPerQuery = n
		return nil
	}
}

// WithMaxSnippetChars sets the snippet limit in runes.
// Default is DefaultMaxSnippetChars.
func WithMaxSnippetChars(n int) Option {
	return func(r *Retriever) error {
		if n < 1 {
			return ErrInvalidSnippetLimit
		}
		r.maxSnippetChars = n
		return nil
	}
}

// WithWindowRadius sets the citation window radius in runes. Zero limits the
// citation search to the segment itself. Default is DefaultWindowRadius.
func WithWindowRadius(n int) Option {
	return func(r *Retriever) error {
		if n < 0 {
			return ErrInvalidWindowRadius
		}
		r.windowRadius = n
		return nil
	}
}

// WithPoolSize enables the fork-join fan-out of per-document scans on a
// worker pool of the given size. Sizes below 1 are clamped to 1. Without this
// option scans run synchronously; the output is identical either way.
func WithPoolSize(size int) Option {
	return func(r *Retriever) error {
		if size < 1 {
			size = 1
		}

		if r.pool != nil {
			r.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		r.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRetriever creates a new retriever.
func NewRetriever(opts ...Option) (*Retriever, error) {
	r := &Retriever{
		profile:         hebrew.DefaultProfile(),
		maxPerQuery:     DefaultMaxPerQuery,
		maxSnippetChars: DefaultMaxSnippetChars,
		windowRadius:    DefaultWindowRadius,
		logger:          slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			r.Release()
			return nil, err
		}
	}

	return r, nil
}

// Release releases the worker pool, if any.
// The retriever can still be used afterwards; scans run synchronously.
func (r *Retriever) Release() {
	if r.pool != nil {
		r.pool.Release()
		r.pool = nil
	}
}

// Retrieve runs every query against every document and returns the matched
// sections concatenated in query order. Each query contributes its best
// per-document matches (up to the per-query limit, in document order), or
// exactly one sentinel record when nothing matched.
func (r *Retriever) Retrieve(ctx context.Context, queries []string, docs []core.CriteriaDocument) ([]core.RetrievedSection, error) {
	return r.RetrieveWithMonitor(ctx, queries, docs, nil)
}

// RetrieveWithMonitor is Retrieve with per-stage monitoring callbacks.
func (r *Retriever) RetrieveWithMonitor(ctx context.Context, queries []string, docs []core.CriteriaDocument, monitor RetrievalMonitor) ([]core.RetrievedSection, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateRetrievalInput(queries, docs); err != nil {
		return nil, err
	}

	// Keywords are extracted once per query; an empty set means the query can
	// never produce a candidate.
	keywords := make([][]string, len(queries))
	for qi, q := range queries {
		keywords[qi] = r.profile.ExtractKeywords(q)
	}

	views := make([]*docView, len(docs))
	for di, doc := range docs {
		views[di] = r.viewOf(doc)
	}

	grid, err := r.scanAll(ctx, keywords, views)
	if err != nil {
		return nil, err
	}

	// Reduce in (query, document) order. This is the only ordered phase, so
	// the output is identical no matter how the scans were scheduled.
	results := make([]core.RetrievedSection, 0, len(queries))
	for qi, q := range queries {
		monitor.Start(q, keywords[qi])
		r.logger.Debug("matching query", "query", q, "keywords", len(keywords[qi]))

		kept := 0
		for di := range views {
			c := grid[qi][di]
			monitor.DocumentScanned(docs[di].ID, c.score)
			if !c.ok {
				continue
			}
			kept++
			if kept <= r.maxPerQuery {
				monitor.CandidateKept(docs[di].ID, c.score)
				results = append(results, c.section)
			}
		}

		if kept == 0 {
			monitor.SentinelEmitted(q)
			results = append(results, core.NoMatchSection())
		}
	}

	monitor.Finish(results)
	return results, nil
}

// candidate is the outcome of scanning one document for one query.
type candidate struct {
	section core.RetrievedSection
	score   int
	ok      bool
}

// docView holds a document with its segmentations precomputed once per call,
// so concurrent scans share read-only data.
type docView struct {
	doc        core.CriteriaDocument
	paragraphs []string
	paraNorm   []string
	sentences  []string
	sentNorm   []string
}

func (r *Retriever) viewOf(doc core.CriteriaDocument) *docView {
	v := &docView{doc: doc}

	v.paragraphs = hebrew.SplitParagraphs(doc.Content)
	v.paraNorm = make([]string, len(v.paragraphs))
	for i, p := range v.paragraphs {
		v.paraNorm[i] = r.profile.Normalize(p)
	}

	v.sentences = hebrew.SplitSentences(doc.Content)
	v.sentNorm = make([]string, len(v.sentences))
	for i, s := range v.sentences {
		v.sentNorm[i] = r.profile.Normalize(s)
	}

	return v
}

// scanAll fills the (query, document) candidate grid. Each cell is written by
// exactly one task, so the fan-out needs no locking; the join is a plain
// WaitGroup.
func (r *Retriever) scanAll(ctx context.Context, keywords [][]string, views []*docView) ([][]candidate, error) {
	grid := make([][]candidate, len(keywords))
	for qi := range grid {
		grid[qi] = make([]candidate, len(views))
	}

	if r.pool == nil {
		for qi := range keywords {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			for di := range views {
				grid[qi][di] = r.scanOne(keywords[qi], views[di])
			}
		}
		return grid, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	for qi := range keywords {
		for di := range views {
			wg.Add(1)
			task := func() {
				defer wg.Done()
				grid[qi][di] = r.scanOne(keywords[qi], views[di])
			}
			if err := r.pool.Submit(task); err != nil {
				// Pool saturated or released: degrade to inline execution.
				task()
			}
		}
	}
	wg.Wait()

	return grid, ctx.Err()
}

// scanOne finds the document's best segment for one keyword set: the highest
// scoring paragraph, or, when no paragraph scores above zero, the highest
// scoring sentence. Equal scores keep the earlier segment.
func (r *Retriever) scanOne(keywords []string, view *docView) candidate {
	if len(keywords) == 0 {
		return candidate{}
	}

	segment := ""
	bestScore := 0
	for i, norm := range view.paraNorm {
		if score := Score(norm, keywords); score > bestScore {
			bestScore = score
			segment = view.paragraphs[i]
		}
	}

	if bestScore == 0 {
		for i, norm := range view.sentNorm {
			if score := Score(norm, keywords); score > bestScore {
				bestScore = score
				segment = view.sentences[i]
			}
		}
	}

	if bestScore == 0 {
		return candidate{}
	}

	// Citation lookup happens before truncation so a marker near the end of a
	// long segment is not lost.
	ref := r.profile.ExtractSectionRef(segment)
	if ref == "" {
		ref = r.profile.ExtractSectionRef(r.windowAround(view.doc.Content, segment))
	}

	return candidate{
		ok:    true,
		score: bestScore,
		section: core.RetrievedSection{
			SourceID:   view.doc.ID,
			Text:       r.truncate(segment),
			SectionRef: ref,
		},
	}
}

// windowAround returns the slice of content covering the segment plus the
// window radius in runes on each side. Citations often sit in a preceding
// sentence rather than inside the matched clause itself.
func (r *Retriever) windowAround(content, segment string) string {
	idx := strings.Index(content, segment)
	if idx < 0 {
		return ""
	}

	runes := []rune(content)
	start := utf8.RuneCountInString(content[:idx])
	end := start + utf8.RuneCountInString(segment)

	lo := max(start-r.windowRadius, 0)
	hi := min(end+r.windowRadius, len(runes))
	return string(runes[lo:hi])
}

func (r *Retriever) truncate(segment string) string {
	runes := []rune(segment)
	if len(runes) <= r.maxSnippetChars {
		return segment
	}
	return string(runes[:r.maxSnippetChars]) + Ellipsis
}
