package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// SourceNA is the source identifier carried by sentinel sections, emitted when
// a query matched nothing in the corpus.
const SourceNA = "N/A"

// NoMatchText is the fixed text of a sentinel section.
const NoMatchText = "לא נמצא מידע תואם לשאילתה במסמכי הקריטריונים שסופקו."

// CriteriaDocument is one legal/criteria source document. Documents are owned
// by the caller and are never mutated or persisted by the engine.
type CriteriaDocument struct {
	ID      string
	Content string
}

// RetrievedSection is one retrieved snippet of criteria text, attributed to
// its source document and, when one was found near the match, a section
// citation such as "סעיף 3(א)".
//
// A section with SourceID == SourceNA is a sentinel: its Text is NoMatchText,
// it carries no citation, and downstream consumers must state that the
// information is missing rather than cite it.
type RetrievedSection struct {
	SourceID   string `json:"source_id"`
	Text       string `json:"text"`
	SectionRef string `json:"section_ref,omitempty"`
}

// IsSentinel reports whether the section is the no-match sentinel.
func (s RetrievedSection) IsSentinel() bool {
	return s.SourceID == SourceNA
}

// NoMatchSection returns the sentinel section for a query that matched nothing.
func NoMatchSection() RetrievedSection {
	return RetrievedSection{SourceID: SourceNA, Text: NoMatchText}
}

// ScoredCategory is one classification label with the model's confidence,
// clamped to [0,1].
type ScoredCategory struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// FallbackCategory is the category emitted when classification fails or
// produces nothing usable. It is not a member of Categories() and never
// resolves to a retrieval plan.
const FallbackCategory = "לא מסווג"

// RouteResult is the outcome of classifying an intake document.
// Categories holds the labels that passed the confidence threshold, in the
// order the classifier produced them; Scored holds every allowed label with
// its confidence.
type RouteResult struct {
	Categories []string         `json:"categories"`
	Scored     []ScoredCategory `json:"scored"`
}

// FallbackRoute returns the route emitted when classification failed.
func FallbackRoute() *RouteResult {
	return &RouteResult{Categories: []string{FallbackCategory}, Scored: []ScoredCategory{}}
}

// Fallback reports whether the route is the classification-failure fallback.
func (r *RouteResult) Fallback() bool {
	return len(r.Categories) == 1 && r.Categories[0] == FallbackCategory
}

// Plan is the retrieval plan built for one eligibility category: the criteria
// queries to run against the corpus and the final question to answer.
type Plan struct {
	Category Category `json:"category"`
	Queries  []string `json:"queries"`
	Question string   `json:"question"`
}

// CaseRecord is the audit record of one answered eligibility question.
type CaseRecord struct {
	Id        ID                 `json:"id"`
	RunID     string             `json:"run_id"`
	Category  string             `json:"category"`
	Question  string             `json:"question"`
	Queries   []string           `json:"queries"`
	Sections  []RetrievedSection `json:"sections"`
	Answer    string             `json:"answer"`
	CreatedAt time.Time          `json:"created_at"`
}
