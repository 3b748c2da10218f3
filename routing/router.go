package routing

import (
	"context"
	"log/slog"

	"github.com/poiesic/zakaut/ai"
	"github.com/poiesic/zakaut/core"
	"github.com/poiesic/zakaut/storage"
)

// DefaultMinConfidence is the confidence a category must reach to be routed.
const DefaultMinConfidence = 0.40

// Router classifies intake documents into eligibility categories.
type Router struct {
	classifier    ai.Classifier
	cache         storage.RouteCache
	minConfidence float64
	logger        *slog.Logger
}

// Option configures a Router.
type Option func(*Router) error

// WithMinConfidence sets the confidence threshold for category membership.
// Must be in [0,1]. Default is DefaultMinConfidence.
func WithMinConfidence(min float64) Option {
	return func(r *Router) error {
		if min < 0 || min > 1 {
			return ErrInvalidMinConfidence
		}
		r.minConfidence = min
		return nil
	}
}

// WithCache sets a route cache. When set, a document whose content ID has a
// cached route is served without a classifier call.
func WithCache(cache storage.RouteCache) Option {
	return func(r *Router) error {
		r.cache = cache
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRouter creates a new router over a classifier.
func NewRouter(classifier ai.Classifier, opts ...Option) (*Router, error) {
	if classifier == nil {
		return nil, ErrClassifierRequired
	}

	r := &Router{
		classifier:    classifier,
		minConfidence: DefaultMinConfidence,
		logger:        slog.Default().With("component", "router"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Route classifies documentText into zero or more eligibility categories.
//
// A category is included when its confidence reaches the threshold;
// classifier order is preserved and duplicates are dropped. A hard classifier
// failure or an unusable response degrades to the fallback route instead of
// an error. Fallback routes are never cached.
func (r *Router) Route(ctx context.Context, documentText string) (*core.RouteResult, error) {
	if err := core.ValidateIntake(documentText); err != nil {
		return nil, err
	}

	docID := core.IDFromContent(documentText)
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, docID)
		if err != nil {
			r.logger.Warn("route cache read failed", "docID", docID, "err", err)
		} else if cached != nil {
			r.logger.Debug("route cache hit", "docID", docID)
			return cached, nil
		}
	}

	scored, err := r.classifier.ScoreCategories(ctx, documentText)
	if err != nil {
		r.logger.Error("classifier failed, routing to fallback", "err", err)
		scored = nil
	}
	if len(scored) == 0 {
		return core.FallbackRoute(), nil
	}

	result := &core.RouteResult{
		Categories: filterByConfidence(scored, r.minConfidence),
		Scored:     scored,
	}

	if r.cache != nil {
		if err := r.cache.Put(ctx, docID, result); err != nil {
			r.logger.Warn("route cache write failed", "docID", docID, "err", err)
		}
	}

	r.logger.Info("routed document",
		"docID", docID,
		"categories", result.Categories,
		"threshold", r.minConfidence)

	return result, nil
}

// filterByConfidence returns the categories at or above the threshold, in
// scored order, without duplicates.
func filterByConfidence(scored []core.ScoredCategory, min float64) []string {
	categories := make([]string, 0, len(scored))
	seen := make(map[string]bool, len(scored))
	for _, sc := range scored {
		if sc.Confidence >= min && !seen[sc.Name] {
			categories = append(categories, sc.Name)
			seen[sc.Name] = true
		}
	}
	return categories
}
