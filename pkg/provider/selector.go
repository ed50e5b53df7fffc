package provider

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/cheerbot/pkg/content"
	"github.com/umputun/cheerbot/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . History

// ErrNoContent is returned when every source is exhausted: no remote or
// feed candidate and nothing in the local pack for the requested category.
// This is the only failure a caller ever sees from selection.
var ErrNoContent = errors.New("no content available")

// Fetcher is a single content source tried before the local pack. Sources
// enforce their own timeouts and safety filtering; any error makes the
// selector fall through to the next source.
type Fetcher interface {
	Fetch(ctx context.Context, category domain.Category) (domain.ContentItem, error)
}

// History answers recency questions for anti-repetition.
type History interface {
	SeenRecently(ctx context.Context, tenantID, contentID string, window time.Duration) (bool, error)
}

// default anti-repetition parameters
const (
	DefaultDraws  = 10
	DefaultWindow = 30 * 24 * time.Hour
)

// Selector implements the provider fallback chain: remote, then feed, then
// the local pack with per-tenant anti-repetition.
type Selector struct {
	remote  Fetcher // may be nil
	feed    Fetcher // may be nil
	pack    *content.Pack
	history History

	window time.Duration
	draws  int
}

// SelectorParams holds selector dependencies and tuning.
type SelectorParams struct {
	Remote  Fetcher
	Feed    Fetcher
	Pack    *content.Pack
	History History
	Window  time.Duration // anti-repetition lookback, default 30 days
	Draws   int           // random draw attempts, default 10
}

// NewSelector creates a selector. Pack and History are required, Remote and
// Feed are optional sources tried in that order.
func NewSelector(p SelectorParams) *Selector {
	if p.Window <= 0 {
		p.Window = DefaultWindow
	}
	if p.Draws <= 0 {
		p.Draws = DefaultDraws
	}
	return &Selector{remote: p.Remote, feed: p.Feed, pack: p.Pack, history: p.History,
		window: p.Window, draws: p.Draws}
}

// Request describes a single selection.
type Request struct {
	TenantID  string          // enables anti-repetition when set
	Category  domain.Category // empty means any category
	LocalOnly bool            // skip remote and feed sources
}

// Select picks one content item. Remote and feed failures are logged and
// fall through silently; the only caller-visible failure is ErrNoContent
// when the local candidate set is empty too.
func (s *Selector) Select(ctx context.Context, req Request) (domain.ContentItem, error) {
	if !req.LocalOnly {
		for _, src := range []Fetcher{s.remote, s.feed} {
			if src == nil {
				continue
			}
			item, err := src.Fetch(ctx, req.Category)
			if err != nil {
				lgr.Printf("[DEBUG] content source failed, falling through: %v", err)
				continue
			}
			return item, nil
		}
	}

	candidates := s.pack.Items(req.Category)
	if len(candidates) == 0 {
		return domain.ContentItem{}, ErrNoContent
	}

	if req.TenantID == "" {
		return candidates[rand.Intn(len(candidates))], nil //nolint:gosec // content shuffle, not crypto
	}

	// anti-repetition: bounded random draws, the last draw wins if every
	// candidate was seen recently - availability beats strict novelty
	var last domain.ContentItem
	for i := 0; i < s.draws; i++ {
		last = candidates[rand.Intn(len(candidates))] //nolint:gosec // content shuffle, not crypto
		seen, err := s.history.SeenRecently(ctx, req.TenantID, last.ID, s.window)
		if err != nil {
			lgr.Printf("[WARN] recency check failed for tenant %s: %v", req.TenantID, err)
			return last, nil
		}
		if !seen {
			return last, nil
		}
	}
	lgr.Printf("[DEBUG] all %d draws seen recently for tenant %s, repeating %s", s.draws, req.TenantID, last.ID)
	return last, nil
}
