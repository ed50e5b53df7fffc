package provider

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/cheerbot/pkg/domain"
)

// Feed serves items from a configured quotes feed (RSS or Atom). Entries
// are stripped to plain text and safety-filtered; entry categories are
// matched against the requested category, untagged entries count as
// motivation.
type Feed struct {
	url       string
	userAgent string
	client    *http.Client
	policy    *bluemonday.Policy
	filter    SafetyChecker
}

// FeedConfig holds feed provider settings.
type FeedConfig struct {
	URL       string
	Timeout   time.Duration
	UserAgent string
}

// NewFeed creates a feed provider.
func NewFeed(cfg FeedConfig, filter SafetyChecker) *Feed {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "cheerbot/1.0"
	}
	return &Feed{
		url:       cfg.URL,
		userAgent: cfg.UserAgent,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		policy: bluemonday.StrictPolicy(),
		filter: filter,
	}
}

// Fetch pulls the feed and picks one random safe entry for the category.
func (f *Feed) Fetch(ctx context.Context, category domain.Category) (domain.ContentItem, error) {
	body, err := f.get(ctx)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close() //nolint:errcheck // read-only body

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("parse feed: %w", err)
	}

	candidates := f.collect(parsed, category)
	if len(candidates) == 0 {
		return domain.ContentItem{}, fmt.Errorf("feed has no usable entries for category %q", category)
	}
	return candidates[rand.Intn(len(candidates))], nil //nolint:gosec // content shuffle, not crypto
}

func (f *Feed) get(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close() //nolint:errcheck,gosec // error path
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

func (f *Feed) collect(parsed *gofeed.Feed, category domain.Category) []domain.ContentItem {
	var res []domain.ContentItem
	for _, entry := range parsed.Items {
		if entry == nil {
			continue
		}
		text := entry.Content
		if text == "" {
			text = entry.Description
		}
		if text == "" {
			text = entry.Title
		}
		text = strings.TrimSpace(f.policy.Sanitize(text))

		cat := entryCategory(entry)
		if category != "" && cat != category {
			continue
		}
		if ok, _ := f.filter.Check(text); !ok {
			continue
		}

		id := entry.GUID
		if id == "" {
			id = contentID("feed", text)
		}
		res = append(res, domain.ContentItem{
			ID:       "feed-" + id,
			Category: cat,
			Text:     text,
			Author:   entryAuthor(entry),
			Tags:     entry.Categories,
			Provider: domain.ProviderFeed,
		})
	}
	return res
}

// entryCategory maps feed entry tags to a known category; untagged or
// unknown-tagged entries count as motivation.
func entryCategory(entry *gofeed.Item) domain.Category {
	for _, c := range entry.Categories {
		switch domain.Category(strings.ToLower(strings.TrimSpace(c))) {
		case domain.CategoryMotivation:
			return domain.CategoryMotivation
		case domain.CategoryWellbeing:
			return domain.CategoryWellbeing
		case domain.CategoryTeam:
			return domain.CategoryTeam
		}
	}
	return domain.CategoryMotivation
}

func entryAuthor(entry *gofeed.Item) string {
	if entry.Author != nil {
		return entry.Author.Name
	}
	return ""
}
