package content

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/umputun/cheerbot/pkg/domain"
)

//go:embed pack.yml
var defaultPack []byte

// Pack is the bundled offline content set, usable without any network
// dependency. Every item passes the safety filter once at load time, so
// selection never re-checks them.
type Pack struct {
	items []domain.ContentItem
	byCat map[domain.Category][]domain.ContentItem
}

type packItem struct {
	ID       string   `yaml:"id"`
	Category string   `yaml:"category"`
	Text     string   `yaml:"text"`
	Author   string   `yaml:"author,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
}

// LoadPack reads a pack from path, or the embedded default when path is
// empty. Items failing the safety filter are dropped with a warning rather
// than failing the load; an empty resulting pack is an error.
func LoadPack(path string, filter *Filter) (*Pack, error) {
	data := defaultPack
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil { //nolint:gosec // path comes from config
			return nil, fmt.Errorf("read pack file: %w", err)
		}
	}

	var raw []packItem
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse pack: %w", err)
	}

	p := &Pack{byCat: map[domain.Category][]domain.ContentItem{}}
	for i, r := range raw {
		if r.ID == "" {
			r.ID = fmt.Sprintf("pack-%03d", i)
		}
		if ok, reason := filter.Check(r.Text); !ok {
			lgr.Printf("[WARN] pack item %s dropped: %s", r.ID, reason)
			continue
		}
		item := domain.ContentItem{
			ID:       r.ID,
			Category: domain.Category(r.Category),
			Text:     r.Text,
			Author:   r.Author,
			Tags:     r.Tags,
			Provider: domain.ProviderLocal,
		}
		p.items = append(p.items, item)
		p.byCat[item.Category] = append(p.byCat[item.Category], item)
	}

	if len(p.items) == 0 {
		return nil, fmt.Errorf("pack has no usable items")
	}
	lgr.Printf("[INFO] content pack loaded, %d items in %d categories", len(p.items), len(p.byCat))
	return p, nil
}

// Items returns candidates for the category; an empty category means the
// union of all categories. The returned slice is shared, callers must not
// modify it.
func (p *Pack) Items(cat domain.Category) []domain.ContentItem {
	if cat == "" {
		return p.items
	}
	return p.byCat[cat]
}

// Len returns the total number of usable items.
func (p *Pack) Len() int { return len(p.items) }
