package provider

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/cheerbot/pkg/content"
	"github.com/umputun/cheerbot/pkg/domain"
	"github.com/umputun/cheerbot/pkg/provider/mocks"
)

func testPack(t *testing.T) *content.Pack {
	t.Helper()
	file := filepath.Join(t.TempDir(), "pack.yml")
	data := `
- id: m1
  category: motivation
  text: "first motivation"
- id: m2
  category: motivation
  text: "second motivation"
- id: w1
  category: wellbeing
  text: "the wellbeing one"
`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))
	pack, err := content.LoadPack(file, content.NewFilter(content.FilterConfig{}))
	require.NoError(t, err)
	return pack
}

func neverSeen() *mocks.HistoryMock {
	return &mocks.HistoryMock{
		SeenRecentlyFunc: func(ctx context.Context, tenantID, contentID string, window time.Duration) (bool, error) {
			return false, nil
		},
	}
}

func TestSelector_RemoteFirst(t *testing.T) {
	remote := &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, category domain.Category) (domain.ContentItem, error) {
			return domain.ContentItem{ID: "r1", Category: category, Text: "from remote", Provider: domain.ProviderRemote}, nil
		},
	}
	s := NewSelector(SelectorParams{Remote: remote, Pack: testPack(t), History: neverSeen()})

	item, err := s.Select(context.Background(), Request{TenantID: "t1", Category: domain.CategoryMotivation})
	require.NoError(t, err)
	assert.Equal(t, "r1", item.ID)
	assert.Len(t, remote.FetchCalls(), 1)
	assert.Equal(t, domain.CategoryMotivation, remote.FetchCalls()[0].Category)
}

func TestSelector_FallsThroughToFeed(t *testing.T) {
	remote := &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, category domain.Category) (domain.ContentItem, error) {
			return domain.ContentItem{}, errors.New("remote down")
		},
	}
	feed := &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, category domain.Category) (domain.ContentItem, error) {
			return domain.ContentItem{ID: "f1", Text: "from feed", Provider: domain.ProviderFeed}, nil
		},
	}
	s := NewSelector(SelectorParams{Remote: remote, Feed: feed, Pack: testPack(t), History: neverSeen()})

	item, err := s.Select(context.Background(), Request{TenantID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "f1", item.ID)
	assert.Len(t, remote.FetchCalls(), 1)
	assert.Len(t, feed.FetchCalls(), 1)
}

func TestSelector_FallsThroughToLocal(t *testing.T) {
	failing := &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, category domain.Category) (domain.ContentItem, error) {
			return domain.ContentItem{}, errors.New("down")
		},
	}
	s := NewSelector(SelectorParams{Remote: failing, Feed: failing, Pack: testPack(t), History: neverSeen()})

	item, err := s.Select(context.Background(), Request{TenantID: "t1", Category: domain.CategoryWellbeing})
	require.NoError(t, err, "remote failures never surface to the caller")
	assert.Equal(t, "w1", item.ID)
	assert.Equal(t, domain.ProviderLocal, item.Provider)
}

func TestSelector_LocalOnlySkipsSources(t *testing.T) {
	remote := &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, category domain.Category) (domain.ContentItem, error) {
			return domain.ContentItem{ID: "r1"}, nil
		},
	}
	s := NewSelector(SelectorParams{Remote: remote, Pack: testPack(t), History: neverSeen()})

	item, err := s.Select(context.Background(), Request{TenantID: "t1", Category: domain.CategoryWellbeing, LocalOnly: true})
	require.NoError(t, err)
	assert.Equal(t, "w1", item.ID)
	assert.Empty(t, remote.FetchCalls(), "remote must not be called with LocalOnly")
}

func TestSelector_AntiRepetition(t *testing.T) {
	history := &mocks.HistoryMock{
		SeenRecentlyFunc: func(ctx context.Context, tenantID, contentID string, window time.Duration) (bool, error) {
			return contentID == "m1", nil // m1 was sent recently
		},
	}
	s := NewSelector(SelectorParams{Pack: testPack(t), History: history, Draws: 10})

	// with m1 marked seen, repeated selections should land on m2
	for i := 0; i < 20; i++ {
		item, err := s.Select(context.Background(), Request{TenantID: "t1", Category: domain.CategoryMotivation})
		require.NoError(t, err)
		assert.Equal(t, "m2", item.ID, "iteration %d", i)
	}
}

func TestSelector_AllSeenReturnsLastDraw(t *testing.T) {
	history := &mocks.HistoryMock{
		SeenRecentlyFunc: func(ctx context.Context, tenantID, contentID string, window time.Duration) (bool, error) {
			return true, nil // everything seen recently
		},
	}
	s := NewSelector(SelectorParams{Pack: testPack(t), History: history, Draws: 3})

	item, err := s.Select(context.Background(), Request{TenantID: "t1", Category: domain.CategoryMotivation})
	require.NoError(t, err, "availability beats novelty")
	assert.Contains(t, []string{"m1", "m2"}, item.ID)
	assert.Len(t, history.SeenRecentlyCalls(), 3, "draws are bounded")
}

func TestSelector_HistoryErrorDoesNotBlock(t *testing.T) {
	history := &mocks.HistoryMock{
		SeenRecentlyFunc: func(ctx context.Context, tenantID, contentID string, window time.Duration) (bool, error) {
			return false, errors.New("store broken")
		},
	}
	s := NewSelector(SelectorParams{Pack: testPack(t), History: history})

	item, err := s.Select(context.Background(), Request{TenantID: "t1", Category: domain.CategoryMotivation})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
}

func TestSelector_NoTenantSkipsHistory(t *testing.T) {
	history := &mocks.HistoryMock{} // would panic if called
	s := NewSelector(SelectorParams{Pack: testPack(t), History: history})

	item, err := s.Select(context.Background(), Request{Category: domain.CategoryMotivation})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Empty(t, history.SeenRecentlyCalls())
}

func TestSelector_NoContent(t *testing.T) {
	s := NewSelector(SelectorParams{Pack: testPack(t), History: neverSeen()})

	_, err := s.Select(context.Background(), Request{TenantID: "t1", Category: domain.CategoryTeam, LocalOnly: true})
	assert.ErrorIs(t, err, ErrNoContent, "team category is empty in the test pack")
}
