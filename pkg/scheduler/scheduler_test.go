package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/cheerbot/pkg/domain"
	"github.com/umputun/cheerbot/pkg/provider"
	"github.com/umputun/cheerbot/pkg/scheduler/mocks"
)

// fixture bundles permissive mocks wired into a scheduler; individual tests
// override the funcs they care about.
type fixture struct {
	tenants   *mocks.TenantStoreMock
	cooldowns *mocks.CooldownStoreMock
	history   *mocks.HistoryStoreMock
	weekly    *mocks.WeeklyStoreMock
	selector  *mocks.ContentSelectorMock
	notifier  *mocks.NotifierMock
	sched     *Scheduler
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		tenants: &mocks.TenantStoreMock{
			ListFunc: func(ctx context.Context) ([]domain.Tenant, error) { return nil, nil },
			GetFunc:  func(ctx context.Context, id string) (*domain.Tenant, error) { return nil, nil },
		},
		cooldowns: &mocks.CooldownStoreMock{
			IsOnCooldownFunc: func(ctx context.Context, key string) (bool, error) { return false, nil },
			RemainingFunc:    func(ctx context.Context, key string) (time.Duration, error) { return 0, nil },
			SetWithTTLFunc:   func(ctx context.Context, key string, ttl time.Duration) error { return nil },
			CleanupFunc:      func(ctx context.Context) (int, error) { return 0, nil },
		},
		history: &mocks.HistoryStoreMock{
			RecordFunc: func(ctx context.Context, rec *domain.SentRecord) error { return nil },
			PruneFunc:  func(ctx context.Context, retention time.Duration) (int, error) { return 0, nil },
		},
		weekly: &mocks.WeeklyStoreMock{
			// a persisted slot for the current week that never matches
			GetFunc: func(ctx context.Context, tenantID string) (*domain.WeeklySlot, error) {
				return &domain.WeeklySlot{TenantID: tenantID, Week: "2026-W35", Day: 1, Slot: "10:00"}, nil
			},
			SetFunc: func(ctx context.Context, ws *domain.WeeklySlot) error { return nil },
		},
		selector: &mocks.ContentSelectorMock{
			SelectFunc: func(ctx context.Context, req provider.Request) (domain.ContentItem, error) {
				return domain.ContentItem{ID: "pack-001", Category: req.Category,
					Text: "keep going", Provider: domain.ProviderLocal}, nil
			},
		},
		notifier: &mocks.NotifierMock{
			SendFunc: func(ctx context.Context, chatID int64, item domain.ContentItem) error { return nil },
		},
	}
	f.sched = New(Params{
		Tenants:   f.tenants,
		Cooldowns: f.cooldowns,
		History:   f.history,
		Weekly:    f.weekly,
		Selector:  f.selector,
		Notifier:  f.notifier,
		Now:       func() time.Time { return now },
	})
	return f
}

// 2026-08-26 is a Wednesday, ISO week 35; 07:15 UTC is 09:15 in Berlin
var testNow = time.Date(2026, 8, 26, 7, 15, 0, 0, time.UTC)

func berlinTenant(id string) domain.Tenant {
	return domain.Tenant{
		ID:       id,
		ChatID:   1000,
		Timezone: "Europe/Berlin",
		Cadence:  2,
		Days:     []int{1, 2, 3, 4, 5},
		Slots:    []string{"09:15", "16:30"},
	}
}

func TestScheduler_StartStop(t *testing.T) {
	f := newFixture(testNow)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, f.sched.Start(ctx))
	require.NoError(t, f.sched.Start(ctx), "second start is a no-op")

	f.sched.Stop()
	f.sched.Stop() // second stop is a no-op
}

func TestScheduler_SendNow(t *testing.T) {
	f := newFixture(testNow)
	f.tenants.GetFunc = func(ctx context.Context, id string) (*domain.Tenant, error) {
		tenant := berlinTenant("g1")
		return &tenant, nil
	}

	item, err := f.sched.SendNow(context.Background(), "g1", domain.CategoryTeam)
	require.NoError(t, err)
	assert.Equal(t, "pack-001", item.ID)

	require.Len(t, f.selector.SelectCalls(), 1)
	assert.Equal(t, "g1", f.selector.SelectCalls()[0].Req.TenantID)
	assert.Equal(t, domain.CategoryTeam, f.selector.SelectCalls()[0].Req.Category)

	require.Len(t, f.notifier.SendCalls(), 1)
	assert.Equal(t, int64(1000), f.notifier.SendCalls()[0].ChatID)

	require.Len(t, f.history.RecordCalls(), 1)
	assert.Equal(t, "g1", f.history.RecordCalls()[0].Rec.TenantID)
	assert.Equal(t, "pack-001", f.history.RecordCalls()[0].Rec.ContentID)

	require.Len(t, f.cooldowns.SetWithTTLCalls(), 1)
	assert.Equal(t, "guild:g1:now", f.cooldowns.SetWithTTLCalls()[0].Key)
	assert.Equal(t, 30*time.Second, f.cooldowns.SetWithTTLCalls()[0].TTL)
}

func TestScheduler_SendNowUnknownTenant(t *testing.T) {
	f := newFixture(testNow)

	_, err := f.sched.SendNow(context.Background(), "ghost", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTenant)
	assert.Empty(t, f.selector.SelectCalls())
}

func TestScheduler_SendNowOnCooldown(t *testing.T) {
	f := newFixture(testNow)
	f.tenants.GetFunc = func(ctx context.Context, id string) (*domain.Tenant, error) {
		tenant := berlinTenant("g1")
		return &tenant, nil
	}
	f.cooldowns.RemainingFunc = func(ctx context.Context, key string) (time.Duration, error) {
		return 12 * time.Second, nil
	}

	_, err := f.sched.SendNow(context.Background(), "g1", "")
	require.Error(t, err)

	var cdErr *OnCooldownError
	require.ErrorAs(t, err, &cdErr)
	assert.Equal(t, "guild:g1:now", cdErr.Key)
	assert.Equal(t, 12*time.Second, cdErr.Remaining)
	assert.Empty(t, f.selector.SelectCalls(), "no selection while on cooldown")
	assert.Empty(t, f.notifier.SendCalls())
}

func TestScheduler_SendNowNoContent(t *testing.T) {
	f := newFixture(testNow)
	f.tenants.GetFunc = func(ctx context.Context, id string) (*domain.Tenant, error) {
		tenant := berlinTenant("g1")
		return &tenant, nil
	}
	f.selector.SelectFunc = func(ctx context.Context, req provider.Request) (domain.ContentItem, error) {
		return domain.ContentItem{}, provider.ErrNoContent
	}

	_, err := f.sched.SendNow(context.Background(), "g1", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, provider.ErrNoContent)
	assert.Empty(t, f.notifier.SendCalls())
	assert.Empty(t, f.cooldowns.SetWithTTLCalls(), "failed send never arms the cooldown")
}

func TestScheduler_SendNowSendFailure(t *testing.T) {
	f := newFixture(testNow)
	f.tenants.GetFunc = func(ctx context.Context, id string) (*domain.Tenant, error) {
		tenant := berlinTenant("g1")
		return &tenant, nil
	}
	f.notifier.SendFunc = func(ctx context.Context, chatID int64, item domain.ContentItem) error {
		return errors.New("telegram down")
	}

	_, err := f.sched.SendNow(context.Background(), "g1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram down")
	assert.Empty(t, f.history.RecordCalls(), "failed send is not recorded")
	assert.Empty(t, f.cooldowns.SetWithTTLCalls())
}

func TestScheduler_Maintain(t *testing.T) {
	f := newFixture(testNow)
	f.cooldowns.CleanupFunc = func(ctx context.Context) (int, error) { return 3, nil }
	f.history.PruneFunc = func(ctx context.Context, retention time.Duration) (int, error) { return 7, nil }

	f.sched.Maintain(context.Background())

	require.Len(t, f.cooldowns.CleanupCalls(), 1)
	require.Len(t, f.history.PruneCalls(), 1)
	assert.Equal(t, 90*24*time.Hour, f.history.PruneCalls()[0].Retention)
}

func TestScheduler_MaintainErrorsTolerated(t *testing.T) {
	f := newFixture(testNow)
	f.cooldowns.CleanupFunc = func(ctx context.Context) (int, error) { return 0, errors.New("db closed") }
	f.history.PruneFunc = func(ctx context.Context, retention time.Duration) (int, error) { return 0, errors.New("db closed") }

	f.sched.Maintain(context.Background()) // must not panic

	require.Len(t, f.cooldowns.CleanupCalls(), 1)
	require.Len(t, f.history.PruneCalls(), 1, "prune still attempted after cleanup failure")
}
