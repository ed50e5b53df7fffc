package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/umputun/cheerbot/pkg/domain"
	"github.com/umputun/cheerbot/pkg/provider"
)

//go:generate moq -out mocks/tenant_store.go -pkg mocks -skip-ensure -fmt goimports . TenantStore
//go:generate moq -out mocks/cooldown_store.go -pkg mocks -skip-ensure -fmt goimports . CooldownStore
//go:generate moq -out mocks/history_store.go -pkg mocks -skip-ensure -fmt goimports . HistoryStore
//go:generate moq -out mocks/weekly_store.go -pkg mocks -skip-ensure -fmt goimports . WeeklyStore
//go:generate moq -out mocks/selector.go -pkg mocks -skip-ensure -fmt goimports . ContentSelector
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// Scheduler drives the per-minute delivery loop. Every tick it enumerates
// tenants, resolves each tenant's local clock and weekday, and delivers to
// every matching slot, gated by per-slot cooldown keys so a restart inside
// the same minute never double-sends. Tenants are processed concurrently
// and faults are isolated: one tenant panicking or erroring never affects
// the others or the trigger itself.
type Scheduler struct {
	tenants   TenantStore
	cooldowns CooldownStore
	history   HistoryStore
	weekly    WeeklyStore
	selector  ContentSelector
	notifier  Notifier

	concurrency int
	slotTTL     time.Duration
	nowTTL      time.Duration
	retention   time.Duration
	now         func() time.Time

	cron    *cron.Cron
	started bool
	mu      sync.Mutex
}

// TenantStore provides tenant schedule configuration.
type TenantStore interface {
	Get(ctx context.Context, id string) (*domain.Tenant, error)
	List(ctx context.Context) ([]domain.Tenant, error)
}

// CooldownStore gates deliveries with time-boxed locks.
type CooldownStore interface {
	IsOnCooldown(ctx context.Context, key string) (bool, error)
	Remaining(ctx context.Context, key string) (time.Duration, error)
	SetWithTTL(ctx context.Context, key string, ttl time.Duration) error
	Cleanup(ctx context.Context) (int, error)
}

// HistoryStore records confirmed deliveries.
type HistoryStore interface {
	Record(ctx context.Context, rec *domain.SentRecord) error
	Prune(ctx context.Context, retention time.Duration) (int, error)
}

// WeeklyStore persists the weekly surprise slot per tenant.
type WeeklyStore interface {
	Get(ctx context.Context, tenantID string) (*domain.WeeklySlot, error)
	Set(ctx context.Context, ws *domain.WeeklySlot) error
}

// ContentSelector picks one content item per delivery.
type ContentSelector interface {
	Select(ctx context.Context, req provider.Request) (domain.ContentItem, error)
}

// Notifier delivers a content item to a chat.
type Notifier interface {
	Send(ctx context.Context, chatID int64, item domain.ContentItem) error
}

// Params holds scheduler dependencies and tuning.
type Params struct {
	Tenants   TenantStore
	Cooldowns CooldownStore
	History   HistoryStore
	Weekly    WeeklyStore
	Selector  ContentSelector
	Notifier  Notifier

	Concurrency int           // max tenants processed in parallel, default 8
	SlotTTL     time.Duration // scheduled-slot cooldown, default 90s
	NowTTL      time.Duration // on-demand cooldown, default 30s
	Retention   time.Duration // history retention, default 90 days
	Now         func() time.Time
}

// New creates a scheduler. The trigger is not armed until Start.
func New(p Params) *Scheduler {
	if p.Concurrency <= 0 {
		p.Concurrency = 8
	}
	if p.SlotTTL <= 0 {
		p.SlotTTL = 90 * time.Second
	}
	if p.NowTTL <= 0 {
		p.NowTTL = 30 * time.Second
	}
	if p.Retention <= 0 {
		p.Retention = 90 * 24 * time.Hour
	}
	if p.Now == nil {
		p.Now = time.Now
	}

	return &Scheduler{
		tenants:     p.Tenants,
		cooldowns:   p.Cooldowns,
		history:     p.History,
		weekly:      p.Weekly,
		selector:    p.Selector,
		notifier:    p.Notifier,
		concurrency: p.Concurrency,
		slotTTL:     p.SlotTTL,
		nowTTL:      p.NowTTL,
		retention:   p.Retention,
		now:         p.Now,
	}
}

// Start arms the per-minute trigger and the hourly maintenance entry.
// Calling Start on a running scheduler warns and does nothing.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		lgr.Printf("[WARN] scheduler already started, ignored")
		return nil
	}

	// the trigger fires in UTC; tenant-local time is resolved per tick
	s.cron = cron.New(cron.WithLocation(time.UTC))
	if _, err := s.cron.AddFunc("* * * * *", func() { s.Tick(ctx, s.now().UTC()) }); err != nil {
		return fmt.Errorf("add tick entry: %w", err)
	}
	if _, err := s.cron.AddFunc("@hourly", func() { s.Maintain(ctx) }); err != nil {
		return fmt.Errorf("add maintenance entry: %w", err)
	}
	s.cron.Start()
	s.started = true

	lgr.Printf("[INFO] scheduler started, slot ttl %v, on-demand ttl %v, concurrency %d",
		s.slotTTL, s.nowTTL, s.concurrency)
	return nil
}

// Stop disarms the trigger. In-flight tenant deliveries are waited for.
// Calling Stop on a stopped scheduler warns and does nothing.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		lgr.Printf("[WARN] scheduler not started, stop ignored")
		return
	}

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.started = false
	lgr.Printf("[INFO] scheduler stopped")
}

// OnCooldownError reports a rejected on-demand send with the time left.
type OnCooldownError struct {
	Key       string
	Remaining time.Duration
}

func (e *OnCooldownError) Error() string {
	return fmt.Sprintf("on cooldown for %v (%s)", e.Remaining, e.Key)
}

// ErrUnknownTenant is returned by SendNow for a tenant with no configuration.
var ErrUnknownTenant = errors.New("unknown tenant")

// SendNow delivers one item to the tenant outside the schedule, gated by an
// independent short cooldown that never touches the scheduled key space.
// An empty category means any. Returns the delivered item.
func (s *Scheduler) SendNow(ctx context.Context, tenantID string, category domain.Category) (domain.ContentItem, error) {
	tenant, err := s.tenants.Get(ctx, tenantID)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("get tenant %s: %w", tenantID, err)
	}
	if tenant == nil {
		return domain.ContentItem{}, fmt.Errorf("%w: %s", ErrUnknownTenant, tenantID)
	}

	key := "guild:" + tenantID + ":now"
	remaining, err := s.cooldowns.Remaining(ctx, key)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("cooldown check %s: %w", key, err)
	}
	if remaining > 0 {
		return domain.ContentItem{}, &OnCooldownError{Key: key, Remaining: remaining}
	}

	item, err := s.selector.Select(ctx, provider.Request{TenantID: tenantID, Category: category})
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("select content for tenant %s: %w", tenantID, err)
	}

	if err := s.notifier.Send(ctx, tenant.ChatID, item); err != nil {
		return domain.ContentItem{}, fmt.Errorf("send to tenant %s: %w", tenantID, err)
	}

	s.afterDelivery(ctx, tenant, item, key, s.nowTTL)
	lgr.Printf("[INFO] on-demand delivery to tenant %s, content %s", tenantID, item.ID)
	return item, nil
}

// afterDelivery records history and arms the cooldown once the message is
// out. Neither failure can undo the send, so both are logged and swallowed.
func (s *Scheduler) afterDelivery(ctx context.Context, tenant *domain.Tenant, item domain.ContentItem, key string, ttl time.Duration) {
	rec := &domain.SentRecord{
		TenantID:  tenant.ID,
		ChatID:    tenant.ChatID,
		ContentID: item.ID,
		Category:  item.Category,
		Provider:  item.Provider,
		SentAt:    s.now().UTC(),
	}
	if err := s.history.Record(ctx, rec); err != nil {
		lgr.Printf("[WARN] failed to record delivery for tenant %s: %v", tenant.ID, err)
	}
	if err := s.cooldowns.SetWithTTL(ctx, key, ttl); err != nil {
		lgr.Printf("[ERROR] failed to set cooldown %s, duplicate send possible: %v", key, err)
	}
}

// Maintain sweeps expired cooldown rows and prunes old history. Runs hourly
// from the cron entry, callable directly for admin use.
func (s *Scheduler) Maintain(ctx context.Context) {
	removed, err := s.cooldowns.Cleanup(ctx)
	if err != nil {
		lgr.Printf("[ERROR] cooldown cleanup failed: %v", err)
	} else if removed > 0 {
		lgr.Printf("[INFO] cleaned up %d expired cooldowns", removed)
	}

	pruned, err := s.history.Prune(ctx, s.retention)
	if err != nil {
		lgr.Printf("[ERROR] history prune failed: %v", err)
	} else if pruned > 0 {
		lgr.Printf("[INFO] pruned %d sent-history entries older than %v", pruned, s.retention)
	}
}
