package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/cheerbot/pkg/domain"
	"github.com/umputun/cheerbot/pkg/provider"
	"github.com/umputun/cheerbot/pkg/schedule"
)

// Outcome is the per-tenant result of one tick.
type Outcome struct {
	TenantID  string
	Delivered int // slot deliveries made this tick, weekly drop included
	Skipped   int // slots suppressed by an active cooldown
	Err       error
}

// Tick runs one pass over every tenant for the given instant. Tenants are
// processed concurrently with a worker cap and every tenant settles: a
// panic or error in one is captured in its outcome and the rest proceed.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) []Outcome {
	tenants, err := s.tenants.List(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to list tenants, tick skipped: %v", err)
		return nil
	}
	if len(tenants) == 0 {
		return nil
	}

	outcomes := make([]Outcome, len(tenants))
	var eg errgroup.Group
	eg.SetLimit(s.concurrency)

	for i := range tenants {
		eg.Go(func() error {
			outcomes[i].TenantID = tenants[i].ID
			defer func() {
				if r := recover(); r != nil {
					outcomes[i].Err = fmt.Errorf("tenant %s panicked: %v", tenants[i].ID, r)
					lgr.Printf("[ERROR] recovered panic processing tenant %s: %v", tenants[i].ID, r)
				}
			}()
			outcomes[i] = s.processTenant(ctx, tenants[i], now)
			return nil
		})
	}
	_ = eg.Wait() // workers never return errors, failures live in outcomes

	for _, out := range outcomes {
		if out.Err != nil {
			lgr.Printf("[WARN] tick failed for tenant %s: %v", out.TenantID, out.Err)
		}
	}
	return outcomes
}

// processTenant resolves the tenant-local instant and delivers to every
// matching slot, then checks the weekly surprise drop.
func (s *Scheduler) processTenant(ctx context.Context, tenant domain.Tenant, now time.Time) Outcome {
	out := Outcome{TenantID: tenant.ID}

	res := schedule.Resolve(tenant.Timezone, now)
	if res.FallbackUsed {
		lgr.Printf("[WARN] tenant %s has invalid timezone %q, resolving against UTC", tenant.ID, tenant.Timezone)
	}

	if tenant.ActiveOn(res.Weekday) {
		for _, slot := range tenant.Slots {
			if slot != res.Clock || !tenant.HasSlot(slot) {
				continue
			}
			category := schedule.CategoryForSlot(slot, tenant.Cadence)
			key := "scheduled:" + tenant.ID + ":" + slot
			delivered, err := s.deliverSlot(ctx, &tenant, category, key)
			if err != nil {
				out.Err = err
				return out
			}
			if delivered {
				out.Delivered++
			} else {
				out.Skipped++
			}
		}
	}

	s.weeklyDrop(ctx, &tenant, res, &out)
	return out
}

// deliverSlot runs the gated delivery sequence for one slot: cooldown check,
// content selection, send, then history record and cooldown arm. Reports
// whether a message actually went out.
func (s *Scheduler) deliverSlot(ctx context.Context, tenant *domain.Tenant, category domain.Category, key string) (delivered bool, err error) {
	on, err := s.cooldowns.IsOnCooldown(ctx, key)
	if err != nil {
		return false, fmt.Errorf("cooldown check %s: %w", key, err)
	}
	if on {
		lgr.Printf("[DEBUG] slot %s on cooldown, skipped", key)
		return false, nil
	}

	item, err := s.selector.Select(ctx, provider.Request{TenantID: tenant.ID, Category: category})
	if err != nil {
		return false, fmt.Errorf("select %s content for tenant %s: %w", category, tenant.ID, err)
	}

	if err := s.notifier.Send(ctx, tenant.ChatID, item); err != nil {
		return false, fmt.Errorf("send to tenant %s: %w", tenant.ID, err)
	}

	s.afterDelivery(ctx, tenant, item, key, s.slotTTL)
	lgr.Printf("[INFO] delivered %s content %s to tenant %s (%s)", category, item.ID, tenant.ID, key)
	return true, nil
}

// weeklyDrop handles the once-a-week random delivery. The slot is drawn and
// persisted when the tenant-local ISO week rolls over, then fires when the
// local weekday and clock match it. Failures are recorded in the outcome
// only when a delivery was actually due.
func (s *Scheduler) weeklyDrop(ctx context.Context, tenant *domain.Tenant, res schedule.Resolution, out *Outcome) {
	week := schedule.WeekKey(res.Local)

	ws, err := s.weekly.Get(ctx, tenant.ID)
	if err != nil {
		lgr.Printf("[WARN] failed to get weekly slot for tenant %s: %v", tenant.ID, err)
		return
	}

	if ws == nil || ws.Week != week {
		day, slot := schedule.RandomSlot()
		ws = &domain.WeeklySlot{TenantID: tenant.ID, Week: week, Day: day, Slot: slot}
		if err := s.weekly.Set(ctx, ws); err != nil {
			lgr.Printf("[WARN] failed to persist weekly slot for tenant %s: %v", tenant.ID, err)
			return
		}
		lgr.Printf("[INFO] weekly slot for tenant %s drawn: %s day %d at %s", tenant.ID, week, day, slot)
	}

	if ws.Day != res.Weekday || ws.Slot != res.Clock {
		return
	}

	key := "scheduled:" + tenant.ID + ":weekly"
	delivered, err := s.deliverSlot(ctx, tenant, domain.CategoryMotivation, key)
	if err != nil {
		if out.Err == nil {
			out.Err = err
		}
		return
	}
	if delivered {
		out.Delivered++
	} else {
		out.Skipped++
	}
}
