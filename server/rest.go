package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/cheerbot/pkg/domain"
	"github.com/umputun/cheerbot/pkg/provider"
	"github.com/umputun/cheerbot/pkg/schedule"
	"github.com/umputun/cheerbot/pkg/scheduler"
)

// tenantJSON is the wire form of a tenant config.
type tenantJSON struct {
	ID         string    `json:"id"`
	ChatID     int64     `json:"chat_id"`
	Timezone   string    `json:"timezone"`
	Cadence    int       `json:"cadence"`
	Days       []int     `json:"days"`
	Slots      []string  `json:"slots"`
	Contextual bool      `json:"contextual"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

func toTenantJSON(t *domain.Tenant) tenantJSON {
	return tenantJSON{
		ID:         t.ID,
		ChatID:     t.ChatID,
		Timezone:   t.Timezone,
		Cadence:    t.Cadence,
		Days:       t.Days,
		Slots:      t.Slots,
		Contextual: t.Contextual,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// listTenantsHandler returns all tenant configs
func (s *Server) listTenantsHandler(w http.ResponseWriter, r *http.Request) {
	tenants, err := s.tenants.List(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to list tenants: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	res := make([]tenantJSON, 0, len(tenants))
	for i := range tenants {
		res = append(res, toTenantJSON(&tenants[i]))
	}
	renderJSON(w, r, http.StatusOK, res)
}

// getTenantHandler returns a single tenant config
func (s *Server) getTenantHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	tenant, err := s.tenants.Get(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to get tenant %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if tenant == nil {
		renderError(w, r, fmt.Errorf("tenant %s not found", id), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, toTenantJSON(tenant))
}

// upsertTenantHandler creates or replaces a tenant config
func (s *Server) upsertTenantHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req tenantJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	tenant := domain.Tenant{
		ID:         id,
		ChatID:     req.ChatID,
		Timezone:   req.Timezone,
		Cadence:    req.Cadence,
		Days:       req.Days,
		Slots:      req.Slots,
		Contextual: req.Contextual,
	}
	if err := validateTenant(&tenant); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.tenants.Upsert(r.Context(), &tenant); err != nil {
		log.Printf("[ERROR] failed to upsert tenant %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	saved, err := s.tenants.Get(r.Context(), id)
	if err != nil || saved == nil {
		log.Printf("[ERROR] failed to reload tenant %s after upsert: %v", id, err)
		renderError(w, r, fmt.Errorf("failed to reload tenant"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toTenantJSON(saved))
}

// validateTenant enforces the config surface rules: a sane chat target,
// cadence matched by the slot count, well-formed slot times and ISO
// weekdays. The scheduler itself stays tolerant of whatever is stored.
func validateTenant(t *domain.Tenant) error {
	if t.ChatID == 0 {
		return fmt.Errorf("chat_id is required")
	}
	if t.Cadence != 2 && t.Cadence != schedule.CadenceExtended {
		return fmt.Errorf("cadence must be 2 or 3, got %d", t.Cadence)
	}
	if len(t.Slots) != t.Cadence {
		return fmt.Errorf("expected %d slots for cadence %d, got %d", t.Cadence, t.Cadence, len(t.Slots))
	}
	for _, slot := range t.Slots {
		if !schedule.ValidSlotTime(slot) {
			return fmt.Errorf("invalid slot time %q, expected zero-padded HH:MM", slot)
		}
	}
	if len(t.Days) == 0 {
		return fmt.Errorf("at least one active day is required")
	}
	for _, day := range t.Days {
		if day < 1 || day > 7 {
			return fmt.Errorf("invalid weekday %d, expected 1..7", day)
		}
	}
	return nil
}

// deleteTenantHandler removes a tenant config
func (s *Server) deleteTenantHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.tenants.Delete(r.Context(), id); err != nil {
		log.Printf("[ERROR] failed to delete tenant %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"deleted": id})
}

// sendNowHandler triggers an immediate delivery for a tenant, off-schedule
func (s *Server) sendNowHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	category := domain.Category(r.URL.Query().Get("category"))

	item, err := s.commander.SendNow(r.Context(), id, category)
	if err != nil {
		var cdErr *scheduler.OnCooldownError
		switch {
		case errors.Is(err, scheduler.ErrUnknownTenant):
			renderError(w, r, err, http.StatusNotFound)
		case errors.As(err, &cdErr):
			w.Header().Set("Retry-After", strconv.Itoa(int(cdErr.Remaining.Seconds())+1))
			renderError(w, r, err, http.StatusTooManyRequests)
		case errors.Is(err, provider.ErrNoContent):
			renderError(w, r, err, http.StatusServiceUnavailable)
		default:
			log.Printf("[ERROR] on-demand send failed for tenant %s: %v", id, err)
			renderError(w, r, err, http.StatusInternalServerError)
		}
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"tenant_id":  id,
		"content_id": item.ID,
		"category":   item.Category,
		"provider":   item.Provider,
	})
}

// listCooldownsHandler returns active cooldown entries for diagnostics
func (s *Server) listCooldownsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		val, err := strconv.Atoi(limitStr)
		if err != nil || val < 0 {
			renderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = val
	}

	entries, err := s.cooldowns.ListActive(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] failed to list cooldowns: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, entries)
}

// resetCooldownsHandler removes every cooldown in a tenant's namespace
func (s *Server) resetCooldownsHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	removed, err := s.cooldowns.DeleteTenant(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to reset cooldowns for tenant %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"tenant_id": id, "removed": removed})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
