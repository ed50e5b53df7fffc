// Package server provides the admin HTTP surface: tenant configuration,
// on-demand sends, and cooldown diagnostics.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/cheerbot/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/tenant_store.go -pkg mocks -skip-ensure -fmt goimports . TenantStore
//go:generate moq -out mocks/cooldown_store.go -pkg mocks -skip-ensure -fmt goimports . CooldownStore
//go:generate moq -out mocks/commander.go -pkg mocks -skip-ensure -fmt goimports . Commander

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	tenants   TenantStore
	cooldowns CooldownStore
	commander Commander
	version   string
	debug     bool
	startedAt time.Time

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// TenantStore interface for tenant configuration operations
type TenantStore interface {
	Get(ctx context.Context, id string) (*domain.Tenant, error)
	List(ctx context.Context) ([]domain.Tenant, error)
	Upsert(ctx context.Context, t *domain.Tenant) error
	Delete(ctx context.Context, id string) error
}

// CooldownStore interface for cooldown diagnostics and admin resets
type CooldownStore interface {
	ListActive(ctx context.Context, limit int) ([]domain.CooldownEntry, error)
	DeleteTenant(ctx context.Context, tenantID string) (int, error)
}

// Commander interface for on-demand delivery
type Commander interface {
	SendNow(ctx context.Context, tenantID string, category domain.Category) (domain.ContentItem, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, tenants TenantStore, cooldowns CooldownStore, commander Commander, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		tenants:   tenants,
		cooldowns: cooldowns,
		commander: commander,
		version:   version,
		debug:     debug,
		startedAt: time.Now(),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("cheerbot", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 64)) // 64K, config payloads are small
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /tenants", s.listTenantsHandler)
		r.HandleFunc("GET /tenants/{id}", s.getTenantHandler)
		r.HandleFunc("POST /tenants/{id}", s.upsertTenantHandler)
		r.HandleFunc("DELETE /tenants/{id}", s.deleteTenantHandler)
		r.HandleFunc("POST /tenants/{id}/now", s.sendNowHandler)

		r.HandleFunc("GET /cooldowns", s.listCooldownsHandler)
		r.HandleFunc("DELETE /cooldowns/{id}", s.resetCooldownsHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.startedAt).Truncate(time.Second).String(),
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}
