// Package server exposes the REST API for the NiceFrog proximity mesh:
// simulated auth, the local profile, marketplace listings, alert preferences,
// the notification feed and the phone relay settings.
package server

import (
	"context"
	"encoding/json"
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

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine
//go:generate moq -out mocks/authenticator.go -pkg mocks -skip-ensure -fmt goimports . Authenticator
//go:generate moq -out mocks/verifier.go -pkg mocks -skip-ensure -fmt goimports . Verifier
//go:generate moq -out mocks/relay.go -pkg mocks -skip-ensure -fmt goimports . Relay

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	store    Store
	engine   Engine
	auth     Authenticator
	verifier Verifier
	relay    Relay
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
	relayWg    sync.WaitGroup
}

// Store persists profiles, listings, phone settings and the wallet
type Store interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, u *domain.User) error
	GetPhoneConfig(ctx context.Context, userID string) (*domain.PhoneConfig, error)
	SavePhoneConfig(ctx context.Context, userID string, cfg *domain.PhoneConfig) error
	CreateListing(ctx context.Context, l *domain.Listing) error
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	GetListings(ctx context.Context, listingType domain.ListingType, limit int) ([]domain.Listing, error)
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)
	AddTokens(ctx context.Context, userID string, tokens int) (*domain.Wallet, error)
}

// Engine is the proximity alert engine surface the API exposes
type Engine interface {
	ReplacePreferences(prefs domain.PreferenceSet)
	Preferences() domain.PreferenceSet
	SetPhoneConfig(cfg *domain.PhoneConfig)
	Notifications() []domain.ProximityNotification
	ActiveToast() *domain.ProximityNotification
	DismissToast()
	UnreadCount() int
	MarkAllRead()
}

// Authenticator issues and checks session tokens
type Authenticator interface {
	IssueToken(userID string) (string, error)
	ParseToken(token string) (string, error)
}

// Verifier runs the phone verification code flow
type Verifier interface {
	Start(ctx context.Context, phoneNumber, webhookURL string) string
	Confirm(phoneNumber, code string) bool
}

// Relay delivers outbound texts through the user's webhook
type Relay interface {
	Send(ctx context.Context, endpoint, to, body string) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, store Store, eng Engine, auth Authenticator, verifier Verifier, rly Relay, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		store:    store,
		engine:   eng,
		auth:     auth,
		verifier: verifier,
		relay:    rly,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
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

	s.relayWg.Wait() // drain in-flight message texts
	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("nicefrog", "kateryna-ts", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /auth/signup", s.signupHandler)
		r.HandleFunc("POST /auth/login", s.loginHandler)

		// read-only browse surfaces, no session required
		r.HandleFunc("GET /listings", s.getListingsHandler)
		r.HandleFunc("GET /listings/{id}", s.getListingHandler)
		r.HandleFunc("GET /dating/profiles", s.datingProfilesHandler)
		r.HandleFunc("GET /wallet/packages", s.tokenPackagesHandler)

		r.Group().Route(func(priv *routegroup.Bundle) {
			priv.Use(s.authMiddleware)

			priv.HandleFunc("GET /profile", s.getProfileHandler)
			priv.HandleFunc("PUT /profile", s.updateProfileHandler)

			priv.HandleFunc("POST /listings", s.createListingHandler)

			priv.HandleFunc("GET /preferences", s.getPreferencesHandler)
			priv.HandleFunc("PUT /preferences", s.updatePreferencesHandler)

			priv.HandleFunc("GET /notifications", s.getNotificationsHandler)
			priv.HandleFunc("POST /notifications/read", s.markNotificationsReadHandler)
			priv.HandleFunc("GET /toast", s.getToastHandler)
			priv.HandleFunc("DELETE /toast", s.dismissToastHandler)

			priv.HandleFunc("GET /phone", s.getPhoneConfigHandler)
			priv.HandleFunc("PUT /phone/settings", s.updatePhoneSettingsHandler)
			priv.HandleFunc("POST /phone/verify", s.startVerificationHandler)
			priv.HandleFunc("POST /phone/verify/confirm", s.confirmVerificationHandler)

			priv.HandleFunc("GET /wallet", s.getWalletHandler)
			priv.HandleFunc("POST /wallet/purchase", s.purchaseTokensHandler)

			priv.HandleFunc("POST /chat/messages", s.postMessageHandler)
		})
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
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
