package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
	"github.com/kateryna-ts/NiceFrogbeta/pkg/relay"
	"github.com/kateryna-ts/NiceFrogbeta/pkg/repository"
)

// sanitizer strips any markup from user-supplied free text before it is
// stored or relayed
var sanitizer = bluemonday.StrictPolicy()

// decodeAndValidate parses the JSON body into v and runs struct validation
func decodeAndValidate(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body")
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid field %q", verrs[0].Field())
		}
		return fmt.Errorf("invalid request")
	}
	return nil
}

// profile

type updateProfileRequest struct {
	Username           string `json:"username" validate:"required,min=3,max=32"`
	FirstName          string `json:"first_name" validate:"max=64"`
	LastName           string `json:"last_name" validate:"max=64"`
	Bio                string `json:"bio" validate:"max=512"`
	Location           string `json:"location" validate:"max=128"`
	OnboardingComplete bool   `json:"onboarding_complete"`
}

// getProfileHandler returns the session user's profile
func (s *Server) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.GetUser(r.Context(), requestUserID(r))
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, fmt.Errorf("profile not found"), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get profile: %v", err)
		renderError(w, r, fmt.Errorf("failed to load profile"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toUserPayload(user))
}

// updateProfileHandler overwrites the mutable profile fields
func (s *Server) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req updateProfileRequest
	if err := decodeAndValidate(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	user, err := s.store.GetUser(ctx, requestUserID(r))
	if err != nil {
		renderError(w, r, fmt.Errorf("profile not found"), http.StatusNotFound)
		return
	}

	user.Username = req.Username
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Bio = sanitizer.Sanitize(req.Bio)
	user.Location = req.Location
	user.OnboardingComplete = req.OnboardingComplete

	if err := s.store.UpdateUser(ctx, user); err != nil {
		log.Printf("[ERROR] failed to update profile: %v", err)
		renderError(w, r, fmt.Errorf("failed to update profile"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toUserPayload(user))
}

// listings

type createListingRequest struct {
	Title       string `json:"title" validate:"required,max=128"`
	Price       string `json:"price" validate:"required,max=32"`
	Description string `json:"description" validate:"max=1024"`
	Distance    string `json:"distance" validate:"max=32"`
	Type        string `json:"type" validate:"required,oneof=FOR_SALE FOR_RENT SERVICES VEHICLES REAL_ESTATE"`
	BLEActive   bool   `json:"ble_active"`
}

// getListingsHandler returns listings newest first, optionally filtered by type
func (s *Server) getListingsHandler(w http.ResponseWriter, r *http.Request) {
	listingType := domain.ListingType(r.URL.Query().Get("type"))

	listings, err := s.store.GetListings(r.Context(), listingType, 0)
	if err != nil {
		log.Printf("[ERROR] failed to get listings: %v", err)
		renderError(w, r, fmt.Errorf("failed to load listings"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"listings": listings})
}

// getListingHandler returns one listing by id
func (s *Server) getListingHandler(w http.ResponseWriter, r *http.Request) {
	listing, err := s.store.GetListing(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, fmt.Errorf("listing not found"), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get listing: %v", err)
		renderError(w, r, fmt.Errorf("failed to load listing"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, listing)
}

// createListingHandler posts a new marketplace listing for the session user
func (s *Server) createListingHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createListingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	user, err := s.store.GetUser(ctx, requestUserID(r))
	if err != nil {
		renderError(w, r, fmt.Errorf("profile not found"), http.StatusNotFound)
		return
	}

	listing := &domain.Listing{
		ID:          uuid.New().String(),
		Title:       sanitizer.Sanitize(req.Title),
		Price:       req.Price,
		Description: sanitizer.Sanitize(req.Description),
		Distance:    req.Distance,
		Type:        domain.ListingType(req.Type),
		BLEActive:   req.BLEActive,
		UserName:    user.Username,
		CreatedAt:   time.Now(),
	}
	if listing.BLEActive {
		listing.BLEDeviceID = "NF-BEACON-" + listing.ID[:8]
	}

	if err := s.store.CreateListing(ctx, listing); err != nil {
		log.Printf("[ERROR] failed to create listing: %v", err)
		renderError(w, r, fmt.Errorf("failed to create listing"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, listing)
}

// datingProfilesHandler returns the simulated nearby people pool
func (s *Server) datingProfilesHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"profiles": datingProfiles})
}

// alert preferences

// getPreferencesHandler returns the current alert preference set
func (s *Server) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.engine.Preferences())
}

// updatePreferencesHandler replaces the whole preference set. The engine
// restarts or idles its polling based on whether anything is enabled.
func (s *Server) updatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var prefs domain.PreferenceSet
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	s.engine.ReplacePreferences(prefs)
	renderJSON(w, r, http.StatusOK, prefs)
}

// notifications

// getNotificationsHandler returns the history, newest first, with the unread count
func (s *Server) getNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"notifications": s.engine.Notifications(),
		"unread":        s.engine.UnreadCount(),
	})
}

// markNotificationsReadHandler flags the whole history read
func (s *Server) markNotificationsReadHandler(w http.ResponseWriter, r *http.Request) {
	s.engine.MarkAllRead()
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"unread": 0})
}

// getToastHandler returns the active toast, 204 when the slot is empty
func (s *Server) getToastHandler(w http.ResponseWriter, r *http.Request) {
	toast := s.engine.ActiveToast()
	if toast == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	renderJSON(w, r, http.StatusOK, toast)
}

// dismissToastHandler clears the toast slot
func (s *Server) dismissToastHandler(w http.ResponseWriter, r *http.Request) {
	s.engine.DismissToast()
	w.WriteHeader(http.StatusNoContent)
}

// phone relay settings

type startVerificationRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164"`
}

type confirmVerificationRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
}

// updatePhoneSettingsRequest is a partial update, nil fields keep the stored value
type updatePhoneSettingsRequest struct {
	WebhookURL      *string `json:"webhook_url,omitempty" validate:"omitempty,url"`
	NotifyOnAlert   *bool   `json:"notify_on_alert,omitempty"`
	NotifyOnMessage *bool   `json:"notify_on_message,omitempty"`
}

// getPhoneConfigHandler returns the stored relay configuration
func (s *Server) getPhoneConfigHandler(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.store.GetPhoneConfig(r.Context(), requestUserID(r))
	if err != nil {
		log.Printf("[ERROR] failed to get phone config: %v", err)
		renderError(w, r, fmt.Errorf("failed to load phone settings"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, cfg)
}

// updatePhoneSettingsHandler merges the submitted fields into the stored
// config and hands the result to the engine
func (s *Server) updatePhoneSettingsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := requestUserID(r)

	var req updatePhoneSettingsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	cfg, err := s.store.GetPhoneConfig(ctx, userID)
	if err != nil {
		log.Printf("[ERROR] failed to get phone config: %v", err)
		renderError(w, r, fmt.Errorf("failed to load phone settings"), http.StatusInternalServerError)
		return
	}

	if req.WebhookURL != nil {
		cfg.WebhookURL = *req.WebhookURL
	}
	if req.NotifyOnAlert != nil {
		cfg.NotifyOnAlert = *req.NotifyOnAlert
	}
	if req.NotifyOnMessage != nil {
		cfg.NotifyOnMessage = *req.NotifyOnMessage
	}

	if err := s.store.SavePhoneConfig(ctx, userID, cfg); err != nil {
		log.Printf("[ERROR] failed to save phone config: %v", err)
		renderError(w, r, fmt.Errorf("failed to save phone settings"), http.StatusInternalServerError)
		return
	}

	s.engine.SetPhoneConfig(cfg)
	renderJSON(w, r, http.StatusOK, cfg)
}

// startVerificationHandler issues a verification code for the number. The
// code is returned in the response so the demo surface can display it when no
// webhook is configured.
func (s *Server) startVerificationHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req startVerificationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	cfg, err := s.store.GetPhoneConfig(ctx, requestUserID(r))
	if err != nil {
		log.Printf("[ERROR] failed to get phone config: %v", err)
		renderError(w, r, fmt.Errorf("failed to load phone settings"), http.StatusInternalServerError)
		return
	}

	code := s.verifier.Start(ctx, req.PhoneNumber, cfg.WebhookURL)
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "sent", "code": code})
}

// confirmVerificationHandler checks the submitted code and on success marks
// the number verified, persists it and pushes the config to the engine
func (s *Server) confirmVerificationHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := requestUserID(r)

	var req confirmVerificationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if !s.verifier.Confirm(req.PhoneNumber, req.Code) {
		renderError(w, r, fmt.Errorf("invalid or expired code"), http.StatusUnauthorized)
		return
	}

	cfg, err := s.store.GetPhoneConfig(ctx, userID)
	if err != nil {
		log.Printf("[ERROR] failed to get phone config: %v", err)
		renderError(w, r, fmt.Errorf("failed to load phone settings"), http.StatusInternalServerError)
		return
	}

	cfg.PhoneNumber = req.PhoneNumber
	cfg.Verified = true

	if err := s.store.SavePhoneConfig(ctx, userID, cfg); err != nil {
		log.Printf("[ERROR] failed to save phone config: %v", err)
		renderError(w, r, fmt.Errorf("failed to save phone settings"), http.StatusInternalServerError)
		return
	}

	s.engine.SetPhoneConfig(cfg)
	log.Printf("[INFO] phone %s verified", cfg.PhoneNumber)
	renderJSON(w, r, http.StatusOK, cfg)
}

// wallet

type purchaseRequest struct {
	PackageID string `json:"package_id" validate:"required"`
}

// getWalletHandler returns the token balance
func (s *Server) getWalletHandler(w http.ResponseWriter, r *http.Request) {
	wallet, err := s.store.GetWallet(r.Context(), requestUserID(r))
	if err != nil {
		log.Printf("[ERROR] failed to get wallet: %v", err)
		renderError(w, r, fmt.Errorf("failed to load wallet"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, wallet)
}

// tokenPackagesHandler returns the purchasable bundles
func (s *Server) tokenPackagesHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"packages": tokenPackages})
}

// purchaseTokensHandler credits the selected bundle. The payment step is
// simulated, every purchase succeeds.
func (s *Server) purchaseTokensHandler(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := decodeAndValidate(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var pkg *domain.TokenPackage
	for i := range tokenPackages {
		if tokenPackages[i].ID == req.PackageID {
			pkg = &tokenPackages[i]
			break
		}
	}
	if pkg == nil {
		renderError(w, r, fmt.Errorf("unknown package"), http.StatusNotFound)
		return
	}

	wallet, err := s.store.AddTokens(r.Context(), requestUserID(r), pkg.Tokens)
	if err != nil {
		log.Printf("[ERROR] failed to credit tokens: %v", err)
		renderError(w, r, fmt.Errorf("purchase failed"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, wallet)
}

// chat

type postMessageRequest struct {
	Sender string `json:"sender" validate:"required,max=64"`
	Text   string `json:"text" validate:"required,max=1024"`
}

// postMessageHandler records an incoming chat message and, when the user has
// opted into message texts, relays a preview to their phone. Relay failures
// never affect the chat flow.
func (s *Server) postMessageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req postMessageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	sender := sanitizer.Sanitize(req.Sender)
	text := sanitizer.Sanitize(req.Text)

	cfg, err := s.store.GetPhoneConfig(ctx, requestUserID(r))
	if err != nil {
		log.Printf("[WARN] failed to get phone config for message relay: %v", err)
		cfg = nil
	}

	if cfg != nil && cfg.Verified && cfg.NotifyOnMessage && cfg.WebhookURL != "" && s.relay != nil {
		body := relay.MessageBody(sender, text)
		endpoint, to := cfg.WebhookURL, cfg.PhoneNumber
		s.relayWg.Add(1)
		go func() {
			defer s.relayWg.Done()
			if err := s.relay.Send(context.WithoutCancel(ctx), endpoint, to, body); err != nil {
				log.Printf("[WARN] message relay failed: %v", err)
			}
		}()
	}

	renderJSON(w, r, http.StatusCreated, map[string]interface{}{
		"id":        uuid.New().String(),
		"sender":    sender,
		"text":      text,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
