package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
)

type ctxKey string

const userIDKey ctxKey = "userID"

var validate = validator.New()

// signupRequest is the simulated registration payload. The password is kept
// verbatim, there is no real credential store to protect.
type signupRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=32"`
	FirstName string `json:"first_name" validate:"max=64"`
	LastName  string `json:"last_name" validate:"max=64"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Location  string `json:"location" validate:"max=128"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *userPayload `json:"user"`
}

// userPayload is the profile shape returned to clients
type userPayload struct {
	ID                 string `json:"id"`
	Username           string `json:"username"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	Bio                string `json:"bio"`
	Location           string `json:"location"`
	JoinedAt           string `json:"joined_at"`
	OnboardingComplete bool   `json:"onboarding_complete"`
}

// signupHandler fabricates the local profile and issues a session token
func (s *Server) signupHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req signupRequest
	if err := decodeAndValidate(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if _, err := s.store.GetUserByEmail(ctx, req.Email); err == nil {
		renderError(w, r, fmt.Errorf("email already registered"), http.StatusConflict)
		return
	}

	user := userFromSignup(req)
	if err := s.store.CreateUser(ctx, user); err != nil {
		log.Printf("[ERROR] failed to create user: %v", err)
		renderError(w, r, fmt.Errorf("failed to create profile"), http.StatusInternalServerError)
		return
	}

	token, err := s.auth.IssueToken(user.ID)
	if err != nil {
		log.Printf("[ERROR] failed to issue token: %v", err)
		renderError(w, r, fmt.Errorf("failed to start session"), http.StatusInternalServerError)
		return
	}

	log.Printf("[INFO] profile created for %s", user.Username)
	renderJSON(w, r, http.StatusCreated, authResponse{Token: token, User: toUserPayload(user)})
}

// loginHandler checks the stored credentials and issues a fresh session token
func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil || user.Password != req.Password {
		renderError(w, r, fmt.Errorf("invalid credentials"), http.StatusUnauthorized)
		return
	}

	token, err := s.auth.IssueToken(user.ID)
	if err != nil {
		log.Printf("[ERROR] failed to issue token: %v", err)
		renderError(w, r, fmt.Errorf("failed to start session"), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, authResponse{Token: token, User: toUserPayload(user)})
}

// authMiddleware requires a valid bearer token and stashes the user id in the
// request context
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			renderError(w, r, fmt.Errorf("authorization required"), http.StatusUnauthorized)
			return
		}

		userID, err := s.auth.ParseToken(token)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid session"), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// requestUserID returns the user id placed by authMiddleware
func requestUserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

func userFromSignup(req signupRequest) *domain.User {
	return &domain.User{
		ID:        uuid.New().String(),
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Location:  req.Location,
		JoinedAt:  time.Now(),
	}
}

func toUserPayload(u *domain.User) *userPayload {
	return &userPayload{
		ID:                 u.ID,
		Username:           u.Username,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Email:              u.Email,
		Bio:                u.Bio,
		Location:           u.Location,
		JoinedAt:           u.JoinedAt.UTC().Format(time.RFC3339),
		OnboardingComplete: u.OnboardingComplete,
	}
}
