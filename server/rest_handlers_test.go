package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
	"github.com/kateryna-ts/NiceFrogbeta/pkg/repository"
)

func TestSignupHandler(t *testing.T) {
	m := newTestMocks()
	m.store.GetUserByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, repository.ErrNotFound
	}
	m.store.CreateUserFunc = func(ctx context.Context, u *domain.User) error { return nil }
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	body := `{"username":"froggy","email":"frog@pond.io","password":"secret1","location":"Lakeside"}`
	resp := doJSON(t, ts, http.MethodPost, "/api/v1/auth/signup", body, false)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var res authResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "froggy", res.User.Username)
	assert.NotEmpty(t, res.User.ID)

	require.Len(t, m.store.CreateUserCalls(), 1)
	created := m.store.CreateUserCalls()[0].U
	assert.Equal(t, "frog@pond.io", created.Email)
	assert.Equal(t, "Lakeside", created.Location)
}

func TestSignupHandler_DuplicateEmail(t *testing.T) {
	m := newTestMocks()
	m.store.GetUserByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: "user-1", Email: email}, nil
	}
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	body := `{"username":"froggy","email":"frog@pond.io","password":"secret1"}`
	resp := doJSON(t, ts, http.MethodPost, "/api/v1/auth/signup", body, false)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSignupHandler_Invalid(t *testing.T) {
	ts := httptest.NewServer(testServer(newTestMocks()).router)
	defer ts.Close()

	tests := []struct {
		name string
		body string
	}{
		{"not json", "nope"},
		{"missing email", `{"username":"froggy","password":"secret1"}`},
		{"bad email", `{"username":"froggy","email":"frog","password":"secret1"}`},
		{"short password", `{"username":"froggy","email":"frog@pond.io","password":"abc"}`},
		{"short username", `{"username":"ab","email":"frog@pond.io","password":"secret1"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, ts, http.MethodPost, "/api/v1/auth/signup", tt.body, false)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	m := newTestMocks()
	m.store.GetUserByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: "user-1", Email: email, Password: "secret1"}, nil
	}
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", `{"email":"frog@pond.io","password":"secret1"}`, false)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res authResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "token-user-1", res.Token)
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	m := newTestMocks()
	m.store.GetUserByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: "user-1", Email: email, Password: "secret1"}, nil
	}
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", `{"email":"frog@pond.io","password":"wrong"}`, false)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	m.store.GetUserByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, repository.ErrNotFound
	}
	resp = doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", `{"email":"who@pond.io","password":"secret1"}`, false)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileHandlers(t *testing.T) {
	m := newTestMocks()
	m.store.UpdateUserFunc = func(ctx context.Context, u *domain.User) error { return nil }
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/profile", "", true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile userPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))
	assert.Equal(t, "froggy", profile.Username)

	update := `{"username":"hopper","bio":"<script>x</script>pond life","onboarding_complete":true}`
	resp = doJSON(t, ts, http.MethodPut, "/api/v1/profile", update, true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, m.store.UpdateUserCalls(), 1)
	updated := m.store.UpdateUserCalls()[0].U
	assert.Equal(t, "hopper", updated.Username)
	assert.Equal(t, "pond life", updated.Bio, "markup stripped")
	assert.True(t, updated.OnboardingComplete)
}

func TestGetListingsHandler(t *testing.T) {
	m := newTestMocks()
	m.store.GetListingsFunc = func(ctx context.Context, listingType domain.ListingType, limit int) ([]domain.Listing, error) {
		return []domain.Listing{{ID: "1", Title: "Vintage Mid-Century Lamp"}}, nil
	}
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/listings?type=FOR_SALE", "", false)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res struct {
		Listings []domain.Listing `json:"listings"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Len(t, res.Listings, 1)
	assert.Equal(t, "Vintage Mid-Century Lamp", res.Listings[0].Title)

	require.Len(t, m.store.GetListingsCalls(), 1)
	assert.Equal(t, domain.ListingForSale, m.store.GetListingsCalls()[0].ListingType)
}

func TestGetListingHandler_NotFound(t *testing.T) {
	m := newTestMocks()
	m.store.GetListingFunc = func(ctx context.Context, id string) (*domain.Listing, error) {
		return nil, repository.ErrNotFound
	}
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/listings/nope", "", false)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateListingHandler(t *testing.T) {
	m := newTestMocks()
	m.store.CreateListingFunc = func(ctx context.Context, l *domain.Listing) error { return nil }
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	body := `{"title":"<b>Fender Stratocaster</b>","price":"$850","description":"Mint condition.","distance":"85m away","type":"FOR_SALE","ble_active":true}`
	resp := doJSON(t, ts, http.MethodPost, "/api/v1/listings", body, true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.Len(t, m.store.CreateListingCalls(), 1)
	created := m.store.CreateListingCalls()[0].L
	assert.Equal(t, "Fender Stratocaster", created.Title, "markup stripped")
	assert.Equal(t, "froggy", created.UserName, "attributed to the session user")
	assert.True(t, created.BLEActive)
	assert.Contains(t, created.BLEDeviceID, "NF-BEACON-")
}

func TestCreateListingHandler_BadType(t *testing.T) {
	ts := httptest.NewServer(testServer(newTestMocks()).router)
	defer ts.Close()

	body := `{"title":"Thing","price":"$1","type":"GARAGE_SALE"}`
	resp := doJSON(t, ts, http.MethodPost, "/api/v1/listings", body, true)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDatingProfilesHandler(t *testing.T) {
	ts := httptest.NewServer(testServer(newTestMocks()).router)
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/dating/profiles", "", false)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res struct {
		Profiles []domain.DatingProfile `json:"profiles"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Len(t, res.Profiles, 3)
	assert.Equal(t, "Sarah", res.Profiles[0].Name)
}

func TestPreferencesHandlers(t *testing.T) {
	var replaced domain.PreferenceSet
	m := newTestMocks()
	m.engine.ReplacePreferencesFunc = func(prefs domain.PreferenceSet) { replaced = prefs }
	m.engine.PreferencesFunc = func() domain.PreferenceSet { return replaced }
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	body := `{"dating":{"enabled":true,"radius_meters":100,"notify_via":["inApp","push"],"age_min":25,"age_max":30,"interests":["Tech"]}}`
	resp := doJSON(t, ts, http.MethodPut, "/api/v1/preferences", body, true)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, replaced.Dating)
	assert.True(t, replaced.Dating.Enabled)
	assert.Equal(t, 25, replaced.Dating.AgeMin)
	assert.True(t, replaced.Dating.HasChannel(domain.ChannelPush))
	assert.Nil(t, replaced.Marketplace)

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/preferences", "", true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.PreferenceSet
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.NotNil(t, got.Dating)
	assert.Equal(t, []string{"Tech"}, got.Dating.Interests)
}

func TestNotificationsHandlers(t *testing.T) {
	m := newTestMocks()
	m.engine.NotificationsFunc = func() []domain.ProximityNotification {
		return []domain.ProximityNotification{{ID: "n2", MatchName: "Sarah"}, {ID: "n1", MatchName: "James", Read: true}}
	}
	m.engine.UnreadCountFunc = func() int { return 1 }
	m.engine.MarkAllReadFunc = func() {}
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/notifications", "", true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res struct {
		Notifications []domain.ProximityNotification `json:"notifications"`
		Unread        int                            `json:"unread"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Len(t, res.Notifications, 2)
	assert.Equal(t, "Sarah", res.Notifications[0].MatchName)
	assert.Equal(t, 1, res.Unread)

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/notifications/read", "", true)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, m.engine.MarkAllReadCalls(), 1)
}

func TestToastHandlers(t *testing.T) {
	m := newTestMocks()
	m.engine.ActiveToastFunc = func() *domain.ProximityNotification { return nil }
	m.engine.DismissToastFunc = func() {}
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/toast", "", true)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "empty slot")

	m.engine.ActiveToastFunc = func() *domain.ProximityNotification {
		return &domain.ProximityNotification{ID: "n1", MatchName: "Sarah", Distance: "12m away"}
	}
	resp = doJSON(t, ts, http.MethodGet, "/api/v1/toast", "", true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var toast domain.ProximityNotification
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&toast))
	assert.Equal(t, "Sarah", toast.MatchName)

	resp = doJSON(t, ts, http.MethodDelete, "/api/v1/toast", "", true)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Len(t, m.engine.DismissToastCalls(), 1)
}

func TestPhoneSettingsHandler_PartialMerge(t *testing.T) {
	stored := &domain.PhoneConfig{PhoneNumber: "+15615551234", Verified: true, NotifyOnAlert: true, NotifyOnMessage: true}
	m := newTestMocks()
	m.store.GetPhoneConfigFunc = func(ctx context.Context, userID string) (*domain.PhoneConfig, error) {
		cfg := *stored
		return &cfg, nil
	}
	m.store.SavePhoneConfigFunc = func(ctx context.Context, userID string, cfg *domain.PhoneConfig) error {
		stored = cfg
		return nil
	}
	m.engine.SetPhoneConfigFunc = func(cfg *domain.PhoneConfig) {}
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodPut, "/api/v1/phone/settings", `{"webhook_url":"https://example.twil.io/send-sms"}`, true)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "https://example.twil.io/send-sms", stored.WebhookURL)
	assert.True(t, stored.NotifyOnAlert, "untouched field kept")
	assert.True(t, stored.Verified, "untouched field kept")

	resp = doJSON(t, ts, http.MethodPut, "/api/v1/phone/settings", `{"notify_on_alert":false}`, true)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, stored.NotifyOnAlert)
	assert.Equal(t, "https://example.twil.io/send-sms", stored.WebhookURL, "untouched field kept")

	require.Len(t, m.engine.SetPhoneConfigCalls(), 2, "engine sees every update")
}

func TestVerificationHandlers(t *testing.T) {
	stored := &domain.PhoneConfig{WebhookURL: "https://example.twil.io/send-sms", NotifyOnAlert: true, NotifyOnMessage: true}
	m := newTestMocks()
	m.store.GetPhoneConfigFunc = func(ctx context.Context, userID string) (*domain.PhoneConfig, error) {
		cfg := *stored
		return &cfg, nil
	}
	m.store.SavePhoneConfigFunc = func(ctx context.Context, userID string, cfg *domain.PhoneConfig) error {
		stored = cfg
		return nil
	}
	m.engine.SetPhoneConfigFunc = func(cfg *domain.PhoneConfig) {}
	m.verifier.StartFunc = func(ctx context.Context, phoneNumber, webhookURL string) string { return "123456" }
	m.verifier.ConfirmFunc = func(phoneNumber, code string) bool { return code == "123456" }
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/phone/verify", `{"phone_number":"+15615551234"}`, true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "123456", res["code"])

	require.Len(t, m.verifier.StartCalls(), 1)
	assert.Equal(t, "https://example.twil.io/send-sms", m.verifier.StartCalls()[0].WebhookURL, "stored webhook passed through")

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/phone/verify/confirm", `{"phone_number":"+15615551234","code":"999999"}`, true)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "wrong code rejected")
	assert.False(t, stored.Verified)

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/phone/verify/confirm", `{"phone_number":"+15615551234","code":"123456"}`, true)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, stored.Verified)
	assert.Equal(t, "+15615551234", stored.PhoneNumber)
	require.Len(t, m.engine.SetPhoneConfigCalls(), 1)
	assert.True(t, m.engine.SetPhoneConfigCalls()[0].Cfg.Verified)
}

func TestWalletHandlers(t *testing.T) {
	m := newTestMocks()
	m.store.GetWalletFunc = func(ctx context.Context, userID string) (*domain.Wallet, error) {
		return &domain.Wallet{UserID: userID, Balance: 847}, nil
	}
	m.store.AddTokensFunc = func(ctx context.Context, userID string, tokens int) (*domain.Wallet, error) {
		return &domain.Wallet{UserID: userID, Balance: 847 + tokens}, nil
	}
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/wallet", "", true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var wallet domain.Wallet
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&wallet))
	assert.Equal(t, 847, wallet.Balance)

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/wallet/purchase", `{"package_id":"popular"}`, true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&wallet))
	assert.Equal(t, 1347, wallet.Balance)

	require.Len(t, m.store.AddTokensCalls(), 1)
	assert.Equal(t, 500, m.store.AddTokensCalls()[0].Tokens)
}

func TestPurchaseHandler_UnknownPackage(t *testing.T) {
	ts := httptest.NewServer(testServer(newTestMocks()).router)
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/wallet/purchase", `{"package_id":"mega"}`, true)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTokenPackagesHandler(t *testing.T) {
	ts := httptest.NewServer(testServer(newTestMocks()).router)
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/wallet/packages", "", false)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res struct {
		Packages []domain.TokenPackage `json:"packages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Len(t, res.Packages, 4)
	assert.Equal(t, "starter", res.Packages[0].ID)
}

func TestPostMessageHandler_RelaysPreview(t *testing.T) {
	m := newTestMocks()
	m.store.GetPhoneConfigFunc = func(ctx context.Context, userID string) (*domain.PhoneConfig, error) {
		return &domain.PhoneConfig{
			PhoneNumber: "+15615551234", Verified: true,
			WebhookURL: "https://example.twil.io/send-sms", NotifyOnAlert: true, NotifyOnMessage: true,
		}, nil
	}
	m.relay.SendFunc = func(ctx context.Context, endpoint, to, body string) error { return nil }
	ts := httptest.NewServer(testServer(m).router)
	defer ts.Close()

	body := `{"sender":"Chloe B.","text":"is the lamp still available?"}`
	resp := doJSON(t, ts, http.MethodPost, "/api/v1/chat/messages", body, true)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.Eventually(t, func() bool { return len(m.relay.SendCalls()) == 1 },
		time.Second, 10*time.Millisecond, "message text goes out asynchronously")
	call := m.relay.SendCalls()[0]
	assert.Equal(t, "+15615551234", call.To)
	assert.Equal(t, `🐸 NiceFrog: New message from Chloe B.: "is the lamp still available?"`, call.Body)
}

func TestPostMessageHandler_NoRelayWithoutOptIn(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.PhoneConfig
	}{
		{"not verified", domain.PhoneConfig{PhoneNumber: "+15615551234", WebhookURL: "https://x.io/sms", NotifyOnMessage: true}},
		{"messages off", domain.PhoneConfig{PhoneNumber: "+15615551234", Verified: true, WebhookURL: "https://x.io/sms"}},
		{"no webhook", domain.PhoneConfig{PhoneNumber: "+15615551234", Verified: true, NotifyOnMessage: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMocks()
			m.store.GetPhoneConfigFunc = func(ctx context.Context, userID string) (*domain.PhoneConfig, error) {
				cfg := tt.cfg
				return &cfg, nil
			}
			m.relay.SendFunc = func(ctx context.Context, endpoint, to, body string) error {
				return fmt.Errorf("must not be called")
			}
			srv := testServer(m)
			ts := httptest.NewServer(srv.router)
			defer ts.Close()

			resp := doJSON(t, ts, http.MethodPost, "/api/v1/chat/messages", `{"sender":"Chloe B.","text":"hi"}`, true)
			resp.Body.Close()
			require.Equal(t, http.StatusCreated, resp.StatusCode)

			srv.relayWg.Wait()
			assert.Empty(t, m.relay.SendCalls())
		})
	}
}

func TestPostMessageHandler_SanitizesText(t *testing.T) {
	ts := httptest.NewServer(testServer(newTestMocks()).router)
	defer ts.Close()

	body := `{"sender":"Chloe B.","text":"<script>alert(1)</script>hello"}`
	resp := doJSON(t, ts, http.MethodPost, "/api/v1/chat/messages", body, true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var res map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "hello", res["text"])
}
