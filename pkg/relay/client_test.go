package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	var got smsPayload
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(time.Second)
	err := client.Send(context.Background(), ts.URL, "+15615551234", "hello from the mesh")
	require.NoError(t, err)
	assert.Equal(t, "+15615551234", got.To)
	assert.Equal(t, "hello from the mesh", got.Body)
}

func TestClient_SendNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer ts.Close()

	client := NewClient(time.Second)
	err := client.Send(context.Background(), ts.URL, "+15615551234", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_SendTransportError(t *testing.T) {
	client := NewClient(100 * time.Millisecond)
	err := client.Send(context.Background(), "http://127.0.0.1:1", "+15615551234", "hello")
	assert.Error(t, err)
}

func TestClient_SendUnconfigured(t *testing.T) {
	client := NewClient(time.Second)

	err := client.Send(context.Background(), "", "+15615551234", "hello")
	assert.Error(t, err, "missing endpoint")

	err = client.Send(context.Background(), "https://example.com", "", "hello")
	assert.Error(t, err, "missing destination")
}

func TestMatchBody(t *testing.T) {
	dating := MatchBody("dating", "Sarah", "Age 27 • Yoga, Coffee", "12m away")
	assert.Equal(t, "🐸 NiceFrog: Sarah (Age 27 • Yoga, Coffee) is 12m away. Open the app to connect!", dating)

	market := MatchBody("marketplace", "Vintage Lamp", "Furniture • $45", "120m away")
	assert.Equal(t, "🐸 NiceFrog: Vintage Lamp - Furniture • $45 is 120m away. Open the app to see it!", market)
}

func TestMessageBody(t *testing.T) {
	body := MessageBody("Chloe B.", "is the lamp still available?")
	assert.Equal(t, `🐸 NiceFrog: New message from Chloe B.: "is the lamp still available?"`, body)
}

func TestMessageBody_TruncatesPreview(t *testing.T) {
	long := "this preview is much longer than fifty characters and must be cut short"
	body := MessageBody("Chloe B.", long)
	assert.Contains(t, body, `"this preview is much longer than fifty characters "`)
	assert.NotContains(t, body, "cut short")
}

func TestVerificationBody(t *testing.T) {
	assert.Equal(t, "Your NiceFrog verification code is: 123456", VerificationBody("123456"))
}
