package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.IssueToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestService_ExpiredToken(t *testing.T) {
	svc := New("test-secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.IssueToken("user-123")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

func TestService_WrongSecret(t *testing.T) {
	token, err := New("secret-one", time.Hour).IssueToken("user-123")
	require.NoError(t, err)

	_, err = New("secret-two", time.Hour).ParseToken(token)
	assert.Error(t, err)
}

func TestService_Garbage(t *testing.T) {
	svc := New("test-secret", time.Hour)
	_, err := svc.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestService_GeneratedSecret(t *testing.T) {
	svc := New("", time.Hour)
	token, err := svc.IssueToken("user-123")
	require.NoError(t, err)

	userID, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}
