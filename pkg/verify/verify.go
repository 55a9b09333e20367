// Package verify implements the simulated phone verification flow: a random
// 6-digit code generated locally, optionally texted through the relay
// webhook, then compared against user input. No telephony provider is ever
// contacted directly.
package verify

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/relay"
)

// Relay delivers the verification text, best effort
type Relay interface {
	Send(ctx context.Context, endpoint, to, body string) error
}

// Service issues and checks verification codes, one pending code per phone
// number. Codes expire and are consumed on successful confirmation.
type Service struct {
	relay Relay
	ttl   time.Duration

	mu    sync.Mutex
	codes map[string]pendingCode

	now     func() time.Time // test hook
	genCode func() string    // test hook
}

type pendingCode struct {
	code    string
	expires time.Time
}

// New creates a verification service. A nil relay disables code texting;
// the flow still works since the issued code is returned to the caller.
func New(rly Relay, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = 10 * time.Minute
	}
	return &Service{
		relay:   rly,
		ttl:     ttl,
		codes:   make(map[string]pendingCode),
		now:     time.Now,
		genCode: func() string { return fmt.Sprintf("%06d", rand.IntN(900000)+100000) },
	}
}

// Start issues a fresh code for the number, replacing any pending one, and
// texts it through the webhook when one is configured. Delivery failure is
// logged and ignored. Returns the issued code so a demo surface can show it.
func (s *Service) Start(ctx context.Context, phoneNumber, webhookURL string) string {
	code := s.genCode()

	s.mu.Lock()
	s.codes[phoneNumber] = pendingCode{code: code, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()

	if s.relay != nil && webhookURL != "" {
		body := relay.VerificationBody(code)
		retrier := repeater.NewBackoff(3, 500*time.Millisecond, repeater.WithMaxDelay(5*time.Second))
		if err := retrier.Do(ctx, func() error { return s.relay.Send(ctx, webhookURL, phoneNumber, body) }); err != nil {
			log.Printf("[WARN] failed to text verification code to %s: %v", phoneNumber, err)
		}
	}

	return code
}

// Confirm checks the submitted code. A match consumes the pending code;
// expired or mismatched codes leave it in place for another attempt.
func (s *Service) Confirm(phoneNumber, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.codes[phoneNumber]
	if !ok {
		return false
	}
	if s.now().After(pending.expires) {
		delete(s.codes, phoneNumber)
		return false
	}
	if pending.code != code {
		return false
	}
	delete(s.codes, phoneNumber)
	return true
}
