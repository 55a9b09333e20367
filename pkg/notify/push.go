// Package notify emits platform push notifications behind a permission gate.
// There is no real push transport in the simulated mesh; the default emitter
// logs the delivery, and a custom emitter can be injected for other surfaces.
package notify

import (
	"fmt"
	"log"
	"sync"
)

// Permission mirrors the platform notification permission states
type Permission string

// permission states
const (
	PermissionDefault Permission = "default" // not yet requested
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// PushSender delivers push notifications when permission was granted.
// Nil-safe: a nil sender reports not-granted and drops pushes.
type PushSender struct {
	mu         sync.Mutex
	permission Permission
	emit       func(title, body string) error
}

// NewPushSender creates a sender with the given emitter. A nil emitter
// falls back to logging deliveries.
func NewPushSender(emit func(title, body string) error) *PushSender {
	if emit == nil {
		emit = func(title, body string) error {
			log.Printf("[INFO] push: %s - %s", title, body)
			return nil
		}
	}
	return &PushSender{permission: PermissionDefault, emit: emit}
}

// RequestPermission asks for (and in the simulation always receives)
// notification permission. A prior denial sticks.
func (s *PushSender) RequestPermission() Permission {
	if s == nil {
		return PermissionDenied
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.permission == PermissionDefault {
		s.permission = PermissionGranted
	}
	return s.permission
}

// SetPermission overrides the permission state, mostly for tests
func (s *PushSender) SetPermission(p Permission) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.permission = p
}

// Granted reports whether pushes may be emitted
func (s *PushSender) Granted() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permission == PermissionGranted
}

// Push emits one notification. Returns an error when permission is missing
// or the emitter fails; callers are expected to swallow it.
func (s *PushSender) Push(title, body string) error {
	if s == nil {
		return fmt.Errorf("push sender not configured")
	}
	if !s.Granted() {
		return fmt.Errorf("push permission not granted")
	}
	return s.emit(title, body)
}
