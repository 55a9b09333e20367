// Package engine implements the proximity alert engine: a polling loop that
// draws simulated nearby candidates, evaluates them against the user's alert
// preferences and fans matches out to the in-app history, the transient toast
// slot and the optional push/SMS side channels.
package engine

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
	"github.com/kateryna-ts/NiceFrogbeta/pkg/relay"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source
//go:generate moq -out mocks/relay.go -pkg mocks -skip-ensure -fmt goimports . Relay
//go:generate moq -out mocks/pusher.go -pkg mocks -skip-ensure -fmt goimports . Pusher

// Source supplies nearby candidates, one per call
type Source interface {
	Next() domain.Candidate
}

// Relay dispatches an outbound text through a user-supplied webhook
type Relay interface {
	Send(ctx context.Context, endpoint, to, body string) error
}

// Pusher emits platform push notifications when permission was granted
type Pusher interface {
	Granted() bool
	Push(title, body string) error
}

// Params holds engine dependencies and tunables
type Params struct {
	Source       Source
	Relay        Relay  // optional, SMS side channel disabled when nil
	Pusher       Pusher // optional, push channel disabled when nil
	PollInterval time.Duration
	ToastDwell   time.Duration
}

// Engine owns the preference set, notification history, unread bookkeeping
// and the active toast slot for one local profile. All mutable state is
// guarded by a single mutex; ticks and consumer calls may come from
// different goroutines.
type Engine struct {
	source       Source
	relay        Relay
	pusher       Pusher
	pollInterval time.Duration
	toastDwell   time.Duration

	mu         sync.Mutex
	prefs      domain.PreferenceSet
	phone      *domain.PhoneConfig
	history    []domain.ProximityNotification // newest first
	toast      *domain.ProximityNotification
	toastGen   uint64 // invalidates pending auto-dismiss timers
	toastTimer *time.Timer
	started    bool
	baseCtx    context.Context
	pollCancel context.CancelFunc

	// workerMu serializes the cancel-wait-rearm sequence in Start, Stop and
	// ReplacePreferences so two concurrent replacements cannot leave an
	// orphaned poll worker behind. Never taken by the worker itself.
	workerMu sync.Mutex

	pollWg sync.WaitGroup // poll worker only
	sideWg sync.WaitGroup // fire-and-forget relay calls
}

// NewEngine creates an engine with the given collaborators. Polling does not
// begin until Start is called and at least one enabled preference is set.
func NewEngine(params Params) *Engine {
	if params.PollInterval == 0 {
		params.PollInterval = 12 * time.Second
	}
	if params.ToastDwell == 0 {
		params.ToastDwell = 8 * time.Second
	}
	return &Engine{
		source:       params.Source,
		relay:        params.Relay,
		pusher:       params.Pusher,
		pollInterval: params.PollInterval,
		toastDwell:   params.ToastDwell,
	}
}

// Start makes the engine live. If enabled preferences are already present
// the poll worker is armed immediately.
func (e *Engine) Start(ctx context.Context) {
	e.workerMu.Lock()
	defer e.workerMu.Unlock()

	e.mu.Lock()
	e.started = true
	e.baseCtx = ctx
	active := e.prefs.Active() && e.pollCancel == nil
	e.mu.Unlock()

	if active {
		e.armWorker()
	}
	log.Printf("[INFO] proximity engine started, poll interval %v, toast dwell %v", e.pollInterval, e.toastDwell)
}

// Stop tears the engine down: the poll worker and any pending toast timer
// are cancelled, in-flight relay calls are drained.
func (e *Engine) Stop() {
	e.workerMu.Lock()
	defer e.workerMu.Unlock()

	e.mu.Lock()
	e.started = false
	cancel := e.pollCancel
	e.pollCancel = nil
	if e.toastTimer != nil {
		e.toastTimer.Stop()
		e.toastTimer = nil
	}
	e.toastGen++
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.pollWg.Wait()
	e.sideWg.Wait()
	log.Printf("[INFO] proximity engine stopped")
}

// ReplacePreferences atomically overwrites the whole preference set. The
// running poll worker is always torn down first so a superseded set can
// never produce ghost ticks; a new worker is armed only if the replacement
// contains at least one enabled alert. Concurrent replacements are
// serialized. No validation is performed here, degenerate rules (inverted
// age range, empty interest set) simply never match.
func (e *Engine) ReplacePreferences(prefs domain.PreferenceSet) {
	e.workerMu.Lock()
	defer e.workerMu.Unlock()

	e.mu.Lock()
	e.prefs = prefs
	cancel := e.pollCancel
	e.pollCancel = nil
	arm := e.started && prefs.Active()
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.pollWg.Wait() // stale ticker must be gone before a new one is armed

	if arm {
		e.armWorker()
		log.Printf("[DEBUG] preferences replaced, polling active")
		return
	}
	log.Printf("[DEBUG] preferences replaced, polling idle")
}

// Preferences returns the current preference set
func (e *Engine) Preferences() domain.PreferenceSet {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prefs
}

// SetPhoneConfig updates the SMS relay configuration used by the side channel
func (e *Engine) SetPhoneConfig(cfg *domain.PhoneConfig) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.phone = cfg
}

// Notifications returns a copy of the history, newest first
func (e *Engine) Notifications() []domain.ProximityNotification {
	e.mu.Lock()
	defer e.mu.Unlock()
	res := make([]domain.ProximityNotification, len(e.history))
	copy(res, e.history)
	return res
}

// ActiveToast returns the current toast or nil
func (e *Engine) ActiveToast() *domain.ProximityNotification {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.toast == nil {
		return nil
	}
	t := *e.toast
	return &t
}

// DismissToast clears the toast slot and cancels the pending auto-dismiss
func (e *Engine) DismissToast() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clearToastLocked()
}

// UnreadCount returns the number of unread history entries
func (e *Engine) UnreadCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	count := 0
	for _, n := range e.history {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAllRead flags every history entry read in one pass. The active toast
// is unaffected. Idempotent.
func (e *Engine) MarkAllRead() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.history {
		e.history[i].Read = true
	}
}

// armWorker starts the poll goroutine. Callers hold workerMu and guarantee
// no worker is live.
func (e *Engine) armWorker() {
	e.mu.Lock()
	ctx, cancel := context.WithCancel(e.baseCtx)
	e.pollCancel = cancel
	e.mu.Unlock()

	e.pollWg.Add(1)
	go e.pollWorker(ctx)
}

// pollWorker fires the matching tick on a fixed cadence until cancelled
func (e *Engine) pollWorker(ctx context.Context) {
	defer e.pollWg.Done()

	ticker := time.NewTicker(e.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.tick(ctx)
		}
	}
}

// tick draws one candidate, evaluates preferences in stable order and fans
// the first match out. At most one notification per tick.
func (e *Engine) tick(ctx context.Context) {
	candidate := e.source.Next()

	e.mu.Lock()
	matched, ok := firstMatch(e.prefs, candidate)
	if !ok {
		e.mu.Unlock()
		return
	}

	display := candidate.Display()
	notif := domain.ProximityNotification{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		AlertKind: matched.Kind(),
		MatchName: display.Name,
		Detail:    display.Detail,
		Distance:  display.Distance,
		Initial:   display.Initial,
		Color:     display.Color,
	}

	// (a) history, (b) toast: in-app delivery never depends on side channels
	e.history = append([]domain.ProximityNotification{notif}, e.history...)
	e.setToastLocked(notif)
	phone := e.phone
	e.mu.Unlock()

	log.Printf("[INFO] proximity match: %s (%s) via %s alert", notif.MatchName, notif.Distance, notif.AlertKind)

	// (c) platform push, best effort
	if matched.HasChannel(domain.ChannelPush) && e.pusher != nil && e.pusher.Granted() {
		if err := e.pusher.Push("NiceFrog Alert", display.Name+" is nearby! "+display.Detail); err != nil {
			log.Printf("[WARN] push delivery failed: %v", err)
		}
	}

	// (d) SMS relay, fire and forget. Detached from the worker context so a
	// preference replacement cannot abort an in-flight text mid-send.
	if phone.SMSEnabled() && e.relay != nil {
		body := relay.MatchBody(matched.Kind(), display.Name, display.Detail, display.Distance)
		sendCtx := context.WithoutCancel(ctx)
		e.sideWg.Add(1)
		go func() {
			defer e.sideWg.Done()
			if err := e.relay.Send(sendCtx, phone.WebhookURL, phone.PhoneNumber, body); err != nil {
				log.Printf("[WARN] sms relay failed: %v", err)
			}
		}()
	}
}

// setToastLocked replaces the toast slot and re-arms the auto-dismiss timer.
// The generation counter keeps a superseded timer from clearing a newer toast.
func (e *Engine) setToastLocked(n domain.ProximityNotification) {
	if e.toastTimer != nil {
		e.toastTimer.Stop()
	}
	e.toast = &n
	e.toastGen++
	gen := e.toastGen
	e.toastTimer = time.AfterFunc(e.toastDwell, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.toastGen == gen {
			e.toast = nil
			e.toastTimer = nil
		}
	})
}

func (e *Engine) clearToastLocked() {
	if e.toastTimer != nil {
		e.toastTimer.Stop()
		e.toastTimer = nil
	}
	e.toast = nil
	e.toastGen++
}
