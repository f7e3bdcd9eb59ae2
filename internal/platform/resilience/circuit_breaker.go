package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker guards calls to one dependency. Errors for which neutral returns true
// (a missing row, a cancelled request) count as successes.
type CircuitBreaker struct {
	mu sync.Mutex

	cfg     CircuitBreakerConfig
	neutral func(error) bool
	onState func(from, to CircuitState)

	state       CircuitState
	failures    int
	openedAt    time.Time
	probes      int
	probePassed int
	now         func() time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig, neutral func(error) bool) *CircuitBreaker {
	if neutral == nil {
		neutral = func(error) bool { return false }
	}
	return &CircuitBreaker{
		cfg:     cfg.withDefaults(),
		neutral: neutral,
		state:   CircuitStateClosed,
		now:     time.Now,
	}
}

// OnStateChange registers a hook fired on every transition. It runs under the breaker lock
// and must not call back into the breaker.
func (b *CircuitBreaker) OnStateChange(fn func(from, to CircuitState)) {
	b.mu.Lock()
	b.onState = fn
	b.mu.Unlock()
}

// Execute runs fn unless the circuit rejects it, in which case ErrCircuitOpen is returned
// and fn is not called. A disabled breaker always calls fn.
func (b *CircuitBreaker) Execute(fn func() error) error {
	if !b.cfg.Enabled {
		return fn()
	}
	if err := b.allow(); err != nil {
		return err
	}

	err := fn()
	if err == nil || b.neutral(err) {
		b.recordSuccess()
	} else {
		b.recordFailure()
	}
	return err
}

func (b *CircuitBreaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		b.transition(CircuitStateHalfOpen)
	}
	if b.state == CircuitStateHalfOpen {
		if b.probes >= b.cfg.HalfOpenMaxReq {
			return ErrCircuitOpen
		}
		b.probes++
	}
	return nil
}

func (b *CircuitBreaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures = 0
	case CircuitStateHalfOpen:
		b.probes = max(b.probes-1, 0)
		b.probePassed++
		if b.probePassed >= b.cfg.HalfOpenMaxReq && b.probes == 0 {
			b.transition(CircuitStateClosed)
		}
	}
}

func (b *CircuitBreaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.transition(CircuitStateOpen)
		}
	case CircuitStateHalfOpen:
		b.transition(CircuitStateOpen)
	case CircuitStateOpen:
		b.openedAt = b.now()
	}
}

// State reports the effective state: an open circuit past its timeout reads as half open.
func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) transition(to CircuitState) {
	from := b.state
	b.state = to
	b.failures = 0
	b.probes = 0
	b.probePassed = 0
	switch to {
	case CircuitStateOpen:
		b.openedAt = b.now()
	case CircuitStateClosed:
		b.openedAt = time.Time{}
	}
	if b.onState != nil && from != to {
		b.onState(from, to)
	}
}
