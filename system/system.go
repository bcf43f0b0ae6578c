// Package system implements component C of the readiness engine: a
// thread-owned "System" pairing one OS selector with a token namespace and
// a control signal channel at token 0.
//
// Grounded on original_source/src/system.rs. The Rust original keeps a
// single thread-local System reachable through free functions
// (System::register, System::reserve_token, ...); this rewrite makes the
// equivalent state an explicit, constructible Engine value instead, since
// Go has no thread-local storage and idiomatic Go favors explicit
// dependency passing over ambient globals. Each Engine still owns exactly
// one selector and is meant to be driven from a single goroutine, matching
// the "runs on its own OS thread" concurrency model in spec.md §5.
package system

import (
	"time"

	"github.com/sonr-go/sonr/internal/selector"
	"github.com/sonr-go/sonr/signal"
	"github.com/sonr-go/sonr/slotvec"
	"github.com/sonr-go/sonr/sonrerr"
	"github.com/sonr-go/sonr/sonrlog"
)

// Token identifies a registration within an Engine's namespace. Token 0 is
// always reserved for the engine's own control channel, matching
// original_source's SERVER_TOKEN.
type Token uint64

// ControlToken is the reserved token backing the engine's Stop channel.
const ControlToken Token = 0

// ControlEvent is the only message the control channel currently carries.
type ControlEvent int

// Stop requests the engine's Run loop to return after draining the
// current poll's events.
const Stop ControlEvent = iota

// Event reports one readiness transition for one token, widening
// internal/selector.Event with the exported Token type.
type Event struct {
	Token    Token
	Readable bool
	Writable bool
	Error    bool
	Hangup   bool
}

// Engine is the readiness-driven core: one selector, one token table, one
// control channel. Construct with New and drive with Run.
type Engine struct {
	sel     selector.Selector
	tokens  *slotvec.SlotVec[struct{}]
	control *signal.Channel[ControlEvent]

	logger      sonrlog.Logger
	pollTimeout time.Duration

	life *lifecycle
}

// New constructs an Engine: allocates the platform selector, reserves
// token 0 for the control channel, and registers the control channel's
// wake descriptor, matching System::new's sequence.
func New(opts ...Option) (*Engine, error) {
	cfg := resolveOptions(opts)

	sel, err := selector.New()
	if err != nil {
		return nil, err
	}

	tokens := slotvec.NewWithOffset[struct{}](cfg.tokenCapacity, cfg.tokenOffset)
	if _, err := tokens.Insert(struct{}{}); err != nil {
		_ = sel.Close()
		return nil, err
	}

	ctrl, err := signal.New[ControlEvent](signal.Unbounded)
	if err != nil {
		_ = sel.Close()
		return nil, err
	}

	if err := sel.Register(ctrl.FD(), uint64(ControlToken), selector.Readable); err != nil {
		_ = sel.Close()
		_ = ctrl.Close()
		return nil, err
	}

	e := &Engine{
		sel:         sel,
		tokens:      tokens,
		control:     ctrl,
		logger:      cfg.logger,
		pollTimeout: cfg.pollTimeout,
		life:        newLifecycle(),
	}
	e.logger.Info().Log("engine initialized")
	return e, nil
}

// ControlSender returns a sender for this engine's control channel,
// matching System::init's return value in the original source.
func (e *Engine) ControlSender() signal.Sender[ControlEvent] {
	return e.control.Sender()
}

// ReserveToken allocates a new Token from the engine's slot vector,
// matching System::reserve_token.
func (e *Engine) ReserveToken() (Token, error) {
	idx, err := e.tokens.Insert(struct{}{})
	if err != nil {
		return 0, err
	}
	e.logger.Debug().Int("token", idx).Log("token reserved")
	return Token(idx), nil
}

// FreeToken releases a previously reserved Token, matching
// System::free_token.
func (e *Engine) FreeToken(token Token) {
	e.tokens.Remove(int(token))
	e.logger.Debug().Int("token", int(token)).Log("token freed")
}

// Register starts monitoring fd under token with the given interest,
// matching System::register.
func (e *Engine) Register(fd int, token Token, interest selector.Interest) error {
	if _, ok := e.tokens.Get(int(token)); !ok {
		return sonrerr.ErrNoSuchToken
	}
	e.logger.Debug().Int("token", int(token)).Log("registering descriptor")
	return e.sel.Register(fd, uint64(token), interest)
}

// Reregister updates the interest set for fd, matching System::reregister.
// Evented handles call this after observing WouldBlock, to reinstate the
// edge-triggered notification for the interest they still want.
func (e *Engine) Reregister(fd int, token Token, interest selector.Interest) error {
	e.logger.Debug().Int("token", int(token)).Log("reregistering descriptor")
	return e.sel.Reregister(fd, uint64(token), interest)
}

// Deregister stops monitoring fd.
func (e *Engine) Deregister(fd int) error {
	return e.sel.Deregister(fd)
}

// Next polls the selector once, internally draining and classifying any
// control-channel readiness, and returns the non-control events observed
// plus whether a Stop control event was seen.
//
// This mirrors the token-0 special case in System::start's loop body,
// split out so the generic drive loop (sonr.Run) doesn't need to know
// about the control channel's wire format.
func (e *Engine) Next(dst []Event) ([]Event, bool, error) {
	timeoutMs := -1
	if e.pollTimeout >= 0 {
		timeoutMs = int(e.pollTimeout / time.Millisecond)
	}

	var buf [256]selector.Event
	raw, err := e.sel.Poll(buf[:0], timeoutMs)
	if err != nil {
		e.logger.Err().Err(err).Log("selector poll failed")
		return dst, false, err
	}

	stop := false
	for _, ev := range raw {
		if Token(ev.Token) == ControlToken {
			for {
				ctrlEv, err := e.control.TryRecv()
				if err != nil {
					break
				}
				if ctrlEv == Stop {
					stop = true
				}
			}
			continue
		}
		dst = append(dst, Event{
			Token:    Token(ev.Token),
			Readable: ev.Readable,
			Writable: ev.Writable,
			Error:    ev.Error,
			Hangup:   ev.Hangup,
		})
	}
	return dst, stop, nil
}

// Start transitions the engine from Awake to Running. Returns false if the
// engine was not in the Awake state.
func (e *Engine) Start() bool {
	ok := e.life.tryTransition(stateAwake, stateRunning)
	if ok {
		e.logger.Info().Log("engine started")
	}
	return ok
}

// Shutdown transitions the engine to Terminated and releases the selector
// and control channel.
func (e *Engine) Shutdown() error {
	e.life.v.Store(uint32(stateTerminated))
	e.logger.Info().Log("engine shutting down")
	if err := e.control.Close(); err != nil {
		return err
	}
	return e.sel.Close()
}

// Running reports whether Start has been called and Shutdown has not.
func (e *Engine) Running() bool {
	return e.life.load() == stateRunning
}

// Logger returns the engine's configured logger, for components
// constructed alongside it (the netio listeners) that share the same
// sink.
func (e *Engine) Logger() sonrlog.Logger {
	return e.logger
}
