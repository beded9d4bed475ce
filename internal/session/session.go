// internal/session/session.go
//
// A Session owns exactly one game and is its only writer.
// Responsibilities:
//   - Draw the first answer on creation.
//   - Apply events one at a time, in arrival order (mutex-serialized).
//   - Publish each post-transition state atomically so readers never see a
//     half-applied transition.
//
// Notes:
//   - game.State values are never mutated after publication; Snapshot hands
//     out the published value directly.
package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-clone/internal/game"
)

// Session is a single player's game plus the answer source used on reset.
type Session struct {
	ID string

	src     game.AnswerSource
	mu      sync.Mutex // serializes writers
	state   atomic.Pointer[game.State]
	touched atomic.Int64 // unix nanos of last Handle/Snapshot
}

// New draws an answer from src and returns a session ready for input.
func New(id string, src game.AnswerSource) (*Session, error) {
	st, err := game.New(src)
	if err != nil {
		return nil, err
	}
	s := &Session{ID: id, src: src}
	s.state.Store(&st)
	s.touch()
	log.Debug().Str("session", id).Msg("game started")
	return s, nil
}

// Snapshot returns the most recently published state.
func (s *Session) Snapshot() game.State {
	s.touch()
	return *s.state.Load()
}

// Handle applies one event and returns the resulting state.
// On error (answer source failure during reset) the previous state stays
// published.
func (s *Session) Handle(ev game.Event) (game.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(ev)
}

// HandleAll applies events in order, stopping at the first error.
func (s *Session) HandleAll(evs []game.Event) (game.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := *s.state.Load()
	for _, ev := range evs {
		var err error
		if cur, err = s.apply(ev); err != nil {
			return cur, err
		}
	}
	return cur, nil
}

// apply must be called with mu held.
func (s *Session) apply(ev game.Event) (game.State, error) {
	s.touch()
	prev := s.state.Load()
	next, err := game.Apply(s.src, *prev, ev)
	if err != nil {
		log.Error().Err(err).Str("session", s.ID).Str("event", ev.Kind.String()).Msg("apply event")
		return *prev, err
	}
	s.state.Store(&next)

	switch {
	case ev.Kind == game.EventReset:
		log.Info().Str("session", s.ID).Msg("game reset")
	case next.Status != prev.Status:
		log.Info().Str("session", s.ID).Str("status", string(next.Status)).Int("guesses", len(next.History)).Msg("game finished")
	default:
		log.Debug().Str("session", s.ID).Str("event", ev.Kind.String()).Str("active", next.Active).Msg("event applied")
	}
	return next, nil
}

// LastSeen reports when the session was last read or written.
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.touched.Load())
}

func (s *Session) touch() { s.touched.Store(time.Now().UnixNano()) }
