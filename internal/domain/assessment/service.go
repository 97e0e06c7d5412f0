package assessment

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// defaultSessionTTL is how long an idle session is kept before it expires.
const defaultSessionTTL = time.Hour

type sessionEntry struct {
	session *Session
	touched time.Time
}

// Service owns in-flight assessment sessions and the submitted result log.
type Service struct {
	log    *ResultLog
	logger zerolog.Logger
	ttl    time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
}

// NewService creates a new assessment service backed by the given result log.
func NewService(log *ResultLog, logger zerolog.Logger) *Service {
	return &Service{
		log:      log,
		logger:   logger,
		ttl:      defaultSessionTTL,
		sessions: make(map[uuid.UUID]*sessionEntry),
	}
}

// StartSession begins a new session for the instrument with the given code.
func (s *Service) StartSession(code string) (*Session, error) {
	inst, err := InstrumentByCode(code)
	if err != nil {
		return nil, err
	}

	sess := NewSession(inst)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.sessions[sess.ID] = &sessionEntry{session: sess, touched: time.Now()}
	return sess, nil
}

// GetSession returns the session with the given id, refreshing its TTL.
func (s *Service) GetSession(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(id)
}

func (s *Service) getLocked(id uuid.UUID) (*Session, error) {
	entry, ok := s.sessions[id]
	if !ok || time.Since(entry.touched) > s.ttl {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	entry.touched = time.Now()
	return entry.session, nil
}

// Answer records one answer on the session and returns the updated session.
func (s *Service) Answer(id uuid.UUID, questionID string, value int) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(id)
	if err != nil {
		return nil, err
	}
	if err := sess.Answer(questionID, value); err != nil {
		return nil, err
	}
	return sess, nil
}

// Submit finalizes the session, appends the result to the durable log and
// removes the session from the store. The session is only removed after the
// append succeeds, so a persistence failure leaves it resumable.
func (s *Service) Submit(id uuid.UUID) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(id)
	if err != nil {
		return nil, err
	}

	result, err := sess.Submit(time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.log.Append(*result); err != nil {
		// Keep the session resumable when the result could not be persisted.
		sess.state = StateComplete
		s.logger.Error().Err(err).Str("session_id", id.String()).Msg("failed to persist result")
		return nil, err
	}

	delete(s.sessions, id)

	s.logger.Info().
		Str("session_id", id.String()).
		Str("test_type", result.TestType).
		Int("score", result.Score).
		Str("severity", result.Severity).
		Msg("assessment submitted")

	return result, nil
}

// Results returns all submitted results in submission order.
func (s *Service) Results() []Result {
	return s.log.All()
}

// sweepLocked drops sessions idle past the TTL. Caller holds s.mu.
func (s *Service) sweepLocked() {
	for id, entry := range s.sessions {
		if time.Since(entry.touched) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
