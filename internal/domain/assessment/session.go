package assessment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle state of an assessment session.
type State string

const (
	StateIncomplete State = "incomplete"
	StateComplete   State = "complete"
	StateSubmitted  State = "submitted"
)

// ErrSubmitted is returned when answering or re-submitting a session that
// has already been submitted. Submitted is terminal; a retake is a new
// session.
var ErrSubmitted = errors.New("assessment already submitted")

// IncompleteError reports a submit attempt with unanswered questions.
// Missing lists the unanswered question ids in display order.
type IncompleteError struct {
	Missing []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("assessment incomplete: %d questions unanswered", len(e.Missing))
}

// Session is a single in-progress run of one instrument. It is not safe for
// concurrent use; the service serializes access.
type Session struct {
	ID         uuid.UUID
	Instrument *Instrument
	CreatedAt  time.Time

	answers map[string]int
	state   State
}

// NewSession starts an incomplete session over the given instrument.
func NewSession(inst *Instrument) *Session {
	return &Session{
		ID:         uuid.New(),
		Instrument: inst,
		CreatedAt:  time.Now().UTC(),
		answers:    make(map[string]int),
		state:      StateIncomplete,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Answer records or overwrites the response to one question and re-evaluates
// completeness. Answering is rejected once the session is submitted.
func (s *Session) Answer(questionID string, value int) error {
	if s.state == StateSubmitted {
		return ErrSubmitted
	}
	if _, ok := s.Instrument.item(questionID); !ok {
		return fmt.Errorf("unknown question id %q for %s", questionID, s.Instrument.Code)
	}
	if _, ok := s.Instrument.optionLabel(value); !ok {
		return fmt.Errorf("answer value %d is not on the response scale", value)
	}

	s.answers[questionID] = value

	if len(s.answers) == len(s.Instrument.Items) {
		s.state = StateComplete
	} else {
		s.state = StateIncomplete
	}
	return nil
}

// Answers returns a copy of the recorded answers.
func (s *Session) Answers() map[string]int {
	out := make(map[string]int, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Unanswered returns the ids of unanswered questions in display order.
func (s *Session) Unanswered() []string {
	var missing []string
	for _, q := range s.Instrument.Items {
		if _, ok := s.answers[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

// Submit finalizes the session at the given wall-clock time and builds the
// immutable Result. Submitting an incomplete session returns an
// *IncompleteError and leaves the session untouched. Submitting twice
// returns ErrSubmitted.
func (s *Session) Submit(now time.Time) (*Result, error) {
	if s.state == StateSubmitted {
		return nil, ErrSubmitted
	}
	if missing := s.Unanswered(); len(missing) > 0 {
		return nil, &IncompleteError{Missing: missing}
	}

	total, err := Score(s.Instrument, s.answers)
	if err != nil {
		return nil, err
	}
	severity, err := ClassifySeverity(s.Instrument.Code, total)
	if err != nil {
		return nil, err
	}

	records := make([]AnswerRecord, 0, len(s.Instrument.Items))
	for _, q := range s.Instrument.Items {
		value := s.answers[q.ID]
		label, _ := s.Instrument.optionLabel(value)
		records = append(records, AnswerRecord{
			Question: q.Text,
			Option:   label,
			Score:    value,
		})
	}

	s.state = StateSubmitted

	return &Result{
		TestType: s.Instrument.Code,
		Score:    total,
		Severity: severity,
		Answers:  records,
		Date:     now,
	}, nil
}
