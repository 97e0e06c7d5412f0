package feedback

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is one piece of user feedback. Featured entries appear on the
// public testimonials listing; the flag can be toggled by moderators.
type Feedback struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	Text       string    `json:"feedback_text"`
	Rating     *int      `json:"rating,omitempty"`
	IsFeatured bool      `json:"is_featured"`
	Timestamp  time.Time `json:"timestamp"`
}
