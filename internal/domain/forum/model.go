package forum

import (
	"time"

	"github.com/google/uuid"
)

// Post is a community forum post. Posts are published immediately but carry
// an approval flag so moderators can pull one back out of the public listing.
type Post struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	IsApproved bool      `json:"is_approved"`
	Timestamp  time.Time `json:"timestamp"`
}
