package profile

import "time"

// Profile holds a user's account details, keyed by the identity provider's
// user id.
type Profile struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Age       int       `json:"age,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
