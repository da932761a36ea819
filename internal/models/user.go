package models

import "time"

// User is a row in the credential store. Field names on the wire follow the
// camelCase contract the frontend consumes.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never leaves the server
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Bio          string    `json:"bio,omitempty"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the minimal authenticated-user view returned by sign-in.
type Identity struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PublicProfile is the reduced field set served for profile lookups by id.
type PublicProfile struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// UserUpdate carries a partial profile update. Nil fields are left untouched.
type UserUpdate struct {
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// Empty reports whether the update carries no field at all.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.FirstName == nil && u.LastName == nil &&
		u.Email == nil && u.Bio == nil && u.AvatarURL == nil
}
