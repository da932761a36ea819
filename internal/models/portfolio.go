package models

// Portfolio is the full public payload served per username: the user joined
// with their collections, each ordered by creation time descending. The
// embedded User keeps the password hash out via its own json tag.
type Portfolio struct {
	User
	Skills   []Skill   `json:"skills"`
	Projects []Project `json:"projects"`
	Contacts []Contact `json:"contacts"`
}
