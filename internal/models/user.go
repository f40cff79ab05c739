package models

// User represents a portal customer account. Records live as a JSON array under a
// single storage key, so IDs are millisecond timestamps assigned at creation time
// rather than database sequences.
type User struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Plan          string `json:"plan"`
	AccountNumber string `json:"accountNumber"`
	RegisteredAt  string `json:"registeredAt"`
	Password      string `json:"password,omitempty"`
}

// WithoutPassword returns a copy of the user with the password cleared. Every
// lookup result handed outside the store goes through this.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
