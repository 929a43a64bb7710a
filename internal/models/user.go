package models

import "errors"

// User is a registered identity. Only the id matters to the finance core;
// it partitions all persisted state.
type User struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	PhotoURL *string `json:"photoURL,omitempty"`
}

// Validate validates the user data
func (u *User) Validate() error {
	if u.ID == "" {
		return errors.New("id is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
