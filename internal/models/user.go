package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User is an application account. PasswordHash is kept out of API
// responses by the handlers, which build explicit response maps.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Name         string `json:"name"`
	Citizenship  string `json:"citizenship"`
	ProfileImage string `json:"profileImage,omitempty"`
	IsGuest      bool   `json:"isGuest,omitempty"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
