package user

import "time"

type User struct {
	Id           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type NewUser struct {
	Name         string
	Email        string
	PasswordHash string
}
