package user

import "time"

type User struct {
	Id        string    `json:"id" example:"8d3f9b1e-0f95-4a6b-9a1a-3a6f9d8e2c41"`
	Name      string    `json:"name" example:"my name"`
	Email     string    `json:"email" example:"me@mail.com"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Token struct {
	Token string `json:"token"`
}
