package domain

import "time"

type User struct {
	RecordID     uint64
	EmpID        int64
	FirstName    string
	MiddleName   string
	LastName     string
	Suffix       string
	Email        string
	PasswordHash string
	Code         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAccount is the create-account input. EmpID 0 means "allocate one".
type NewAccount struct {
	EmpID           int64
	FirstName       string `validate:"required,max=64"`
	MiddleName      string `validate:"max=64"`
	LastName        string `validate:"required,max=64"`
	Suffix          string `validate:"max=16"`
	Email           string `validate:"required,max=128"`
	Password        string `validate:"required,max=72"`
	ConfirmPassword string `validate:"required,max=72"`
	Code            string `validate:"required,max=32"`
}

// Credentials is the login input. Which id is used depends on the lookup strategy.
type Credentials struct {
	EmpID    int64
	RecordID uint64
	Code     string
	Password string
}
