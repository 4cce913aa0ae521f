package domain

import "time"

type Book struct {
	BookID    uint64
	Title     string `validate:"required,max=255"`
	Author    string `validate:"max=255"`
	Publisher string `validate:"max=255"`
	ISBN      string `validate:"required,max=32"`
	CoverURL  string `validate:"max=512"`
	CreatedAt time.Time
}
