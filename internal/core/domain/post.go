package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrAuthorNotFound = errors.New("author not found")
var ErrInvalidInput = errors.New("invalid input")

// Author is the public projection of a User embedded in post responses.
// It never carries the password hash.
type Author struct {
	ID    string `json:"id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Post is a blog entry owned by a user. Author is populated on reads
// that embed the owning user; it is nil on create/update results.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	Author    *Author   `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
