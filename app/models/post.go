package models

import "time"

// Validate checks the input against the post field bounds.
func (in PostInput) Validate() error {
	return validate.Struct(in)
}

// NewPost builds the post the store keeps for a validated input.
func NewPost(id int, in PostInput, now time.Time) *Post {
	return &Post{
		ID:        id,
		Title:     in.Title,
		Content:   in.Content,
		Author:    in.Author,
		CreatedAt: NewTimestamp(now),
	}
}

// Clone returns a copy detached from the receiver.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
