package models

import "time"

// Validate checks the input against the comment field bounds.
func (in CommentInput) Validate() error {
	return validate.Struct(in)
}

// NewComment builds the comment the store keeps for a validated input.
func NewComment(id, postID int, in CommentInput, now time.Time) *Comment {
	return &Comment{
		ID:        id,
		PostID:    postID,
		Content:   in.Content,
		Author:    in.Author,
		CreatedAt: NewTimestamp(now),
	}
}

// Clone returns a copy detached from the receiver.
func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
