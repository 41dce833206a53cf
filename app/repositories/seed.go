package repositories

import (
	"fmt"

	"ite2blog/app/models"
)

var (
	seedPost    = models.PostInput{Title: "ㅎㅇㅎㅇ", Content: "굿", Author: "ㅇㅇ"}
	seedComment = models.CommentInput{Content: "굿굿", Author: "ㅁㅁ"}
)

// Seed loads the demo post and its comment into an empty store, leaving both
// id counters at 2.
func Seed(s Store) error {
	post, err := s.CreatePost(seedPost)
	if err != nil {
		return fmt.Errorf("failed to seed post: %w", err)
	}
	if _, err := s.CreateComment(post.ID, seedComment); err != nil {
		return fmt.Errorf("failed to seed comment: %w", err)
	}
	return nil
}
