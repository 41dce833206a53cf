package services

import (
	"fmt"

	"ite2blog/app/models"
	"ite2blog/app/repositories"

	"github.com/sirupsen/logrus"
)

// CommentService handles business logic for comments
type CommentService struct {
	store repositories.Store
	log   logrus.FieldLogger
}

// NewCommentService creates a new CommentService
func NewCommentService(store repositories.Store, logger logrus.FieldLogger) *CommentService {
	return &CommentService{
		store: store,
		log:   logger.WithField("service", "comments"),
	}
}

// ListPostComments retrieves all comments for a post, oldest first. Unlike
// CreateComment it does not require the post to exist.
func (s *CommentService) ListPostComments(postID int) ([]*models.Comment, error) {
	comments, err := s.store.ListComments(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// CreateComment validates the input and attaches a new comment to a post
func (s *CommentService) CreateComment(postID int, in models.CommentInput) (*models.Comment, error) {
	if err := in.Validate(); err != nil {
		return nil, newValidationError(err)
	}

	comment, err := s.store.CreateComment(postID, in)
	if err != nil {
		return nil, fmt.Errorf("create comment on post %d: %w", postID, err)
	}
	s.log.WithFields(logrus.Fields{
		"post_id":    postID,
		"comment_id": comment.ID,
	}).Info("comment created")
	return comment, nil
}

// DeleteComment deletes a single comment
func (s *CommentService) DeleteComment(id int) error {
	if err := s.store.DeleteComment(id); err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	s.log.WithField("comment_id", id).Info("comment deleted")
	return nil
}
