package services

import (
	"fmt"

	"ite2blog/app/models"
	"ite2blog/app/repositories"

	"github.com/sirupsen/logrus"
)

// PostService handles business logic for blog posts
type PostService struct {
	store repositories.Store
	log   logrus.FieldLogger
}

// NewPostService creates a new PostService
func NewPostService(store repositories.Store, logger logrus.FieldLogger) *PostService {
	return &PostService{
		store: store,
		log:   logger.WithField("service", "posts"),
	}
}

// ListPosts returns every post, newest first
func (s *PostService) ListPosts() ([]*models.Post, error) {
	posts, err := s.store.ListPosts()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.store.GetPost(id)
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return post, nil
}

// CreatePost validates the input and stores a new post
func (s *PostService) CreatePost(in models.PostInput) (*models.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, newValidationError(err)
	}

	post, err := s.store.CreatePost(in)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	s.log.WithField("post_id", post.ID).Info("post created")
	return post, nil
}

// DeletePost deletes a post and all its comments
func (s *PostService) DeletePost(id int) error {
	if err := s.store.DeletePost(id); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	s.log.WithField("post_id", id).Info("post deleted")
	return nil
}
