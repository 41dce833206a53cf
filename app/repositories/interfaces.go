package repositories

import (
	"errors"
	"fmt"
	"time"

	"ite2blog/app/models"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Store owns the posts, the comments and their id counters. It is the only
// path through which either collection is mutated.
type Store interface {
	// ListPosts returns every post, newest id first.
	ListPosts() ([]*models.Post, error)
	GetPost(id int) (*models.Post, error)
	CreatePost(in models.PostInput) (*models.Post, error)
	// DeletePost removes the post together with all of its comments.
	DeletePost(id int) error

	// ListComments returns the comments of a post, oldest first. An unknown
	// post yields an empty list.
	ListComments(postID int) ([]*models.Comment, error)
	CreateComment(postID int, in models.CommentInput) (*models.Comment, error)
	DeleteComment(id int) error

	Close() error
}

const (
	DriverMemory = "memory"
	DriverBadger = "badger"
)

// Option configures a store.
type Option func(*options)

type options struct {
	now    func() time.Time
	logger logrus.FieldLogger
}

func newOptions(opts []Option) options {
	o := options{
		now:    time.Now,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces the clock used to stamp createdAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithLogger sets the logger handed to the storage engine.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Open creates an empty store for the named driver.
func Open(driver string, opts ...Option) (Store, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemoryStore(opts...), nil
	case DriverBadger:
		return NewBadgerStore(opts...)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
