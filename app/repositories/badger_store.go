package repositories

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"ite2blog/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore keeps posts and comments in an in-memory Badger instance. Each
// operation is a single Badger transaction; writers are serialized by mutex so
// transactions never conflict.
type BadgerStore struct {
	db    *badger.DB
	mutex sync.RWMutex
	now   func() time.Time
}

// NewBadgerStore opens an in-memory database. Nothing is written to disk.
func NewBadgerStore(opts ...Option) (*BadgerStore, error) {
	o := newOptions(opts)
	dbOpts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(o.logger.WithField("component", "badger")).
		WithNumVersionsToKeep(1)
	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	return &BadgerStore{db: db, now: o.now}, nil
}

func (r *BadgerStore) Close() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.db.Close()
}

// Post methods

func (r *BadgerStore) ListPosts() ([]*models.Post, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	posts := make([]*models.Post, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortPosts(posts)
	return posts, nil
}

func (r *BadgerStore) GetPost(id int) (*models.Post, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var post models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, postKey(id), &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BadgerStore) CreatePost(in models.PostInput) (*models.Post, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var post *models.Post
	err := r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post = models.NewPost(id, in, r.now())

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), data)
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post, its comments and their index entries in one
// transaction.
func (r *BadgerStore) DeletePost(id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(id)
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		var doomed [][]byte
		prefix := commentPrefix(id)
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			k := it.Item().KeyCopy(nil)
			commentID, err := strconv.Atoi(string(k[len(prefix):]))
			if err != nil {
				it.Close()
				return fmt.Errorf("malformed comment key %q: %w", k, err)
			}
			doomed = append(doomed, k, commentIndexKey(commentID))
		}
		it.Close()

		for _, k := range doomed {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return txn.Delete(key)
	})
}

// Comment methods

func (r *BadgerStore) ListComments(postID int) ([]*models.Comment, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	comments := make([]*models.Comment, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := commentPrefix(postID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			comments = append(comments, &comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortComments(comments)
	return comments, nil
}

func (r *BadgerStore) CreateComment(postID int, in models.CommentInput) (*models.Comment, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var comment *models.Comment
	err := r.db.Update(func(txn *badger.Txn) error {
		// The sequence is only touched once the post is known to exist.
		if _, err := txn.Get(postKey(postID)); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		id, err := getNextID(txn, CommentSeqKey)
		if err != nil {
			return err
		}
		comment = models.NewComment(id, postID, in, r.now())

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		if err := txn.Set(commentKey(postID, id), data); err != nil {
			return err
		}
		return txn.Set(commentIndexKey(id), []byte(strconv.Itoa(postID)))
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *BadgerStore) DeleteComment(id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		postID, err := getInt(txn, commentIndexKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := txn.Delete(commentKey(postID, id)); err != nil {
			return err
		}
		return txn.Delete(commentIndexKey(id))
	})
}
