package repositories

import (
	"sort"
	"sync"
	"time"

	"ite2blog/app/models"
)

// MemoryStore keeps posts and comments in slices guarded by a single lock.
type MemoryStore struct {
	mutex         sync.RWMutex
	posts         []*models.Post
	comments      []*models.Comment
	nextPostID    int
	nextCommentID int
	now           func() time.Time
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	o := newOptions(opts)
	return &MemoryStore{
		nextPostID:    1,
		nextCommentID: 1,
		now:           o.now,
	}
}

func (m *MemoryStore) ListPosts() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		posts = append(posts, post.Clone())
	}
	sortPosts(posts)
	return posts, nil
}

func (m *MemoryStore) GetPost(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	i := m.postIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	return m.posts[i].Clone(), nil
}

func (m *MemoryStore) CreatePost(in models.PostInput) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post := models.NewPost(m.nextPostID, in, m.now())
	m.nextPostID++
	m.posts = append(m.posts, post)
	return post.Clone(), nil
}

func (m *MemoryStore) DeletePost(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i := m.postIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	m.posts = append(m.posts[:i], m.posts[i+1:]...)

	kept := m.comments[:0]
	for _, comment := range m.comments {
		if comment.PostID != id {
			kept = append(kept, comment)
		}
	}
	clear(m.comments[len(kept):])
	m.comments = kept
	return nil
}

func (m *MemoryStore) ListComments(postID int) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comments := make([]*models.Comment, 0)
	for _, comment := range m.comments {
		if comment.PostID == postID {
			comments = append(comments, comment.Clone())
		}
	}
	sortComments(comments)
	return comments, nil
}

func (m *MemoryStore) CreateComment(postID int, in models.CommentInput) (*models.Comment, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.postIndex(postID) < 0 {
		return nil, ErrNotFound
	}
	comment := models.NewComment(m.nextCommentID, postID, in, m.now())
	m.nextCommentID++
	m.comments = append(m.comments, comment)
	return comment.Clone(), nil
}

func (m *MemoryStore) DeleteComment(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i, comment := range m.comments {
		if comment.ID == id {
			m.comments = append(m.comments[:i], m.comments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) Close() error {
	return nil
}

// postIndex must be called with the lock held.
func (m *MemoryStore) postIndex(id int) int {
	for i, post := range m.posts {
		if post.ID == id {
			return i
		}
	}
	return -1
}

func sortPosts(posts []*models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID > posts[j].ID
	})
}

// sortComments orders by creation time; comments stamped in the same
// millisecond keep their id order.
func sortComments(comments []*models.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		a, b := comments[i], comments[j]
		if !a.CreatedAt.Equal(b.CreatedAt.Time) {
			return a.CreatedAt.Before(b.CreatedAt.Time)
		}
		return a.ID < b.ID
	})
}
