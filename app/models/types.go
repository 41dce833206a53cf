package models

// Post represents a blog post.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt Timestamp `json:"createdAt"`
}

// Comment represents a comment on a blog post.
type Comment struct {
	ID        int       `json:"id"`
	PostID    int       `json:"postId"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt Timestamp `json:"createdAt"`
}

// PostInput is the client supplied part of a post.
type PostInput struct {
	Title   string `json:"title" validate:"required,min=1,max=100"`
	Content string `json:"content" validate:"required,min=1,max=5000"`
	Author  string `json:"author" validate:"required,min=1,max=50"`
}

// CommentInput is the client supplied part of a comment.
type CommentInput struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
	Author  string `json:"author" validate:"required,min=1,max=50"`
}
