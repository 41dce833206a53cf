package controllers

import (
	"net/http"

	"ite2blog/app/models"
	"ite2blog/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Index handles listing all comments for a post
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.commentService.ListPostComments(pathID(r, "postId"))
	if err != nil {
		sendServiceError(w, err, msgPostNotFound)
		return
	}
	sendData(w, comments)
}

// Create handles creating a new comment. A missing post is reported with the
// post message, not the comment one.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CommentInput
	if err := decodeBody(r, &in); err != nil {
		sendError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	comment, err := cc.commentService.CreateComment(pathID(r, "postId"), in)
	if err != nil {
		sendServiceError(w, err, msgPostNotFound)
		return
	}
	sendData(w, comment)
}

// Delete handles deleting a comment
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := cc.commentService.DeleteComment(pathID(r, "id")); err != nil {
		sendServiceError(w, err, msgCommentNotFound)
		return
	}
	sendMessage(w, msgCommentDeleted)
}
