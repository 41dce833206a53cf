package controllers

import (
	"net/http"

	"ite2blog/app/models"
	"ite2blog/app/services"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		sendServiceError(w, err, msgPostNotFound)
		return
	}
	sendData(w, posts)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.GetPost(pathID(r, "id"))
	if err != nil {
		sendServiceError(w, err, msgPostNotFound)
		return
	}
	sendData(w, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.PostInput
	if err := decodeBody(r, &in); err != nil {
		sendError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	post, err := pc.postService.CreatePost(in)
	if err != nil {
		sendServiceError(w, err, msgPostNotFound)
		return
	}
	sendData(w, post)
}

// Delete handles deleting a post and its comments
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := pc.postService.DeletePost(pathID(r, "id")); err != nil {
		sendServiceError(w, err, msgPostNotFound)
		return
	}
	sendMessage(w, msgPostDeleted)
}
