package routes

import (
	"net/http"

	"ite2blog/app/controllers"
	"ite2blog/app/middleware"
	"ite2blog/app/repositories"
	"ite2blog/app/services"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(postController *controllers.PostController, commentController *controllers.CommentController) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(controllers.NotFound)

	router.HandleFunc("/", controllers.Home).Methods("GET")
	router.HandleFunc("/healthz", controllers.Health).Methods("GET")

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")

	// Comments API endpoints
	posts.HandleFunc("/{postId}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{postId}/comments", commentController.Create).Methods("POST")
	api.HandleFunc("/comments/{id}", commentController.Delete).Methods("DELETE")

	return router
}

// NewHandler wires services and controllers around store and wraps the router
// in the global middleware. The middleware sits outside the router so that
// preflight requests and unmatched routes pass through it too.
func NewHandler(store repositories.Store, logger logrus.FieldLogger) http.Handler {
	postController := controllers.NewPostController(services.NewPostService(store, logger))
	commentController := controllers.NewCommentController(services.NewCommentService(store, logger))

	router := SetupRoutes(postController, commentController)

	var handler http.Handler = router
	handler = middleware.CORS(handler)
	handler = middleware.Recoverer(logger)(handler)
	handler = middleware.Logger(logger)(handler)
	handler = middleware.RequestID(handler)
	return handler
}
