package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/quill-api/internal/api"
	apiMiddleware "github.com/phrazzld/quill-api/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	postHandler := api.NewPostHandler(app.postService, app.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/signin", authHandler.Signin)
		})

		r.Route("/blog", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/create", postHandler.CreatePost)
			r.Put("/update", postHandler.UpdatePost)
			r.Get("/bulk", postHandler.ListPosts)
			r.Get("/{id}", postHandler.GetPost)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
