package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/itchan-dev/forum/frontend/internal/handler"
	"github.com/itchan-dev/forum/shared/config"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New wires the view surface. Every /v1 route maps onto one store intent or
// selector.
func New(h *handler.Handler, public config.Public) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(mw.SecurityHeaders(public.SecureCookies))

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/state", h.GetState)

		r.Route("/auth", func(r chi.Router) {
			r.Get("/session", h.Session)
			r.Post("/login", h.Login)
			r.Post("/register", h.Register)
			r.Post("/logout", h.Logout)
			r.Delete("/error", h.ClearAuthError)
		})

		r.Route("/threads", func(r chi.Router) {
			r.Get("/", h.GetThreads)
			r.Post("/", h.CreateThread)
			r.Post("/load", h.LoadThreads)
			r.Get("/recent", h.GetRecentThreads)
			r.Get("/popular", h.GetPopularThreads)
			r.Get("/unanswered", h.GetUnansweredThreads)
			r.Delete("/selected", h.ClearSelectedThread)

			r.Get("/{threadId}", h.GetThread)
			r.Post("/{threadId}/replies", h.AddReply)
			r.Post("/{threadId}/posts/{postId}/vote", h.VotePost)
		})

		r.Get("/categories", h.GetCategories)

		r.Get("/users", h.GetUsers)
		r.Post("/users/load", h.LoadUsers)
		r.Get("/users/{userId}/threads", h.GetUserThreads)

		r.Get("/leaderboard", h.GetLeaderboard)
		r.Post("/leaderboard/load", h.LoadLeaderboard)

		r.Get("/navigation", h.GetNavigation)
		r.Post("/navigation", h.Navigate)
		r.Put("/search", h.Search)
	})

	return r
}

