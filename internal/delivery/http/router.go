package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
	"eventhub/internal/metrics"
)

// RouterDeps carries everything NewRouter wires into the mux.
type RouterDeps struct {
	Logger         *slog.Logger
	Verifier       domain.TokenVerifier
	RateLimiter    *middleware.RateLimiter // nil disables rate limiting
	AllowedOrigins []string

	Users     *controllers.UserController
	Events    *controllers.EventController
	Attendees *controllers.AttendeeController
	Health    *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes and the global middleware chain.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(d.Verifier, d.Logger)
	limit := func(next http.HandlerFunc) http.HandlerFunc { return next }
	if d.RateLimiter != nil {
		limit = d.RateLimiter.Limit
	}

	// Users
	mux.HandleFunc("POST /users/register", limit(d.Users.Register))
	mux.HandleFunc("POST /users/login", limit(d.Users.Login))

	// Events
	mux.HandleFunc("GET /events", d.Events.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", d.Events.GetEvent)
	mux.HandleFunc("POST /events", auth(d.Events.CreateEvent))
	mux.HandleFunc("PUT /events/{eventID}", auth(d.Events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", auth(d.Events.DeleteEvent))

	// Attendees
	mux.HandleFunc("POST /events/{eventID}/join", auth(d.Attendees.JoinEvent))
	mux.HandleFunc("GET /events/{eventID}/attendees", d.Attendees.ListAttendees)

	// Ops
	mux.HandleFunc("GET /healthz", d.Health.Healthz)
	mux.HandleFunc("GET /readyz", d.Health.Readyz)
	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var h http.Handler = mux
	h = middleware.CORS(d.AllowedOrigins, h)
	h = metrics.HTTPMiddleware(h)
	h = middleware.LoggingMiddleware(d.Logger, h)
	h = middleware.Recoverer(d.Logger)(h)
	h = middleware.RequestID(h)
	return h
}
