package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/interview/api/http/handlers"
	"github.com/artem13815/interview/pkg/security/jwt"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Health     *handlers.HealthHandler
	Resume     *handlers.ResumeHandler
	Candidates *handlers.CandidateHandler
	Interview  *handlers.InterviewHandler
}

// Register wires all HTTP routes onto given Fiber app. authMW guards the
// interviewer dashboard; the candidate-facing routes are public.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)

	v1.Post("/resumes/parse", h.Resume.Parse)

	// Candidate side
	v1.Post("/candidates", h.Candidates.Create)
	v1.Patch("/candidates/:id", h.Candidates.Update)
	v1.Post("/candidates/:id/interview", h.Interview.Start)
	v1.Get("/interview", h.Interview.Current)
	v1.Post("/interview/answers", h.Interview.Answer)
	v1.Post("/interview/pause", h.Interview.Pause)
	v1.Post("/interview/resume", h.Interview.Resume)

	// Interviewer dashboard; export before :id so it is not captured as an id.
	v1.Get("/candidates", authMW, h.Candidates.List)
	v1.Get("/candidates/export", authMW, h.Candidates.Export)
	v1.Get("/candidates/:id", authMW, h.Candidates.Get)
	v1.Delete("/state", authMW, jwt.RequireAdmin(), h.Interview.Reset)
}
