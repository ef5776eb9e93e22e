package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rapt-app/rapt/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	resumes *handlers.ResumesHandler,
	analyses *handlers.AnalysisHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Resume storage and ATS analysis (protected)
	rg := v1.Group("/resumes", authMW)
	rg.Post("/", resumes.Upload)
	rg.Get("/", resumes.List)
	rg.Get("/:id", resumes.Get)
	rg.Get("/:id/file", resumes.Download)
	rg.Delete("/:id", resumes.Delete)
	rg.Get("/:id/analyses", analyses.ListByResume)

	ag := v1.Group("/analyses", authMW)
	ag.Post("/", analyses.Create)
	ag.Get("/", analyses.List)
	ag.Get("/:id", analyses.Get)
	ag.Delete("/:id", analyses.Delete)
}
