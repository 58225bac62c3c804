package routes

import (
	"github.com/gofiber/fiber/v3"

	"worklink/internal/delivery/http/middleware"
	"worklink/internal/domain/user"
)

// registerV1 lays out the v1 route tree. Auth and role checks attach per
// route instead of per prefix so public and role-gated routes can share
// paths, and fixed paths like /jobs/recommendations and /jobs/mine are
// registered before the public /jobs/:job_id wildcard ever matches.
func (r *Registry) registerV1(v1 fiber.Router) {
	if v1 == nil {
		return
	}

	r.auth.RegisterRoutes(v1.Group("/auth"))

	authed := r.authMw.Middleware()
	seekerOnly := []any{authed, middleware.RequireRoles(user.RoleSeeker)}
	employerOnly := []any{authed, middleware.RequireRoles(user.RoleEmployer)}
	centerOnly := []any{authed, middleware.RequireRoles(user.RoleTrainingCenter)}
	adminOnly := []any{authed, middleware.RequireRoles(user.RoleAdmin)}

	r.recommendations.RegisterRoutes(v1, seekerOnly...)
	r.match.RegisterSeekerRoutes(v1, seekerOnly...)
	r.applications.RegisterSeekerRoutes(v1, seekerOnly...)
	r.bookmarks.RegisterRoutes(v1, seekerOnly...)
	r.courses.RegisterSeekerRoutes(v1, seekerOnly...)

	r.jobs.RegisterEmployerRoutes(v1, employerOnly...)
	r.applications.RegisterEmployerRoutes(v1, employerOnly...)

	r.courses.RegisterCenterRoutes(v1, centerOnly...)

	r.profiles.RegisterRoutes(v1, authed)
	r.notifications.RegisterRoutes(v1, authed)
	r.applications.RegisterAuthedRoutes(v1, authed)

	r.admin.RegisterRoutes(v1.Group("/admin"), adminOnly...)

	r.jobs.RegisterPublicRoutes(v1)
	r.match.RegisterPublicRoutes(v1)
	r.courses.RegisterPublicRoutes(v1)
}
