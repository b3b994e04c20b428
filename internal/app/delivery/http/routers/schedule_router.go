package routers

import (
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.ScheduleController) {
	router.With(m.RequireAuthenticated).Get("/availability", c.ListWindows)
	router.With(m.RequireAuthenticated).Get("/slots", c.ListSlots)

	router.Group(func(r chi.Router) {
		r.Use(m.RequireAuthenticated)
		r.Use(m.RequireAnyRole(constvars.RoleDoctor, constvars.RoleAdmin, constvars.RoleSuperadmin))
		r.Use(m.RequireOwnerOrElevated(constvars.URLParamPractitionerID))

		r.Post("/availability", c.CreateWindow)
		r.Put("/availability/{windowId}", c.UpdateWindow)
		r.Delete("/availability/{windowId}", c.DeleteWindow)
	})
}
