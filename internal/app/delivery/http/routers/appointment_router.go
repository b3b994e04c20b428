package routers

import (
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.AppointmentController) {
	router.Use(m.RequireAuthenticated)
	router.With(m.RequireAnyRole(constvars.RolePatient, constvars.RoleAdmin, constvars.RoleSuperadmin)).Post("/", c.Book)
	router.With(m.RequireAnyRole(constvars.RoleDoctor, constvars.RoleAdmin, constvars.RoleSuperadmin)).Patch("/{appointmentId}/status", c.UpdateStatus)
	router.Post("/{appointmentId}/cancel", c.Cancel)
}

func attachPractitionerAppointmentRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.AppointmentController) {
	router.With(
		m.RequireAuthenticated,
		m.RequireOwnerOrElevated(constvars.URLParamPractitionerID),
	).Get("/appointments", c.ListByPractitioner)
}
