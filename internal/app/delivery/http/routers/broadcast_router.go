package routers

import (
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/app/services/core/roles"
	"telecare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachBroadcastRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.BroadcastController) {
	router.With(
		m.RequireAuthenticated,
		m.RequireMinRank(constvars.RoleAdmin),
		m.RequirePermission(roles.PermissionSendBroadcast),
	).Post("/", c.Send)
}
