package routers

import (
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/app/services/core/roles"
	"telecare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Use(middlewares.RequireAuthenticated)
	router.With(middlewares.RequirePermission(roles.PermissionViewAllUsers)).Get("/", userController.ListUsers)
	router.With(middlewares.RequireOwnerOrElevated(constvars.URLParamUserID)).Get("/{userId}", userController.GetUserByID)
}
