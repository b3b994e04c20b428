package routers

import (
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.With(middlewares.LoginThrottle(), middlewares.OptionalIdentity).Post("/login", authController.Login)
	router.With(middlewares.OptionalIdentity).Post("/logout", authController.Logout)
	router.With(middlewares.ResolveIdentity, middlewares.RequireAuthenticated).Get("/me", authController.Me)
}
