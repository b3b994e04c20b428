package routers

import (
	"fmt"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	Schedule    *controllers.ScheduleController
	Appointment *controllers.AppointmentController
	Broadcast   *controllers.BroadcastController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {
	router.Use(chiMiddleware.RealIP)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendDomain},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, ctrls.Auth)
			})

			// Guards read the principal ResolveIdentity stores on the context.
			r.Group(func(r chi.Router) {
				r.Use(middlewares.ResolveIdentity)

				r.Route("/users", func(r chi.Router) {
					attachUserRoutes(r, middlewares, ctrls.User)
				})

				r.Route("/practitioners/{practitionerId}", func(r chi.Router) {
					attachScheduleRoutes(r, middlewares, ctrls.Schedule)
					attachPractitionerAppointmentRoutes(r, middlewares, ctrls.Appointment)
				})

				r.Route("/appointments", func(r chi.Router) {
					attachAppointmentRoutes(r, middlewares, ctrls.Appointment)
				})

				r.Route("/broadcasts", func(r chi.Router) {
					attachBroadcastRoutes(r, middlewares, ctrls.Broadcast)
				})
			})
		})
	})
}
