package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.With(middlewares.Authenticate).Get("/profile", userController.GetProfile)
	router.With(middlewares.Authenticate).Put("/profile", userController.UpdateProfile)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRole(constvars.RoleAdmin))

		r.Get("/", userController.ListUsers)
		r.Post("/", userController.CreateUser)
		r.Get("/{user_id}", userController.GetUser)
		r.Put("/{user_id}", userController.UpdateUser)
		r.Delete("/{user_id}", userController.DeleteUser)
	})
}
