// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"natours/config"
	"natours/internal/delivery/api/middleware"
	"natours/internal/delivery/api/router/handler"
	"natours/internal/domain/entity"
	"natours/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	TourHandler    *handler.TourHandler
	ReviewHandler  *handler.ReviewHandler
	BookingHandler *handler.BookingHandler
	ViewHandler    *handler.ViewHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Metrics             *metrics.Metrics
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	auth     *handler.AuthHandler
	users    *handler.UserHandler
	tours    *handler.TourHandler
	reviews  *handler.ReviewHandler
	bookings *handler.BookingHandler
	views    *handler.ViewHandler

	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:                params.AuthHandler,
		users:               params.UserHandler,
		tours:               params.TourHandler,
		reviews:             params.ReviewHandler,
		bookings:            params.BookingHandler,
		views:               params.ViewHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up the pages, the API and the operational endpoints.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	r.registerPages(e)

	apiV1 := e.Group("/api/v1")
	if r.config.RateLimit.Enabled {
		apiV1.Use(r.rateLimitMiddleware.Handle)
	}
	r.registerTours(apiV1.Group("/tours"))
	r.registerReviews(apiV1.Group("/reviews"))
	r.registerUsers(apiV1.Group("/users"))
	r.registerBookings(apiV1.Group("/bookings"))

	e.RouteNotFound("/*", middleware.RouteNotFound)
}

func (r *router) registerPages(e *echo.Echo) {
	protect := r.authMiddleware.Protect

	pages := e.Group("")
	pages.GET("/", r.views.Overview, r.authMiddleware.IsLoggedIn)
	pages.GET("/tour/:slug", r.views.Tour, r.authMiddleware.IsLoggedIn)
	pages.GET("/login", r.views.Login, r.authMiddleware.IsLoggedIn)
	pages.GET("/me", r.views.Account, protect)
	pages.POST("/submit-user-data", r.views.SubmitUserData, protect)
	pages.GET("/my-tours", r.views.MyTours, r.views.CreateBookingCheckout, protect)
}

func (r *router) registerTours(g *echo.Group) {
	protect := r.authMiddleware.Protect
	editors := r.authMiddleware.RestrictTo(entity.RoleAdmin, entity.RoleLeadGuide)

	g.GET("/top-5-cheap", r.tours.GetAll, r.tours.AliasTopTours)
	g.GET("/tour-stats", r.tours.Stats)
	g.GET("/monthly-plan/:year", r.tours.MonthlyPlan,
		protect, r.authMiddleware.RestrictTo(entity.RoleAdmin, entity.RoleLeadGuide, entity.RoleGuide))
	g.GET("/tours-within/:distance/center/:latlng/unit/:unit", r.tours.ToursWithin)
	g.GET("/distances/:latlng/unit/:unit", r.tours.Distances)

	g.GET("", r.tours.GetAll)
	g.POST("", r.tours.CreateOne, protect, editors)
	g.GET("/:id", r.tours.GetOne)
	g.PATCH("/:id", r.tours.UpdateOne, protect, editors)
	g.DELETE("/:id", r.tours.DeleteOne, protect, editors)

	g.GET("/:tourId/reviews", r.reviews.GetAll, protect)
	g.POST("/:tourId/reviews", r.reviews.CreateOne, protect, r.authMiddleware.RestrictTo(entity.RoleUser))
}

// Guards are attached per route so the not-found catch-all of each group stays public.

func (r *router) registerReviews(g *echo.Group) {
	protect := r.authMiddleware.Protect
	authors := r.authMiddleware.RestrictTo(entity.RoleUser, entity.RoleAdmin)

	g.GET("", r.reviews.GetAll, protect)
	g.POST("", r.reviews.CreateOne, protect, r.authMiddleware.RestrictTo(entity.RoleUser))
	g.GET("/:id", r.reviews.GetOne, protect)
	g.PATCH("/:id", r.reviews.UpdateOne, protect, authors)
	g.DELETE("/:id", r.reviews.DeleteOne, protect, authors)
}

func (r *router) registerUsers(g *echo.Group) {
	protect := r.authMiddleware.Protect
	admin := r.authMiddleware.RestrictTo(entity.RoleAdmin)

	g.POST("/signup", r.auth.Signup)
	g.POST("/login", r.auth.Login)
	g.GET("/logout", r.auth.Logout)
	g.POST("/forgotPassword", r.auth.ForgotPassword)
	g.PATCH("/resetPassword/:token", r.auth.ResetPassword)

	g.PATCH("/updateMyPassword", r.auth.UpdateMyPassword, protect)
	g.GET("/me", r.users.GetMe, protect)
	g.PATCH("/updateMe", r.users.UpdateMe, protect)
	g.DELETE("/deleteMe", r.users.DeleteMe, protect)

	g.GET("", r.users.GetAll, protect, admin)
	g.POST("", r.users.CreateUser, protect, admin)
	g.GET("/:id", r.users.GetOne, protect, admin)
	g.PATCH("/:id", r.users.UpdateOne, protect, admin)
	g.DELETE("/:id", r.users.DeleteOne, protect, admin)
}

func (r *router) registerBookings(g *echo.Group) {
	protect := r.authMiddleware.Protect
	staff := r.authMiddleware.RestrictTo(entity.RoleAdmin, entity.RoleLeadGuide)

	g.GET("/:id/ticket", r.bookings.Ticket, protect)

	g.GET("", r.bookings.GetAll, protect, staff)
	g.POST("", r.bookings.CreateOne, protect, staff)
	g.GET("/:id", r.bookings.GetOne, protect, staff)
	g.PATCH("/:id", r.bookings.UpdateOne, protect, staff)
	g.DELETE("/:id", r.bookings.DeleteOne, protect, staff)
}
