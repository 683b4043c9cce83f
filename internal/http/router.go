package api

import (
	"log"
	stdhttp "net/http"

	intconfig "github.com/selvawasi/backend/internal/config"
	"github.com/selvawasi/backend/internal/domain"
	h "github.com/selvawasi/backend/internal/http/handlers"
	"github.com/selvawasi/backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "ruta no encontrada",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	auth := middleware.RequireAuth(h.JWTSecret())
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	operatorOrAdmin := middleware.RequireRole(domain.RoleOperator, domain.RoleAdmin)
	ownerOrAdmin := middleware.RequireRole(domain.RoleRestaurantOwner, domain.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)
		authGroup.GET("/me", auth, h.Me)

		// Users
		users := api.Group("/users")
		users.GET("", auth, adminOnly, h.GetUsers)
		users.PUT("/profile", auth, h.UpdateProfile)
		users.PUT("/:id/role", auth, adminOnly, h.UpdateUserRole)

		// Catalog: boats, routes, schedules, experiences
		boats := api.Group("/boats")
		boats.GET("", h.GetBoats)
		boats.GET("/:id", h.GetBoatByID)
		boats.POST("", auth, operatorOrAdmin, h.CreateBoat)
		boats.PUT("/:id", auth, operatorOrAdmin, h.UpdateBoat)
		boats.DELETE("/:id", auth, adminOnly, h.DeleteBoat)

		routes := api.Group("/routes")
		routes.GET("", h.GetRoutes)
		routes.GET("/:id", h.GetRouteByID)
		routes.POST("", auth, adminOnly, h.CreateRoute)
		routes.PUT("/:id", auth, adminOnly, h.UpdateRoute)
		routes.DELETE("/:id", auth, adminOnly, h.DeleteRoute)

		schedules := api.Group("/schedules")
		schedules.GET("", h.GetSchedules)
		schedules.GET("/:id", h.GetScheduleByID)
		schedules.POST("", auth, operatorOrAdmin, h.CreateSchedule)
		schedules.PUT("/:id", auth, operatorOrAdmin, h.UpdateSchedule)
		schedules.DELETE("/:id", auth, adminOnly, h.DeleteSchedule)

		experiences := api.Group("/experiences")
		experiences.GET("", h.GetExperiences)
		experiences.GET("/:id", h.GetExperienceByID)
		experiences.POST("", auth, operatorOrAdmin, h.CreateExperience)
		experiences.PUT("/:id", auth, operatorOrAdmin, h.UpdateExperience)
		experiences.DELETE("/:id", auth, adminOnly, h.DeleteExperience)

		// Restaurants + dishes + reviews + reservations
		restaurants := api.Group("/restaurants")
		restaurants.GET("", h.GetRestaurants)
		restaurants.GET("/:id", h.GetRestaurantByID)
		restaurants.POST("", auth, adminOnly, h.CreateRestaurant)
		restaurants.PUT("/:id", auth, ownerOrAdmin, h.UpdateRestaurant)
		restaurants.DELETE("/:id", auth, adminOnly, h.DeleteRestaurant)
		restaurants.GET("/:id/dishes", h.GetDishes)
		restaurants.POST("/:id/dishes", auth, ownerOrAdmin, h.CreateDish)
		restaurants.PUT("/:id/dishes/:dishId", auth, ownerOrAdmin, h.UpdateDish)
		restaurants.DELETE("/:id/dishes/:dishId", auth, ownerOrAdmin, h.DeleteDish)
		restaurants.POST("/:id/reviews", auth, h.CreateReview)
		restaurants.POST("/:id/reservations", auth, h.CreateReservation)

		reservations := api.Group("/reservations")
		reservations.GET("", auth, ownerOrAdmin, h.GetReservations)
		reservations.PATCH("/:id/status", auth, ownerOrAdmin, h.DecideReservation)

		// Bookings (ledger)
		bookings := api.Group("/bookings")
		bookings.POST("", auth, h.CreateBooking)
		bookings.GET("", auth, adminOnly, h.GetBookings)
		bookings.GET("/me", auth, h.GetMyBookings)
		bookings.GET("/code/:code", auth, h.GetBookingByCode)
		bookings.GET("/:id", auth, h.GetBookingByID)
		bookings.GET("/:id/ticket", auth, h.GetBookingTicketPDF)
		bookings.PATCH("/:id/status", auth, adminOnly, h.UpdateBookingStatus)
		bookings.DELETE("/:id", auth, adminOnly, h.DeleteBooking)

		// Chatbot
		api.POST("/chat", h.Chat)

		// Admin dashboard
		admin := api.Group("/admin")
		admin.GET("/stats", auth, adminOnly, h.AdminStats)
		admin.GET("/activity", auth, adminOnly, h.AdminActivity)
	}

	return r
}
