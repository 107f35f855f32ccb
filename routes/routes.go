package routes

import (
	"beautybook-backend/config"
	"beautybook-backend/controllers"
	"beautybook-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())
	r.Use(utils.ErrorHandler())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/verify", controllers.VerifyEmail)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public booking surface
	booking := r.Group("/booking")
	booking.Use(utils.RateLimitMiddleware())
	{
		booking.GET("/availability", controllers.GetBookedSlots)
		booking.GET("/slots", controllers.GetOpenSlots)
		booking.GET("/:slug", controllers.GetBusinessPage)
		booking.GET("/:slug/reviews", controllers.ListBusinessReviews)

		customer := booking.Group("")
		customer.Use(utils.AuthMiddleware(), utils.RequireRole(utils.RoleCustomer))
		{
			customer.POST("", controllers.CreateBooking)
			customer.GET("/mine", controllers.ListMyBookings)
		}
	}

	// Customer review submission
	bookings := r.Group("/bookings")
	bookings.Use(utils.AuthMiddleware(), utils.RequireRole(utils.RoleCustomer))
	{
		bookings.POST("/:id/review", controllers.CreateReview)
	}

	// Image retrieval
	r.GET("/images/resolve", utils.RateLimitMiddleware(), controllers.ResolveImage)

	// Owner surface
	business := r.Group("/business")
	business.Use(utils.AuthMiddleware(), utils.RequireRole(utils.RoleBusinessOwner))
	{
		business.GET("/profile", controllers.GetBusinessProfile)
		business.PATCH("/profile", controllers.UpdateBusinessProfile)
		business.GET("/dashboard", controllers.GetDashboardOverview)

		business.GET("/availability", controllers.GetAvailability)
		business.PUT("/availability", controllers.ReplaceAvailability)

		timeoff := business.Group("/timeoff")
		{
			timeoff.POST("", controllers.CreateTimeOff)
			timeoff.GET("", controllers.ListTimeOff)
			timeoff.DELETE("/:id", controllers.DeleteTimeOff)
		}

		bookings := business.Group("/bookings")
		{
			bookings.GET("", controllers.ListBusinessBookings)
			bookings.PATCH("/:id", controllers.UpdateBookingStatus)
			bookings.POST("/:id/complete", controllers.CompleteBooking)
		}

		services := business.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		photos := business.Group("/photos")
		{
			photos.POST("", controllers.UploadPhoto)
			photos.GET("", controllers.ListPhotos)
			photos.DELETE("/:id", controllers.DeletePhoto)
		}

		customers := business.Group("/customers")
		{
			customers.POST("/:id/message", controllers.CreateMessage)
			customers.GET("/:id/messages", controllers.ListMessages)
		}

		payments := business.Group("/payments")
		{
			payments.POST("/onboard", controllers.StartOnboarding)
			payments.GET("/portal", controllers.GetPayoutPortal)
			payments.GET("/callback", controllers.OnboardingCallback)
			payments.GET("/fees", controllers.PreviewFees)
		}
	}

	return r
}
