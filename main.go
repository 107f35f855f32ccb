package main

import (
	"fmt"
	"log"

	"beautybook-backend/config"
	"beautybook-backend/models"
	"beautybook-backend/routes"
	"beautybook-backend/services"
	"beautybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.LoadConfig()
	utils.InitializeLogger()
	config.ConnectDB()
	config.InitCache()

	stripe.Key = config.AppConfig.StripeKey

	config.DB.AutoMigrate(
		&models.User{},
		&models.VerificationToken{},
		&models.Business{},
		&models.Service{},
		&models.Availability{},
		&models.TimeOff{},
		&models.Booking{},
		&models.Review{},
		&models.Communication{},
		&models.BusinessPhoto{},
	)
}

func main() {
	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + config.AppConfig.AppPort)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
