package main

import (
	"log"

	"edumate/config"
	"edumate/database"
	adminRoutes "edumate/routers/adminRoutes"
	authRoutes "edumate/routers/authRoutes"
	courseRoutes "edumate/routers/courseRoutes"
	enrollmentRoutes "edumate/routers/enrollmentRoutes"
	pageRoutes "edumate/routers/pageRoutes"
	"edumate/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Database startup failed: %v", err)
	}
	defer db.Close()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: false,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	pageRoutes.SetupPageRoutes(app)
	authRoutes.SetupAuthRoutes(app, db.Db)
	courseRoutes.SetupCourseRoutes(app, db.Db)
	enrollmentRoutes.SetupEnrollmentRoutes(app, db.Db)
	adminRoutes.SetupAdminRoutes(app, db.Db)

	digest := utils.InitializeDigestScheduler(db.Db)
	defer digest.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
