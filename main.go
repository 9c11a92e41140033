package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"swimtrack/audit"
	"swimtrack/config"
	adminController "swimtrack/controllers/admin"
	attendanceController "swimtrack/controllers/attendance"
	authController "swimtrack/controllers/auth"
	coachController "swimtrack/controllers/coach"
	enrollmentController "swimtrack/controllers/enrollment"
	meController "swimtrack/controllers/me"
	studentController "swimtrack/controllers/student"
	"swimtrack/database"
	"swimtrack/middleware"
	adminRoutes "swimtrack/routers/adminRoutes"
	attendanceRoutes "swimtrack/routers/attendanceRoutes"
	authRoutes "swimtrack/routers/authRoutes"
	coachRoutes "swimtrack/routers/coachRoutes"
	enrollmentRoutes "swimtrack/routers/enrollmentRoutes"
	meRoutes "swimtrack/routers/meRoutes"
	studentRoutes "swimtrack/routers/studentRoutes"
	"swimtrack/store"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	st := store.New(db)
	auditLog := audit.New(st)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.CORSOrigin,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authController.New(st))
	meRoutes.SetupMeRoutes(app, meController.New(st))
	coachRoutes.SetupCoachRoutes(app, coachController.New(st, auditLog))
	studentRoutes.SetupStudentRoutes(app, studentController.New(st, auditLog))
	enrollmentRoutes.SetupEnrollmentRoutes(app, enrollmentController.New(st, auditLog))
	attendanceRoutes.SetupAttendanceRoutes(app, attendanceController.New(st, auditLog))
	adminRoutes.SetupAdminRoutes(app, adminController.New(st, auditLog))

	app.Get("/health", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", fiber.Map{"ok": true})
	})

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
