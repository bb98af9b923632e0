package main

import (
	"log"

	"edutrack/config"
	analyticsController "edutrack/controllers/analytics"
	authController "edutrack/controllers/auth"
	certificateController "edutrack/controllers/certificate"
	courseController "edutrack/controllers/course"
	notificationController "edutrack/controllers/notification"
	paymentController "edutrack/controllers/payment"
	quizController "edutrack/controllers/quiz"
	userController "edutrack/controllers/user"
	"edutrack/database"
	"edutrack/gateway"
	"edutrack/middleware"
	"edutrack/pdfgen"
	"edutrack/routers/analyticsRoutes"
	"edutrack/routers/authRoutes"
	"edutrack/routers/certificateRoutes"
	"edutrack/routers/courseRoutes"
	"edutrack/routers/notificationRoutes"
	"edutrack/routers/paymentRoutes"
	"edutrack/routers/quizRoutes"
	"edutrack/routers/userRoutes"
	"edutrack/services"
	"edutrack/utils"
	"edutrack/ws"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Collaborators
	hub := ws.NewHub()
	mailer := utils.NewMailer(cfg)
	stripeClient := gateway.NewStripeClient(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	renderer := pdfgen.NewRenderer()

	// Services
	audit := services.NewAuditService(db)
	identity := services.NewIdentityService(db, cfg.SaltRound, mailer, audit)
	catalog := services.NewCatalogService(db, audit)
	notifications := services.NewNotificationService(db, hub)
	enrollments := services.NewEnrollmentService(db, mailer)
	progress := services.NewProgressService(db, enrollments, notifications)
	quizzes := services.NewQuizService(db)
	payments := services.NewPaymentService(db, stripeClient, enrollments, notifications, mailer, audit)
	certificates := services.NewCertificateService(db, renderer, mailer, cfg.CertificateIssuer)
	analytics := services.NewAnalyticsService(db)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Welcome to the EduTrack API!", nil)
	})

	authRoutes.SetupAuthRoutes(app, authController.NewAuthController(identity))
	userRoutes.SetupUserRoutes(app, db, userController.NewUserController(identity))
	courseRoutes.SetupCourseRoutes(app, db,
		courseController.NewCourseController(catalog),
		courseController.NewLessonController(catalog),
		courseController.NewEnrollmentController(enrollments),
		courseController.NewProgressController(progress))
	quizRoutes.SetupQuizRoutes(app, quizController.NewQuizController(quizzes))
	paymentRoutes.SetupPaymentRoutes(app, paymentController.NewPaymentController(payments, stripeClient))
	certificateRoutes.SetupCertificateRoutes(app, certificateController.NewCertificateController(certificates))
	notificationRoutes.SetupNotificationRoutes(app, notificationController.NewNotificationController(notifications))
	analyticsRoutes.SetupAnalyticsRoutes(app, analyticsController.NewAnalyticsController(analytics))

	app.Get("/ws/notifications", ws.UpgradeMiddleware, hub.Handler())

	scheduler := utils.InitializePaymentScheduler(payments)
	defer scheduler.Stop()

	log.Fatal(app.Listen(":" + cfg.Port))
}
