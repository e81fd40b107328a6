package routes

import (
	"os"

	"adwhey-portal/controllers/admin"
	"adwhey-portal/controllers/auth"
	"adwhey-portal/controllers/booking"
	"adwhey-portal/controllers/chat"
	"adwhey-portal/controllers/user"
	"adwhey-portal/httpServices/mailer"
	"adwhey-portal/logger"
	"adwhey-portal/middleware"
	otpService "adwhey-portal/services/otp"
	"adwhey-portal/services/resetflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	mailerClient := mailer.NewClient(os.Getenv("RESEND_BASE_URL"))
	asyncLogger := logger.NewAsyncLogger(db)
	otps := otpService.NewOTPService(db, mailerClient)
	resetFlow := resetflow.NewManager()

	authController := auth.NewAuthController(db, otps, resetFlow, asyncLogger)
	bookingController := booking.NewBookingController(db, mailerClient, asyncLogger)
	userController := user.NewUserController(db)
	adminController := admin.NewAdminController(db, asyncLogger)
	chatController := chat.NewChatController()

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("adwhey portal api")
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authController.Register)
	authGroup.Post("/login", authController.Login)
	authGroup.Post("/forgot-password", authController.ForgotPassword)
	authGroup.Post("/verify-reset-code", authController.VerifyResetCode)
	authGroup.Post("/reset-password", authController.ResetPassword)
	authGroup.Post("/cancel-reset", authController.CancelReset)
	api.Post("/chat/reply", chatController.Reply)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	authGroup.Post("/logout", middleware.RequireAuthentication(), authController.LogOut)

	userGroup := api.Group("/user").Use(middleware.RequireAuthentication())
	userGroup.Get("/profile", userController.GetProfile)
	userGroup.Post("/profile", userController.SaveProfile)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/booking").Use(middleware.RequireAuthentication())
	bookingGroup.Post("/create", bookingController.Store)
	bookingGroup.Get("/mine", bookingController.Mine)
	bookingGroup.Put("/:id", bookingController.Update)
	bookingGroup.Delete("/:id", bookingController.Delete)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	adminGroup := api.Group("/admin").Use(middleware.RequireAdmin())
	adminGroup.Get("/bookings", adminController.ListBookings)
	adminGroup.Get("/users", adminController.ListUsers)
	adminGroup.Patch("/bookings/:id/status", adminController.UpdateStatus)
	adminGroup.Delete("/bookings/:id", adminController.DeleteBooking)
	adminGroup.Get("/export", adminController.Export)
	adminGroup.Get("/stats", adminController.Stats)
}
