package router

import (
	"camera-rental-service/config"
	bookingHandler "camera-rental-service/internal/module/booking/handler"
	catalogHandler "camera-rental-service/internal/module/catalog/handler"
	userHandler "camera-rental-service/internal/module/user/handler"
	"camera-rental-service/internal/pkg/metrics"
	"camera-rental-service/internal/pkg/middleware"
	"camera-rental-service/internal/pkg/storage"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	User    *userHandler.UserHandler
	Catalog *catalogHandler.CatalogHandler
	Booking *bookingHandler.BookingHandler
}

func Initialize(app *fiber.App, cfg *config.Config, h Handlers, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})
	app.Get("/metrics", metrics.Handler())

	if cfg.Storage.Driver == storage.DriverLocal || cfg.Storage.Driver == "" {
		app.Static(cfg.Storage.PublicBaseURL, cfg.Storage.LocalDir)
	}

	Api := app.Group("/api")
	v1 := Api.Group("/v1")

	// users
	users := v1.Group("/users")
	users.Post("/register", m.RateLimit, h.User.Register)
	users.Post("/otp", m.RateLimit, h.User.IssueOtp)
	users.Post("/otp/verify", m.RateLimit, h.User.VerifyOtp)
	users.Get("/me", m.ValidateToken, h.User.GetProfile)
	users.Post("/me/image", m.ValidateToken, h.User.UploadImage)

	// catalog, public reads
	catalog := v1.Group("/catalog")
	catalog.Get("/brands", h.Catalog.ListBrands)
	catalog.Get("/brands/:id", h.Catalog.GetBrand)
	catalog.Get("/cameras", h.Catalog.ListCameras)
	catalog.Get("/cameras/:id", h.Catalog.GetCamera)
	catalog.Get("/banners", h.Catalog.ListBanners)

	// bookings
	v1.Post("/bookings", m.ValidateToken, h.Booking.CreateBooking)
	v1.Get("/bookings", m.ValidateToken, h.Booking.ShowBookings)
	v1.Get("/bookings/:id", m.ValidateToken, h.Booking.GetBooking)
	v1.Post("/bookings/:id/cancel", m.ValidateToken, h.Booking.CancelBooking)
	v1.Get("/bookings/:id/payment", m.ValidateToken, h.Booking.GetPayment)
	v1.Get("/availability", h.Booking.CheckAvailability)

	// payments, the notification webhook is authenticated by the gateway signature
	v1.Post("/payments", m.ValidateToken, h.Booking.CreatePayment)
	v1.Post("/payments/notifications/:provider", h.Booking.PaymentNotification)

	admin := v1.Group("/admin", m.ValidateToken, m.RequireAdmin)
	admin.Patch("/users/:id/role", h.User.ElevateRole)

	admin.Post("/brands", h.Catalog.CreateBrand)
	admin.Put("/brands/:id", h.Catalog.UpdateBrand)
	admin.Delete("/brands/:id", h.Catalog.DeleteBrand)
	admin.Post("/brands/:id/image", h.Catalog.UploadBrandImage)

	admin.Post("/cameras", h.Catalog.CreateCamera)
	admin.Put("/cameras/:id", h.Catalog.UpdateCamera)
	admin.Delete("/cameras/:id", h.Catalog.DeleteCamera)
	admin.Post("/cameras/:id/image", h.Catalog.UploadCameraImage)
	admin.Post("/cameras/:id/features", h.Catalog.AddFeature)
	admin.Delete("/features/:id", h.Catalog.DeleteFeature)

	admin.Post("/banners", h.Catalog.CreateBanner)
	admin.Delete("/banners/:id", h.Catalog.DeleteBanner)
	admin.Post("/banners/:id/image", h.Catalog.UploadBannerImage)

	admin.Get("/cameras/:id/bookings", h.Booking.ListCameraBookings)
	admin.Post("/bookings/:id/refund", h.Booking.RefundBooking)
	admin.Post("/bookings/:id/complete", h.Booking.CompleteBooking)

	return app

}
