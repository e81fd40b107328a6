package booking

import (
	"errors"
	"fmt"
	"strings"

	"adwhey-portal/constants"
	"adwhey-portal/logger"
	bookingModel "adwhey-portal/models/booking"
	"adwhey-portal/services/budget"
	"adwhey-portal/types"
	bookingTypes "adwhey-portal/types/booking"
	"adwhey-portal/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminNotifier delivers the best-effort new-booking email.
// Satisfied by httpServices/mailer.
type AdminNotifier interface {
	NotifyAdmin(subject, adminEmail string, booking map[string]interface{}) error
}

// BookingController handles the self-service booking surface.
type BookingController struct {
	DB       *gorm.DB
	Notifier AdminNotifier
	Logger   *logger.AsyncLogger
}

// NewBookingController creates a new booking controller
func NewBookingController(db *gorm.DB, notifier AdminNotifier, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		DB:       db,
		Notifier: notifier,
		Logger:   asyncLogger,
	}
}

// buildRecord normalizes a validated submission into its stored form:
// dial-code-prefixed mobile and currency-tagged budget.
func buildRecord(req bookingTypes.BookingSubmitRequest) (bookingModel.Booking, error) {
	mobile, err := utils.ComposeMobile(req.Country, req.Mobile)
	if err != nil {
		return bookingModel.Booking{}, err
	}

	currency := budget.CurrencyForCountry(req.Country)

	return bookingModel.Booking{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Mobile:  mobile,
		Service: req.Service,
		Budget:  budget.BuildStoredBudget(currency, req.Budget),
		Message: req.Message,
		Status:  bookingModel.BookingStatusPending,
	}, nil
}

// Store creates a new booking for the authenticated requester.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	identity, err := utils.IdentityFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	record, err := buildRecord(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := bc.DB.Create(&record).Error; err != nil {
		logger.Error("Failed to create booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save booking",
		})
	}

	// Best-effort admin notification. Failure is logged, never surfaced.
	bc.notifyAdminAsync(record)

	logEntry := utils.CreateSanitizedLogEntry(c)
	bc.Logger.Log(logEntry)

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d (by %s)", record.ID, identity.Email))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    record,
	})
}

func (bc *BookingController) notifyAdminAsync(record bookingModel.Booking) {
	go func() {
		payload := map[string]interface{}{
			"name":    record.Name,
			"email":   record.Email,
			"mobile":  record.Mobile,
			"service": record.Service,
			"budget":  record.Budget,
			"message": record.Message,
			"status":  record.Status.String(),
		}
		if err := bc.Notifier.NotifyAdmin("New Booking Submitted", "", payload); err != nil {
			logger.Error("Failed to notify admin of new booking", err)
		}
	}()
}

// Mine lists the authenticated requester's bookings, newest first.
func (bc *BookingController) Mine(c *fiber.Ctx) error {
	identity, err := utils.IdentityFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var bookings []bookingModel.Booking
	if err := bc.DB.Where("email = ?", identity.Email).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		logger.Error("Failed to fetch bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to load bookings",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings fetched successfully",
		Data:    bookings,
	})
}

// Update edits one of the requester's own bookings; the submission is
// re-validated and re-normalized exactly like a create.
func (bc *BookingController) Update(c *fiber.Ctx) error {
	identity, err := utils.IdentityFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req bookingTypes.BookingSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var existing bookingModel.Booking
	if err := bc.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Booking not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Database error while loading booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if !strings.EqualFold(existing.Email, identity.Email) {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "You can only edit your own bookings",
			Status:  fiber.StatusForbidden,
		})
	}

	updated, err := buildRecord(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	existing.Name = updated.Name
	existing.Mobile = updated.Mobile
	existing.Service = updated.Service
	existing.Budget = updated.Budget
	existing.Message = updated.Message
	existing.UpdatedBy = identity.Email

	if err := bc.DB.Save(&existing).Error; err != nil {
		logger.Error("Failed to update booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Booking %d updated by %s", existing.ID, identity.Email))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking updated successfully",
		Data:    existing,
	})
}

// Delete removes a booking. Owners can delete their own; admins can
// delete any.
func (bc *BookingController) Delete(c *fiber.Ctx) error {
	identity, err := utils.IdentityFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var existing bookingModel.Booking
	if err := bc.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Booking not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Database error while loading booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if !strings.EqualFold(existing.Email, identity.Email) && identity.Role != constants.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "You can only delete your own bookings",
			Status:  fiber.StatusForbidden,
		})
	}

	if err := bc.DB.Delete(&existing).Error; err != nil {
		logger.Error("Failed to delete booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Booking %d deleted by %s", id, identity.Email))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking deleted successfully",
	})
}
