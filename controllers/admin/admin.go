package admin

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"adwhey-portal/logger"
	bookingModel "adwhey-portal/models/booking"
	userModel "adwhey-portal/models/user"
	"adwhey-portal/services/export"
	"adwhey-portal/types"
	bookingTypes "adwhey-portal/types/booking"
	"adwhey-portal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// AdminController is the lead-triage surface: full read access over
// bookings and users, status updates, deletes, CSV export and overview
// stats.
type AdminController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewAdminController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AdminController {
	return &AdminController{DB: db, Logger: asyncLogger}
}

// statusUpdatePayload is the complete set of columns a status change
// touches; everything else on the booking row stays as submitted.
func statusUpdatePayload(to bookingModel.BookingStatus, changedBy string) map[string]interface{} {
	return map[string]interface{}{
		"status":     to,
		"updated_by": changedBy,
	}
}

// matchesSearch is the case-insensitive substring predicate over
// name/email/mobile/service.
func matchesSearch(b bookingModel.Booking, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(b.Name), term) ||
		strings.Contains(strings.ToLower(b.Email), term) ||
		strings.Contains(strings.ToLower(b.Mobile), term) ||
		strings.Contains(strings.ToLower(b.Service), term)
}

// ListBookings returns the full bookings collection, newest first,
// filtered by the optional q (substring) and status (exact) params.
func (ac *AdminController) ListBookings(c *fiber.Ctx) error {
	var bookings []bookingModel.Booking
	if err := ac.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
		logger.Error("Failed to fetch bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	q := c.Query("q")
	status := c.Query("status")

	filtered := make([]bookingModel.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !matchesSearch(b, q) {
			continue
		}
		if status != "" && status != "all" && b.Status.String() != status {
			continue
		}
		filtered = append(filtered, b)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings fetched successfully",
		Data:    filtered,
	})
}

// ListUsers returns the full users collection, newest first.
func (ac *AdminController) ListUsers(c *fiber.Ctx) error {
	var users []userModel.User
	if err := ac.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		logger.Error("Failed to fetch users", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load users",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Users fetched successfully",
		Data:    users,
	})
}

// UpdateStatus sets a booking's status. Any status from the enumerated
// set may be set from any other; no transition ordering is enforced.
// Each change is snapshotted into the status event trail.
func (ac *AdminController) UpdateStatus(c *fiber.Ctx) error {
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

	var req bookingTypes.BookingStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	newStatus := bookingModel.BookingStatus(req.Status)
	if !newStatus.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("unknown status %q", req.Status),
			Status:  fiber.StatusBadRequest,
		})
	}

	var b bookingModel.Booking
	if err := ac.DB.First(&b, id).Error; err != nil {
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

	fromStatus := b.Status

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&b).Updates(statusUpdatePayload(newStatus, identity.Email)).Error; err != nil {
			return err
		}

		event := bookingModel.BookingStatusEvent{
			BookingID:  b.ID,
			FromStatus: fromStatus,
			ToStatus:   newStatus,
			ChangedBy:  identity.Email,
		}
		return tx.Create(&event).Error
	})
	if err != nil {
		logger.Error("Failed to update booking status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Booking %d status %s -> %s by %s", b.ID, fromStatus, newStatus, identity.Email))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Status updated successfully",
		Data:    b,
	})
}

// DeleteBooking removes any booking. The confirmation dialog lives in the
// client; the server just deletes and the client re-fetches.
func (ac *AdminController) DeleteBooking(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	result := ac.DB.Delete(&bookingModel.Booking{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete booking", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete booking",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Booking not found",
			Status:  fiber.StatusNotFound,
		})
	}

	logger.Success(fmt.Sprintf("Booking %d deleted by admin", id))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking deleted successfully",
	})
}

// Export streams the active tab's dataset as a CSV download named
// "<tab>_<ISO-date>.csv".
func (ac *AdminController) Export(c *fiber.Ctx) error {
	tab := c.Query("tab", export.TabBookings)

	var (
		data []byte
		err  error
	)

	switch tab {
	case export.TabBookings:
		var bookings []bookingModel.Booking
		if err := ac.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
			logger.Error("Failed to fetch bookings for export", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to load bookings",
				Status:  fiber.StatusInternalServerError,
			})
		}
		data, err = export.BookingsCSV(bookings)
	case export.TabUsers:
		var users []userModel.User
		if err := ac.DB.Order("created_at DESC").Find(&users).Error; err != nil {
			logger.Error("Failed to fetch users for export", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to load users",
				Status:  fiber.StatusInternalServerError,
			})
		}
		data, err = export.UsersCSV(users)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("unknown export tab %q", tab),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err != nil {
		logger.Error("Failed to build CSV export", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to build export",
			Status:  fiber.StatusInternalServerError,
		})
	}

	filename := export.Filename(tab, time.Now())
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Status(fiber.StatusOK).Send(data)
}

// Stats backs the overview cards: totals, per-status counts, and
// this-week/this-month booking volume.
func (ac *AdminController) Stats(c *fiber.Ctx) error {
	var totalBookings, totalUsers int64
	if err := ac.DB.Model(&bookingModel.Booking{}).Count(&totalBookings).Error; err != nil {
		logger.Error("Failed to count bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load stats",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if err := ac.DB.Model(&userModel.User{}).Count(&totalUsers).Error; err != nil {
		logger.Error("Failed to count users", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load stats",
			Status:  fiber.StatusInternalServerError,
		})
	}

	byStatus := make(map[string]int64, len(bookingModel.GetAllBookingStatuses()))
	for _, status := range bookingModel.GetAllBookingStatuses() {
		var n int64
		if err := ac.DB.Model(&bookingModel.Booking{}).Where("status = ?", status).Count(&n).Error; err != nil {
			logger.Error("Failed to count bookings by status", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to load stats",
				Status:  fiber.StatusInternalServerError,
			})
		}
		byStatus[status.String()] = n
	}

	n := now.With(time.Now())
	var thisWeek, thisMonth int64
	if err := ac.DB.Model(&bookingModel.Booking{}).Where("created_at >= ?", n.BeginningOfWeek()).Count(&thisWeek).Error; err != nil {
		logger.Error("Failed to count this week's bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load stats",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if err := ac.DB.Model(&bookingModel.Booking{}).Where("created_at >= ?", n.BeginningOfMonth()).Count(&thisMonth).Error; err != nil {
		logger.Error("Failed to count this month's bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load stats",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Stats fetched successfully",
		Data: map[string]interface{}{
			"total_bookings":      totalBookings,
			"total_users":         totalUsers,
			"bookings_by_status":  byStatus,
			"bookings_this_week":  thisWeek,
			"bookings_this_month": thisMonth,
		},
	})
}
