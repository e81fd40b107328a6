package user

import (
	"errors"
	"fmt"

	"adwhey-portal/logger"
	userModel "adwhey-portal/models/user"
	"adwhey-portal/types"
	userTypes "adwhey-portal/types/user"
	"adwhey-portal/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetProfile returns the caller's profile fields. A user who has never
// saved a profile gets the empty fields, not an error.
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	identity, err := utils.IdentityFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var u userModel.User
	if err := uc.DB.Where("uuid = ?", identity.UUID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
				Status:  fiber.StatusOK,
				Message: "Profile fetched successfully",
				Data: map[string]interface{}{
					"email":        identity.Email,
					"full_name":    "",
					"company_name": "",
					"phone":        "",
					"bio":          "",
				},
			})
		}
		logger.Error("Failed to load profile", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load profile",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile fetched successfully",
		Data: map[string]interface{}{
			"email":        u.Email,
			"full_name":    u.FullName,
			"company_name": u.CompanyName,
			"phone":        u.Phone,
			"bio":          u.Bio,
		},
	})
}

// SaveProfile upserts the caller's profile fields. The email is taken
// from the session, never from the body.
func (uc *UserController) SaveProfile(c *fiber.Ctx) error {
	identity, err := utils.IdentityFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req userTypes.ProfileSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	fields := map[string]interface{}{
		"full_name":    req.FullName,
		"company_name": req.CompanyName,
		"phone":        req.Phone,
		"bio":          req.Bio,
	}

	result := uc.DB.Model(&userModel.User{}).Where("uuid = ?", identity.UUID).Updates(fields)
	if result.Error != nil {
		logger.Error("Failed to update profile", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to save profile",
			Status:  fiber.StatusInternalServerError,
		})
	}

	// Update-then-insert fallback: a session can outlive its row when an
	// admin removes the account, so recreate the profile shell on miss.
	if result.RowsAffected == 0 {
		u := userModel.User{
			Uuid:        identity.UUID,
			Email:       identity.Email,
			FullName:    req.FullName,
			CompanyName: req.CompanyName,
			Phone:       req.Phone,
			Bio:         req.Bio,
		}
		if err := uc.DB.Create(&u).Error; err != nil {
			logger.Error("Failed to insert profile", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to save profile",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	logger.Success(fmt.Sprintf("Profile saved for %s", identity.Email))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile saved successfully",
	})
}
