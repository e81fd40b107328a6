package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"adwhey-portal/constants"
	"adwhey-portal/logger"
	otpModel "adwhey-portal/models/otp"
	userModel "adwhey-portal/models/user"
	otpService "adwhey-portal/services/otp"
	"adwhey-portal/services/resetflow"
	"adwhey-portal/types"
	authTypes "adwhey-portal/types/auth"
	otpTypes "adwhey-portal/types/otp"
	"adwhey-portal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const accessTokenTTL = 8 * time.Hour

type AuthController struct {
	db             *gorm.DB
	otpService     *otpService.Service
	resetFlow      *resetflow.Manager
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, otps *otpService.Service, flow *resetflow.Manager, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{
		db:             db,
		otpService:     otps,
		resetFlow:      flow,
		loggerInstance: asyncLogger,
	}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   isProduction,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// relayFailed reports whether an undelivered code came from a configured
// relay whose send errored, as opposed to no relay being configured at all.
func relayFailed(mailer otpService.Mailer, delivered bool) bool {
	return !delivered && mailer != nil && mailer.Configured()
}

func (h *AuthController) issueToken(u *userModel.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET is not set")
	}

	claims := jwt.MapClaims{
		"uuid":  u.Uuid,
		"email": u.Email,
		"role":  constants.RoleForEmail(u.Email),
		"exp":   time.Now().Add(accessTokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Register creates a credential plus its profile row in one step.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request payload",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		logger.Error(err.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var existing userModel.User
	err := h.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Message: "This email is already registered",
			Status:  fiber.StatusConflict,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Database error while checking existing user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to create account",
			Status:  fiber.StatusInternalServerError,
		})
	}

	newUser := userModel.User{
		Uuid:         uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
	}

	if err := h.db.Create(&newUser).Error; err != nil {
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to create account",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	logger.Success("User registered successfully. UUID: " + newUser.Uuid)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Account created successfully",
		Status:  fiber.StatusCreated,
		Data:    newUser,
	})
}

// Login verifies the credential and issues a session token.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request payload",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var u userModel.User
	if err := h.db.Where("email = ?", req.Email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Invalid email or password",
				Status:  fiber.StatusUnauthorized,
			})
		}
		logger.Error("Database error during login", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid email or password",
			Status:  fiber.StatusUnauthorized,
		})
	}

	token, err := h.issueToken(&u)
	if err != nil {
		logger.Error("Failed to issue session token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to sign in",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.setSecureCookie(c, "access", token, int(accessTokenTTL.Seconds()))

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	logger.Success("User logged in successfully. uuid: " + u.Uuid)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Signed in successfully",
		Status:  fiber.StatusOK,
		Token:   token,
		Data: map[string]interface{}{
			"user": u,
			"role": constants.RoleForEmail(u.Email),
		},
	})
}

// LogOut expires the session cookie.
func (h *AuthController) LogOut(c *fiber.Ctx) error {
	h.setSecureCookie(c, "access", "", -1)

	logger.Success("Logout successful")
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logout successful",
		Status:  fiber.StatusOK,
	})
}

// ForgotPassword starts the reset flow: mints a 6-digit code, mails it,
// and moves the flow to the awaiting-code stage. When the mail relay is
// unconfigured the code is echoed back with a warning so development
// setups stay usable.
func (h *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req authTypes.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request payload",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var u userModel.User
	if err := h.db.Where("email = ?", req.Email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "No account found for this email",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Database error during forgot-password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	record, delivered, err := h.otpService.SendOTP(req.Email, otpModel.OTPPurposePasswordReset)
	if err != nil {
		logger.Error("Failed to send reset code", err)
		return c.Status(fiber.StatusBadRequest).JSON(otpTypes.SendOTPResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	// A configured relay that failed to send is a delivery error; the code
	// is never echoed in that case.
	if relayFailed(h.otpService.Mailer, delivered) {
		return c.Status(fiber.StatusBadGateway).JSON(otpTypes.SendOTPResponse{
			Success: false,
			Message: "Failed to send the reset code email. Please try again shortly",
		})
	}

	h.resetFlow.Begin(req.Email)

	resp := otpTypes.SendOTPResponse{
		Success:   true,
		Message:   "A reset code has been sent to your email",
		ExpiresAt: record.ExpiresAt.Format(time.RFC3339),
	}
	if !delivered {
		// Unconfigured-relay fallback: echo the code so the flow still works.
		resp.OTP = record.OTPCode
		resp.Warning = "Mail relay is not configured; code returned in response"
		logger.Warning("Reset code for " + req.Email + " was not delivered by mail")
	}

	logger.Success("Reset code issued for " + req.Email)
	return c.Status(fiber.StatusOK).JSON(resp)
}

// VerifyResetCode advances the flow past the code step. The check is
// shape-and-target only; the stored code is validated by ResetPassword.
func (h *AuthController) VerifyResetCode(c *fiber.Ctx) error {
	var req authTypes.VerifyResetCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request payload",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := h.resetFlow.VerifyCode(req.Email, req.Code); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(otpTypes.VerifyOTPResponse{
			Success: false,
			Message: "Code rejected",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(otpTypes.VerifyOTPResponse{
		Success: true,
		Message: "Code accepted. You can set a new password now",
	})
}

// ResetPassword is the final, atomic step: the stored OTP is validated and
// the credential updated in one operation. Success clears the reset
// session and returns the user to sign-in.
func (h *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req authTypes.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request payload",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	err := h.resetFlow.Finalize(req.Email, req.NewPassword, req.ConfirmNewPassword, func() error {
		ok, err := h.otpService.VerifyOTP(req.Email, req.OTP, otpModel.OTPPurposePasswordReset)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("invalid or expired code")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		return h.db.Model(&userModel.User{}).
			Where("email = ?", req.Email).
			Update("password_hash", string(hash)).Error
	})
	if err != nil {
		logger.Error("Password reset failed for "+req.Email, err)
		return c.Status(fiber.StatusBadRequest).JSON(otpTypes.VerifyOTPResponse{
			Success: false,
			Message: "Password reset failed",
			Error:   err.Error(),
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	logger.Success("Password reset completed for " + req.Email)
	return c.Status(fiber.StatusOK).JSON(otpTypes.VerifyOTPResponse{
		Success: true,
		Message: "Password updated. Please sign in",
	})
}

// CancelReset abandons any in-flight reset session. Idempotent.
func (h *AuthController) CancelReset(c *fiber.Ctx) error {
	var req authTypes.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request payload",
			Status:  fiber.StatusBadRequest,
		})
	}

	h.resetFlow.Cancel(req.Email)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Reset cancelled",
		Status:  fiber.StatusOK,
	})
}
