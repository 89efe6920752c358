// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"medlearn_backend/internals/configs"
	authDTO "medlearn_backend/internals/features/users/auth/dto"
	authService "medlearn_backend/internals/features/users/auth/service"
	userDTO "medlearn_backend/internals/features/users/user/dto"
	userModel "medlearn_backend/internals/features/users/user/model"
	helper "medlearn_backend/internals/helpers"
	helperAuth "medlearn_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

// POST /api/v1/auth/login
// Identifier is the registered email or phone number.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if req.Identifier == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Identifier and password are required")
	}

	var user userModel.UserModel
	err := h.DB.
		Where("email = ? OR phone = ?", req.Identifier, req.Identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if !user.IsActive {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := authService.BuildAccessToken(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		Token: token,
		User:  userDTO.FromUserModel(user),
	})
}

// POST /api/v1/auth/google
func (h *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to decode ID token")
	}
	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	name, googleID := claimSet.Name, claimSet.Sub

	var user userModel.UserModel
	err = h.DB.Where("google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Existing email account gets linked, otherwise register fresh.
		err = h.DB.Where("email = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = userModel.UserModel{
				Name:     name,
				Email:    email,
				Password: randomPassword(),
				GoogleID: &googleID,
				Role:     userModel.RoleUser,
				IsActive: true,
			}
			if err := h.DB.Create(&user).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to register user")
			}
		} else if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
		} else {
			if err := h.DB.Model(&user).Update("google_id", googleID).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to link account")
			}
		}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if !user.IsActive {
		return fiber.NewError(fiber.StatusUnauthorized, "Account is disabled")
	}

	token, err := authService.BuildAccessToken(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		Token: token,
		User:  userDTO.FromUserModel(user),
	})
}

// GET /api/v1/auth/me (behind auth middleware)
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return helper.JsonOK(c, "", userDTO.FromUserModel(user))
}

// randomPassword fills the password column for Google-registered accounts.
// It is bcrypt-hashed random bytes, never a usable credential.
func randomPassword() string {
	buf := make([]byte, 24)
	_, _ = rand.Read(buf)
	hashed, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(buf)), bcrypt.DefaultCost)
	if err != nil {
		return hex.EncodeToString(buf)
	}
	return string(hashed)
}
