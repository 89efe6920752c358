// file: internals/features/billing/subscriptions/controller/subscription_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	planModel "medlearn_backend/internals/features/billing/plans/model"
	subsDTO "medlearn_backend/internals/features/billing/subscriptions/dto"
	subsModel "medlearn_backend/internals/features/billing/subscriptions/model"
	subsService "medlearn_backend/internals/features/billing/subscriptions/service"
	userModel "medlearn_backend/internals/features/users/user/model"
	helper "medlearn_backend/internals/helpers"
	helperAuth "medlearn_backend/internals/helpers/auth"
)

type SubscriptionsController struct {
	DB *gorm.DB
}

// POST /api/u/subscriptions/checkout
func (h *SubscriptionsController) Checkout(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var req subsDTO.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var plan planModel.PlanModel
	if err := h.DB.First(&plan, "id = ? AND is_active = ?", req.PlanID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Plan not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch plan")
	}

	expires := time.Now().Add(time.Duration(plan.DurationDays) * 24 * time.Hour)
	sub := subsModel.SubscriptionModel{
		UserID:    user.ID,
		PlanID:    plan.ID,
		OrderID:   fmt.Sprintf("SUB-%d-%s", time.Now().Unix(), uuid.NewString()[:8]),
		Amount:    plan.Price,
		Status:    subsModel.SubscriptionStatusPending,
		ExpiresAt: &expires,
	}

	token, err := subsService.GenerateSnapToken(sub, user.Name, user.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to create payment transaction")
	}
	sub.PaymentToken = token

	if err := h.DB.Create(&sub).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create subscription")
	}

	return helper.JsonCreated(c, "Checkout created", subsDTO.CheckoutResponse{
		SubscriptionID: sub.ID,
		OrderID:        sub.OrderID,
		Amount:         sub.Amount,
		PaymentToken:   sub.PaymentToken,
	})
}

// GET /api/u/subscriptions (current user's history)
func (h *SubscriptionsController) ListMySubscriptions(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var rows []subsModel.SubscriptionModel
	if err := h.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list subscriptions")
	}

	return helper.JsonOK(c, "", subsDTO.FromSubscriptionModels(rows))
}
