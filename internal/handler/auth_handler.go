package handler

import (
	"buku-tamu-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	usecase *usecase.AuthUsecase
}

func NewAuthHandler(u *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{usecase: u}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := parseBody(c, &input); err != nil {
		return errorJSON(c, err)
	}

	token, user, err := h.usecase.Login(c.UserContext(), input.Username, input.Password)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Login Berhasil!",
		"token":   token,
		"user":    user,
	})
}

func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid"})
	}

	var input struct {
		OldPassword string `json:"oldPassword" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required"`
	}
	if err := parseBody(c, &input); err != nil {
		return errorJSON(c, err)
	}

	if err := h.usecase.UpdatePassword(c.UserContext(), uint(userID), input.OldPassword, input.NewPassword); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password berhasil diubah"})
}
