package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/schedule-manager/internal/api/dto"
	"github.com/spec-kit/schedule-manager/internal/service"
	apperrors "github.com/spec-kit/schedule-manager/pkg/util"
)

// AuthService is what the auth endpoints need from the service layer.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*service.AuthResult, error)
	Login(ctx context.Context, username, password string) (*service.AuthResult, error)
}

// AuthHandler exposes registration and login.
type AuthHandler struct {
	auth AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.AuthRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	res, err := h.auth.Register(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(authResponse(res))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.AuthRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	res, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(authResponse(res))
}

func authResponse(res *service.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{User: dto.AuthUser{ID: res.UserID}, Token: res.Token}
}
