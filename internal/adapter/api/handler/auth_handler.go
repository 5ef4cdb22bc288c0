package handler

import (
	"github.com/labstack/echo/v4"

	"mirnito/internal/usecase"
	"mirnito/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	userUseCase *usecase.UserUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, userUseCase *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// Login simulates authentication: the password is accepted as-is and
// the account is looked up by email.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Login(c.Request().Context(), req.Email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{Token: user.ID, User: user})
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.RegisterUser(c.Request().Context(), usecase.RegisterUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return response.Error(c, err)
	}

	// Registration logs the new account in immediately.
	if err := h.authUseCase.LoginUser(c.Request().Context(), user); err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, authResponse{Token: user.ID, User: user})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.authUseCase.Logout(c.Request().Context())
	return response.Success(c, map[string]bool{"logged_out": true})
}

func (h *AuthHandler) Me(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"user":             h.authUseCase.CurrentUser(),
		"is_authenticated": h.authUseCase.IsAuthenticated(),
		"auth_modal_open":  h.authUseCase.IsAuthModalOpen(),
	})
}

func (h *AuthHandler) OpenAuthModal(c echo.Context) error {
	h.authUseCase.OpenAuthModal()
	return response.Success(c, map[string]bool{"auth_modal_open": true})
}

func (h *AuthHandler) CloseAuthModal(c echo.Context) error {
	h.authUseCase.CloseAuthModal()
	return response.Success(c, map[string]bool{"auth_modal_open": false})
}
