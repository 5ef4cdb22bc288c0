package handler

import (
	"github.com/labstack/echo/v4"

	"mirnito/internal/domain/entity"
	"mirnito/internal/usecase"
	"mirnito/pkg/response"
)

type AdminHandler struct {
	listingUseCase *usecase.ListingUseCase
	userUseCase    *usecase.UserUseCase
}

func NewAdminHandler(listingUseCase *usecase.ListingUseCase, userUseCase *usecase.UserUseCase) *AdminHandler {
	return &AdminHandler{
		listingUseCase: listingUseCase,
		userUseCase:    userUseCase,
	}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active pending archived banned"`
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userUseCase.GetAllUsers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, users)
}

func (h *AdminHandler) UpdateListingStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.listingUseCase.UpdateListingStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": req.Status})
}

func (h *AdminHandler) DeleteListing(c echo.Context) error {
	if err := h.listingUseCase.DeleteListing(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"deleted": true})
}

// Stats backs the admin dashboard counters.
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userUseCase.GetAllUsers(ctx)
	if err != nil {
		return response.Error(c, err)
	}

	_, active, err := h.listingUseCase.ListListings(ctx, map[string]interface{}{"status": entity.ListingStatusActive}, 0, 0)
	if err != nil {
		return response.Error(c, err)
	}

	_, pending, err := h.listingUseCase.ListListings(ctx, map[string]interface{}{"status": entity.ListingStatusPending}, 0, 0)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int64{
		"users":            int64(len(users)),
		"active_listings":  active,
		"pending_listings": pending,
	})
}
