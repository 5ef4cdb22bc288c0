package handler

import (
	"github.com/labstack/echo/v4"

	"mirnito/internal/usecase"
	"mirnito/pkg/response"
)

type NavigationHandler struct {
	navigationUseCase *usecase.NavigationUseCase
}

func NewNavigationHandler(navigationUseCase *usecase.NavigationUseCase) *NavigationHandler {
	return &NavigationHandler{
		navigationUseCase: navigationUseCase,
	}
}

type selectListingRequest struct {
	ListingID string `json:"listing_id" validate:"required"`
}

type selectSellerRequest struct {
	SellerName string `json:"seller_name" validate:"required"`
}

func (h *NavigationHandler) Navigate(c echo.Context) error {
	page := h.navigationUseCase.Resolve(c.Request().Context(), c.Param("token"))
	return response.Success(c, map[string]string{"page": string(page)})
}

func (h *NavigationHandler) SelectListing(c echo.Context) error {
	var req selectListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	h.navigationUseCase.SelectListing(req.ListingID)
	return response.Success(c, map[string]string{"selected_listing_id": req.ListingID})
}

func (h *NavigationHandler) SelectSeller(c echo.Context) error {
	var req selectSellerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	h.navigationUseCase.SelectSeller(req.SellerName)
	return response.Success(c, map[string]string{"selected_seller": req.SellerName})
}
