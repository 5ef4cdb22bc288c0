package handler

import (
	"github.com/labstack/echo/v4"

	"mirnito/internal/usecase"
	"mirnito/pkg/response"
	"mirnito/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
	userUseCase    *usecase.UserUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase, userUseCase *usecase.UserUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
		userUseCase:    userUseCase,
	}
}

type createListingRequest struct {
	Title       string  `json:"title" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	Location    string  `json:"location" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image"`
	IsPromoted  bool    `json:"is_promoted"`
	IsVip       bool    `json:"is_vip"`
	IsUrgent    bool    `json:"is_urgent"`
}

type describeRequest struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category" validate:"required"`
	Keywords string `json:"keywords"`
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := map[string]interface{}{}
	if category := c.QueryParam("category"); category != "" {
		filter["category"] = category
	}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}

	listings, total, err := h.listingUseCase.ListListings(c.Request().Context(), filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, pagination.Page, pagination.PageSize)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.listingUseCase.GetListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) ListBySeller(c echo.Context) error {
	listings, err := h.listingUseCase.ListBySeller(c.Request().Context(), c.Param("name"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	author, err := h.userUseCase.GetUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.AddListing(c.Request().Context(), author, usecase.CreateListingInput{
		Title:       req.Title,
		Price:       req.Price,
		Currency:    req.Currency,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Image:       req.Image,
		IsPromoted:  req.IsPromoted,
		IsVip:       req.IsVip,
		IsUrgent:    req.IsUrgent,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	if err := h.listingUseCase.DeleteListing(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"deleted": true})
}

func (h *ListingHandler) ToggleFavorite(c echo.Context) error {
	favored := h.listingUseCase.ToggleFavorite(c.Param("id"))
	return response.Success(c, map[string]bool{"favorite": favored})
}

func (h *ListingHandler) ListFavorites(c echo.Context) error {
	return response.Success(c, h.listingUseCase.Favorites())
}

func (h *ListingHandler) GenerateDescription(c echo.Context) error {
	var req describeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	text := h.listingUseCase.GenerateDescription(c.Request().Context(), req.Title, req.Category, req.Keywords)
	return response.Success(c, map[string]string{"description": text})
}
