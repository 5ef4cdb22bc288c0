package handler

import (
	"github.com/labstack/echo/v4"

	"mirnito/internal/usecase"
	"mirnito/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type createChatRequest struct {
	ListingID  string `json:"listing_id" validate:"required"`
	SellerName string `json:"seller_name" validate:"required"`
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *ChatHandler) CreateChat(c echo.Context) error {
	var req createChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	chatID, err := h.chatUseCase.CreateOrGetChat(c.Request().Context(), req.ListingID, req.SellerName)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"chat_id": chatID})
}

func (h *ChatHandler) ListChats(c echo.Context) error {
	chats, err := h.chatUseCase.Chats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chats)
}

func (h *ChatHandler) GetChatMessages(c echo.Context) error {
	messages, err := h.chatUseCase.Messages(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), c.Param("id"), req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) DeleteChat(c echo.Context) error {
	h.chatUseCase.DeleteChat(c.Request().Context(), c.Param("id"))
	return response.Success(c, map[string]bool{"deleted": true})
}
