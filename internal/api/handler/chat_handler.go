package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaaago/civic-portal/internal/core/ports"
)

// ChatHandler drives the assistant widget.
type ChatHandler struct {
	chat ports.ChatService
}

func NewChatHandler(chat ports.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatMessageRequest struct {
	Text string `json:"text"`
}

// Open handles POST /chat and starts a conversation with the greeting.
//
// @Summary      Open a chat
// @Tags         chat
// @Produce      json
// @Success      201  {object}  ports.Conversation
// @Failure      503  {object}  map[string]string
// @Router       /chat [post]
func (h *ChatHandler) Open(c echo.Context) error {
	conv, err := h.chat.Open()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, conv)
}

// Send handles POST /chat/:id/messages. The bot reply is appended later;
// poll the conversation until typing is false.
//
// @Summary      Send a chat message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Conversation id"
// @Param        body  body      chatMessageRequest  true  "Message"
// @Success      202   {object}  ports.Conversation
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /chat/{id}/messages [post]
func (h *ChatHandler) Send(c echo.Context) error {
	var req chatMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	conv, err := h.chat.Send(c.Request().Context(), c.Param("id"), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, conv)
}

// Messages handles GET /chat/:id/messages.
//
// @Summary      Read a chat
// @Tags         chat
// @Produce      json
// @Param        id   path      string  true  "Conversation id"
// @Success      200  {object}  ports.Conversation
// @Failure      404  {object}  map[string]string
// @Router       /chat/{id}/messages [get]
func (h *ChatHandler) Messages(c echo.Context) error {
	conv, err := h.chat.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conv)
}
