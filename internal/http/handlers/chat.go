package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/designerprogramming-cyber/Designs4U/internal/http/middleware"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/chat"
	"github.com/designerprogramming-cyber/Designs4U/internal/shared/apperr"
)

// ChatHandler fronts the image-generation chat widget. Conversations
// are keyed by the anonymous client id, not the login.
type ChatHandler struct {
	chat *chat.Service
}

func NewChatHandler(cs *chat.Service) *ChatHandler {
	return &ChatHandler{chat: cs}
}

func (h *ChatHandler) Messages(c *gin.Context) {
	msgs := h.chat.Messages(middleware.ClientID(c))
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// Send takes a multipart form: a "prompt" field and an optional
// "image" file. The full conversation comes back, error bubble
// included when generation fails.
func (h *ChatHandler) Send(c *gin.Context) {
	prompt := c.PostForm("prompt")

	var img *chat.Image
	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		img = &chat.Image{Data: data, MimeType: file.Header.Get("Content-Type")}
	}

	if prompt == "" && img == nil {
		middleware.Fail(c, apperr.InvalidErr("Type a prompt or attach an image.", map[string]string{"prompt": "required"}))
		return
	}

	msgs := h.chat.Send(c.Request.Context(), middleware.ClientID(c), prompt, img)
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

func (h *ChatHandler) Reset(c *gin.Context) {
	h.chat.Reset(middleware.ClientID(c))
	c.JSON(http.StatusOK, gin.H{"reset": true})
}
