// README: Chat handlers (guided navigation dialogue over multipart form posts).
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campusnav/internal/ai"
	"campusnav/internal/modules/chat"
)

// providerTimeout bounds one model round-trip; the core itself sets none.
const providerTimeout = 60 * time.Second

// maxImageBytes caps uploaded photos at 10 MB.
const maxImageBytes = 10 << 20

var errImageTooLarge = errors.New("image exceeds the 10 MB limit")

type ChatHandler struct {
	chat *chat.Service
}

func NewChatHandler(svc *chat.Service) *ChatHandler {
	return &ChatHandler{chat: svc}
}

// CreateSession handles POST /api/sessions.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	writeJSON(c, http.StatusCreated, map[string]any{"session_id": h.chat.NewSession()})
}

// Chat handles POST /api/chat. Multipart fields: session_id (optional, a new
// session is minted when absent), message, image. At least one of message and
// image must be present.
func (h *ChatHandler) Chat(c *gin.Context) {
	sessionID := c.PostForm("session_id")
	if sessionID == "" {
		sessionID = h.chat.NewSession()
	} else if _, err := uuid.Parse(sessionID); err != nil {
		writeError(c, http.StatusBadRequest, "invalid session_id")
		return
	}

	image, err := formImage(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), providerTimeout)
	defer cancel()

	reply, err := h.chat.Submit(ctx, sessionID, c.PostForm("message"), image)
	if err != nil {
		writeChatError(c, err, map[string]any{"session_id": sessionID})
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"session_id": sessionID, "message": reply})
}

// Turns handles GET /api/sessions/:id/turns, the read-only turn-log boundary.
func (h *ChatHandler) Turns(c *gin.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		writeError(c, http.StatusBadRequest, "invalid session id")
		return
	}
	turns, err := h.chat.History(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"session_id": sessionID, "turns": turns})
}

// formImage reads the optional "image" multipart file into an ai.Image.
// Returns (nil, nil) when the field is absent.
func formImage(c *gin.Context) (*ai.Image, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	if header.Size > maxImageBytes {
		return nil, errImageTooLarge
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		return nil, err
	}
	mime := header.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/jpeg"
	}
	return &ai.Image{MIME: mime, Data: data}, nil
}
