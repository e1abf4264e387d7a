// README: Base handler utilities (JSON helpers, provider-error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusnav/internal/ai"
	"campusnav/internal/modules/chat"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeChatError maps a chat/provider failure onto the wire contract: soft
// provider outcomes become 200 responses whose message is the advisory (the
// UI renders them as assistant dialogue), only unclassified failures are
// real errors.
func writeChatError(c *gin.Context, err error, extra map[string]any) {
	if err == chat.ErrNoContent {
		writeError(c, http.StatusBadRequest, chat.ErrNoContent.Error())
		return
	}
	if aiErr, ok := ai.AsError(err); ok {
		body := map[string]any{"message": aiErr.Advisory()}
		for k, v := range extra {
			body[k] = v
		}
		if aiErr.Soft() {
			writeJSON(c, http.StatusOK, body)
			return
		}
		writeJSON(c, http.StatusInternalServerError, body)
		return
	}
	writeError(c, http.StatusInternalServerError, "internal error")
}
