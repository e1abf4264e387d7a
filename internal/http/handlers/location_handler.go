// README: Auxiliary location handlers (image detection, text normalization).
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campusnav/internal/ai"
	"campusnav/internal/modules/chat"
)

type LocationHandler struct {
	chat *chat.Service
}

func NewLocationHandler(svc *chat.Service) *LocationHandler {
	return &LocationHandler{chat: svc}
}

// Detect handles POST /api/location/detect: one photo in, one location guess
// out. Soft provider failures come back as the guess text so the form flow
// can display them inline.
func (h *LocationHandler) Detect(c *gin.Context) {
	image, err := formImage(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if image == nil {
		writeError(c, http.StatusBadRequest, "no image provided")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), providerTimeout)
	defer cancel()

	guess, err := h.chat.DescribeImage(ctx, image)
	if err != nil {
		if aiErr, ok := ai.AsError(err); ok && aiErr.Soft() {
			writeJSON(c, http.StatusOK, map[string]any{"location": aiErr.Advisory()})
			return
		}
		writeJSON(c, http.StatusInternalServerError, errorResponse{Error: "failed to detect location", Details: err.Error()})
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"location": guess})
}

type parseLocationReq struct {
	Text string `json:"text"`
}

// Parse handles POST /api/location/parse: free text in, normalized location
// name out.
func (h *LocationHandler) Parse(c *gin.Context) {
	var req parseLocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(c, http.StatusBadRequest, "no text provided")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), providerTimeout)
	defer cancel()

	parsed, err := h.chat.ParseLocation(ctx, req.Text)
	if err != nil {
		if aiErr, ok := ai.AsError(err); ok && aiErr.Soft() {
			writeJSON(c, http.StatusOK, map[string]any{"location": aiErr.Advisory()})
			return
		}
		writeJSON(c, http.StatusInternalServerError, errorResponse{Error: "failed to parse location", Details: err.Error()})
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"location": parsed})
}
