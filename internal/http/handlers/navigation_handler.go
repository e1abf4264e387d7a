// README: Navigation handler for deterministic route planning.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campusnav/internal/modules/navigation"
)

type NavigationHandler struct {
	nav *navigation.Service
}

func NewNavigationHandler(svc *navigation.Service) *NavigationHandler {
	return &NavigationHandler{nav: svc}
}

type planRouteReq struct {
	CurrentLocation string `json:"current_location"`
	Destination     string `json:"destination"`
}

// Plan handles POST /api/navigate. No conversation state is involved; the
// same pair of strings always yields the same route.
func (h *NavigationHandler) Plan(c *gin.Context) {
	var req planRouteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.CurrentLocation = strings.TrimSpace(req.CurrentLocation)
	req.Destination = strings.TrimSpace(req.Destination)
	if req.CurrentLocation == "" || req.Destination == "" {
		writeError(c, http.StatusBadRequest, "missing current_location or destination")
		return
	}

	writeJSON(c, http.StatusOK, h.nav.Plan(req.CurrentLocation, req.Destination))
}
