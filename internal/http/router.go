// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusnav/internal/http/handlers"
	"campusnav/internal/http/middleware"
	"campusnav/internal/modules/chat"
	"campusnav/internal/modules/navigation"
)

func NewRouter(chatSvc *chat.Service, navSvc *navigation.Service) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	chatHandler := handlers.NewChatHandler(chatSvc)
	r.POST("/api/chat", chatHandler.Chat)
	r.POST("/api/sessions", chatHandler.CreateSession)
	r.GET("/api/sessions/:id/turns", chatHandler.Turns)

	navHandler := handlers.NewNavigationHandler(navSvc)
	r.POST("/api/navigate", navHandler.Plan)

	locationHandler := handlers.NewLocationHandler(chatSvc)
	r.POST("/api/location/detect", locationHandler.Detect)
	r.POST("/api/location/parse", locationHandler.Parse)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
