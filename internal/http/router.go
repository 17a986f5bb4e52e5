package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func health(ctx *gin.Context) {
	ctx.IndentedJSON(http.StatusOK, HealthResponse{
		Status: "healthy",
		Time:   time.Now().Format(time.RFC3339),
	})
}

// NewRouter wires up the export API.
func NewRouter(spoolDir string) *gin.Engine {
	router := gin.Default()

	exportController := NewExportController(spoolDir)

	router.GET("/health", health)
	api := router.Group("/api")
	{
		api.POST("/export", exportController.Export)
	}

	return router
}
