package handler

import (
	"net/http"

	"auction-draft/internal/connmonitor"
	"auction-draft/services/auction/helpers"
	"auction-draft/utils"

	"github.com/gin-gonic/gin"
)

type ConnectionMonitorInterface interface {
	Stats() (connmonitor.Stats, error)
	CleanupIdleConnections() (connmonitor.CleanupResult, error)
}

type ConnectionHandler struct {
	monitor ConnectionMonitorInterface
}

func NewConnectionHandler(monitor ConnectionMonitorInterface) *ConnectionHandler {
	return &ConnectionHandler{monitor: monitor}
}

// StatsHandler handles GET /connections/stats
func (h *ConnectionHandler) StatsHandler(c *gin.Context) {
	stats, err := h.monitor.Stats()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Error("StatsHandler: failed to compute session stats", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, stats, "session stats")
}

// CleanupHandler handles POST /connections/cleanup
func (h *ConnectionHandler) CleanupHandler(c *gin.Context) {
	result, err := h.monitor.CleanupIdleConnections()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Error("CleanupHandler: cleanup sweep failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "cleanup complete")
	helpers.LogSuccess("CleanupHandler", "cleanup complete", map[string]any{
		"cleaned":       result.Cleaned,
		"zombies_found": result.ZombiesFound,
	})
}
