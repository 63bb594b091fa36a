package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	resdto "pawhaven/internal/handler/dto/response"
	"pawhaven/internal/handler/middleware"
	"pawhaven/internal/usecase/queries"
)

type NotificationHandler struct {
	notificationQueries queries.NotificationQueries
}

func NewNotificationHandler(notificationQueries queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{
		notificationQueries: notificationQueries,
	}
}

// @Summary List notifications
// @Description List in-app notifications for the current user, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of notifications (default 50, max 100)"
// @Success 200 {array} resdto.NotificationResponse
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit format",
			})
			return
		}
		limit = parsed
	}

	views, err := h.notificationQueries.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.NotificationResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromNotificationView(view)
	}

	c.JSON(http.StatusOK, response)
}
