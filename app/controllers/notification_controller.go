package controllers

import (
	"net/http"

	"github.com/shalabia/storefront/app/services"
	"github.com/shalabia/storefront/pkg/response"
)

// NotificationController exposes the activity log to the admin panel.
type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// Index returns the activity log, newest first.
func (c *NotificationController) Index(w http.ResponseWriter, r *http.Request) {
	items := c.notifications.Recent()
	response.Success(w, map[string]interface{}{
		"notifications": items,
		"count":         len(items),
	})
}

// Clear empties the activity log.
func (c *NotificationController) Clear(w http.ResponseWriter, r *http.Request) {
	if err := c.notifications.Clear(); err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not clear notifications")
		return
	}
	response.Success(w, nil)
}
