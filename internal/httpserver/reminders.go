package httpserver

import (
	"task-reminder-bot/pkg/response"

	"github.com/gin-gonic/gin"
)

// triggerReminders runs one reminder delivery pass immediately, outside
// the cron schedule. Meant for operators and smoke tests.
// @Summary Trigger Reminder Delivery
// @Description Deliver all currently due reminders and report the count
// @Tags Internal
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Delivered reminder count"
// @Router /internal/trigger-reminders [post]
func (srv HTTPServer) triggerReminders(c *gin.Context) {
	delivered := srv.reminderRunner.Run(c.Request.Context())
	response.OK(c, gin.H{
		"delivered": delivered,
	})
}
