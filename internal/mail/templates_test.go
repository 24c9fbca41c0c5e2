package mail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"participium/backend/internal/mail"
	"participium/backend/internal/models"
)

func uintPtr(v uint) *uint { return &v }

func TestRenderNotification_StatusChange(t *testing.T) {
	user := &models.User{FirstName: "Ada"}
	n := models.Notification{
		ReportID: uintPtr(5),
		Type:     models.NotificationStatusChange,
		Message:  "Your report #5 is now ASSIGNED",
	}

	subject, html, text := mail.RenderNotification(user, n)

	assert.Equal(t, "Participium - Report #5 update", subject)
	assert.Contains(t, html, "Ada")
	assert.Contains(t, html, "Your report #5 is now ASSIGNED")
	assert.Contains(t, text, "Your report #5 is now ASSIGNED")
}

func TestRenderNotification_StaffMessage(t *testing.T) {
	user := &models.User{FirstName: "Ada"}
	n := models.Notification{
		ReportID: uintPtr(5),
		Type:     models.NotificationStaffMessage,
		Message:  "Message from officer #3: on our way",
	}

	subject, _, text := mail.RenderNotification(user, n)

	assert.Equal(t, "Participium - New message on Report #5", subject)
	assert.Contains(t, text, "Message from officer #3: on our way")
}
