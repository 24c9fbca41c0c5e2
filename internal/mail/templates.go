package mail

import (
	"fmt"

	"participium/backend/internal/models"
)

// RenderNotification builds the subject and both bodies for a
// notification email.
func RenderNotification(user *models.User, n models.Notification) (subject, html, text string) {
	reportRef := ""
	if n.ReportID != nil {
		reportRef = fmt.Sprintf("Report #%d", *n.ReportID)
	}

	switch n.Type {
	case models.NotificationStatusChange:
		subject = fmt.Sprintf("Participium - %s update", reportRef)
	case models.NotificationStaffMessage:
		subject = fmt.Sprintf("Participium - New message on %s", reportRef)
	default:
		subject = "Participium - New notification"
	}

	html = fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto;">
    <h2>Participium</h2>
    <p>Hi %s,</p>
    <div style="background-color: #e7f3fe; border-left: 4px solid #2196F3; padding: 15px;">
      <strong>%s</strong><br>
      %s
    </div>
    <p>You can see all details on the Participium platform.</p>
    <p style="font-size: 12px; color: #666;">This is an automated message. Email notifications can be disabled in your profile settings.</p>
  </div>
</body>
</html>`, user.FirstName, reportRef, n.Message)

	text = fmt.Sprintf(`Hi %s,

%s
%s

You can see all details on the Participium platform.

---
This is an automated message. Email notifications can be disabled in your profile settings.
`, user.FirstName, reportRef, n.Message)

	return subject, html, text
}
