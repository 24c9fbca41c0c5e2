package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"participium/backend/internal/apperr"
	"participium/backend/internal/models"
	"participium/backend/internal/notify"
)

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }

// collectNotifications wires the mock to capture every created row.
func collectNotifications(storageMock *MockStorage, into *[]models.Notification) {
	storageMock.On("CreateNotification", mock.AnythingOfType("*models.Notification")).
		Run(func(args mock.Arguments) {
			*into = append(*into, *args.Get(0).(*models.Notification))
		}).Return(nil)
}

func TestFanout_StatusChanged(t *testing.T) {
	storageMock := new(MockStorage)
	fanout := notify.NewFanout(storageMock, nil)

	followers := []models.User{{ID: 7}, {ID: 8}}
	storageMock.On("ListFollowersOfReport", uint(1), models.ChannelWeb).Return(followers, nil)

	var created []models.Notification
	collectNotifications(storageMock, &created)

	report := &models.Report{ID: 1, AuthorID: uintPtr(7), State: models.StateAssigned}
	fanout.StatusChanged(report)

	// One row per recipient, never one per follow.
	require.Len(t, created, 2)
	assert.Equal(t, uint(7), created[0].UserID)
	assert.Equal(t, uint(8), created[1].UserID)
	for _, n := range created {
		assert.Equal(t, models.NotificationStatusChange, n.Type)
		assert.Equal(t, "Your report #1 is now ASSIGNED", n.Message)
		assert.Equal(t, uintPtr(1), n.ReportID)
	}
}

func TestFanout_StatusChanged_AuthorAlwaysIncluded(t *testing.T) {
	storageMock := new(MockStorage)
	fanout := notify.NewFanout(storageMock, nil)

	// The author does not appear among the followers (e.g. unfollowed the
	// web channel) but still gets the row.
	storageMock.On("ListFollowersOfReport", uint(1), models.ChannelWeb).Return([]models.User{{ID: 8}}, nil)
	storageMock.On("GetUserByID", uint(7)).Return(&models.User{ID: 7}, nil)

	var created []models.Notification
	collectNotifications(storageMock, &created)

	fanout.StatusChanged(&models.Report{ID: 1, AuthorID: uintPtr(7), State: models.StateApproved})

	require.Len(t, created, 2)
	assert.Equal(t, uint(7), created[0].UserID)
	assert.Equal(t, uint(8), created[1].UserID)
}

func TestFanout_StatusChanged_AnonymousReportSkipped(t *testing.T) {
	storageMock := new(MockStorage)
	fanout := notify.NewFanout(storageMock, nil)

	fanout.StatusChanged(&models.Report{ID: 1, AuthorID: nil, State: models.StateAssigned})

	storageMock.AssertNotCalled(t, "ListFollowersOfReport", mock.Anything, mock.Anything)
	storageMock.AssertNotCalled(t, "CreateNotification", mock.Anything)
}

func TestFanout_StaffMessage_AnonymousReportSkipped(t *testing.T) {
	storageMock := new(MockStorage)
	fanout := notify.NewFanout(storageMock, nil)

	fanout.StaffMessage(&models.Report{ID: 1, AuthorID: nil, State: models.StateAssigned}, 3, "we are on it")

	storageMock.AssertNotCalled(t, "ListFollowersOfReport", mock.Anything, mock.Anything)
	storageMock.AssertNotCalled(t, "CreateNotification", mock.Anything)
}

func TestFanout_DeclineMessage(t *testing.T) {
	storageMock := new(MockStorage)
	fanout := notify.NewFanout(storageMock, nil)

	storageMock.On("ListFollowersOfReport", uint(3), models.ChannelWeb).Return([]models.User{{ID: 7}}, nil)

	var created []models.Notification
	collectNotifications(storageMock, &created)

	fanout.StatusChanged(&models.Report{
		ID:       3,
		AuthorID: uintPtr(7),
		State:    models.StateDeclined,
		Reason:   strPtr("duplicate"),
	})

	require.Len(t, created, 1)
	assert.Equal(t, "Your report #3 has been DECLINED. Reason: duplicate", created[0].Message)
}

func TestFanout_DeclineMessage_MissingReason(t *testing.T) {
	storageMock := new(MockStorage)
	fanout := notify.NewFanout(storageMock, nil)

	storageMock.On("ListFollowersOfReport", uint(3), models.ChannelWeb).Return([]models.User{{ID: 7}}, nil)

	var created []models.Notification
	collectNotifications(storageMock, &created)

	fanout.StatusChanged(&models.Report{ID: 3, AuthorID: uintPtr(7), State: models.StateDeclined})

	require.Len(t, created, 1)
	assert.Equal(t, "Your report #3 has been DECLINED. Reason: N/A", created[0].Message)
}

func TestFanout_StaffMessage(t *testing.T) {
	storageMock := new(MockStorage)
	fanout := notify.NewFanout(storageMock, nil)

	storageMock.On("ListFollowersOfReport", uint(5), models.ChannelWeb).Return([]models.User{{ID: 7}}, nil)

	var created []models.Notification
	collectNotifications(storageMock, &created)

	fanout.StaffMessage(&models.Report{ID: 5, AuthorID: uintPtr(7)}, 3, "We are on it")

	require.Len(t, created, 1)
	assert.Equal(t, models.NotificationStaffMessage, created[0].Type)
	assert.Equal(t, "Message from officer #3: We are on it", created[0].Message)
}

func TestFanout_OneRecipientFailureDoesNotBlockOthers(t *testing.T) {
	storageMock := new(MockStorage)
	fanout := notify.NewFanout(storageMock, nil)

	storageMock.On("ListFollowersOfReport", uint(1), models.ChannelWeb).
		Return([]models.User{{ID: 7}, {ID: 8}}, nil)
	storageMock.On("CreateNotification", mock.MatchedBy(func(n *models.Notification) bool {
		return n.UserID == 7
	})).Return(assert.AnError)
	storageMock.On("CreateNotification", mock.MatchedBy(func(n *models.Notification) bool {
		return n.UserID == 8
	})).Return(nil)

	fanout.StatusChanged(&models.Report{ID: 1, AuthorID: uintPtr(7), State: models.StateAssigned})

	storageMock.AssertNumberOfCalls(t, "CreateNotification", 2)
}

func TestFanout_MarkRead(t *testing.T) {
	storageMock := new(MockStorage)
	fanout := notify.NewFanout(storageMock, nil)

	storageMock.On("GetNotificationByID", uint(11)).Return(&models.Notification{ID: 11, UserID: 7}, nil)
	storageMock.On("SaveNotification", mock.AnythingOfType("*models.Notification")).Return(nil)

	n, err := fanout.MarkRead(11, 7)
	require.NoError(t, err)
	assert.True(t, n.Read)
}

func TestFanout_MarkRead_ForeignNotification(t *testing.T) {
	storageMock := new(MockStorage)
	fanout := notify.NewFanout(storageMock, nil)

	storageMock.On("GetNotificationByID", uint(11)).Return(&models.Notification{ID: 11, UserID: 7}, nil)

	_, err := fanout.MarkRead(11, 8)
	assert.True(t, apperr.Is(err, apperr.KindForbidden))
	assert.EqualError(t, err, "Not allowed to modify this notification")
	storageMock.AssertNotCalled(t, "SaveNotification", mock.Anything)
}
