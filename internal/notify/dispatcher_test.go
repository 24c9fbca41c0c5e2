package notify_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"participium/backend/internal/models"
	"participium/backend/internal/notify"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMailer) Send(to, subject, html, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return "msg-id", nil
}

type fakeChat struct {
	mu   sync.Mutex
	sent []int64
}

func (f *fakeChat) SendMessage(chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, chatID)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []models.RoomEvent
}

func (f *fakePublisher) PublishEvent(event models.RoomEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func int64Ptr(v int64) *int64 { return &v }

func TestDispatcher_DeliversSelectedChannels(t *testing.T) {
	storageMock := new(MockStorage)
	mailer := &fakeMailer{}
	chat := &fakeChat{}
	publisher := &fakePublisher{}

	user := &models.User{
		ID:                 7,
		Email:              "citizen@example.com",
		EmailNotifications: true,
		TelegramChatID:     int64Ptr(555),
	}
	storageMock.On("GetUserByID", uint(7)).Return(user, nil)
	storageMock.On("GetFollow", uint(7), uint(1), models.ChannelEmail).
		Return(&models.Follow{UserID: 7, ReportID: 1, Channel: models.ChannelEmail}, nil)
	storageMock.On("GetFollow", uint(7), uint(1), models.ChannelChat).
		Return(&models.Follow{UserID: 7, ReportID: 1, Channel: models.ChannelChat}, nil)

	d := notify.NewDispatcher(storageMock, mailer, chat, publisher)
	d.Start()

	d.Enqueue(notify.Delivery{
		Notification: models.Notification{ID: 100, UserID: 7, ReportID: uintPtr(1), Message: "Your report #1 is now ASSIGNED"},
		Recipient:    *user,
	})
	d.Stop()

	assert.Equal(t, []string{"citizen@example.com"}, mailer.sent)
	assert.Equal(t, []int64{555}, chat.sent)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, fmt.Sprintf("user:%d", user.ID), publisher.events[0].Room)
	assert.Equal(t, "notification:new", publisher.events[0].Event)
}

func TestDispatcher_WebOnlyFollowerGetsInAppOnly(t *testing.T) {
	storageMock := new(MockStorage)
	mailer := &fakeMailer{}
	chat := &fakeChat{}
	publisher := &fakePublisher{}

	user := &models.User{ID: 7, Email: "citizen@example.com", EmailNotifications: true, TelegramChatID: int64Ptr(555)}
	storageMock.On("GetUserByID", uint(7)).Return(user, nil)
	storageMock.On("GetFollow", uint(7), uint(1), models.ChannelEmail).Return(nil, nil)
	storageMock.On("GetFollow", uint(7), uint(1), models.ChannelChat).Return(nil, nil)

	d := notify.NewDispatcher(storageMock, mailer, chat, publisher)
	d.Start()
	d.Enqueue(notify.Delivery{
		Notification: models.Notification{ID: 100, UserID: 7, ReportID: uintPtr(1), Message: "m"},
		Recipient:    *user,
	})
	d.Stop()

	assert.Empty(t, mailer.sent)
	assert.Empty(t, chat.sent)
	assert.Len(t, publisher.events, 1)
}

func TestDispatcher_UnboundChatIsSilentNoOp(t *testing.T) {
	storageMock := new(MockStorage)
	chat := &fakeChat{}

	user := &models.User{ID: 7}
	storageMock.On("GetUserByID", uint(7)).Return(user, nil)
	storageMock.On("GetFollow", uint(7), uint(1), models.ChannelEmail).Return(nil, nil)
	storageMock.On("GetFollow", uint(7), uint(1), models.ChannelChat).
		Return(&models.Follow{UserID: 7, ReportID: 1, Channel: models.ChannelChat}, nil)

	d := notify.NewDispatcher(storageMock, nil, chat, nil)
	d.Start()
	d.Enqueue(notify.Delivery{
		Notification: models.Notification{ID: 100, UserID: 7, ReportID: uintPtr(1), Message: "m"},
		Recipient:    *user,
	})
	d.Stop()

	assert.Empty(t, chat.sent)
}

func TestDispatcher_EmailOptOutWins(t *testing.T) {
	storageMock := new(MockStorage)
	mailer := &fakeMailer{}

	// An email follow exists, but the profile preference disables email.
	user := &models.User{ID: 7, Email: "citizen@example.com", EmailNotifications: false}
	storageMock.On("GetUserByID", uint(7)).Return(user, nil)
	storageMock.On("GetFollow", uint(7), uint(1), models.ChannelEmail).
		Return(&models.Follow{UserID: 7, ReportID: 1, Channel: models.ChannelEmail}, nil)
	storageMock.On("GetFollow", uint(7), uint(1), models.ChannelChat).Return(nil, nil)

	d := notify.NewDispatcher(storageMock, mailer, nil, nil)
	d.Start()
	d.Enqueue(notify.Delivery{
		Notification: models.Notification{ID: 100, UserID: 7, ReportID: uintPtr(1), Message: "m"},
		Recipient:    *user,
	})
	d.Stop()

	assert.Empty(t, mailer.sent)
}
