package notify

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"participium/backend/internal/config"
	"participium/backend/internal/mail"
	"participium/backend/internal/models"
)

// ChatSender delivers one text to a chat session.
type ChatSender interface {
	SendMessage(chatID int64, text string) error
}

// Publisher pushes a realtime event to a room.
type Publisher interface {
	PublishEvent(event models.RoomEvent) error
}

// Delivery is one post-commit delivery job: a notification row that
// already exists plus a snapshot of its recipient.
type Delivery struct {
	Notification models.Notification
	Recipient    models.User
}

// Dispatcher consumes post-commit delivery events and attempts
// best-effort delivery on every channel the recipient selected. It never
// reports back to the triggering transition: failures are logged with the
// notification id and recipient and dropped.
type Dispatcher struct {
	Storage   Storage
	Mailer    mail.Mailer
	Chat      ChatSender
	Publisher Publisher

	events chan Delivery
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewDispatcher wires the dispatcher. Any collaborator may be nil; the
// corresponding channel is then skipped.
func NewDispatcher(s Storage, mailer mail.Mailer, chat ChatSender, publisher Publisher) *Dispatcher {
	return &Dispatcher{
		Storage:   s,
		Mailer:    mailer,
		Chat:      chat,
		Publisher: publisher,
		events:    make(chan Delivery, config.DispatchBuffer),
		done:      make(chan struct{}),
	}
}

// Enqueue hands a delivery job to the dispatcher without ever blocking
// the caller. A full queue drops the job; the durable row already exists
// and stays visible in-app.
func (d *Dispatcher) Enqueue(job Delivery) {
	select {
	case d.events <- job:
	default:
		log.Printf("ERROR: Delivery queue full, dropping delivery of notification %d to user %d", job.Notification.ID, job.Recipient.ID)
	}
}

// Start launches the consumer goroutine.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go d.run()
	log.Println("notify: dispatcher started")
}

// Stop drains the queue and waits for the consumer to exit.
func (d *Dispatcher) Stop() {
	close(d.done)
	d.wg.Wait()
	log.Println("notify: dispatcher stopped")
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for {
		select {
		case job := <-d.events:
			d.deliver(job)
		case <-d.done:
			for {
				select {
				case job := <-d.events:
					d.deliver(job)
				default:
					return
				}
			}
		}
	}
}

// deliver attempts every channel independently. The recipient snapshot
// was taken at enqueue time; preferences are re-read so an unsubscribe
// between commit and delivery is honored.
func (d *Dispatcher) deliver(job Delivery) {
	d.pushInApp(job)

	user, err := d.Storage.GetUserByID(job.Recipient.ID)
	if err != nil {
		// Stale recipient id. The in-app row exists; nothing else to do.
		log.Printf("ERROR: Delivery lookup failed for notification %d, user %d: %v", job.Notification.ID, job.Recipient.ID, err)
		return
	}

	if d.followsChannel(user.ID, job.Notification.ReportID, models.ChannelEmail) {
		d.sendEmail(user, job.Notification)
	}
	if d.followsChannel(user.ID, job.Notification.ReportID, models.ChannelChat) {
		d.sendChat(user, job.Notification)
	}
}

func (d *Dispatcher) followsChannel(userID uint, reportID *uint, channel models.Channel) bool {
	if reportID == nil {
		return false
	}
	follow, err := d.Storage.GetFollow(userID, *reportID, channel)
	if err != nil {
		log.Printf("ERROR: Could not check %s follow for user %d on report %d: %v", channel, userID, *reportID, err)
		return false
	}
	return follow != nil
}

func (d *Dispatcher) pushInApp(job Delivery) {
	if d.Publisher == nil {
		return
	}
	payload, err := json.Marshal(job.Notification)
	if err != nil {
		log.Printf("ERROR: Could not encode notification %d: %v", job.Notification.ID, err)
		return
	}
	event := models.RoomEvent{
		Room:    fmt.Sprintf("user:%d", job.Recipient.ID),
		Event:   "notification:new",
		Payload: payload,
	}
	if err := d.Publisher.PublishEvent(event); err != nil {
		log.Printf("ERROR: Realtime push failed for notification %d to user %d: %v", job.Notification.ID, job.Recipient.ID, err)
	}
}

func (d *Dispatcher) sendEmail(user *models.User, n models.Notification) {
	if d.Mailer == nil || !user.EmailNotifications || user.Email == "" {
		return
	}
	subject, html, text := mail.RenderNotification(user, n)
	if _, err := d.Mailer.Send(user.Email, subject, html, text); err != nil {
		log.Printf("ERROR: Email delivery failed for notification %d to %s: %v", n.ID, user.Email, err)
	}
}

func (d *Dispatcher) sendChat(user *models.User, n models.Notification) {
	// No chat-session binding is a silent no-op, not an error.
	if d.Chat == nil || user.TelegramChatID == nil {
		return
	}
	if err := d.Chat.SendMessage(*user.TelegramChatID, n.Message); err != nil {
		log.Printf("ERROR: Chat delivery failed for notification %d to user %d: %v", n.ID, user.ID, err)
	}
}
