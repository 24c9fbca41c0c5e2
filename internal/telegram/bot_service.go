// Package telegram handles the integration with the Telegram Bot API.
// It binds chat sessions to user accounts and delivers notification
// texts on the chat channel.
package telegram

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"participium/backend/internal/models"
)

// Storage is the slice of the store the bot needs.
type Storage interface {
	GetUserByID(id uint) (*models.User, error)
	BindTelegramChat(userID uint, chatID int64) error
}

// BotService receives Telegram updates and sends outbound notification
// messages. It implements the chat-sender side of the delivery
// dispatcher.
type BotService struct {
	BotAPI  *tgbotapi.BotAPI
	Storage Storage
	Secret  string
}

// NewBotService creates a new BotService instance.
func NewBotService(token, secret string, s Storage) (*BotService, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("✅ Authorized on account %s", bot.Self.UserName)

	return &BotService{BotAPI: bot, Storage: s, Secret: secret}, nil
}

// SendMessage delivers one notification text to a bound chat.
func (s *BotService) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := s.BotAPI.Send(msg)
	return err
}

// Run is the main loop for receiving Telegram updates.
func (s *BotService) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := s.BotAPI.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		switch update.Message.Command() {
		case "start":
			s.handleStart(update.Message)
		case "help":
			s.reply(update.Message.Chat.ID, "Open your Participium profile and tap \"Link Telegram\" to connect this chat.")
		}
	}
}

// handleStart binds the chat to the account named by the deep-link
// token. A bare /start with no payload just explains the flow.
func (s *BotService) handleStart(msg *tgbotapi.Message) {
	payload := strings.TrimSpace(msg.CommandArguments())
	if payload == "" {
		s.reply(msg.Chat.ID, "Hi! Open your Participium profile and tap \"Link Telegram\" to connect this chat.")
		return
	}

	userID, err := ParseLinkToken(s.Secret, payload)
	if err != nil {
		log.Printf("ERROR: Invalid link token from chat %d: %v", msg.Chat.ID, err)
		s.reply(msg.Chat.ID, "This link has expired. Please request a new one from your Participium profile.")
		return
	}

	user, err := s.Storage.GetUserByID(userID)
	if err != nil {
		log.Printf("ERROR: Link token for unknown user %d from chat %d: %v", userID, msg.Chat.ID, err)
		s.reply(msg.Chat.ID, "This link has expired. Please request a new one from your Participium profile.")
		return
	}

	if err := s.Storage.BindTelegramChat(user.ID, msg.Chat.ID); err != nil {
		log.Printf("ERROR: Could not bind chat %d to user %d: %v", msg.Chat.ID, user.ID, err)
		s.reply(msg.Chat.ID, "Something went wrong. Please try again.")
		return
	}

	log.Printf("Linked chat %d to user %d", msg.Chat.ID, user.ID)
	s.reply(msg.Chat.ID, "You are all set, "+user.FirstName+"! Report updates you follow on the Telegram channel will arrive here.")
}

func (s *BotService) reply(chatID int64, text string) {
	if _, err := s.BotAPI.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("ERROR: Failed to send Telegram message to chat %d: %v", chatID, err)
	}
}
