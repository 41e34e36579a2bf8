package telegram

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramService(token string, chatID int64) (*TelegramService, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &TelegramService{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (s *TelegramService) SendQuoteNotification(name, email, serviceType, businessArea string, submittedAt time.Time) error {
	message := fmt.Sprintf(
		"📩 New Quote Request!\n\n"+
			"👤 Name: %s\n"+
			"📧 Email: %s\n"+
			"🛠 Service: %s\n"+
			"🏢 Business: %s\n"+
			"⏰ Time: %s",
		name,
		email,
		serviceType,
		businessArea,
		submittedAt.Format("2006-01-02 15:04:05"),
	)

	msg := tgbotapi.NewMessage(s.chatID, message)
	_, err := s.bot.Send(msg)
	return err
}

func (s *TelegramService) SendRedemptionNotification(code, name string, amount float64, redeemedAt time.Time) error {
	message := fmt.Sprintf(
		"💰 Payment Code Redeemed!\n\n"+
			"🎟 Code: %s\n"+
			"👤 Name: %s\n"+
			"💵 Amount: %.2f EUR\n"+
			"⏰ Time: %s",
		code,
		name,
		amount,
		redeemedAt.Format("2006-01-02 15:04:05"),
	)

	msg := tgbotapi.NewMessage(s.chatID, message)
	_, err := s.bot.Send(msg)
	return err
}
