package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

// Telegram ограничивает ботов примерно одним сообщением в секунду на чат
const messagesPerSecond = 1

// Sender подмножество *tgbotapi.BotAPI
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier отправляет администратору уведомления о бронированиях.
// Без токена бота уведомления отключены и Publish ничего не делает.
type Notifier struct {
	sender  Sender
	chatID  int64
	limiter *rate.Limiter
	logger  Logger
}

// NewNotifier создает уведомитель. Пустой token отключает уведомления.
func NewNotifier(token string, chatID int64, logger Logger) (*Notifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, admin notifications disabled")
		return &Notifier{logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return NewNotifierWithSender(bot, chatID, logger), nil
}

// NewNotifierWithSender создает уведомитель поверх произвольного отправителя
func NewNotifierWithSender(sender Sender, chatID int64, logger Logger) *Notifier {
	return &Notifier{
		sender:  sender,
		chatID:  chatID,
		limiter: rate.NewLimiter(rate.Limit(messagesPerSecond), 1),
		logger:  logger,
	}
}

func (n *Notifier) Name() string {
	return "telegram"
}

// Enabled true, если задан бот
func (n *Notifier) Enabled() bool {
	return n.sender != nil
}

// Publish отправляет сообщение о событии в чат администратора
func (n *Notifier) Publish(ctx context.Context, event domain.BookingEvent) error {
	if !n.Enabled() {
		return nil
	}

	text := formatEvent(event)
	if text == "" {
		return nil
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("telegram: rate limit wait: %w", err)
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.sender.Send(msg); err != nil {
		return fmt.Errorf("telegram: send message: %w", err)
	}
	return nil
}

func formatEvent(event domain.BookingEvent) string {
	var title string
	switch event.Type {
	case domain.EventBookingCreated:
		title = "*Yeni rezervasyon*"
	case domain.EventBookingConfirmed:
		title = "*Rezervasyon onaylandı*"
	case domain.EventBookingCanceled:
		title = "*Rezervasyon iptal edildi*"
	default:
		return ""
	}

	b := event.Booking
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Tarih: %s %s-%s\n", b.BookingDate.Format("02.01.2006"), b.SlotStart, b.SlotEnd)
	fmt.Fprintf(&sb, "Ad: %s\n", escape(b.Name))
	fmt.Fprintf(&sb, "Telefon: %s", escape(b.Phone))
	if b.Note != nil && *b.Note != "" {
		fmt.Fprintf(&sb, "\nNot: %s", escape(*b.Note))
	}
	fmt.Fprintf(&sb, "\n\n_%s_", event.OccurredAt.In(domain.FacilityLocation()).Format(time.DateTime))
	return sb.String()
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
