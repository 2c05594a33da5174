package mailservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sushihentaime/inkpost/internal/common"
	"golang.org/x/exp/rand"
)

const (
	notificationTemplate = "notification_email.html"
	maxRetries           = 5
)

var retryBaseDelay = 500 * time.Millisecond

// NewMailService returns a service that emails the recipient of every notification event.
// baseURL is prefixed to the in-app link carried by the event.
func NewMailService(mb common.MessageConsumer, host, username, password, sender string, port int, baseURL string, logger MailLogger) *MailService {
	ctx, cancel := context.WithCancel(context.Background())
	return &MailService{
		mb:      mb,
		m:       NewMailer(host, port, username, password, sender, NewTemplate()),
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// SendNotificationEmails starts consuming notification events in the background.
func (s *MailService) SendNotificationEmails() {
	msgs, err := s.mb.Consume(common.NotificationCreatedKey, common.NotificationExchange, common.NotificationCreatedQueue)
	if err != nil {
		s.logger.Error("could not consume message", slog.String("error", err.Error()))
		return
	}

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				s.handle(msg)

			case <-s.ctx.Done():
				s.logger.Info("stopping SendNotificationEmails due to context cancellation")
				return
			}
		}
	}()
}

func (s *MailService) handle(msg amqp.Delivery) {
	var event common.NotificationEvent
	err := json.Unmarshal(msg.Body, &event)
	if err != nil {
		s.logger.Error("could not unmarshal message", slog.String("error", err.Error()))
		msg.Ack(false)
		return
	}

	payload := NotificationEmail{
		Type:          event.Type,
		RecipientName: event.RecipientName,
		ActorName:     event.ActorName,
		Message:       event.Message,
		Link:          s.baseURL + "/" + event.Link,
	}

	// exponential backoff with jitter
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = s.m.send(event.RecipientEmail, payload)
		if err == nil {
			s.logger.Info("notification email sent", slog.String("email", event.RecipientEmail))
			msg.Ack(false)
			return
		}

		delay := time.Duration(rand.Int63n(int64(retryBaseDelay) << uint(attempt)))
		s.logger.Info("delaying notification email", slog.String("email", event.RecipientEmail), slog.Int("attempt", attempt), slog.Duration("delay", delay))

		select {
		case <-time.After(delay):
		case <-s.ctx.Done():
			return
		}
	}

	s.logger.Error("could not send notification email", slog.String("email", event.RecipientEmail), slog.String("error", err.Error()))
	msg.Ack(false)
}

func (s *MailService) Close() {
	s.cancel()
}
