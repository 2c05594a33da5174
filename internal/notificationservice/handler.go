package notificationservice

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

// NewNotificationService returns a service over db. When mb is nil, Dispatch does nothing.
func NewNotificationService(db *memdb.DB, mb common.MessageProducer, logger Logger) *NotificationService {
	return &NotificationService{db: db, mb: mb, logger: logger}
}

// ListNotifications returns the user's notifications, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, userID string) ([]memdb.Notification, error) {
	if err := s.db.Wait(ctx, memdb.Third); err != nil {
		return nil, err
	}

	var notifications []memdb.Notification
	err := s.db.View(func(tx *memdb.Tx) error {
		notifications = collect(tx, userID)
		return nil
	})

	return notifications, err
}

// MarkAllRead marks every notification of the user as read and returns them.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) ([]memdb.Notification, error) {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return nil, err
	}

	var notifications []memdb.Notification
	err := s.db.Update(func(tx *memdb.Tx) error {
		for _, n := range tx.Notifications() {
			if n.RecipientID == userID {
				n.Read = true
			}
		}
		notifications = collect(tx, userID)
		return nil
	})

	return notifications, err
}

func collect(tx *memdb.Tx, userID string) []memdb.Notification {
	out := make([]memdb.Notification, 0)
	for _, n := range tx.Notifications() {
		if n.RecipientID == userID {
			out = append(out, *n.Clone())
		}
	}
	return out
}

// Dispatch publishes a NotificationEvent for each notification. Failures are logged and dropped.
func (s *NotificationService) Dispatch(ctx context.Context, notifications ...memdb.Notification) {
	if s.mb == nil {
		return
	}

	for _, n := range notifications {
		event := common.NotificationEvent{
			NotificationID: n.ID,
			Type:           string(n.Type),
			RecipientID:    n.RecipientID,
			ActorName:      n.Actor.Username,
			Message:        n.Message,
			Link:           n.Link,
		}

		_ = s.db.View(func(tx *memdb.Tx) error {
			if u := tx.User(n.RecipientID); u != nil {
				event.RecipientEmail = u.Email
				event.RecipientName = u.Username
			}
			return nil
		})

		if event.RecipientEmail == "" {
			s.logger.Info("skipping notification without recipient", slog.String("notification_id", n.ID))
			continue
		}

		msg, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("could not marshal notification", slog.String("error", err.Error()))
			continue
		}

		err = s.mb.Publish(ctx, msg, common.NotificationCreatedKey, common.NotificationExchange)
		if err != nil {
			s.logger.Error("could not publish notification", slog.String("notification_id", n.ID), slog.String("error", err.Error()))
			continue
		}
	}
}
