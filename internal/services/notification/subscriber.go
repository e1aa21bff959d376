package notification

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/messaging"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
)

// Subscriber consumes notification messages and delivers them as simulated
// e-mails on the console. Delivery is fire-and-forget; failed messages are
// not requeued.
type Subscriber struct {
	consumer *messaging.Consumer
	logger   *logger.Logger

	shutdown chan os.Signal
	done     chan bool
}

// NewSubscriber creates a new notification subscriber
func NewSubscriber(consumer *messaging.Consumer, log *logger.Logger) *Subscriber {
	return &Subscriber{
		consumer: consumer,
		logger:   log,
		shutdown: make(chan os.Signal, 1),
		done:     make(chan bool, 1),
	}
}

// Start runs the subscriber until the context ends or a shutdown signal
// arrives
func (s *Subscriber) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()

	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)

	s.logger.Info("service_started", "Notification subscriber started", requestID, nil)

	consumerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := s.consumer.StartConsuming(consumerCtx, s.handleNotification); err != nil && consumerCtx.Err() == nil {
			s.logger.Error("consumer_failed", "Notification consumer failed", requestID, err, nil)
		}
		s.done <- true
	}()

	select {
	case <-s.shutdown:
		s.logger.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
		select {
		case <-s.done:
		case <-time.After(10 * time.Second):
			s.logger.Error("shutdown_timeout", "Consumer did not stop in time", requestID, nil, nil)
		}
		return s.consumer.Close()
	case <-s.done:
		return nil
	}
}

// handleNotification processes one queued notification
func (s *Subscriber) handleNotification(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	var msg models.NotificationMessage
	if err := messaging.ParseMessage(body, &msg); err != nil {
		s.logger.Error("message_parsing_failed", "Failed to parse notification message", requestID, err, nil)
		return fmt.Errorf("failed to parse notification: %w", err)
	}

	s.deliver(&msg, requestID)
	return nil
}

// deliver prints the simulated e-mail and logs the structured record
func (s *Subscriber) deliver(msg *models.NotificationMessage, requestID string) {
	timestamp := msg.Timestamp.Format("2006-01-02 15:04:05")

	fmt.Printf("📧 [%s] To: %s\n    Subject: %s\n    %s\n", timestamp, msg.Recipient, msg.Subject, msg.Body)

	s.logger.Info("notification_delivered", "Simulated e-mail delivered", requestID, map[string]interface{}{
		"type":      msg.Type,
		"recipient": msg.Recipient,
		"subject":   msg.Subject,
	})
}
