package mailservice

import (
	"bytes"
	"errors"
	"sync"

	"github.com/go-mail/mail/v2"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/mock"
	"github.com/sushihentaime/inkpost/internal/common"
)

type MockTemplate struct {
	mock.Mock
}

func (m *MockTemplate) ParseTemplate(name string, data any) (*bytes.Buffer, *bytes.Buffer, *bytes.Buffer, error) {
	args := m.Called(name, data)
	return args.Get(0).(*bytes.Buffer), args.Get(1).(*bytes.Buffer), args.Get(2).(*bytes.Buffer), args.Error(3)
}

type MockDialer struct {
	mock.Mock
}

func (d *MockDialer) DialAndSend(m ...*mail.Message) error {
	args := d.Called(m)
	return args.Error(0)
}

// MockMailer fails the first failures sends, then records the recipient and payload.
type MockMailer struct {
	mu       sync.Mutex
	failures int
	attempts int
	email    string
	payload  NotificationEmail
	sent     chan struct{}
}

func newMockMailer(failures int) *MockMailer {
	return &MockMailer{failures: failures, sent: make(chan struct{}, 1)}
}

func (m *MockMailer) send(recipient string, email NotificationEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.attempts++
	if m.attempts <= m.failures {
		return errors.New("smtp unavailable")
	}

	m.email = recipient
	m.payload = email
	m.sent <- struct{}{}
	return nil
}

func (m *MockMailer) result() (string, NotificationEmail, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.email, m.payload, m.attempts
}

type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Info(msg string, args ...any) {
	m.Called(msg, args)
}

func (m *MockLogger) Error(msg string, args ...any) {
	m.Called(msg, args)
}

// MockMessageConsumer delivers bodies once and closes the channel.
type MockMessageConsumer struct {
	mock.Mock
	bodies [][]byte
}

func (m *MockMessageConsumer) Consume(key common.BindingKey, exchange common.Exchange, queue common.Queue) (<-chan amqp.Delivery, error) {
	args := m.Called(key, exchange, queue)
	if err := args.Error(0); err != nil {
		return nil, err
	}

	msgs := make(chan amqp.Delivery)
	go func() {
		defer close(msgs)
		for _, b := range m.bodies {
			msgs <- amqp.Delivery{Body: b}
		}
	}()

	return msgs, nil
}
