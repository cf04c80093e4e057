package notifications_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

type mockExchange struct{ mock.Mock }

func (m *mockExchange) SendExchangeEmail(ctx context.Context, to, subject, body string, high bool) error {
	return m.Called(ctx, to, subject, body, high).Error(0)
}

type mockRelay struct{ mock.Mock }

func (m *mockRelay) RelayMessage(ctx context.Context, recipient, title, body string, code int) error {
	return m.Called(ctx, recipient, title, body, code).Error(0)
}

type mockSMS struct{ mock.Mock }

func (m *mockSMS) TransmitSMS(ctx context.Context, dest, text, urgency string) (bool, error) {
	args := m.Called(ctx, dest, text, urgency)
	return args.Bool(0), args.Error(1)
}

type mockSlack struct{ mock.Mock }

func (m *mockSlack) PublishMessage(ctx context.Context, workspace, channel, title, body string, priority bool) error {
	return m.Called(ctx, workspace, channel, title, body, priority).Error(0)
}

type mockEmailAdapter struct{ mock.Mock }

func (m *mockEmailAdapter) Send(ctx context.Context, to, subject, body string, p notifications.Priority) error {
	return m.Called(ctx, to, subject, body, p).Error(0)
}

type mockSMSAdapter struct{ mock.Mock }

func (m *mockSMSAdapter) SendSMS(ctx context.Context, phone, message string, p notifications.Priority) error {
	return m.Called(ctx, phone, message, p).Error(0)
}

type mockSlackAdapter struct{ mock.Mock }

func (m *mockSlackAdapter) PostMessage(ctx context.Context, channel, title, message string, p notifications.Priority) error {
	return m.Called(ctx, channel, title, message, p).Error(0)
}

type mockChannel struct{ mock.Mock }

func (m *mockChannel) SendMessage(ctx context.Context, recipient, subject, content string, p notifications.Priority) error {
	return m.Called(ctx, recipient, subject, content, p).Error(0)
}

func (m *mockChannel) Name() string { return "mock" }

type mockNotification struct{ mock.Mock }

func (m *mockNotification) Send(ctx context.Context, recipient, subject, content string) error {
	return m.Called(ctx, recipient, subject, content).Error(0)
}

func (m *mockNotification) Category() notifications.Category {
	return notifications.CategoryInformative
}
