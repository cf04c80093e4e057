package notifications_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

func TestFanout_Send(t *testing.T) {
	t.Parallel()

	t.Run("every target receives the message", func(t *testing.T) {
		t.Parallel()

		first, second := new(mockNotification), new(mockNotification)
		first.On("Send", mock.Anything, "ops@empresa.com", "s", "c").Return(nil).Once()
		second.On("Send", mock.Anything, "#ops", "s", "c").Return(nil).Once()

		f := notifications.NewFanout([]notifications.Target{
			{Notification: first, Recipient: "ops@empresa.com"},
			{Notification: second, Recipient: "#ops"},
		}, notifications.WithLogger(logger.Nop()))

		require.NoError(t, f.Send(context.Background(), "s", "c"))
		assert.Equal(t, 2, f.Len())
		first.AssertExpectations(t)
		second.AssertExpectations(t)
	})

	t.Run("a failure does not stop later targets", func(t *testing.T) {
		t.Parallel()

		down := errors.New("provider down")
		failing, ok := new(mockNotification), new(mockNotification)
		failing.On("Send", mock.Anything, "+1", "s", "c").Return(down).Once()
		ok.On("Send", mock.Anything, "#ops", "s", "c").Return(nil).Once()

		buf := &bytes.Buffer{}
		f := notifications.NewFanout([]notifications.Target{
			{Notification: failing, Recipient: "+1"},
			{Notification: nil, Recipient: "nobody"},
			{Notification: ok, Recipient: "#ops"},
		}, notifications.WithLogger(logger.New(logger.WithOutput(buf))))

		err := f.Send(context.Background(), "s", "c")
		require.Error(t, err)
		assert.ErrorIs(t, err, down)
		assert.ErrorIs(t, err, notifications.ErrNilChannel)
		ok.AssertExpectations(t)
		assert.Contains(t, buf.String(), "fanout target failed")
		assert.Contains(t, buf.String(), `"target_index":0`)
	})

	t.Run("targets are copied", func(t *testing.T) {
		t.Parallel()

		n := new(mockNotification)
		n.On("Send", mock.Anything, "a", "s", "c").Return(nil).Once()

		targets := []notifications.Target{{Notification: n, Recipient: "a"}}
		f := notifications.NewFanout(targets, notifications.WithLogger(logger.Nop()))
		targets[0].Recipient = "b"

		require.NoError(t, f.Send(context.Background(), "s", "c"))
		n.AssertExpectations(t)
	})

	t.Run("empty fanout", func(t *testing.T) {
		t.Parallel()

		f := notifications.NewFanout(nil)
		assert.NoError(t, f.Send(context.Background(), "s", "c"))
		assert.Zero(t, f.Len())
	})
}
