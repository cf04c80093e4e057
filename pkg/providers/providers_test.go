package providers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/providers"
)

func newTraceLogger() (*bytes.Buffer, providers.Option) {
	buf := &bytes.Buffer{}
	return buf, providers.WithLogger(logger.New(logger.WithOutput(buf)))
}

func lastTrace(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines[len(lines)-1], "expected a trace record")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestExchangeServer_SendExchangeEmail(t *testing.T) {
	t.Parallel()

	buf, withLog := newTraceLogger()
	srv := providers.NewExchangeServer(withLog)

	err := srv.SendExchangeEmail(context.Background(), "admin@empresa.com", "URGENTE: Servidor Caído", "body", true)
	require.NoError(t, err)

	entry := lastTrace(t, buf)
	assert.Equal(t, "email sent via exchange", entry["msg"])
	assert.Equal(t, providers.NameExchange, entry["provider"])
	assert.Equal(t, "admin@empresa.com", entry["recipient"])
	assert.Equal(t, "URGENTE: Servidor Caído", entry["subject"])
	assert.Equal(t, true, entry["high_priority"])
}

func TestLegacySMTPServer_RelayMessage(t *testing.T) {
	t.Parallel()

	buf, withLog := newTraceLogger()
	srv := providers.NewLegacySMTPServer(withLog)

	require.NoError(t, srv.RelayMessage(context.Background(), "ops@empresa.com", "Info: backup", "done", 2))

	entry := lastTrace(t, buf)
	assert.Equal(t, providers.NameLegacySMTP, entry["provider"])
	assert.Equal(t, "Info: backup", entry["title"])
	assert.EqualValues(t, 2, entry["priority_code"])
}

func TestTwilioSMSService_TransmitSMS(t *testing.T) {
	t.Parallel()

	t.Run("acknowledged by default", func(t *testing.T) {
		t.Parallel()
		buf, withLog := newTraceLogger()
		svc := providers.NewTwilioSMSService(withLog)

		ok, err := svc.TransmitSMS(context.Background(), "+1234567890", "Info: S: C", "medium_urgency")
		require.NoError(t, err)
		assert.True(t, ok)

		entry := lastTrace(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "Info: S: C", entry["text"])
		assert.Equal(t, "medium_urgency", entry["urgency"])
	})

	t.Run("rejection is reported through the acknowledgement", func(t *testing.T) {
		t.Parallel()
		buf, withLog := newTraceLogger()
		svc := providers.NewTwilioSMSService(withLog, providers.WithAcknowledge(func(dest string) bool {
			return dest != "+000"
		}))

		ok, err := svc.TransmitSMS(context.Background(), "+000", "text", "high_urgency")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "WARN", lastTrace(t, buf)["level"])

		ok, err = svc.TransmitSMS(context.Background(), "+111", "text", "high_urgency")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestSlackWebAPI_PublishMessage(t *testing.T) {
	t.Parallel()

	buf, withLog := newTraceLogger()
	api := providers.NewSlackWebAPI(withLog)

	require.NoError(t, api.PublishMessage(context.Background(), "empresa-workspace", "#general", "Nueva Funcionalidad", "body", false))

	entry := lastTrace(t, buf)
	assert.Equal(t, providers.NameSlack, entry["provider"])
	assert.Equal(t, "#general", entry["recipient"])
	assert.Equal(t, "empresa-workspace", entry["workspace"])
	assert.Equal(t, false, entry["is_priority"])
}

func TestProviders_Fault(t *testing.T) {
	t.Parallel()

	boom := errors.New("unreachable")
	fault := providers.WithFault(func(recipient string) error {
		if recipient == "bad" {
			return boom
		}
		return nil
	})
	buf, withLog := newTraceLogger()
	ctx := context.Background()

	assert.ErrorIs(t, providers.NewExchangeServer(withLog, fault).SendExchangeEmail(ctx, "bad", "s", "b", false), boom)
	assert.ErrorIs(t, providers.NewLegacySMTPServer(withLog, fault).RelayMessage(ctx, "bad", "s", "b", 1), boom)
	ok, err := providers.NewTwilioSMSService(withLog, fault).TransmitSMS(ctx, "bad", "t", "low_urgency")
	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)
	assert.ErrorIs(t, providers.NewSlackWebAPI(withLog, fault).PublishMessage(ctx, "w", "bad", "t", "b", true), boom)

	assert.Empty(t, buf.String(), "failed calls must not log a delivery trace")

	require.NoError(t, providers.NewExchangeServer(withLog, fault).SendExchangeEmail(ctx, "good", "s", "b", false))
}

func TestProviders_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	buf, withLog := newTraceLogger()

	assert.ErrorIs(t, providers.NewExchangeServer(withLog).SendExchangeEmail(ctx, "a", "s", "b", true), context.Canceled)
	assert.ErrorIs(t, providers.NewLegacySMTPServer(withLog).RelayMessage(ctx, "a", "s", "b", 1), context.Canceled)
	_, err := providers.NewTwilioSMSService(withLog).TransmitSMS(ctx, "a", "t", "high_urgency")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, providers.NewSlackWebAPI(withLog).PublishMessage(ctx, "w", "c", "t", "b", true), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestWithLogger_IgnoresNil(t *testing.T) {
	t.Parallel()

	srv := providers.NewExchangeServer(providers.WithLogger(nil))
	assert.NotPanics(t, func() {
		_ = srv.SendExchangeEmail(context.Background(), "a@b.c", "s", "b", false)
	})
}
