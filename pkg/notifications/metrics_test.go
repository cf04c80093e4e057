package notifications_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

func TestMetrics_Instrument(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := notifications.NewMetrics(reg)
	require.NoError(t, err)

	n := new(mockNotification)
	n.On("Send", mock.Anything, "ok", "s", "c").Return(nil).Twice()
	n.On("Send", mock.Anything, "bad", "s", "c").Return(errors.New("down")).Once()

	inst := notifications.Instrument(n, m)
	assert.Equal(t, notifications.CategoryInformative, inst.Category())

	ctx := context.Background()
	require.NoError(t, inst.Send(ctx, "ok", "s", "c"))
	require.NoError(t, inst.Send(ctx, "ok", "s", "c"))
	require.Error(t, inst.Send(ctx, "bad", "s", "c"))

	series, err := testutil.GatherAndCount(reg, "notifykit_notifications_sent_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	var observations uint64
	for _, mf := range families {
		switch mf.GetName() {
		case "notifykit_notifications_sent_total":
			for _, metric := range mf.GetMetric() {
				for _, label := range metric.GetLabel() {
					if label.GetName() == "outcome" {
						counts[label.GetValue()] = metric.GetCounter().GetValue()
					}
				}
			}
		case "notifykit_notifications_send_duration_seconds":
			for _, metric := range mf.GetMetric() {
				observations += metric.GetHistogram().GetSampleCount()
			}
		}
	}
	assert.Equal(t, map[string]float64{"ok": 2, "error": 1}, counts)
	assert.Equal(t, uint64(3), observations)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := notifications.NewMetrics(reg)
	require.NoError(t, err)

	_, err = notifications.NewMetrics(reg)
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}
