package console_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardenlabs/alarm-console/pkg/common"
	"github.com/wardenlabs/alarm-console/pkg/console"
	"github.com/wardenlabs/alarm-console/pkg/models"
	_ "github.com/wardenlabs/alarm-console/pkg/testing"
)

func TestGatewayNotifierSendsAcknowledgment(t *testing.T) {
	common.SetTestLoggerNop()

	var received map[string]any
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notifications/acknowledgment", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	notifier := console.NewGatewayNotifier(gateway.URL)

	alarm := &models.AlarmRecord{
		ID:         uuid.NewString(),
		Type:       models.AlarmTypeThreshold,
		SensorID:   uuid.NewString(),
		SensorName: "freezer-7",
	}

	err := notifier.SendAcknowledgment(alarm, "operator-1", "fixed")
	require.NoError(t, err)

	assert.Equal(t, alarm.ID, received["alarm_id"])
	assert.Equal(t, "threshold", received["alarm_type"])
	assert.Equal(t, "operator-1", received["operator"])
	assert.Equal(t, "fixed", received["comment"])
}

func TestGatewayNotifierSurfacesUpstreamError(t *testing.T) {
	common.SetTestLoggerNop()

	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	}))
	defer gateway.Close()

	notifier := console.NewGatewayNotifier(gateway.URL)

	err := notifier.SendAcknowledgment(&models.AlarmRecord{ID: uuid.NewString()}, "operator-1", "fixed")
	require.Error(t, err)

	var upstreamErr *console.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusBadGateway, upstreamErr.Status)
}
