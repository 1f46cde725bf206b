package console_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardenlabs/alarm-console/pkg/common"
	"github.com/wardenlabs/alarm-console/pkg/console"
	"github.com/wardenlabs/alarm-console/pkg/models"
	_ "github.com/wardenlabs/alarm-console/pkg/testing"
)

func TestSweepOnceClosesExpiredAlarms(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, consoleObj, _, _, _ := GetMockConsoleWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	autoProfile := models.AlarmProfileRecord{
		ID:                 uuid.NewString(),
		Name:               "auto-" + uuid.NewString(),
		AutomaticallyClose: true,
		RecoveryTime:       60,
	}
	require.NoError(t, consoleObj.Db.Conn.Create(&autoProfile).Error)

	manualProfile := models.AlarmProfileRecord{
		ID:           uuid.NewString(),
		Name:         "manual-" + uuid.NewString(),
		RecoveryTime: 60,
	}
	require.NoError(t, consoleObj.Db.Conn.Create(&manualProfile).Error)

	now := time.Now()

	expired := models.AlarmRecord{
		ID:             uuid.NewString(),
		Type:           models.AlarmTypeConnectivity,
		AlarmProfileID: autoProfile.ID,
		Status:         models.AlarmStatusOpen,
		CreatedAt:      now.Add(-2 * time.Minute),
	}
	fresh := models.AlarmRecord{
		ID:             uuid.NewString(),
		Type:           models.AlarmTypeConnectivity,
		AlarmProfileID: autoProfile.ID,
		Status:         models.AlarmStatusOpen,
		CreatedAt:      now,
	}
	manual := models.AlarmRecord{
		ID:             uuid.NewString(),
		Type:           models.AlarmTypeConnectivity,
		AlarmProfileID: manualProfile.ID,
		Status:         models.AlarmStatusOpen,
		CreatedAt:      now.Add(-2 * time.Minute),
	}
	for _, record := range []*models.AlarmRecord{&expired, &fresh, &manual} {
		require.NoError(t, consoleObj.Db.Conn.Create(record).Error)
	}

	sweeper := console.NewSweeper(consoleObj, time.Minute)
	closed, err := sweeper.SweepOnce()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, closed, int64(1))

	reloaded := reloadAlarm(t, consoleObj, expired.ID)
	assert.Equal(t, models.AlarmStatusClosed, reloaded.Status)
	assert.True(t, reloaded.IsSafe)
	require.NotNil(t, reloaded.AcknowledgedBy)
	assert.Equal(t, console.SystemIdentity, *reloaded.AcknowledgedBy)
	require.NotNil(t, reloaded.AcknowledgeDate)

	// recovery window not yet elapsed
	assert.Equal(t, models.AlarmStatusOpen, reloadAlarm(t, consoleObj, fresh.ID).Status)
	// profile did not opt in to auto close
	assert.Equal(t, models.AlarmStatusOpen, reloadAlarm(t, consoleObj, manual.ID).Status)
}
