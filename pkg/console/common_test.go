package console_test

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wardenlabs/alarm-console/pkg/console"
	"github.com/wardenlabs/alarm-console/pkg/console/mocks"
	"github.com/wardenlabs/alarm-console/pkg/db"
	"github.com/wardenlabs/alarm-console/pkg/models"
)

func GetMockConsoleWithMemorySqliteDialector(t *testing.T, useMockAlarm, useMockProfile, useMockAuth bool) (
	*gomock.Controller,
	*console.Console,
	*mocks.MockIAlarm,
	*mocks.MockIProfile,
	*mocks.MockIAuth,
) {
	ctrl := gomock.NewController(t)

	mockIAlarm := mocks.NewMockIAlarm(ctrl)
	mockIProfile := mocks.NewMockIProfile(ctrl)
	mockIAuth := mocks.NewMockIAuth(ctrl)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	consoleInstance := &console.Console{Db: *dbInstance, JwtSecret: "unit-test-secret"}

	alarmService := consoleInstance.GetIAlarm()
	if useMockAlarm {
		alarmService = mockIAlarm
	}

	profileService := consoleInstance.GetIProfile()
	if useMockProfile {
		profileService = mockIProfile
	}

	authService := consoleInstance.GetIAuth()
	if useMockAuth {
		authService = mockIAuth
	}

	consoleInstance.WithServices(console.ServiceOpts{
		Alarm:   alarmService,
		Profile: profileService,
		Auth:    authService,
	})

	return ctrl, consoleInstance, mockIAlarm, mockIProfile, mockIAuth
}

// seedScopedAlarms creates count open alarms whose searchable fields carry the
// scope marker, so tests stay isolated on the shared in-memory store.
func seedScopedAlarms(t *testing.T, consoleInstance *console.Console, scope string, count int) []models.AlarmRecord {
	t.Helper()

	alarmTypes := models.AllAlarmTypes()
	records := make([]models.AlarmRecord, 0, count)
	now := time.Now()

	for i := range count {
		record := models.AlarmRecord{
			ID:             uuid.NewString(),
			Type:           alarmTypes[i%len(alarmTypes)],
			SensorID:       uuid.NewString(),
			SensorName:     fmt.Sprintf("sensor-%s-%02d", scope, i+1),
			Coalition:      "north",
			Location:       fmt.Sprintf("site-%s", scope),
			AlarmCondition: fmt.Sprintf("reading out of bounds on sensor-%s-%02d", scope, i+1),
			Status:         models.AlarmStatusOpen,
			CreatedAt:      now.Add(-time.Duration(i) * time.Minute),
		}
		require.NoError(t, consoleInstance.Db.Conn.Create(&record).Error)
		records = append(records, record)
	}

	return records
}

func reloadAlarm(t *testing.T, consoleInstance *console.Console, id string) models.AlarmRecord {
	t.Helper()

	var record models.AlarmRecord
	require.NoError(t, consoleInstance.Db.Conn.First(&record, "id = ?", id).Error)
	return record
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
