package console

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/wardenlabs/alarm-console/pkg/common"
	"github.com/wardenlabs/alarm-console/pkg/db"
	"github.com/wardenlabs/alarm-console/pkg/models"
)

// Demo operator credentials created by SeedDemoData. Development use only.
const (
	DemoAdminUsername = "admin"
	DemoAdminPassword = "admin-demo-123"
)

var demoCoalitions = []string{"north", "south", "east", "west"}
var demoLocations = []string{"Cold Storage A", "Boiler Room", "Warehouse 3", "Server Closet", "Loading Dock"}

// SeedDemoData populates the store with a fixed demo data set so the console
// has something to show without the telemetry pipeline. A no-op when alarms
// already exist.
func SeedDemoData(dbInstance *db.DB, profileCount, alarmsPerProfile int) error {
	logger := common.GetLoggerWith(
		common.LoggerNameConsoleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySeed),
	)

	var existing int64
	if err := dbInstance.Conn.Model(&models.User{}).
		Where("username = ?", DemoAdminUsername).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		logger.Info("Demo data already seeded, skipping")
		return nil
	}

	hash, err := HashPassword(DemoAdminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		Username:     DemoAdminUsername,
		Email:        "admin@example.com",
		DisplayName:  "Console Admin",
		Role:         "admin",
		PasswordHash: hash,
	}
	if err := dbInstance.Conn.Save(&admin).Error; err != nil {
		return err
	}

	alarmTypes := models.AllAlarmTypes()
	now := time.Now()

	for p := range profileCount {
		coalition := demoCoalitions[p%len(demoCoalitions)]
		lower := 2.0
		upper := 8.0

		profile := models.AlarmProfileRecord{
			ID:                 uuid.NewString(),
			Name:               fmt.Sprintf("Profile %02d", p+1),
			Coalition:          coalition,
			Enabled:            true,
			AlarmTypes:         datatypes.NewJSONSlice(alarmTypes[:p%len(alarmTypes)+1]),
			AutomaticallyClose: p%3 == 0,
			SendAcknowledgment: p%2 == 0,
			RecoveryTime:       300,
			DelayBeforeRepeating: func() int {
				if p%2 == 0 {
					return 600
				}
				return -1 // never repeat
			}(),
			Thresholds: datatypes.NewJSONType(map[string]models.ThresholdBounds{
				"temperature": {Lower: &lower, Upper: &upper},
			}),
			Escalations: datatypes.NewJSONSlice([]models.EscalationLevel{
				{
					Level:              1,
					DelayBeforeSending: 0,
					IsActive:           true,
					Targets: []models.NotificationTarget{
						{
							Type:         models.TargetTypeUser,
							SMSEnabled:   true,
							EmailEnabled: true,
							Username:     DemoAdminUsername,
							Email:        "admin@example.com",
						},
					},
				},
				{
					Level:              2,
					DelayBeforeSending: 900,
					IsActive:           true,
					Targets: []models.NotificationTarget{
						{
							Type:        models.TargetTypeReceiverList,
							CallEnabled: true,
							Members: []models.NotificationTarget{
								{
									Type:         models.TargetTypeIndividual,
									EmailEnabled: true,
									Email:        fmt.Sprintf("oncall-%s@example.com", coalition),
									Phone:        fmt.Sprintf("+1555000%04d", p+1),
								},
							},
						},
					},
				},
			}),
			CreatedAt: now,
		}

		sensors := make([]models.SensorRef, 0, alarmsPerProfile)

		for a := range alarmsPerProfile {
			reading := 10.0 + float64(a)
			sensorID := uuid.NewString()
			sensorName := fmt.Sprintf("sensor-%s-%02d-%02d", coalition, p+1, a+1)
			sensors = append(sensors, models.SensorRef{SensorID: sensorID, SensorName: sensorName})

			alarmType := alarmTypes[a%len(alarmTypes)]
			alarm := models.AlarmRecord{
				ID:                        uuid.NewString(),
				Type:                      alarmType,
				SensorID:                  sensorID,
				SensorName:                sensorName,
				Coalition:                 coalition,
				GroupName:                 fmt.Sprintf("group-%d", p%2+1),
				Location:                  demoLocations[a%len(demoLocations)],
				AlarmProfileID:            profile.ID,
				AlarmProfileName:          profile.Name,
				MeasurementID:             "temperature",
				MeasurementName:           "Temperature",
				MeasurementUnit:           "°C",
				AlarmCondition:            fmt.Sprintf("%s breached on %s", alarmType, sensorName),
				MeasurementCurrentReading: &reading,
				Status:                    models.AlarmStatusOpen,
				SentToSMSCount:            a % 3,
				SentToEmailCount:          a % 2,
				CreatedAt:                 now.Add(-time.Duration(a) * time.Minute),
			}

			// a few already handled ones, so the closed filter has data
			if a%5 == 4 {
				ackDate := now.Add(-time.Duration(a) * time.Minute / 2)
				operator := DemoAdminUsername
				alarm.Status = models.AlarmStatusClosed
				alarm.IsSafe = true
				alarm.AcknowledgeDate = &ackDate
				alarm.AcknowledgedBy = &operator
				alarm.AcknowledgementComment = "resolved during seed"
			}

			if err := dbInstance.Conn.Create(&alarm).Error; err != nil {
				return err
			}
		}

		profile.Sensors = datatypes.NewJSONSlice(sensors)
		if err := dbInstance.Conn.Create(&profile).Error; err != nil {
			return err
		}
	}

	logger.Info("Seeded demo data",
		zap.Int("profiles", profileCount),
		zap.Int("alarms_per_profile", alarmsPerProfile))

	return nil
}
