package console

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wardenlabs/alarm-console/pkg/common"
	"github.com/wardenlabs/alarm-console/pkg/models"
)

// SystemIdentity is recorded as acknowledged_by when the auto-close pass
// closes an alarm, so closed records always carry accountability fields.
const SystemIdentity = "system"

// Sweeper periodically closes open alarms whose profile opted into
// automatically_close, once the profile's recovery_time has elapsed.
type Sweeper struct {
	console  *Console
	interval time.Duration
}

func NewSweeper(console *Console, interval time.Duration) *Sweeper {
	return &Sweeper{console: console, interval: interval}
}

func (s *Sweeper) Start(ctx context.Context) {
	logger := common.GetLoggerWith(
		common.LoggerNameConsoleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySweep),
	)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("Sweeper stopped")
				return
			case <-ticker.C:
				closed, err := s.SweepOnce()
				if err != nil {
					logger.Warn("Sweep pass failed", zap.Error(err))
					continue
				}
				if closed > 0 {
					logger.Info("Sweep pass closed alarms", zap.Int64("closed", closed))
				}
			}
		}
	}()
}

// SweepOnce runs a single auto-close pass and returns how many alarms it
// closed.
func (s *Sweeper) SweepOnce() (int64, error) {
	var profiles []models.AlarmProfileRecord
	err := s.console.Db.Conn.
		Where("automatically_close = ?", true).
		Find(&profiles).Error
	if err != nil {
		return 0, err
	}

	now := time.Now()
	var closed int64

	err = s.console.Db.Conn.Transaction(func(tx *gorm.DB) error {
		for _, profile := range profiles {
			cutoff := now.Add(-time.Duration(profile.RecoveryTime) * time.Second)

			result := tx.Model(&models.AlarmRecord{}).
				Where("alarm_profile_id = ? AND status = ? AND created_at <= ?",
					profile.ID, models.AlarmStatusOpen, cutoff).
				Updates(map[string]any{
					"status":           models.AlarmStatusClosed,
					"is_safe":          true,
					"acknowledge_date": now,
					"acknowledged_by":  SystemIdentity,
				})
			if result.Error != nil {
				return result.Error
			}
			closed += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return closed, nil
}
