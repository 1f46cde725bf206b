package console

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wardenlabs/alarm-console/pkg/common"
	"github.com/wardenlabs/alarm-console/pkg/models"
)

const DefaultPageSize = 20

type AlarmQuery struct {
	Page     int
	PageSize int
	Search   string
	Types    []models.AlarmType
}

type AlarmPage struct {
	Data     []models.AlarmRecord `json:"data"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

type AcknowledgeInput struct {
	AlarmIDs []string
	Comment  string
	Note     string
}

type AcknowledgeResult struct {
	Success           bool `json:"success"`
	AcknowledgedCount int  `json:"acknowledged_count"`
}

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

func (c *Console) queryAlarms(query *AlarmQuery) (*AlarmPage, error) {
	page, pageSize := normalizePaging(query.Page, query.PageSize)

	tx := c.Db.Conn.Model(&models.AlarmRecord{})

	if len(query.Types) > 0 {
		tx = tx.Where("type IN ?", query.Types)
	}

	if search := strings.TrimSpace(query.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where(
			"lower(sensor_name) LIKE ? OR lower(alarm_condition) LIKE ? OR lower(location) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var records []models.AlarmRecord
	err := tx.
		Order("created_at DESC, id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.AlarmRecord{}
	}

	return &AlarmPage{
		Data:     records,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (c *Console) getAlarm(id string) (*models.AlarmRecord, error) {
	var record models.AlarmRecord
	if err := c.Db.Conn.First(&record, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &NotFoundError{Kind: "alarm", ID: id}
		}
		return nil, err
	}
	return &record, nil
}

// acknowledgeAlarms closes every alarm in the id set in one transaction.
// Unmatched ids are silently ignored; the reported count is the input id
// count. Acknowledging an already-closed alarm overwrites its
// acknowledgement fields (last writer wins).
func (c *Console) acknowledgeAlarms(operator string, input *AcknowledgeInput) (*AcknowledgeResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameConsoleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlarm),
	)

	if len(input.AlarmIDs) == 0 {
		return nil, NewValidationError("alarmIds must not be empty")
	}
	if strings.TrimSpace(input.Comment) == "" {
		return nil, NewValidationError("comment must not be empty")
	}

	comment := input.Comment
	if input.Note != "" {
		comment = input.Comment + " - " + input.Note
	}

	now := time.Now()

	err := c.Db.Conn.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.AlarmRecord{}).
			Where("id IN ?", input.AlarmIDs).
			Updates(map[string]any{
				"status":                  models.AlarmStatusClosed,
				"is_safe":                 true,
				"acknowledge_date":        now,
				"acknowledged_by":         operator,
				"acknowledgement_comment": comment,
				"acknowledgement_note":    input.Note,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Acknowledged alarms",
		zap.Strings("alarm_ids", input.AlarmIDs),
		zap.String("operator", operator))

	c.dispatchAcknowledgment(logger, input.AlarmIDs, operator, comment)

	if c.Publisher != nil {
		event := &AckEvent{
			AlarmIDs:        input.AlarmIDs,
			Operator:        operator,
			Comment:         comment,
			AcknowledgeDate: now,
		}
		if err := c.Publisher.PublishAcknowledged(event); err != nil {
			logger.Warn("Failed to publish acknowledgement event", zap.Error(err))
		}
	}

	return &AcknowledgeResult{
		Success:           true,
		AcknowledgedCount: len(input.AlarmIDs),
	}, nil
}

// dispatchAcknowledgment runs after the transaction committed; gateway
// failures are logged, never rolled back into the acknowledgement.
func (c *Console) dispatchAcknowledgment(logger *zap.Logger, alarmIDs []string, operator, comment string) {
	if c.Notifier == nil {
		return
	}

	var records []models.AlarmRecord
	if err := c.Db.Conn.Where("id IN ?", alarmIDs).Find(&records).Error; err != nil {
		logger.Warn("Failed to load acknowledged alarms for dispatch", zap.Error(err))
		return
	}

	for i := range records {
		record := &records[i]
		if record.AlarmProfileID == "" {
			continue
		}

		var profile models.AlarmProfileRecord
		if err := c.Db.Conn.First(&profile, "id = ?", record.AlarmProfileID).Error; err != nil {
			continue
		}
		if !profile.SendAcknowledgment {
			continue
		}

		if err := c.Notifier.SendAcknowledgment(record, operator, comment); err != nil {
			logger.Warn("Failed to send acknowledgment notice",
				zap.String("alarm_id", record.ID), zap.Error(err))
		} else {
			logger.Info("Acknowledgment notice sent", zap.String("alarm_id", record.ID))
		}
	}
}

type IAlarmImpl struct {
	console *Console
}

func (ia *IAlarmImpl) QueryAlarms(query *AlarmQuery) (*AlarmPage, error) {
	return ia.console.queryAlarms(query)
}

func (ia *IAlarmImpl) GetAlarm(id string) (*models.AlarmRecord, error) {
	return ia.console.getAlarm(id)
}

func (ia *IAlarmImpl) AcknowledgeAlarms(operator string, input *AcknowledgeInput) (*AcknowledgeResult, error) {
	return ia.console.acknowledgeAlarms(operator, input)
}

func (c *Console) GetIAlarm() IAlarm {
	return &IAlarmImpl{console: c}
}
