package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type AlarmType string

const (
	AlarmTypeThreshold      AlarmType = "threshold"
	AlarmTypeLowBattery     AlarmType = "low_battery"
	AlarmTypeConnectivity   AlarmType = "connectivity"
	AlarmTypeNotReadingData AlarmType = "not_reading_data"
)

func AllAlarmTypes() []AlarmType {
	return []AlarmType{
		AlarmTypeThreshold,
		AlarmTypeLowBattery,
		AlarmTypeConnectivity,
		AlarmTypeNotReadingData,
	}
}

type AlarmStatus string

const (
	AlarmStatusOpen   AlarmStatus = "open"
	AlarmStatusClosed AlarmStatus = "closed"
)

// AlarmRecord is a single raised alerting event. Acknowledgement fields stay
// null until an operator (or the auto-close pass) closes the alarm.
type AlarmRecord struct {
	ID   string    `gorm:"primaryKey" json:"id"`
	Type AlarmType `gorm:"type:varchar(20);index;check:type IN ('threshold','low_battery','connectivity','not_reading_data')" json:"type"`

	SensorID         string `gorm:"index" json:"sensor_id"`
	SensorName       string `json:"sensor_name"`
	Coalition        string `json:"coalition"`
	GroupName        string `gorm:"column:group_name" json:"group"`
	Location         string `json:"location"`
	AlarmProfileID   string `gorm:"index" json:"alarm_profile_id"`
	AlarmProfileName string `json:"alarm_profile_name"`
	MeasurementID    string `json:"measurement_id"`
	MeasurementName  string `json:"measurement_name"`
	MeasurementUnit  string `json:"measurement_unit"`
	AlarmCondition   string `json:"alarm_condition"`

	MeasurementCurrentReading *float64 `json:"measurement_current_reading"`

	Status AlarmStatus `gorm:"type:varchar(10);index" json:"status"`
	IsSafe bool        `json:"is_safe"`

	SentToSMSCount   int `gorm:"column:sent_to_sms_count" json:"sent_to_sms_count"`
	SentToEmailCount int `json:"sent_to_email_count"`
	SentToCallCount  int `json:"sent_to_call_count"`

	AcknowledgeDate        *time.Time `json:"acknowledge_date"`
	AcknowledgedBy         *string    `json:"acknowledged_by"`
	AcknowledgementNote    string     `json:"acknowledgement_note"`
	AcknowledgementComment string     `json:"acknowledgement_comment"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

type ThresholdBounds struct {
	Lower *float64 `json:"lower"`
	Upper *float64 `json:"upper"`
}

type TargetType string

const (
	TargetTypeUser         TargetType = "user"
	TargetTypeIndividual   TargetType = "individual"
	TargetTypeRelay        TargetType = "relay"
	TargetTypeReceiver     TargetType = "receiver"
	TargetTypeReceiverList TargetType = "receiver_list"
)

// NotificationTarget is a tagged variant; which extra fields apply depends on
// Type. A receiver_list holds members of the other kinds, one level deep.
type NotificationTarget struct {
	Type TargetType `json:"type"`

	CallEnabled  bool `json:"call_enabled"`
	EmailEnabled bool `json:"email_enabled"`
	SMSEnabled   bool `json:"sms_enabled"`

	Username string               `json:"username,omitempty"`
	Email    string               `json:"email,omitempty"`
	Phone    string               `json:"phone,omitempty"`
	SensorID string               `json:"sensor_id,omitempty"`
	Members  []NotificationTarget `json:"members,omitempty"`
}

func (t NotificationTarget) Validate() error {
	switch t.Type {
	case TargetTypeUser:
		if t.Username == "" || t.Email == "" {
			return fmt.Errorf("user target requires username and email")
		}
	case TargetTypeIndividual:
		if t.Email == "" || t.Phone == "" {
			return fmt.Errorf("individual target requires email and phone")
		}
	case TargetTypeRelay:
		if t.SensorID == "" {
			return fmt.Errorf("relay target requires sensor_id")
		}
	case TargetTypeReceiver:
		// no variant-specific fields
	case TargetTypeReceiverList:
		if len(t.Members) == 0 {
			return fmt.Errorf("receiver_list target requires members")
		}
		for _, m := range t.Members {
			if m.Type == TargetTypeReceiverList {
				return fmt.Errorf("receiver_list members may not nest another receiver_list")
			}
			if err := m.Validate(); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown target type %q", t.Type)
	}
	return nil
}

// EscalationLevel is one timed step in a profile's notification chain.
type EscalationLevel struct {
	Level              int                  `json:"level"`
	DelayBeforeSending int                  `json:"delay_before_sending"`
	IsActive           bool                 `json:"is_active"`
	Targets            []NotificationTarget `json:"targets"`
}

type SensorRef struct {
	SensorID   string `json:"sensor_id"`
	SensorName string `json:"sensor_name"`
}

// AlarmProfileRecord is the configuration template governing when alarms fire
// for a set of sensors. Relations are stored as JSON columns.
type AlarmProfileRecord struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Name      string `json:"name"`
	Coalition string `json:"coalition"`
	Enabled   bool   `json:"enabled"`

	AlarmTypes datatypes.JSONSlice[AlarmType] `json:"alarm_types"`

	AutomaticallyClose   bool `json:"automatically_close"`
	SendAcknowledgment   bool `json:"send_acknowledgment"`
	RecoveryTime         int  `json:"recovery_time"`          // seconds
	DelayBeforeRepeating int  `json:"delay_before_repeating"` // seconds, -1 means never repeat

	Thresholds  datatypes.JSONType[map[string]ThresholdBounds] `json:"thresholds"`
	Escalations datatypes.JSONSlice[EscalationLevel]           `json:"escalations"`
	Sensors     datatypes.JSONSlice[SensorRef]                 `json:"sensors"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *AlarmProfileRecord) HasAlarmType(at AlarmType) bool {
	for _, t := range p.AlarmTypes {
		if t == at {
			return true
		}
	}
	return false
}

// Validate enforces the escalation chain invariants: levels strictly
// ascending and non-negative sending delays, targets well-formed.
func (p *AlarmProfileRecord) Validate() error {
	prevLevel := 0
	for _, esc := range p.Escalations {
		if esc.Level <= prevLevel {
			return fmt.Errorf("escalation levels must be unique and ascending, got %d after %d", esc.Level, prevLevel)
		}
		if esc.DelayBeforeSending < 0 {
			return fmt.Errorf("escalation level %d has negative delay_before_sending", esc.Level)
		}
		for _, target := range esc.Targets {
			if err := target.Validate(); err != nil {
				return fmt.Errorf("escalation level %d: %w", esc.Level, err)
			}
		}
		prevLevel = esc.Level
	}
	return nil
}

// User is an operator account for the console.
type User struct {
	Username     string    `gorm:"primaryKey" json:"username"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
