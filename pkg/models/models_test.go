package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationTargetValidate(t *testing.T) {
	cases := []struct {
		name   string
		target NotificationTarget
		ok     bool
	}{
		{
			name:   "user target",
			target: NotificationTarget{Type: TargetTypeUser, Username: "op", Email: "op@example.com"},
			ok:     true,
		},
		{
			name:   "user target missing email",
			target: NotificationTarget{Type: TargetTypeUser, Username: "op"},
			ok:     false,
		},
		{
			name:   "individual target",
			target: NotificationTarget{Type: TargetTypeIndividual, Email: "a@b.c", Phone: "+15550001111"},
			ok:     true,
		},
		{
			name:   "individual target missing phone",
			target: NotificationTarget{Type: TargetTypeIndividual, Email: "a@b.c"},
			ok:     false,
		},
		{
			name:   "relay target",
			target: NotificationTarget{Type: TargetTypeRelay, SensorID: "sensor-1"},
			ok:     true,
		},
		{
			name:   "relay target missing sensor",
			target: NotificationTarget{Type: TargetTypeRelay},
			ok:     false,
		},
		{
			name:   "receiver target",
			target: NotificationTarget{Type: TargetTypeReceiver},
			ok:     true,
		},
		{
			name: "receiver list with members",
			target: NotificationTarget{
				Type: TargetTypeReceiverList,
				Members: []NotificationTarget{
					{Type: TargetTypeReceiver},
				},
			},
			ok: true,
		},
		{
			name:   "receiver list without members",
			target: NotificationTarget{Type: TargetTypeReceiverList},
			ok:     false,
		},
		{
			name: "receiver list nesting another list",
			target: NotificationTarget{
				Type: TargetTypeReceiverList,
				Members: []NotificationTarget{
					{
						Type:    TargetTypeReceiverList,
						Members: []NotificationTarget{{Type: TargetTypeReceiver}},
					},
				},
			},
			ok: false,
		},
		{
			name:   "unknown type",
			target: NotificationTarget{Type: "pigeon"},
			ok:     false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.target.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAlarmProfileValidateEscalations(t *testing.T) {
	profile := AlarmProfileRecord{
		Escalations: []EscalationLevel{
			{Level: 1, DelayBeforeSending: 0},
			{Level: 2, DelayBeforeSending: 300},
		},
	}
	assert.NoError(t, profile.Validate())

	outOfOrder := AlarmProfileRecord{
		Escalations: []EscalationLevel{
			{Level: 2},
			{Level: 1},
		},
	}
	assert.Error(t, outOfOrder.Validate())

	duplicate := AlarmProfileRecord{
		Escalations: []EscalationLevel{
			{Level: 1},
			{Level: 1},
		},
	}
	assert.Error(t, duplicate.Validate())

	negativeDelay := AlarmProfileRecord{
		Escalations: []EscalationLevel{
			{Level: 1, DelayBeforeSending: -10},
		},
	}
	assert.Error(t, negativeDelay.Validate())

	badTarget := AlarmProfileRecord{
		Escalations: []EscalationLevel{
			{Level: 1, Targets: []NotificationTarget{{Type: TargetTypeRelay}}},
		},
	}
	assert.Error(t, badTarget.Validate())
}

func TestProfileHasAlarmType(t *testing.T) {
	profile := AlarmProfileRecord{
		AlarmTypes: []AlarmType{AlarmTypeThreshold, AlarmTypeConnectivity},
	}
	assert.True(t, profile.HasAlarmType(AlarmTypeThreshold))
	assert.False(t, profile.HasAlarmType(AlarmTypeLowBattery))
}
