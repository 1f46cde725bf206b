//go:generate mockgen -source=console.go -destination=mocks/mock_console.go -package=mocks
package console

import (
	"github.com/wardenlabs/alarm-console/pkg/db"
	"github.com/wardenlabs/alarm-console/pkg/models"
)

type IAlarm interface {
	QueryAlarms(query *AlarmQuery) (*AlarmPage, error)
	GetAlarm(id string) (*models.AlarmRecord, error)
	AcknowledgeAlarms(operator string, input *AcknowledgeInput) (*AcknowledgeResult, error)
}

type IProfile interface {
	QueryProfiles(query *ProfileQuery) (*ProfilePage, error)
	GetProfile(id string) (*models.AlarmProfileRecord, error)
}

type IAuth interface {
	Login(username, password string) (string, *models.User, error)
	VerifyToken(token string) (*Claims, error)
}

// Notifier delivers acknowledgment notices to the external notification
// gateway for profiles configured with send_acknowledgment.
type Notifier interface {
	SendAcknowledgment(alarm *models.AlarmRecord, operator, comment string) error
}

// Publisher emits alarm lifecycle events to the message bus.
type Publisher interface {
	PublishAcknowledged(event *AckEvent) error
}

type Console struct {
	Db        db.DB
	JwtSecret string

	Alarm   IAlarm
	Profile IProfile
	Auth    IAuth

	Notifier  Notifier
	Publisher Publisher
}

type ServiceOpts struct {
	Alarm   IAlarm
	Profile IProfile
	Auth    IAuth

	Notifier  Notifier
	Publisher Publisher
}

func (c *Console) WithServices(opts ServiceOpts) *Console {
	if opts.Alarm != nil {
		c.Alarm = opts.Alarm
	}
	if opts.Profile != nil {
		c.Profile = opts.Profile
	}
	if opts.Auth != nil {
		c.Auth = opts.Auth
	}
	if opts.Notifier != nil {
		c.Notifier = opts.Notifier
	}
	if opts.Publisher != nil {
		c.Publisher = opts.Publisher
	}
	return c
}
