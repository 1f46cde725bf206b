package console

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
)

const SubjectAlarmsAcknowledged = "alarms.acknowledged"

type AckEvent struct {
	AlarmIDs        []string  `json:"alarm_ids"`
	Operator        string    `json:"operator"`
	Comment         string    `json:"comment"`
	AcknowledgeDate time.Time `json:"acknowledge_date"`
}

// NatsPublisher emits alarm lifecycle events to an external NATS broker.
type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(url string) (*NatsPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &NatsPublisher{conn: conn}, nil
}

func (p *NatsPublisher) PublishAcknowledged(event *AckEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.conn.Publish(SubjectAlarmsAcknowledged, data)
}

func (p *NatsPublisher) Close() {
	p.conn.Close()
}
