package console

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/wardenlabs/alarm-console/pkg/models"
)

// GatewayNotifier posts acknowledgment notices to the external notification
// gateway over HTTP.
type GatewayNotifier struct {
	httpClient *resty.Client
}

func NewGatewayNotifier(baseURL string) *GatewayNotifier {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &GatewayNotifier{httpClient: client}
}

type acknowledgmentMessage struct {
	AlarmID    string `json:"alarm_id"`
	AlarmType  string `json:"alarm_type"`
	SensorID   string `json:"sensor_id"`
	SensorName string `json:"sensor_name"`
	Operator   string `json:"operator"`
	Comment    string `json:"comment"`
}

func (n *GatewayNotifier) SendAcknowledgment(alarm *models.AlarmRecord, operator, comment string) error {
	message := acknowledgmentMessage{
		AlarmID:    alarm.ID,
		AlarmType:  string(alarm.Type),
		SensorID:   alarm.SensorID,
		SensorName: alarm.SensorName,
		Operator:   operator,
		Comment:    comment,
	}

	resp, err := n.httpClient.R().
		SetBody(message).
		Post("/notifications/acknowledgment")
	if err != nil {
		return err
	}

	if resp.IsError() {
		return &UpstreamError{Status: resp.StatusCode(), Msg: string(resp.Body())}
	}

	return nil
}
