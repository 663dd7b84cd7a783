package mqtt

import (
	"encoding/json"
	"log"

	paho "github.com/eclipse/paho.mqtt.golang"

	"robot-server/entities"
)

// CommandPublisher hands a robot command to the message channel. The boolean
// certifies local hand-off only, never device receipt or execution.
type CommandPublisher interface {
	SendCommand(cmd entities.RobotCommand) bool
}

// Publisher publishes robot commands on a fixed topic at QoS 0,
// fire-and-forget. There is no acknowledgment path and no retry.
type Publisher struct {
	client paho.Client
	topic  string
}

// NewPublisher wraps the shared MQTT client. A nil client is allowed and
// means the channel is unavailable; every SendCommand reports false.
func NewPublisher(client paho.Client, topic string) *Publisher {
	return &Publisher{client: client, topic: topic}
}

func (p *Publisher) SendCommand(cmd entities.RobotCommand) bool {
	if p.client == nil || !p.client.IsConnected() {
		log.Printf("MQTT not available, command %q not sent", cmd.Accion)
		return false
	}

	payload, err := json.Marshal(cmd)
	if err != nil {
		log.Printf("could not encode command %q: %v", cmd.Accion, err)
		return false
	}

	// QoS 0, no Wait: hand off to the client's outbound queue and move on
	p.client.Publish(p.topic, 0, false, payload)
	log.Printf("Command %q published to topic %q", cmd.Accion, p.topic)
	return true
}
