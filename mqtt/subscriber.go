package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"robot-server/entities"
	"robot-server/repositories"
)

// Broadcaster fans an ingested telemetry message out to live listeners.
type Broadcaster interface {
	Broadcast(payload []byte)
}

// TelemetryIngestor subscribes to the robot's reporting topics and appends
// position samples and object detections as they arrive. This is the
// device-owned write path for the telemetry tables; the HTTP surface only
// reads them.
type TelemetryIngestor struct {
	client     paho.Client
	positions  repositories.PositionRepository
	detections repositories.DetectionRepository
	live       Broadcaster
}

func NewTelemetryIngestor(client paho.Client, positions repositories.PositionRepository, detections repositories.DetectionRepository, live Broadcaster) *TelemetryIngestor {
	return &TelemetryIngestor{
		client:     client,
		positions:  positions,
		detections: detections,
		live:       live,
	}
}

const (
	topicPositions  = "robot/+/posicion"
	topicDetections = "robot/+/detecciones"
)

// Run subscribes to both telemetry topics and blocks until the context is
// cancelled, then unsubscribes.
func (t *TelemetryIngestor) Run(ctx context.Context) {
	topics := []string{topicPositions, topicDetections}
	for _, topic := range topics {
		token := t.client.Subscribe(topic, 1, func(client paho.Client, msg paho.Message) {
			if err := t.handle(msg); err != nil {
				log.Printf("Error handling message on %s: %v", msg.Topic(), err)
			}
		})
		token.Wait()
		if token.Error() != nil {
			log.Printf("Error subscribing to topic %s: %v", topic, token.Error())
		} else {
			log.Printf("Successfully subscribed to topic %s", topic)
		}
	}

	<-ctx.Done()

	for _, topic := range topics {
		t.client.Unsubscribe(topic)
	}
}

func (t *TelemetryIngestor) handle(msg paho.Message) error {
	deviceID, kind, err := parseTopic(msg.Topic())
	if err != nil {
		return err
	}

	switch kind {
	case "posicion":
		var sample entities.PositionSample
		if err := json.Unmarshal(msg.Payload(), &sample); err != nil {
			return fmt.Errorf("invalid position payload: %w", err)
		}
		sample.ID = ""
		sample.DispositivoID = deviceID
		if sample.Fecha == "" {
			sample.Fecha = time.Now().UTC().Format(time.RFC3339)
		}
		if err := t.positions.Append(&sample); err != nil {
			return err
		}
		t.broadcast("posicion", sample)
	case "detecciones":
		var detection entities.Detection
		if err := json.Unmarshal(msg.Payload(), &detection); err != nil {
			return fmt.Errorf("invalid detection payload: %w", err)
		}
		detection.ID = ""
		detection.DispositivoID = deviceID
		if detection.Fecha == "" {
			detection.Fecha = time.Now().UTC().Format(time.RFC3339)
		}
		if err := t.detections.Append(&detection); err != nil {
			return err
		}
		t.broadcast("detecciones", detection)
	default:
		return fmt.Errorf("unknown telemetry kind %q", kind)
	}
	return nil
}

func (t *TelemetryIngestor) broadcast(kind string, data interface{}) {
	if t.live == nil {
		return
	}
	env := map[string]interface{}{
		"type": kind,
		"data": data,
	}
	b, err := json.Marshal(env)
	if err != nil {
		return
	}
	t.live.Broadcast(b)
}

// parseTopic splits "robot/<id>/<kind>" into its device id and kind.
func parseTopic(topic string) (int, string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[0] != "robot" {
		return 0, "", fmt.Errorf("unexpected topic %q", topic)
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, "", fmt.Errorf("invalid device id in topic %q", topic)
	}
	return id, parts[2], nil
}
