package main

import (
	"context"
	"log"
	"os"

	"robot-server/confs"
	"robot-server/db"
	"robot-server/mqtt"
	"robot-server/repositories"
	"robot-server/server"
	"robot-server/ws"

	paho "github.com/eclipse/paho.mqtt.golang"
)

func main() {
	// load config
	if err := confs.LoadConfig(); err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// connect to the robot's message channel; the server still runs when
	// the broker is down, reporting commands as no_disponible
	var mqttClient paho.Client
	if broker := confs.MQTTBrokerURL(); broker != "" {
		mqttClient, err = mqtt.Connect(ctx, mqtt.Config{
			BrokerURL: broker,
			ClientID:  confs.MQTTClientID(),
			Username:  os.Getenv("MQTT_USERNAME"),
			Password:  os.Getenv("MQTT_PASSWORD"),
		})
		if err != nil {
			log.Printf("warning: MQTT unavailable: %v", err)
			mqttClient = nil
		}
	} else {
		log.Println("MQTT_BROKER_URL not set; robot commands will report no_disponible")
	}

	// live telemetry fan-out for dashboard clients
	manager := ws.NewManager()

	// device-reported telemetry ingestion
	if mqttClient != nil {
		ingestor := mqtt.NewTelemetryIngestor(
			mqttClient,
			repositories.NewPositionPgRepository(database),
			repositories.NewDetectionPgRepository(database),
			manager,
		)
		go ingestor.Run(ctx)
	}

	// run server
	srv := server.NewServer(database, mqttClient, manager)
	srv.Start(ctx)
}
