package confs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadConfig loads environment variables from a .env file if present.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	return nil
}

// Get returns the value of an environment variable or a fallback.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func ListenAddr() string {
	return Get("LISTEN_ADDR", "0.0.0.0:3000")
}

// MQTTBrokerURL returns the broker address for the robot command channel.
// Empty means MQTT is not configured; the server still runs and reports
// every command as "no_disponible".
func MQTTBrokerURL() string {
	return os.Getenv("MQTT_BROKER_URL")
}

func MQTTClientID() string {
	return Get("MQTT_CLIENT_ID", "robot-server")
}

// MQTTCommandTopic is where outbound robot commands are published.
func MQTTCommandTopic() string {
	return Get("MQTT_COMMAND_TOPIC", "robot/comandos")
}

func JWTSecret() string {
	return Get("JWT_SECRET", "")
}

func OpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}
