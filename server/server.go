package server

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	paho "github.com/eclipse/paho.mqtt.golang"

	openai "github.com/sashabaranov/go-openai"

	"robot-server/confs"
	"robot-server/db"
	"robot-server/handlers"
	httpHandler "robot-server/handlers/http"
	"robot-server/mqtt"
	"robot-server/repositories"
	"robot-server/services"
	"robot-server/usecases"
	"robot-server/ws"
)

type Server struct {
	app        *gin.Engine
	db         db.Database
	mqttClient paho.Client
	manager    *ws.Manager
}

// NewServer wires the HTTP surface. mqttClient may be nil when the broker is
// unreachable; commands are then reported as not delivered.
func NewServer(database db.Database, mqttClient paho.Client, manager *ws.Manager) *Server {
	return &Server{
		app:        gin.Default(),
		db:         database,
		mqttClient: mqttClient,
		manager:    manager,
	}
}

func (s *Server) Start(ctx context.Context) {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Initialize repositories
	deviceRepo := repositories.NewDevicePgRepository(s.db)
	positionRepo := repositories.NewPositionPgRepository(s.db)
	detectionRepo := repositories.NewDetectionPgRepository(s.db)
	logRepo := repositories.NewActionLogPgRepository(s.db)
	alertRepo := repositories.NewAlertPgRepository(s.db)
	sensorRepo := repositories.NewSensorDataPgRepository(s.db)
	interactionRepo := repositories.NewAIInteractionPgRepository(s.db)

	// Command channel
	publisher := mqtt.NewPublisher(s.mqttClient, confs.MQTTCommandTopic())

	// Initialize use cases
	robotUseCase := usecases.NewRobotUseCase(deviceRepo, publisher, logRepo, alertRepo)
	telemetryUseCase := usecases.NewTelemetryUseCase(deviceRepo, positionRepo, detectionRepo)

	var chatClient usecases.ChatClient
	if key := confs.OpenAIKey(); key != "" {
		chatClient = openai.NewClient(key)
	} else {
		log.Println("OPENAI_API_KEY not set; IA analysis endpoints will report an error")
	}
	aiUseCase := usecases.NewAIUseCase(sensorRepo, interactionRepo, chatClient)

	// Scheduled environmental analysis
	if chatClient != nil {
		services.NewAnalyzer(aiUseCase).Start(ctx)
	}

	// Initialize handlers
	robotHandler := httpHandler.NewRobotHandler(robotUseCase)
	telemetryHandler := httpHandler.NewTelemetryHandler(telemetryUseCase)
	iaHandler := httpHandler.NewIAHandler(aiUseCase)
	loginHandler := httpHandler.NewLoginHandler(s.db.GetDB(), confs.JWTSecret())
	wsHandler := handlers.NewWSHandler(s.manager)

	secret := confs.JWTSecret()
	authed := func() gin.HandlerFunc {
		if secret == "" {
			log.Println("JWT_SECRET not set; running without authentication")
			return func(c *gin.Context) { c.Next() }
		}
		return httpHandler.AuthRequired(secret)
	}()

	// Setup API routes
	api := s.app.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", loginHandler.Login)
		}

		robot := api.Group("/robot", authed)
		{
			// Power transitions
			robot.POST("/encender", robotHandler.Encender)
			robot.POST("/apagar", robotHandler.Apagar)
			robot.PUT("/estado/:accion", robotHandler.CambiarEstado)
			robot.GET("/estado-actual", robotHandler.EstadoActual)

			// Motion commands (not gated on device state)
			robot.POST("/mover", robotHandler.Mover)
			robot.POST("/rotar", robotHandler.Rotar)
			robot.POST("/buscar", robotHandler.Buscar)
			robot.POST("/parar", robotHandler.Parar)
			robot.POST("/volver_inicio", robotHandler.VolverInicio)
			robot.POST("/calibrar", robotHandler.Calibrar)

			// Telemetry queries
			robot.GET("/posicion", telemetryHandler.Posicion)
			robot.GET("/detecciones", telemetryHandler.Detecciones)
			robot.GET("/detecciones/:objeto", telemetryHandler.DeteccionesPorObjeto)
			robot.GET("/estado", telemetryHandler.Estado)
			robot.GET("/historial-movimientos", telemetryHandler.HistorialMovimientos)
			robot.GET("/resumen", telemetryHandler.Resumen)
		}

		ia := api.Group("/ia", authed)
		{
			ia.POST("/analizar", iaHandler.Analizar)
			ia.GET("/historial", iaHandler.Historial)
			ia.GET("/stats", iaHandler.Stats)
		}

		api.GET("/clients/connected", wsHandler.GetConnectedClients)
	}

	s.app.GET("/ws", wsHandler.HandleDashboardWS)

	if err := s.app.Run(confs.ListenAddr()); err != nil {
		panic(err)
	}
}
