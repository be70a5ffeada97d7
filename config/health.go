package config

import (
	"database/sql"
	"net/http"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
)

// HealthChecker probes the geofence backend (Postgres), the
// notification broker (RabbitMQ) and the device message bus (MQTT).
type HealthChecker struct {
	db       *sql.DB
	amqpConn *amqp.Connection
	mqtt     mqtt.Client
}

func NewHealthChecker(db *sql.DB, amqpConn *amqp.Connection, mqttClient mqtt.Client) *HealthChecker {
	return &HealthChecker{db: db, amqpConn: amqpConn, mqtt: mqttClient}
}

func (h *HealthChecker) Register(r *gin.Engine) {
	r.GET("/healthz", h.Handle)
}

func (h *HealthChecker) Handle(c *gin.Context) {
	status := http.StatusOK
	deps := gin.H{}

	probe := func(name string, err string) {
		if err != "" {
			deps[name] = gin.H{"status": "down", "error": err}
			status = http.StatusServiceUnavailable
		} else {
			deps[name] = gin.H{"status": "up"}
		}
	}

	var pgErr string
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		pgErr = err.Error()
	}
	probe("postgres", pgErr)

	var amqpErr string
	if h.amqpConn.IsClosed() {
		amqpErr = "connection closed"
	}
	probe("rabbitmq", amqpErr)

	var mqttErr string
	if !h.mqtt.IsConnected() {
		mqttErr = "not connected"
	}
	probe("mqtt", mqttErr)

	overall := "healthy"
	if status != http.StatusOK {
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":       overall,
		"dependencies": deps,
	})
}
