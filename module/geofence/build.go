package geofence

import (
	"database/sql"
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/internal/handler/background"
	handler "github.com/MohammadShoaib023/near-me-alerts/module/geofence/internal/handler/http"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/internal/handler/subscriber"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/internal/relay"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/internal/repository/notifier/rabbitmq"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/permissions"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/internal/repository/registry/postgres"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/service"
)

type Module struct {
	Monitor    *service.Monitor
	Reconciler *service.Reconciler

	relay      *relay.Registry
	handler    *handler.StatusHandler
	background *background.TransitionHandler
	positions  *subscriber.PositionSubscriber
}

func Build(db *sql.DB, amqpConn *amqp.Connection, mqttClient mqtt.Client, perms permissions.Source, targets []domain.Target) (*Module, error) {
	store := postgres.NewRegistrationStore(db)

	alerts, err := rabbitmq.NewAlertPublisher(amqpConn)
	if err != nil {
		return nil, fmt.Errorf("alert publisher: %w", err)
	}

	rel := relay.NewRegistry()
	reconciler := service.NewReconciler()
	monitor := service.NewMonitor(service.NewEvaluator(perms), service.NewRegistrar(store), targets)

	return &Module{
		Monitor:    monitor,
		Reconciler: reconciler,
		relay:      rel,
		handler:    handler.NewStatusHandler(monitor, reconciler),
		background: background.NewTransitionHandler(mqttClient, alerts, rel),
		positions:  subscriber.NewPositionSubscriber(mqttClient, reconciler),
	}, nil
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.handler.Register(r)
}

// Start registers the foreground relay endpoint (a restart atomically
// replaces a stale one) and brings up both subscriptions.
func (m *Module) Start() error {
	events := m.relay.Register(relay.ForegroundEndpoint)
	go func() {
		for evt := range events {
			m.Reconciler.ApplyTransition(evt)
		}
		log.Printf("relay endpoint closed, foreground consumer stopped")
	}()

	if err := m.background.Start(); err != nil {
		return fmt.Errorf("transition subscriber: %w", err)
	}
	if err := m.positions.Start(); err != nil {
		return fmt.Errorf("position subscriber: %w", err)
	}
	return nil
}

func (m *Module) Shutdown() {
	if err := m.positions.Stop(); err != nil {
		log.Printf("stop position subscriber: %v", err)
	}
	m.relay.Deregister(relay.ForegroundEndpoint)
}
