package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/MohammadShoaib023/near-me-alerts/config"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/permissions/static"
	"github.com/MohammadShoaib023/near-me-alerts/targets"
)

func main() {
	cfg := config.Load()

	db, err := config.NewPostgres(cfg)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer func() { _ = db.Close() }()

	amqpConn, err := config.NewRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer func() { _ = amqpConn.Close() }()

	mqttClient, err := config.NewMQTT(cfg)
	if err != nil {
		log.Fatalf("mqtt: %v", err)
	}
	defer mqttClient.Disconnect(250)

	// a failed load leaves the service running with zero targets
	saved, loadErr := targets.LoadFile(cfg.TargetsPath)
	if loadErr != nil {
		log.Printf("targets: %v", loadErr)
	}

	perms := static.New(static.Config{
		ServiceEnabled:     cfg.LocationServiceEnabled,
		Location:           domain.ParsePermissionState(cfg.PermLocation),
		BackgroundLocation: domain.ParsePermissionState(cfg.PermBackground),
		Notifications:      domain.ParsePermissionState(cfg.PermNotifications),
		Precise:            cfg.PreciseLocation,
	})

	mod, err := geofence.Build(db, amqpConn, mqttClient, perms, saved)
	if err != nil {
		log.Fatalf("geofence module: %v", err)
	}

	if err := mod.Start(); err != nil {
		log.Fatalf("start subscribers: %v", err)
	}
	defer mod.Shutdown()

	if loadErr != nil {
		mod.Monitor.ReportLoadFailure(loadErr)
	} else {
		st := mod.Monitor.Sync(context.Background())
		log.Printf("initial sync: %s", st.Status)
	}

	r := gin.Default()

	health := config.NewHealthChecker(db, amqpConn, mqttClient)
	health.Register(r)

	mod.RegisterRoutes(&r.RouterGroup)

	log.Printf("listening on :%s", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("server: %v", err)
	}
}
