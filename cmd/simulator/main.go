package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
	"github.com/MohammadShoaib023/near-me-alerts/targets"
)

const (
	topicTransitions = "nearme/geofence/transitions"
	topicPosition    = "nearme/device/position"
)

type transitionEntry struct {
	GeofenceKey string `json:"geofence_key"`
	Event       string `json:"event"`
}

type positionMessage struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// simulator plays the role of the device's geofence monitoring agent:
// it drifts a position around the saved places and reports enter/exit
// crossings, occasionally redelivering a batch to exercise the
// at-least-once path.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <interval_seconds>\n", os.Args[0])
		os.Exit(1)
	}

	intervalSec, err := strconv.Atoi(os.Args[1])
	if err != nil || intervalSec <= 0 {
		fmt.Fprintf(os.Stderr, "error: interval must be a positive integer\n")
		os.Exit(1)
	}

	broker := "tcp://localhost:1883"
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		broker = v
	}
	targetsPath := "targets.json"
	if v := os.Getenv("TARGETS_PATH"); v != "" {
		targetsPath = v
	}

	saved, err := targets.LoadFile(targetsPath)
	if err != nil {
		log.Fatalf("targets: %v", err)
	}
	if len(saved) == 0 {
		log.Fatal("no targets to simulate against")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("near-me-simulator")

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("mqtt connect: %v", token.Error())
	}
	defer client.Disconnect(250)

	log.Printf("connected to %s, simulating %d places every %ds...", broker, len(saved), intervalSec)

	inside := make(map[string]bool)

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		t := saved[rand.Intn(len(saved))]

		// drift within roughly twice the radius of the chosen place
		driftDeg := t.EffectiveRadius() * 2 / 111000
		lat := t.Lat + (rand.Float64()-0.5)*driftDeg
		lon := t.Lon + (rand.Float64()-0.5)*driftDeg

		pos := positionMessage{Latitude: lat, Longitude: lon, Timestamp: time.Now().Unix()}
		publishJSON(client, topicPosition, pos)

		key := t.Key()
		event := string(domain.TransitionEnter)
		if inside[key] {
			event = string(domain.TransitionExit)
		}
		inside[key] = !inside[key]

		batch := []transitionEntry{{GeofenceKey: key, Event: event}}
		publishJSON(client, topicTransitions, batch)

		// at-least-once: sometimes deliver the same batch twice
		if rand.Float64() < 0.2 {
			publishJSON(client, topicTransitions, batch)
		}
	}
}

func publishJSON(client mqtt.Client, topic string, v any) {
	payload, _ := json.Marshal(v)
	token := client.Publish(topic, 1, false, payload)
	token.Wait()
	log.Printf("published to %s: %s", topic, payload)
}
