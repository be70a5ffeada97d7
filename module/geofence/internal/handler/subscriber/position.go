package subscriber

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
)

const topicPosition = "nearme/device/position"

type positionSink interface {
	UpdatePosition(pos domain.Position)
}

type positionMessage struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// PositionSubscriber feeds the live position stream into the
// reconciler. The stream is informational only; it never flips
// inside/outside state. Start and Stop are idempotent, so the
// subscription can be cancelled and restarted freely.
type PositionSubscriber struct {
	client mqtt.Client
	sink   positionSink
}

func NewPositionSubscriber(client mqtt.Client, sink positionSink) *PositionSubscriber {
	return &PositionSubscriber{client: client, sink: sink}
}

func (s *PositionSubscriber) Start() error {
	token := s.client.Subscribe(topicPosition, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *PositionSubscriber) Stop() error {
	token := s.client.Unsubscribe(topicPosition)
	token.Wait()
	return token.Error()
}

func (s *PositionSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw positionMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.Printf("invalid position message: %v", err)
		return
	}

	if err := validatePositionMessage(&raw); err != nil {
		log.Printf("position validation error: %v", err)
		return
	}

	s.sink.UpdatePosition(domain.Position{
		Lat:       raw.Latitude,
		Lon:       raw.Longitude,
		Timestamp: time.Unix(raw.Timestamp, 0),
	})
}

func validatePositionMessage(msg *positionMessage) error {
	if msg.Latitude < -90 || msg.Latitude > 90 {
		return fmt.Errorf("latitude: must be between -90 and 90")
	}
	if msg.Longitude < -180 || msg.Longitude > 180 {
		return fmt.Errorf("longitude: must be between -180 and 180")
	}
	if msg.Timestamp <= 0 {
		return fmt.Errorf("timestamp: must be positive")
	}
	return nil
}
