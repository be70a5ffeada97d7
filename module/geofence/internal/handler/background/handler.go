package background

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/internal/relay"
)

const topicTransitions = "nearme/geofence/transitions"

type alertNotifier interface {
	Show(ctx context.Context, id uint32, title, body string) error
}

type relaySender interface {
	Send(name string, evt domain.TransitionEvent) bool
}

// TransitionEntry is one detected crossing as the monitoring agent
// reports it. Event kinds other than enter/exit are ignored.
type TransitionEntry struct {
	GeofenceKey string `json:"geofence_key"`
	Event       string `json:"event"`
}

// TransitionHandler reacts to crossings with no foreground state
// assumed: it holds only the notification channel and a relay handle,
// never the reconciler. The monitoring agent delivers at-least-once;
// the deterministic notification id makes redelivery overwrite instead
// of duplicate.
type TransitionHandler struct {
	client   mqtt.Client
	notifier alertNotifier
	relay    relaySender
}

func NewTransitionHandler(client mqtt.Client, notifier alertNotifier, relay relaySender) *TransitionHandler {
	return &TransitionHandler{
		client:   client,
		notifier: notifier,
		relay:    relay,
	}
}

func (h *TransitionHandler) Start() error {
	token := h.client.Subscribe(topicTransitions, 1, h.handleMessage)
	token.Wait()
	return token.Error()
}

func (h *TransitionHandler) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var batch []TransitionEntry
	if err := json.Unmarshal(msg.Payload(), &batch); err != nil {
		log.Printf("invalid transition batch: %v", err)
		return
	}
	h.OnTransition(batch)
}

func (h *TransitionHandler) OnTransition(batch []TransitionEntry) {
	ctx := context.Background()

	for _, entry := range batch {
		kind, ok := domain.ParseTransitionKind(entry.Event)
		if !ok {
			continue
		}

		title, body := composeAlert(entry.GeofenceKey, kind)
		id := NotificationID(entry.GeofenceKey, kind)
		if err := h.notifier.Show(ctx, id, title, body); err != nil {
			log.Printf("show notification %d: %v", id, err)
		}

		// best-effort: with no foreground listener the event is dropped,
		// the notification above is the durable record
		h.relay.Send(relay.ForegroundEndpoint, domain.TransitionEvent{
			GeofenceKey: entry.GeofenceKey,
			Kind:        kind,
			Timestamp:   time.Now(),
		})
	}
}

func composeAlert(key string, kind domain.TransitionKind) (title, body string) {
	name := domain.KeyName(key)
	if kind == domain.TransitionEnter {
		return "Entered: " + name, fmt.Sprintf("You have entered the area around %s.", name)
	}
	return "Exited: " + name, fmt.Sprintf("You have exited the area around %s.", name)
}

// NotificationID derives the dedup id from the key and kind, nothing
// else, so redelivery of the same physical transition maps to the same
// visible notification.
func NotificationID(key string, kind domain.TransitionKind) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	_, _ = h.Write([]byte{'|'})
	_, _ = h.Write([]byte(kind))
	return h.Sum32()
}
