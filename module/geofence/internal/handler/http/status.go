package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/service"
)

type monitorService interface {
	Sync(ctx context.Context) domain.SyncStatus
	Status() domain.SyncStatus
	Targets() []domain.Target
}

type stateService interface {
	Places() map[string]domain.PlaceState
	Position() (domain.Position, bool)
}

type targetResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	RadiusM     float64 `json:"radius_m"`
	GeofenceKey string  `json:"geofence_key"`
}

type placeResponse struct {
	GeofenceKey string                  `json:"geofence_key"`
	Name        string                  `json:"name"`
	Inside      bool                    `json:"inside"`
	LastEvent   *domain.TransitionEvent `json:"last_event,omitempty"`

	// DistanceM is display-only, derived from the live position; the
	// inside flag comes from transition events alone.
	DistanceM *float64 `json:"distance_m,omitempty"`
}

type StatusHandler struct {
	monitor monitorService
	state   stateService
}

func NewStatusHandler(monitor monitorService, state stateService) *StatusHandler {
	return &StatusHandler{monitor: monitor, state: state}
}

func (h *StatusHandler) Register(r *gin.RouterGroup) {
	r.GET("/status", h.GetStatus)
	r.POST("/sync", h.PostSync)
	r.GET("/targets", h.GetTargets)
	r.GET("/places", h.GetPlaces)
	r.GET("/permissions", h.GetPermissions)
}

func (h *StatusHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.Status())
}

func (h *StatusHandler) PostSync(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.Sync(c.Request.Context()))
}

func (h *StatusHandler) GetTargets(c *gin.Context) {
	targets := h.monitor.Targets()
	results := make([]targetResponse, len(targets))
	for i := range targets {
		t := &targets[i]
		results[i] = targetResponse{
			ID:          t.ID,
			Name:        t.Name,
			Latitude:    t.Lat,
			Longitude:   t.Lon,
			RadiusM:     t.EffectiveRadius(),
			GeofenceKey: t.Key(),
		}
	}
	c.JSON(http.StatusOK, results)
}

func (h *StatusHandler) GetPlaces(c *gin.Context) {
	places := h.state.Places()
	pos, hasPos := h.state.Position()

	targets := h.monitor.Targets()
	results := make([]placeResponse, len(targets))
	for i := range targets {
		t := &targets[i]
		resp := placeResponse{
			GeofenceKey: t.Key(),
			Name:        t.Name,
		}
		if st, ok := places[t.Key()]; ok {
			resp.Inside = st.Inside
			resp.LastEvent = st.LastEvent
		}
		if hasPos {
			d := service.DistanceMeters(pos.Lat, pos.Lon, t.Lat, t.Lon)
			resp.DistanceM = &d
		}
		results[i] = resp
	}
	c.JSON(http.StatusOK, results)
}

func (h *StatusHandler) GetPermissions(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.Status().Permissions)
}
