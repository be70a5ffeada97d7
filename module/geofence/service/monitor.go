package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
)

// Monitor owns the top-level foreground flow: evaluate permissions,
// synchronize registrations, and reduce whatever happened to a status
// string. Errors never propagate past it.
type Monitor struct {
	evaluator *Evaluator
	registrar *Registrar
	targets   []domain.Target

	mu     sync.Mutex
	snap   domain.PermissionSnapshot
	active int
	status string
}

func NewMonitor(evaluator *Evaluator, registrar *Registrar, targets []domain.Target) *Monitor {
	return &Monitor{
		evaluator: evaluator,
		registrar: registrar,
		targets:   targets,
		status:    "not yet synchronized",
	}
}

func (m *Monitor) Targets() []domain.Target {
	return m.targets
}

// Sync runs one evaluate-and-synchronize pass. The mutex doubles as the
// single-flight guard: concurrent callers serialize, so two
// clear-and-reregister passes never race.
func (m *Monitor) Sync(ctx context.Context) domain.SyncStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snap = m.evaluator.Evaluate(ctx)

	res, err := m.registrar.Synchronize(ctx, m.targets, m.snap)
	if err != nil {
		m.active = 0
		m.status = syncFailureStatus(err, m.snap)
		return m.statusLocked()
	}

	m.active = res.ActiveCount
	m.status = fmt.Sprintf("monitoring %d of %d saved places", res.ActiveCount, len(m.targets))
	if res.Rejected > 0 {
		m.status += fmt.Sprintf(" (%d rejected)", res.Rejected)
	}
	return m.statusLocked()
}

func (m *Monitor) Status() domain.SyncStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statusLocked()
}

// ReportLoadFailure surfaces a failed target-list load. The app stays
// usable with zero targets.
func (m *Monitor) ReportLoadFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = fmt.Sprintf("failed to load saved places: %v", err)
}

func (m *Monitor) statusLocked() domain.SyncStatus {
	return domain.SyncStatus{
		Status:      m.status,
		ActiveCount: m.active,
		Permissions: m.snap,
	}
}

func syncFailureStatus(err error, snap domain.PermissionSnapshot) string {
	s := fmt.Sprintf("geofences not registered: %v", err)
	if snap.NeedsManualSettings {
		s += " (enable it in system settings)"
	}
	return s
}
