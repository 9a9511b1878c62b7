// Package refdata loads the reference data the entry form depends on:
// the signed-in employee's name and the team-lead roster. The backend
// being unreachable never blocks the form; callers get an empty result
// and the failure is logged.
package refdata

import (
	"context"

	"go.uber.org/zap"

	"task-entry/internal/domain"
	"task-entry/internal/restapi"
	"task-entry/internal/session"
)

// Loader fetches reference data from the rating backend.
type Loader struct {
	backend restapi.Backend
	roster  *domain.RosterMapper
	logger  *zap.Logger
}

// NewLoader creates a new Loader instance.
func NewLoader(backend restapi.Backend, logger *zap.Logger) *Loader {
	return &Loader{
		backend: backend,
		roster:  domain.NewRosterMapper(),
		logger:  logger,
	}
}

// LoadIdentity fills in the employee name for the given identity and
// persists it to the session store. An unresolved identity or a backend
// failure leaves the name as-is.
func (l *Loader) LoadIdentity(ctx context.Context, store session.Store, identity domain.EmployeeIdentity) domain.EmployeeIdentity {
	if !identity.Resolved() {
		return identity
	}

	details, err := l.backend.FetchEmployee(ctx, identity.EmployeeID)
	if err != nil {
		l.logger.Warn("failed to load employee details",
			zap.String("employee_id", identity.EmployeeID),
			zap.Error(err))
		return identity
	}
	if details == nil || details.EmployeeName == "" {
		return identity
	}

	identity.EmployeeName = details.EmployeeName
	if err := store.SetEmployeeName(details.EmployeeName); err != nil {
		l.logger.Warn("failed to persist employee name", zap.Error(err))
	}
	return identity
}

// LoadTeamLeads returns the names of all team leads, sorted. A backend
// failure yields an empty slice.
func (l *Loader) LoadTeamLeads(ctx context.Context) []string {
	records, err := l.backend.FetchAllEmployees(ctx)
	if err != nil {
		l.logger.Warn("failed to load employee roster", zap.Error(err))
		return nil
	}
	return domain.FilterTeamLeads(l.roster.FromWire(records))
}
