package session

import "task-entry/internal/domain"

// ResolveIdentity determines the active employee id. An explicitly
// provided id wins and is persisted for later invocations; otherwise
// the stored id is used. The returned identity is unresolved when
// neither source has one.
func ResolveIdentity(store Store, explicitID string) (domain.EmployeeIdentity, error) {
	if explicitID != "" {
		if err := store.SetEmployeeID(explicitID); err != nil {
			return domain.EmployeeIdentity{}, err
		}
		return domain.EmployeeIdentity{
			EmployeeID:   explicitID,
			EmployeeName: store.EmployeeName(),
		}, nil
	}
	return domain.EmployeeIdentity{
		EmployeeID:   store.EmployeeID(),
		EmployeeName: store.EmployeeName(),
	}, nil
}
