package domain

import (
	"sort"
	"strings"
)

// EmployeeIdentity identifies the employee the client is acting for.
type EmployeeIdentity struct {
	EmployeeID   string
	EmployeeName string
}

// Resolved returns true once an employee id is known.
func (i EmployeeIdentity) Resolved() bool {
	return i.EmployeeID != ""
}

// Employee is one record of the full employee roster.
type Employee struct {
	Name string
	Role string
}

// teamLeadRole is the role-name fragment that marks an approver.
const teamLeadRole = "team lead"

// FilterTeamLeads selects the names of roster entries whose role contains
// "team lead" (case-insensitive substring match) and returns them sorted
// ascending.
func FilterTeamLeads(roster []Employee) []string {
	var leads []string
	for _, emp := range roster {
		if strings.Contains(strings.ToLower(emp.Role), teamLeadRole) {
			leads = append(leads, emp.Name)
		}
	}
	sort.Strings(leads)
	return leads
}
