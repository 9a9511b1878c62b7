package restapi

import (
	"encoding/json"
	"strings"
)

// FlexString decodes a JSON value that may arrive as either a string or
// a number. The backend is not consistent about hours fields.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// EmployeeRecord is one roster entry from GET /api/fetchAll. The role
// arrives under either employeeRole or role depending on backend
// version.
type EmployeeRecord struct {
	EmployeeName string `json:"employeeName"`
	EmployeeRole string `json:"employeeRole"`
	Role         string `json:"role"`
}

// RoleName returns the role regardless of which field carried it.
func (r EmployeeRecord) RoleName() string {
	if r.EmployeeRole != "" {
		return r.EmployeeRole
	}
	return r.Role
}

// EmployeeDetails is the response of GET /api/{employeeId}.
type EmployeeDetails struct {
	EmployeeName string `json:"employeeName"`
}

// TaskRecord is one unrated task from GET /api/v1/tasks/withoutrating.
type TaskRecord struct {
	TaskID      string     `json:"taskId"`
	WorkDate    string     `json:"workDate"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Hours       FlexString `json:"hours"`
	ExtraHours  FlexString `json:"extraHours"`
	PRLink      string     `json:"prLink"`
}

// UnratedTasksResponse wraps the unrated task list.
type UnratedTasksResponse struct {
	Tasks []TaskRecord `json:"tasks"`
}

// TaskUpdateRequest is the body of PUT /api/v1/tasks/update/{taskId}.
type TaskUpdateRequest struct {
	Description string `json:"description"`
	Status      string `json:"status"`
	Hours       string `json:"hours"`
	ExtraHours  string `json:"extraHours"`
	PRLink      string `json:"prLink"`
}

// TaskPayload is one draft entry inside the JSON array serialized into
// the multipart "tasks" field of POST /api/v1/tasks/submit.
type TaskPayload struct {
	TaskID      *string `json:"taskId"`
	Date        string  `json:"date"`
	Project     string  `json:"project"`
	TeamLead    string  `json:"teamLead"`
	TaskTitle   string  `json:"taskTitle"`
	Description string  `json:"description"`
	Reference   string  `json:"reference"`
	PRLink      string  `json:"prLink"`
	Status      string  `json:"status"`
	Hours       string  `json:"hours"`
	ExtraHours  string  `json:"extraHours"`
}

// Attachment is one file part of a submission, named "files" on the
// wire.
type Attachment struct {
	Filename string
	Content  []byte
}
