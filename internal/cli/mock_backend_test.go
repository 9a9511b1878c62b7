package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"task-entry/internal/config"
	"task-entry/internal/draftstore"
	"task-entry/internal/logging"
	"task-entry/internal/restapi"
	"task-entry/internal/session"
)

// mockBackend is a hand-rolled Backend double shared by the command tests
type mockBackend struct {
	mu sync.Mutex

	employees    []restapi.EmployeeRecord
	employeesErr error

	details    *restapi.EmployeeDetails
	detailsErr error

	unrated    []restapi.TaskRecord
	unratedErr error
	fetchCalls []bool

	updates   map[string]restapi.TaskUpdateRequest
	updateErr map[string]error

	submitCalls int
	submitErr   error
	lastTasks   []restapi.TaskPayload
	lastFiles   []restapi.Attachment
}

func newMockBackend() *mockBackend {
	return &mockBackend{
		updates:   make(map[string]restapi.TaskUpdateRequest),
		updateErr: make(map[string]error),
	}
}

func (m *mockBackend) FetchAllEmployees(ctx context.Context) ([]restapi.EmployeeRecord, error) {
	return m.employees, m.employeesErr
}

func (m *mockBackend) FetchEmployee(ctx context.Context, employeeID string) (*restapi.EmployeeDetails, error) {
	return m.details, m.detailsErr
}

func (m *mockBackend) FetchUnratedTasks(ctx context.Context, employeeID string, bustCache bool) ([]restapi.TaskRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchCalls = append(m.fetchCalls, bustCache)
	return m.unrated, m.unratedErr
}

func (m *mockBackend) UpdateTask(ctx context.Context, taskID string, update restapi.TaskUpdateRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates[taskID] = update
	return m.updateErr[taskID]
}

func (m *mockBackend) SubmitTasks(ctx context.Context, employeeID string, tasks []restapi.TaskPayload, files []restapi.Attachment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitCalls++
	m.lastTasks = tasks
	m.lastFiles = files
	return m.submitErr
}

func mockEmployee(name, role string) restapi.EmployeeRecord {
	return restapi.EmployeeRecord{EmployeeName: name, EmployeeRole: role}
}

// mockNotifier records alerts and answers every confirm the same way
type mockNotifier struct {
	alerts   []string
	confirms []string
	answer   bool
}

func (m *mockNotifier) Alert(message string) {
	m.alerts = append(m.alerts, message)
}

func (m *mockNotifier) Confirm(message string) bool {
	m.confirms = append(m.confirms, message)
	return m.answer
}

// testApp bundles the app under test with its doubles
type testApp struct {
	app      *App
	backend  *mockBackend
	notifier *mockNotifier
	out      *bytes.Buffer
}

func setupTestApp(t *testing.T, explicitID string) *testApp {
	return setupTestAppWithInput(t, explicitID, "")
}

func setupTestAppWithInput(t *testing.T, explicitID, input string) *testApp {
	t.Helper()

	cfg := config.NewConfig()
	cfg.Session.Dir = t.TempDir()
	cfg.Drafts.Dir = t.TempDir()

	repo, err := draftstore.New(filepath.Join(cfg.Drafts.Dir, cfg.Drafts.Filename), cfg.GetQueryTimeout(), cfg.GetWriteTimeout())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	backend := newMockBackend()
	notifier := &mockNotifier{answer: true}
	out := &bytes.Buffer{}
	store := session.NewStore(cfg)

	app := newApp(cfg, logging.NewNop(), store, repo, backend, notifier, explicitID, out, strings.NewReader(input))

	return &testApp{
		app:      app,
		backend:  backend,
		notifier: notifier,
		out:      out,
	}
}
