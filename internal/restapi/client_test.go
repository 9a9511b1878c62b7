package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-entry/internal/config"
	"task-entry/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.NewConfig()
	cfg.Backend.BaseURL = server.URL
	cfg.Backend.AuthToken = "test-token"
	cfg.Backend.RequestTimeout = 5 * time.Second

	return NewClient(cfg, nil)
}

func TestClient_FetchAllEmployees(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/fetchAll", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"employeeName": "Casey", "employeeRole": "Team Lead"},
			{"employeeName": "Devon", "role": "Developer"}
		]`))
	})

	roster, err := client.FetchAllEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 2)

	assert.Equal(t, "Team Lead", roster[0].RoleName())
	assert.Equal(t, "Developer", roster[1].RoleName())
}

func TestClient_FetchEmployee(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/E1", r.URL.Path)
		w.Write([]byte(`{"employeeName": "Jamie"}`))
	})

	details, err := client.FetchEmployee(context.Background(), "E1")
	require.NoError(t, err)
	assert.Equal(t, "Jamie", details.EmployeeName)
}

func TestClient_FetchUnratedTasks(t *testing.T) {
	t.Run("plain fetch has no cache buster", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/tasks/withoutrating/E1", r.URL.Path)
			assert.Empty(t, r.URL.Query().Get("_t"))
			w.Write([]byte(`{"tasks": [{"taskId": "t1", "workDate": "2024-05-03T09:00:00Z", "hours": 8}]}`))
		})

		tasks, err := client.FetchUnratedTasks(context.Background(), "E1", false)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "t1", tasks[0].TaskID)
		assert.Equal(t, FlexString("8"), tasks[0].Hours)
	})

	t.Run("refresh appends cache buster", func(t *testing.T) {
		fixed := time.Date(2024, time.May, 3, 12, 0, 0, 0, time.UTC)
		timeNow = func() time.Time { return fixed }
		defer func() { timeNow = time.Now }()

		var gotBuster string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotBuster = r.URL.Query().Get("_t")
			w.Write([]byte(`{"tasks": []}`))
		})

		_, err := client.FetchUnratedTasks(context.Background(), "E1", true)
		require.NoError(t, err)
		assert.Equal(t, "1714737600000", gotBuster)
	})

	t.Run("missing tasks field yields empty list", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})

		tasks, err := client.FetchUnratedTasks(context.Background(), "E1", false)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestClient_UpdateTask(t *testing.T) {
	t.Run("sends authorized PUT with editable fields", func(t *testing.T) {
		var got TaskUpdateRequest
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/v1/tasks/update/t42", r.URL.Path)
			assert.Equal(t, "test-token", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		})

		err := client.UpdateTask(context.Background(), "t42", TaskUpdateRequest{
			Description: "reviewed",
			Status:      "Completed",
			Hours:       "8",
			ExtraHours:  "1",
			PRLink:      "https://example.com/pr/9",
		})
		require.NoError(t, err)
		assert.Equal(t, "reviewed", got.Description)
		assert.Equal(t, "Completed", got.Status)
	})

	t.Run("non-success status maps to network error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		err := client.UpdateTask(context.Background(), "t42", TaskUpdateRequest{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNetwork))
	})
}

func TestClient_SubmitTasks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tasks/submit/E1", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))

		var payloads []TaskPayload
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("tasks")), &payloads))
		require.Len(t, payloads, 2)
		assert.Equal(t, "Implement login flow", payloads[0].TaskTitle)

		files := r.MultipartForm.File["files"]
		require.Len(t, files, 1)
		assert.Equal(t, "notes.txt", files[0].Filename)

		w.WriteHeader(http.StatusOK)
	})

	tasks := []TaskPayload{
		{Date: "2024-05-03", Project: "KIOSK", TaskTitle: "Implement login flow", Status: "Completed", Hours: "8"},
		{Project: "KIOSK", TaskTitle: "Fix session bug", Status: "Pending", Hours: "2"},
	}
	files := []Attachment{{Filename: "notes.txt", Content: []byte("done")}}

	err := client.SubmitTasks(context.Background(), "E1", tasks, files)
	require.NoError(t, err)
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected FlexString
	}{
		{"string value", `"7.5"`, "7.5"},
		{"integer value", `8`, "8"},
		{"float value", `7.5`, "7.5"},
		{"null value", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexString
			require.NoError(t, json.Unmarshal([]byte(tt.json), &f))
			assert.Equal(t, tt.expected, f)
		})
	}
}
