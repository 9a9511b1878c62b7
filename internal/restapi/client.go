package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"task-entry/internal/config"
	"task-entry/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Client is the HTTP implementation of Backend.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a backend client from configuration.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.Backend.BaseURL, "/"),
		authToken: cfg.Backend.AuthToken,
		httpClient: &http.Client{
			Timeout: cfg.Backend.RequestTimeout,
		},
		logger: logger,
	}
}

// FetchAllEmployees returns the full employee roster.
func (c *Client) FetchAllEmployees(ctx context.Context) ([]EmployeeRecord, error) {
	var roster []EmployeeRecord
	if err := c.getJSON(ctx, "/api/fetchAll", &roster); err != nil {
		return nil, err
	}
	return roster, nil
}

// FetchEmployee returns the details for one employee.
func (c *Client) FetchEmployee(ctx context.Context, employeeID string) (*EmployeeDetails, error) {
	var details EmployeeDetails
	path := "/api/" + url.PathEscape(employeeID)
	if err := c.getJSON(ctx, path, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// FetchUnratedTasks returns the employee's unrated tasks for the
// current month.
func (c *Client) FetchUnratedTasks(ctx context.Context, employeeID string, bustCache bool) ([]TaskRecord, error) {
	path := "/api/v1/tasks/withoutrating/" + url.PathEscape(employeeID)
	if bustCache {
		path = fmt.Sprintf("%s?_t=%d", path, timeNow().UnixMilli())
	}

	var response UnratedTasksResponse
	if err := c.getJSON(ctx, path, &response); err != nil {
		return nil, err
	}
	return response.Tasks, nil
}

// UpdateTask updates the editable fields of one persisted task.
func (c *Client) UpdateTask(ctx context.Context, taskID string, update TaskUpdateRequest) error {
	body, err := json.Marshal(update)
	if err != nil {
		return errors.NewNetworkError("update task", err)
	}

	path := "/api/v1/tasks/update/" + url.PathEscape(taskID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.NewNetworkError("update task", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authToken)

	c.logger.Debug("updating task",
		zap.String("task_id", taskID),
		zap.String("url", c.baseURL+path))

	return c.do(req, "update task", nil)
}

// SubmitTasks submits a batch of draft entries with any attached files
// as a single multipart request.
func (c *Client) SubmitTasks(ctx context.Context, employeeID string, tasks []TaskPayload, files []Attachment) error {
	serialized, err := json.Marshal(tasks)
	if err != nil {
		return errors.NewNetworkError("submit tasks", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("tasks", string(serialized)); err != nil {
		return errors.NewNetworkError("submit tasks", err)
	}
	for _, file := range files {
		part, err := writer.CreateFormFile("files", file.Filename)
		if err != nil {
			return errors.NewNetworkError("submit tasks", err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return errors.NewNetworkError("submit tasks", err)
		}
	}
	if err := writer.Close(); err != nil {
		return errors.NewNetworkError("submit tasks", err)
	}

	path := "/api/v1/tasks/submit/" + url.PathEscape(employeeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return errors.NewNetworkError("submit tasks", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", c.authToken)

	c.logger.Debug("submitting tasks",
		zap.String("employee_id", employeeID),
		zap.Int("task_count", len(tasks)),
		zap.Int("file_count", len(files)))

	return c.do(req, "submit tasks", nil)
}

// getJSON performs a GET request and decodes the JSON response body.
func (c *Client) getJSON(ctx context.Context, path string, target interface{}) error {
	operation := "GET " + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.NewNetworkError(operation, err)
	}

	c.logger.Debug("fetching", zap.String("url", c.baseURL+path))

	return c.do(req, operation, target)
}

// do executes the request, maps non-success statuses to network errors,
// and decodes the body into target when one is given.
func (c *Client) do(req *http.Request, operation string, target interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("operation", operation),
			zap.Error(err))
		return errors.NewNetworkError(operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewNetworkError(operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("backend returned non-success status",
			zap.String("operation", operation),
			zap.Int("status_code", resp.StatusCode))
		return errors.NewBackendStatusError(operation, resp.StatusCode, string(body))
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errors.NewNetworkError(operation, err)
	}
	return nil
}
