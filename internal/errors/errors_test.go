package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("date group", "2024-05-03")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "date group not found: 2024-05-03" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "date group not found: 2024-05-03")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "date group" {
		t.Errorf("NewNotFoundError should set resource context")
	}
}

func TestNewNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("fetch unrated tasks", cause)

	if err.Type != ErrorTypeNetwork {
		t.Errorf("NewNetworkError type = %v, want %v", err.Type, ErrorTypeNetwork)
	}
	if err.Message != "backend request failed: fetch unrated tasks" {
		t.Errorf("NewNetworkError message = %v, want %v", err.Message, "backend request failed: fetch unrated tasks")
	}
	if err.Code != "NETWORK_ERROR" {
		t.Errorf("NewNetworkError code = %v, want %v", err.Code, "NETWORK_ERROR")
	}
	if err.Cause != cause {
		t.Errorf("NewNetworkError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewBackendStatusError(t *testing.T) {
	err := NewBackendStatusError("update task", 500, "internal error")

	if err.Type != ErrorTypeNetwork {
		t.Errorf("NewBackendStatusError type = %v, want %v", err.Type, ErrorTypeNetwork)
	}
	if err.Code != "BACKEND_STATUS" {
		t.Errorf("NewBackendStatusError code = %v, want %v", err.Code, "BACKEND_STATUS")
	}

	status, ok := err.GetContext("status_code")
	if !ok || status != 500 {
		t.Errorf("NewBackendStatusError should set status_code context")
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("save draft", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewStorageError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Message != "storage operation failed: save draft" {
		t.Errorf("NewStorageError message = %v, want %v", err.Message, "storage operation failed: save draft")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("hours", "abc", "must be a number")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for hours: must be a number" {
		t.Errorf("NewInvalidInputError message = %v, want %v", err.Message, "invalid input for hours: must be a number")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original")
	err := WrapError(cause, ErrorTypeNetwork, "wrapped message")

	if err.Type != ErrorTypeNetwork {
		t.Errorf("WrapError type = %v, want %v", err.Type, ErrorTypeNetwork)
	}
	if !errors.Is(err, cause) && err.Unwrap() != cause {
		t.Errorf("WrapError should preserve the cause")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NewNetworkError("fetch", errors.New("boom"))
	wrapped := fmt.Errorf("outer: %w", appErr)
	plain := errors.New("plain")

	if !IsAppError(appErr) {
		t.Errorf("IsAppError(appErr) = false, want true")
	}
	if !IsAppError(wrapped) {
		t.Errorf("IsAppError(wrapped) = false, want true")
	}
	if IsAppError(plain) {
		t.Errorf("IsAppError(plain) = true, want false")
	}
}

func TestIsErrorType(t *testing.T) {
	err := NewStorageError("save", errors.New("boom"))

	if !IsErrorType(err, ErrorTypeStorage) {
		t.Errorf("IsErrorType(err, Storage) = false, want true")
	}
	if IsErrorType(err, ErrorTypeNetwork) {
		t.Errorf("IsErrorType(err, Network) = true, want false")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation error returns message",
			err:      NewValidationError("Please fill all required fields!", nil),
			expected: "Please fill all required fields!",
		},
		{
			name:     "network error returns generic message",
			err:      NewNetworkError("fetch", errors.New("boom")),
			expected: "A network error occurred while talking to the rating backend. Please try again.",
		},
		{
			name:     "storage error returns generic message",
			err:      NewStorageError("save", errors.New("boom")),
			expected: "A local storage error occurred. Please try again.",
		},
		{
			name:     "plain error returns its text",
			err:      errors.New("plain failure"),
			expected: "plain failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestShouldLogError(t *testing.T) {
	if ShouldLogError(NewValidationError("bad", nil)) {
		t.Errorf("validation errors should not be logged")
	}
	if !ShouldLogError(NewNetworkError("fetch", errors.New("boom"))) {
		t.Errorf("network errors should be logged")
	}
	if !ShouldLogError(errors.New("unknown")) {
		t.Errorf("unknown errors should be logged")
	}
}
