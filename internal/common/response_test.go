package common

import (
	"errors"
	"testing"
)

func TestNewSuccessEnvelope(t *testing.T) {
	env := NewSuccess(StatusOK, "Login successful", map[string]string{"id": "1"})
	if env.Status != StatusSuccess {
		t.Errorf("Status = %q, want %q", env.Status, StatusSuccess)
	}
	if env.StatusCode != StatusOK {
		t.Errorf("StatusCode = %d, want %d", env.StatusCode, StatusOK)
	}
	if env.Meta != nil {
		t.Error("unpaginated success must not carry Meta")
	}
}

func TestNewSuccessPagedEnvelope(t *testing.T) {
	env := NewSuccessPaged(StatusOK, "Users fetched successfully", nil, 2, 5)
	if env.Meta == nil {
		t.Fatal("paged success must carry Meta")
	}
	if env.Meta.CurrentPage != 2 || env.Meta.TotalPages != 5 {
		t.Errorf("Meta = %+v, want currentPage 2 totalPages 5", env.Meta)
	}
}

func TestNewFailureEnvelope(t *testing.T) {
	env := NewFailure(StatusNotFound, "User not found")
	if env.Status != StatusFailed {
		t.Errorf("Status = %q, want %q", env.Status, StatusFailed)
	}
	if env.Data != nil {
		t.Error("failure must not carry Data")
	}
}

func TestFromErrorUsesTaxonomy(t *testing.T) {
	env := FromError(ErrInvalidCredentials)
	if env.StatusCode != StatusUnauthorized {
		t.Errorf("StatusCode = %d, want %d", env.StatusCode, StatusUnauthorized)
	}
	if env.Message != "Invalid password" {
		t.Errorf("Message = %q", env.Message)
	}
}

func TestFromErrorCollapsesUnknownErrors(t *testing.T) {
	env := FromError(errors.New("driver: socket closed mid-query"))
	if env.StatusCode != StatusInternalServerError {
		t.Errorf("StatusCode = %d, want %d", env.StatusCode, StatusInternalServerError)
	}
	if env.Message != "Internal server error" {
		t.Errorf("raw error text leaked into the envelope: %q", env.Message)
	}
}

func TestErrorIsByCodeAndMessage(t *testing.T) {
	err := NewError(ErrCodeDatabaseQuery, "Email does not exist", StatusNotFound, nil)
	same := NewError(ErrCodeDatabaseQuery, "Email does not exist", StatusNotFound, nil)
	if !errors.Is(err, same) {
		t.Error("equal code and message should compare as the same error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("different messages must not compare equal")
	}
}
