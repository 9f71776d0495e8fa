package util

import (
	"errors"
	"net/http"
	"testing"
)

func TestToDomainErrorPassesThroughDomainErrors(t *testing.T) {
	err := NewForbidden()

	domainErr := ToDomainError(err)
	if domainErr.Code != CodeForbidden {
		t.Fatalf("expected forbidden code, got %q", domainErr.Code)
	}
	if domainErr.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", domainErr.HTTPStatus)
	}
	if domainErr.Message != "Access forbidden." {
		t.Fatalf("unexpected message %q", domainErr.Message)
	}
}

func TestToDomainErrorWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("dial tcp: refused")

	domainErr := ToDomainError(cause)
	if domainErr.Code != CodeInternal {
		t.Fatalf("expected internal code, got %q", domainErr.Code)
	}
	if domainErr.Message != cause.Error() {
		t.Fatalf("expected cause passed through, got %q", domainErr.Message)
	}
	if !errors.Is(domainErr, cause) {
		t.Fatal("expected wrapped cause to unwrap")
	}
}

func TestNewNotFoundMessage(t *testing.T) {
	domainErr := ToDomainError(NewNotFound("Staff"))
	if domainErr.Message != "Staff not found" {
		t.Fatalf("unexpected message %q", domainErr.Message)
	}
	if domainErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", domainErr.HTTPStatus)
	}
}

func TestNewInternalErrorNilCause(t *testing.T) {
	domainErr := ToDomainError(NewInternalError(nil))
	if domainErr.Message != "internal server error" {
		t.Fatalf("unexpected message %q", domainErr.Message)
	}
}
