package enhance

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"quickblog/apperr"
)

const longEnough = "This sentence is comfortably longer than the thirty character minimum."

func TestEnhanceRejectsMissingFields(t *testing.T) {
	e := NewDisabled("test-model")

	_, err := e.Enhance(context.Background(), "", ModeGrammar)
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty text, got %v", err)
	}

	_, err = e.Enhance(context.Background(), longEnough, "")
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty mode, got %v", err)
	}
}

func TestEnhanceRejectsShortText(t *testing.T) {
	e := NewDisabled("test-model")

	_, err := e.Enhance(context.Background(), "too short", ModeGrammar)
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("expected 400 for short text, got %v", err)
	}
	if !strings.Contains(apperr.MessageOf(err), "too short") {
		t.Fatalf("expected short-text message, got %q", apperr.MessageOf(err))
	}
}

func TestEnhanceRejectsUnknownMode(t *testing.T) {
	e := NewDisabled("test-model")

	_, err := e.Enhance(context.Background(), longEnough, "summarize")
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown mode, got %v", err)
	}
}

func TestEnhanceUnavailableWithoutClient(t *testing.T) {
	e := NewDisabled("test-model")

	_, err := e.Enhance(context.Background(), longEnough, ModeFull)
	if apperr.StatusOf(err) != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a configured client, got %v", err)
	}
}

func TestMapProviderError(t *testing.T) {
	e := NewDisabled("test-model")

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"safety block", errors.New("blocked: SAFETY"), http.StatusBadRequest, apperr.CodeProviderPolicy},
		{"bad credential", errors.New("API key not valid. Please pass a valid API key."), http.StatusUnauthorized, apperr.CodeUnauthed},
		{"model missing", errors.New("models/test-model is not found for API version v1"), http.StatusNotFound, apperr.CodeUpstream},
		{"generic", errors.New("deadline exceeded"), http.StatusInternalServerError, apperr.CodeUpstream},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := e.mapProviderError(tc.err)
			if apperr.StatusOf(mapped) != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, apperr.StatusOf(mapped))
			}
			var ae *apperr.Error
			if !errors.As(mapped, &ae) || ae.Code != tc.wantCode {
				t.Fatalf("expected code %q, got %+v", tc.wantCode, mapped)
			}
		})
	}
}
