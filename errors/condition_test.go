package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestCondition_New_Success(t *testing.T) {
	cond := New(KindNotFound, "post 42 not found")
	if cond.Kind != KindNotFound {
		t.Errorf("expected kind %s, got %s", KindNotFound, cond.Kind)
	}
	if cond.Message != "post 42 not found" {
		t.Errorf("expected message 'post 42 not found', got %q", cond.Message)
	}
	if cond.Cause != nil {
		t.Error("expected no cause on a fresh condition")
	}
}

func TestCondition_Newf_Formats(t *testing.T) {
	cond := Newf(KindNotFound, "post %d not found", 42)
	if cond.Message != "post 42 not found" {
		t.Errorf("expected formatted message, got %q", cond.Message)
	}
}

func TestCondition_NotFound_Success(t *testing.T) {
	cond := NotFound("user", "123")
	if cond.Kind != KindNotFound {
		t.Errorf("expected not_found, got %s", cond.Kind)
	}
	if cond.Details["resource"] != "user" {
		t.Errorf("expected resource=user, got %v", cond.Details["resource"])
	}
	if cond.Details["id"] != "123" {
		t.Errorf("expected id=123, got %v", cond.Details["id"])
	}
}

func TestCondition_NotFound_EmptyID(t *testing.T) {
	cond := NotFound("user", "")
	if _, ok := cond.Details["id"]; ok {
		t.Error("expected no 'id' key in details when id is empty")
	}
}

func TestCondition_Internal_Success(t *testing.T) {
	cause := fmt.Errorf("db connection lost")
	cond := Internal(cause)
	if cond.Kind != KindInternal {
		t.Errorf("expected internal, got %s", cond.Kind)
	}
	if cond.Cause != cause {
		t.Error("expected cause to be set")
	}
}

func TestCondition_Unauthorized_DefaultMessage(t *testing.T) {
	cond := Unauthorized("")
	if cond.Message != "Authentication required." {
		t.Errorf("expected default message, got %q", cond.Message)
	}

	cond2 := Unauthorized("bad token")
	if cond2.Message != "bad token" {
		t.Errorf("expected custom message, got %q", cond2.Message)
	}
}

func TestCondition_Forbidden_DefaultMessage(t *testing.T) {
	cond := Forbidden("")
	if !strings.Contains(cond.Message, "permission") {
		t.Errorf("expected default message with 'permission', got %q", cond.Message)
	}
}

func TestCondition_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	cond := NotFound("item", "1").WithCause(cause)
	if cond.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(cond.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", cond.Error())
	}
}

func TestCondition_WithDetails_Merge(t *testing.T) {
	cond := NotFound("item", "1").WithDetails(map[string]any{"extra": "info"})
	if cond.Details["extra"] != "info" {
		t.Error("expected extra=info in details")
	}
	if cond.Details["resource"] != "item" {
		t.Error("expected original details to be preserved")
	}

	cond.WithDetails(map[string]any{"another": "detail"})
	if cond.Details["another"] != "detail" {
		t.Error("expected another=detail to be merged")
	}
	if cond.Details["extra"] != "info" {
		t.Error("expected extra=info to survive the second merge")
	}
}

func TestCondition_WithDetail_NilMap(t *testing.T) {
	cond := &Condition{}
	cond.WithDetail("key", "value")
	if cond.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", cond.Details["key"])
	}
}

func TestCondition_Error_Format(t *testing.T) {
	cond := NotFound("user", "5")
	s := cond.Error()
	if !strings.Contains(s, "not_found") {
		t.Errorf("expected error string to contain kind, got %q", s)
	}
	if !strings.Contains(s, "not found") {
		t.Errorf("expected error string to contain message, got %q", s)
	}
}

func TestCondition_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("underlying")
	cond := Internal(cause)
	if cond.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	cond2 := NotFound("x", "")
	if cond2.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestCondition_Constructors_Table(t *testing.T) {
	tests := []struct {
		name string
		cond *Condition
		kind Kind
	}{
		{"Validation", Validation("bad input"), KindValidation},
		{"Conflict", Conflict("version mismatch"), KindConflict},
		{"AlreadyExists", AlreadyExists("user"), KindAlreadyExists},
		{"Timeout", Timeout("query"), KindTimeout},
		{"Unavailable", Unavailable("search index"), KindUnavailable},
		{"RateLimited", RateLimited(), KindRateLimited},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.cond.Kind != tc.kind {
				t.Errorf("expected kind %s, got %s", tc.kind, tc.cond.Kind)
			}
			if tc.cond.Message == "" {
				t.Error("expected non-empty message")
			}
		})
	}
}

func TestKind_IsRetryableKind_Table(t *testing.T) {
	retryable := []Kind{KindTimeout, KindUnavailable, KindRateLimited}
	for _, k := range retryable {
		if !IsRetryableKind(k) {
			t.Errorf("expected %s to be retryable", k)
		}
	}

	nonRetryable := []Kind{KindNotFound, KindValidation, KindUnauthorized, KindConflict, KindInternal}
	for _, k := range nonRetryable {
		if IsRetryableKind(k) {
			t.Errorf("expected %s to NOT be retryable", k)
		}
	}
}

func TestCondition_IsCondition_Success(t *testing.T) {
	cond := NotFound("x", "")
	if !IsCondition(cond) {
		t.Error("expected IsCondition to return true for a Condition")
	}

	wrapped := fmt.Errorf("wrapped: %w", cond)
	if !IsCondition(wrapped) {
		t.Error("expected IsCondition to return true for a wrapped Condition")
	}

	if IsCondition(fmt.Errorf("plain error")) {
		t.Error("expected IsCondition to return false for a plain error")
	}
}

func TestCondition_AsCondition_Success(t *testing.T) {
	cond := Internal(nil)
	wrapped := fmt.Errorf("wrap: %w", cond)

	got, ok := AsCondition(wrapped)
	if !ok {
		t.Fatal("expected AsCondition to succeed for a wrapped Condition")
	}
	if got.Kind != KindInternal {
		t.Errorf("expected internal, got %s", got.Kind)
	}

	if _, ok := AsCondition(fmt.Errorf("not a condition")); ok {
		t.Error("expected AsCondition to return false for a plain error")
	}
}

func TestWrap_NilReturnsNil(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrap_ConditionPassthrough(t *testing.T) {
	orig := NotFound("item", "1")
	if got := Wrap(orig); got != orig {
		t.Error("Wrap should return the original Condition unchanged")
	}

	wrapped := fmt.Errorf("outer: %w", orig)
	if got := Wrap(wrapped); got.Kind != KindNotFound {
		t.Errorf("expected not_found, got %s", got.Kind)
	}
}

func TestWrap_PlainError(t *testing.T) {
	plain := fmt.Errorf("something broke")
	got := Wrap(plain)
	if got.Kind != KindInternal {
		t.Errorf("expected internal, got %s", got.Kind)
	}
	if got.Cause != plain {
		t.Error("expected cause to be the original error")
	}
}

func TestCondition_ImplementsErrorInterface(t *testing.T) {
	var err error = NotFound("test", "1")
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}

	var cond *Condition
	if !stderrors.As(err, &cond) {
		t.Error("stderrors.As should work with Condition")
	}
}
