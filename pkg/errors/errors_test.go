package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "request rejected: check the submitted fields", detailsOK: true},
		{code: CodeUnauthorized, status: http.StatusUnauthorized, publicMsg: "sign in again to continue"},
		{code: CodeForbidden, status: http.StatusForbidden, publicMsg: "not allowed for this role or establishment"},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "furniture, room or record not found"},
		{code: CodeConflict, status: http.StatusConflict, publicMsg: "record already exists or was changed elsewhere"},
		{code: CodeStateConflict, status: http.StatusUnprocessableEntity, publicMsg: "table status does not allow this action", detailsOK: true},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "room builder failed unexpectedly", retryable: true},
		{code: CodeDependency, status: http.StatusServiceUnavailable, publicMsg: "backend or storage unavailable, retry shortly", retryable: true, detailsOK: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestRetryableFollowsCode(t *testing.T) {
	if !Retryable(fmt.Errorf("load room: %w", New(CodeDependency, "redis down"))) {
		t.Fatalf("dependency errors should be retryable")
	}
	if Retryable(New(CodeStateConflict, "table occupied")) {
		t.Fatalf("state conflicts should not be retryable")
	}
	if !Retryable(stdErrors.New("plain")) {
		t.Fatalf("untyped errors follow the internal metadata")
	}
	if Retryable(nil) {
		t.Fatalf("nil is not retryable")
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing foo")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing foo" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	detail := map[string]any{"field": "foo"}
	base.WithDetails(detail)
	if base.Details() == nil {
		t.Fatalf("details should be preserved")
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeConflict, cause, "ctx")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodeConflict {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestAsReturnsTypedError(t *testing.T) {
	err := New(CodeForbidden, "no entry")
	if got := As(err); got == nil || got.Code() != CodeForbidden {
		t.Fatalf("As failed to return typed error")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should return nil")
	}
}

func TestIsCodeWalksWrappedChain(t *testing.T) {
	typed := New(CodeStateConflict, "version moved")
	wrapped := fmt.Errorf("update status: %w", typed)
	if !IsCode(wrapped, CodeStateConflict) {
		t.Fatalf("expected wrapped error to match state conflict")
	}
	if IsCode(wrapped, CodeNotFound) {
		t.Fatalf("unexpected match for not found")
	}
	if IsCode(stdErrors.New("plain"), CodeInternal) {
		t.Fatalf("plain errors carry no code")
	}
}

func TestDumpCollectsChain(t *testing.T) {
	err := fmt.Errorf("outer: %w", Wrap(CodeDependency, stdErrors.New("redis down"), "load snapshot"))
	dump := Dump(err)
	if dump.Code != CodeDependency {
		t.Fatalf("expected dependency code, got %s", dump.Code)
	}
	if len(dump.Chain) != 3 {
		t.Fatalf("expected 3 chain entries, got %d: %v", len(dump.Chain), dump.Chain)
	}
}

func TestDumpReadsPostgresDiagnostics(t *testing.T) {
	err := fmt.Errorf("save: %w", &pgconn.PgError{Code: "23505", ConstraintName: "furniture_items_pkey", TableName: "furniture_items"})
	dump := Dump(err)
	if dump.PG == nil || dump.PG.Constraint != "furniture_items_pkey" {
		t.Fatalf("expected pg diagnostics, got %+v", dump.PG)
	}
	if Dump(stdErrors.New("plain")).PG != nil {
		t.Fatalf("plain errors carry no pg diagnostics")
	}
}

func TestFromDatabaseMapsSQLState(t *testing.T) {
	cases := []struct {
		err  error
		want Code
	}{
		{&pgconn.PgError{Code: "23505"}, CodeConflict},
		{&pq.Error{Code: "23502"}, CodeValidation},
		{&pgconn.PgError{Code: "08006"}, CodeDependency},
		{&pq.Error{Code: "40001"}, CodeDependency},
		{stdErrors.New("UNIQUE constraint failed: furniture_items.id"), CodeConflict},
		{stdErrors.New("disk I/O error"), CodeInternal},
	}
	for _, tc := range cases {
		if got := FromDatabase(tc.err, "op"); !IsCode(got, tc.want) {
			t.Errorf("%v: expected %s, got %v", tc.err, tc.want, got)
		}
	}

	typed := New(CodeNotFound, "missing")
	if FromDatabase(typed, "op") != typed {
		t.Fatalf("typed errors should pass through")
	}
	if FromDatabase(nil, "op") != nil {
		t.Fatalf("nil stays nil")
	}
}
