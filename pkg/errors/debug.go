package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// PGDiagnostics are the server-side fields of a postgres error.
type PGDiagnostics struct {
	Code       string `json:"code,omitempty"`
	Constraint string `json:"constraint,omitempty"`
	Table      string `json:"table,omitempty"`
	Column     string `json:"column,omitempty"`
	Detail     string `json:"detail,omitempty"`
	Message    string `json:"message,omitempty"`
}

type ErrorDump struct {
	TopMessage string         `json:"top_message"`
	Code       Code           `json:"code,omitempty"`
	Chain      []string       `json:"chain,omitempty"`
	PG         *PGDiagnostics `json:"pg,omitempty"`
}

// Dump flattens err for structured logging.
func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}
	d := ErrorDump{TopMessage: err.Error()}
	if te := As(err); te != nil {
		d.Code = te.Code()
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}
	if diag, ok := pgDiagnostics(err); ok {
		d.PG = &diag
	}
	return d
}

// pgDiagnostics reads diagnostics from either postgres driver.
func pgDiagnostics(err error) (PGDiagnostics, bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return PGDiagnostics{
			Code:       pgxErr.Code,
			Constraint: pgxErr.ConstraintName,
			Table:      pgxErr.TableName,
			Column:     pgxErr.ColumnName,
			Detail:     pgxErr.Detail,
			Message:    pgxErr.Message,
		}, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return PGDiagnostics{
			Code:       string(pqErr.Code),
			Constraint: pqErr.Constraint,
			Table:      pqErr.Table,
			Column:     pqErr.Column,
			Detail:     pqErr.Detail,
			Message:    pqErr.Message,
		}, true
	}
	return PGDiagnostics{}, false
}

// FromDatabase wraps a persistence error with the code its SQLSTATE implies.
// Typed errors pass through unchanged.
func FromDatabase(err error, msg string) error {
	if err == nil {
		return nil
	}
	if As(err) != nil {
		return err
	}
	return Wrap(databaseCode(err), err, msg)
}

func databaseCode(err error) Code {
	diag, ok := pgDiagnostics(err)
	if !ok {
		// sqlite reports constraint failures as text only.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return CodeConflict
		}
		return CodeInternal
	}
	switch {
	case diag.Code == "23505":
		return CodeConflict
	case strings.HasPrefix(diag.Code, "22"), strings.HasPrefix(diag.Code, "23"):
		return CodeValidation
	case strings.HasPrefix(diag.Code, "08"), diag.Code == "57P01", diag.Code == "40001", diag.Code == "40P01":
		return CodeDependency
	default:
		return CodeInternal
	}
}
