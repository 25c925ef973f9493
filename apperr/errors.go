// Package apperr holds the two error families the backend returns: business-rule
// rejections (validation, conflict, not found, duplicate) and persistence failures.
package apperr

import (
	"errors"
	"fmt"
	"strings"

	mysqlerr "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("not_found")
	ErrDuplicate = errors.New("duplicate")
	ErrConflict  = errors.New("conflict")
)

// ValidationError collects every rule a request broke before reaching the database.
type ValidationError struct {
	Problemas []string
}

func (e *ValidationError) Error() string {
	return "validation: " + strings.Join(e.Problemas, "; ")
}

// Validation returns nil when no problems were collected.
func Validation(problemas ...string) error {
	if len(problemas) == 0 {
		return nil
	}
	return &ValidationError{Problemas: problemas}
}

// ConflictError is a business conflict (overlap, guest already staying, wrong state).
type ConflictError struct {
	Mensaje string
}

func (e *ConflictError) Error() string { return e.Mensaje }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

func Conflict(format string, args ...any) error {
	return &ConflictError{Mensaje: fmt.Sprintf(format, args...)}
}

// NotFound wraps ErrNotFound with the entity that was looked up.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// PersistenceError wraps a failed statement; the transaction it ran in was rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence classifies a gorm/driver error. Record-not-found and unique violations
// become ErrNotFound / ErrDuplicate; anything else is wrapped as a PersistenceError.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	var ve *ValidationError
	if errors.As(err, &pe) || errors.As(err, &ve) ||
		errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) || errors.Is(err, ErrConflict) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if IsDuplicate(err) {
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsDuplicate reports unique-key violations from mysql, sqlite or gorm's translator.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysqlerr.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
