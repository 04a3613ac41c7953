package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// MalformedRangeError represents a date or time range whose end precedes its start
type MalformedRangeError struct {
	Field   string
	Message string
}

func (e *MalformedRangeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed range: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("malformed range: %s", e.Message)
}

// OverlapError represents a candidate range intersecting a sibling range in
// the same scope; it carries the conflicting sibling's bounds
type OverlapError struct {
	ConflictStart time.Time
	ConflictEnd   time.Time
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("range overlaps an existing period from %s to %s",
		e.ConflictStart.Format("2006-01-02"), e.ConflictEnd.Format("2006-01-02"))
}

// DuplicateKeyError represents an exact key collision, such as a week number
// already used within a period or a weekday already planned within a week
type DuplicateKeyError struct {
	Key   string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Key, e.Value)
}

// Is enables errors.Is() comparison for DuplicateKeyError
func (e *DuplicateKeyError) Is(target error) bool {
	t, ok := target.(*DuplicateKeyError)
	if !ok {
		return false
	}
	return e.Key == t.Key
}

// UnassignableReferenceError represents an attempt to assign an entity that is
// not in an assignable state, or to delete an entity still referenced by others
type UnassignableReferenceError struct {
	Entity string
	Name   string
	Reason string
}

func (e *UnassignableReferenceError) Error() string {
	return fmt.Sprintf("%s %q cannot be used: %s", e.Entity, e.Name, e.Reason)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrAgentNotFound               = &NotFoundError{Entity: "agent"}
	ErrFunctionNotFound            = &NotFoundError{Entity: "function"}
	ErrDepartmentNotFound          = &NotFoundError{Entity: "department"}
	ErrTeamNotFound                = &NotFoundError{Entity: "team"}
	ErrTeamPositionNotFound        = &NotFoundError{Entity: "team position"}
	ErrScheduleTypeNotFound        = &NotFoundError{Entity: "schedule type"}
	ErrRotationPlanNotFound        = &NotFoundError{Entity: "daily rotation plan"}
	ErrRotationPeriodNotFound      = &NotFoundError{Entity: "rotation period"}
	ErrShiftScheduleNotFound       = &NotFoundError{Entity: "shift schedule"}
	ErrShiftSchedulePeriodNotFound = &NotFoundError{Entity: "shift schedule period"}
	ErrShiftScheduleWeekNotFound   = &NotFoundError{Entity: "shift schedule week"}
	ErrAssignmentNotFound          = &NotFoundError{Entity: "assignment"}
	ErrPublicHolidayNotFound       = &NotFoundError{Entity: "public holiday"}
)

// Business Logic Errors
var (
	ErrMatriculeExists     = &DuplicateKeyError{Key: "matricule", Value: ""}
	ErrInvalidWeekday      = errors.New("weekday must be between 1 (Monday) and 7 (Sunday)")
	ErrInvalidGrade        = errors.New("invalid grade")
	ErrInvalidScheduleKind = errors.New("invalid schedule kind")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsMalformedRange checks if an error is a MalformedRangeError
func IsMalformedRange(err error) bool {
	var rangeErr *MalformedRangeError
	return errors.As(err, &rangeErr)
}

// IsOverlap checks if an error is an OverlapError
func IsOverlap(err error) bool {
	var overlapErr *OverlapError
	return errors.As(err, &overlapErr)
}

// IsDuplicateKey checks if an error is a DuplicateKeyError
func IsDuplicateKey(err error) bool {
	var dupErr *DuplicateKeyError
	return errors.As(err, &dupErr)
}

// IsUnassignableReference checks if an error is an UnassignableReferenceError
func IsUnassignableReference(err error) bool {
	var refErr *UnassignableReferenceError
	return errors.As(err, &refErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewStillReferencedError builds the rejection for deleting an entity that is
// still referenced, enumerating up to three referencing names.
func NewStillReferencedError(entity, name string, referencedBy []string) error {
	shown := referencedBy
	more := 0
	if len(shown) > 3 {
		more = len(shown) - 3
		shown = shown[:3]
	}
	reason := fmt.Sprintf("still referenced by %s", strings.Join(shown, ", "))
	if more > 0 {
		reason = fmt.Sprintf("%s and %d more", reason, more)
	}
	return &UnassignableReferenceError{Entity: entity, Name: name, Reason: reason}
}

// NewEmptyPlanError builds the rejection for assigning a daily rotation plan
// that owns no rotation periods.
func NewEmptyPlanError(planName string) error {
	return &UnassignableReferenceError{
		Entity: "daily rotation plan",
		Name:   planName,
		Reason: "it has no rotation periods defined",
	}
}
