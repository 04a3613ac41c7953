package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	assert.Equal(t, "agent not found", ErrAgentNotFound.Error())

	t.Run("Is matches on entity", func(t *testing.T) {
		assert.True(t, errors.Is(&NotFoundError{Entity: "agent"}, ErrAgentNotFound))
		assert.False(t, errors.Is(&NotFoundError{Entity: "team"}, ErrAgentNotFound))
	})

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to load agent: %w", ErrAgentNotFound)
		assert.True(t, errors.Is(wrapped, ErrAgentNotFound))
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestDuplicateKeyError(t *testing.T) {
	err := &DuplicateKeyError{Key: "matricule", Value: "A1234"}
	assert.Equal(t, "matricule A1234 already exists", err.Error())

	t.Run("Is matches on key regardless of value", func(t *testing.T) {
		assert.True(t, errors.Is(err, ErrMatriculeExists))
		assert.False(t, errors.Is(&DuplicateKeyError{Key: "date"}, ErrMatriculeExists))
	})

	assert.True(t, IsDuplicateKey(err))
	assert.False(t, IsDuplicateKey(ErrAgentNotFound))
}

func TestOverlapError(t *testing.T) {
	err := &OverlapError{
		ConflictStart: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		ConflictEnd:   time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "range overlaps an existing period from 2026-03-01 to 2026-03-15", err.Error())
	assert.True(t, IsOverlap(err))
	assert.True(t, IsOverlap(fmt.Errorf("failed to save period: %w", err)))
	assert.False(t, IsOverlap(errors.New("boom")))
}

func TestMalformedRangeError(t *testing.T) {
	withField := &MalformedRangeError{Field: "end_date", Message: "end before start"}
	assert.Equal(t, "malformed range: end_date - end before start", withField.Error())

	withoutField := &MalformedRangeError{Message: "end before start"}
	assert.Equal(t, "malformed range: end before start", withoutField.Error())

	assert.True(t, IsMalformedRange(withField))
	assert.False(t, IsMalformedRange(ErrInvalidWeekday))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("matricule", "must match format A1234")
	assert.Equal(t, "validation error: matricule - must match format A1234", err.Error())
	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(ErrAgentNotFound))
}

func TestNewStillReferencedError(t *testing.T) {
	t.Run("lists every referencing name when three or fewer", func(t *testing.T) {
		err := NewStillReferencedError("function", "Operator", []string{"Position A", "Position B"})
		assert.Equal(t, `function "Operator" cannot be used: still referenced by Position A, Position B`, err.Error())
		assert.True(t, IsUnassignableReference(err))
	})

	t.Run("truncates past three names", func(t *testing.T) {
		err := NewStillReferencedError("function", "Operator", []string{"P1", "P2", "P3", "P4", "P5"})
		assert.Equal(t, `function "Operator" cannot be used: still referenced by P1, P2, P3 and 2 more`, err.Error())
	})
}

func TestNewEmptyPlanError(t *testing.T) {
	err := NewEmptyPlanError("Night rotation")
	assert.Equal(t, `daily rotation plan "Night rotation" cannot be used: it has no rotation periods defined`, err.Error())
	assert.True(t, IsUnassignableReference(err))
}
