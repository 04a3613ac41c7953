package scheduling

import (
	"testing"
	"time"

	apperrors "shift-planning-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOverlap_NoSiblings(t *testing.T) {
	candidate := mustRange(t, day(2026, time.July, 1), day(2026, time.July, 14))

	assert.NoError(t, CheckOverlap(candidate, uuid.Nil, nil))
	assert.NoError(t, CheckOverlap(candidate, uuid.Nil, []RangeRecord{}))
}

func TestCheckOverlap_DisjointSiblings(t *testing.T) {
	candidate := mustRange(t, day(2026, time.July, 10), day(2026, time.July, 14))
	siblings := []RangeRecord{
		{ID: uuid.New(), Range: mustRange(t, day(2026, time.July, 1), day(2026, time.July, 9))},
		{ID: uuid.New(), Range: mustRange(t, day(2026, time.July, 15), day(2026, time.July, 20))},
	}

	assert.NoError(t, CheckOverlap(candidate, uuid.Nil, siblings))
}

func TestCheckOverlap_ConflictCarriesSiblingBounds(t *testing.T) {
	conflicting := mustRange(t, day(2026, time.July, 12), day(2026, time.July, 18))
	candidate := mustRange(t, day(2026, time.July, 10), day(2026, time.July, 14))
	siblings := []RangeRecord{
		{ID: uuid.New(), Range: mustRange(t, day(2026, time.July, 1), day(2026, time.July, 5))},
		{ID: uuid.New(), Range: conflicting},
	}

	err := CheckOverlap(candidate, uuid.Nil, siblings)
	require.Error(t, err)
	assert.True(t, apperrors.IsOverlap(err))

	var overlapErr *apperrors.OverlapError
	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, conflicting.Start, overlapErr.ConflictStart)
	assert.Equal(t, conflicting.End, overlapErr.ConflictEnd)
}

func TestCheckOverlap_SharedBoundaryDayConflicts(t *testing.T) {
	candidate := mustRange(t, day(2026, time.July, 10), day(2026, time.July, 14))
	siblings := []RangeRecord{
		{ID: uuid.New(), Range: mustRange(t, day(2026, time.July, 14), day(2026, time.July, 20))},
	}

	err := CheckOverlap(candidate, uuid.Nil, siblings)
	assert.True(t, apperrors.IsOverlap(err))
}

func TestCheckOverlap_SkipsOwnRecordOnEdit(t *testing.T) {
	ownID := uuid.New()
	// Editing a record: its stored range naturally intersects the new one
	candidate := mustRange(t, day(2026, time.July, 10), day(2026, time.July, 16))
	siblings := []RangeRecord{
		{ID: ownID, Range: mustRange(t, day(2026, time.July, 10), day(2026, time.July, 14))},
		{ID: uuid.New(), Range: mustRange(t, day(2026, time.July, 20), day(2026, time.July, 25))},
	}

	assert.NoError(t, CheckOverlap(candidate, ownID, siblings))
}

func TestCheckOverlap_StopsAtFirstConflict(t *testing.T) {
	first := mustRange(t, day(2026, time.July, 11), day(2026, time.July, 12))
	second := mustRange(t, day(2026, time.July, 13), day(2026, time.July, 14))
	candidate := mustRange(t, day(2026, time.July, 10), day(2026, time.July, 16))
	siblings := []RangeRecord{
		{ID: uuid.New(), Range: first},
		{ID: uuid.New(), Range: second},
	}

	var overlapErr *apperrors.OverlapError
	require.ErrorAs(t, CheckOverlap(candidate, uuid.Nil, siblings), &overlapErr)
	assert.Equal(t, first.Start, overlapErr.ConflictStart)
	assert.Equal(t, first.End, overlapErr.ConflictEnd)
}
