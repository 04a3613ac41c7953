package scheduling

import (
	"github.com/google/uuid"

	apperrors "shift-planning-backend/internal/errors"
)

// RangeRecord pairs a persisted entity's identity with its date range, so the
// overlap check can be run against an explicit sibling set instead of inside a
// save hook.
type RangeRecord struct {
	ID    uuid.UUID
	Range DateRange
}

// CheckOverlap validates a candidate range against the sibling ranges of the
// same parent. The candidate's own record (matched by candidateID) is skipped
// so edits-in-place do not collide with themselves. The first conflicting
// sibling fails the check; remaining siblings are not inspected.
func CheckOverlap(candidate DateRange, candidateID uuid.UUID, siblings []RangeRecord) error {
	for _, sibling := range siblings {
		if sibling.ID == candidateID {
			continue
		}
		if candidate.Overlaps(sibling.Range) {
			return &apperrors.OverlapError{
				ConflictStart: sibling.Range.Start,
				ConflictEnd:   sibling.Range.End,
			}
		}
	}
	return nil
}
