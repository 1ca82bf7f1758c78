package model

import "huddle/shared/constant"

const conflictBufferMillis = int64(constant.ConflictBufferMinutes * constant.MillisPerMinute)

// Overlaps reports whether two bookings in the same room collide once each
// window is padded by the conflict buffer. The rule is symmetric: a long
// booking that fully encloses the proposed window is a conflict too.
func Overlaps(start1, end1, start2, end2 int64) bool {
	return start1 < end2+conflictBufferMillis && start2 < end1+conflictBufferMillis
}

// ConflictWindow returns the padded bounds the overlap query compares
// existing bookings against: an existing booking conflicts iff its start
// time is below the upper bound and its end time is above the lower bound.
func ConflictWindow(start, end int64) (lower, upper int64) {
	return start - conflictBufferMillis, end + conflictBufferMillis
}
