package progress

import "fmt"

// InvalidScoreError indicates a quiz score outside [0, total]. The
// offending call mutates nothing.
type InvalidScoreError struct {
	Score int
	Total int
}

func (e *InvalidScoreError) Error() string {
	return fmt.Sprintf("quiz score %d outside [0, %d]", e.Score, e.Total)
}

// MissingEntryError indicates an operation on a lesson that has no
// progress entry and cannot be safely lazy-created.
type MissingEntryError struct {
	LessonID string
}

func (e *MissingEntryError) Error() string {
	return fmt.Sprintf("no progress entry for lesson %q", e.LessonID)
}

// FreezeUnavailableError indicates a streak freeze cannot be consumed.
type FreezeUnavailableError struct {
	Reason string
}

func (e *FreezeUnavailableError) Error() string {
	return fmt.Sprintf("streak freeze unavailable: %s", e.Reason)
}
