package gpa

// TranscriptStatus gates UI messaging: an empty transcript shows onboarding
// prompts, a partial one shows completeness warnings.
type TranscriptStatus string

const (
	StatusEmpty    TranscriptStatus = "empty"
	StatusPartial  TranscriptStatus = "partial"
	StatusComplete TranscriptStatus = "complete"
)

// completeCourseCount is the course count at which a transcript is
// considered complete for display purposes.
const completeCourseCount = 20

// Status buckets a transcript by its course count: 0 courses is empty,
// 1-19 partial, 20 or more complete.
func Status(courseCount int) TranscriptStatus {
	switch {
	case courseCount == 0:
		return StatusEmpty
	case courseCount < completeCourseCount:
		return StatusPartial
	default:
		return StatusComplete
	}
}
