package collector

import (
	"fmt"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/fixtures"
)

// ProgressUpdate represents a progress event during a generation run.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	VerifySession Phase = iota
	CollectCategory
	ProcessFixture
	GenerateTypeMap
	Summarize
)

func (p Phase) String() string {
	switch p {
	case VerifySession:
		return "verify_session"
	case CollectCategory:
		return "collect_category"
	case ProcessFixture:
		return "process_fixture"
	case GenerateTypeMap:
		return "generate_typemap"
	case Summarize:
		return "summarize"
	default:
		return ""
	}
}

func verifySessionUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   VerifySession,
		Step:    1,
		Total:   1,
		Message: "Verifying session credential...",
	}
}

func collectCategoryUpdate(step, total int, category fixtures.Category) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CollectCategory,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Collecting %s fixtures...", step, total, category),
	}
}

func processFixtureUpdate(category fixtures.Category, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ProcessFixture,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Fetching %s/%s...", category, name),
	}
}

func fixtureDoneUpdate(category fixtures.Category, name string, status fixtures.Status) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ProcessFixture,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("%s/%s: %s", category, name, status),
		Data:    status,
	}
}

func generateTypeMapUpdate(entries int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   GenerateTypeMap,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Generating fixture type mappings (%d entries)...", entries),
	}
}
