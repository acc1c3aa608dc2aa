package domain

// Stage is the lifecycle stage of a service job. Stages double as board column keys.
type Stage string

const (
	StageDispatched Stage = "Dispatched" // Team assigned, on the way
	StageInspection Stage = "Inspection" // On site, diagnosing
	StageRepairing  Stage = "Repairing"  // Repair in progress
	StageCompleted  Stage = "Completed"  // Job closed
)

// AllStages returns the stages in board order.
func AllStages() []Stage {
	return []Stage{
		StageDispatched,
		StageInspection,
		StageRepairing,
		StageCompleted,
	}
}

// DefaultStages returns the default board columns, one per stage.
func DefaultStages() []Column[Stage] {
	stages := AllStages()
	cols := make([]Column[Stage], 0, len(stages))
	for _, s := range stages {
		cols = append(cols, Column[Stage]{ID: s, Label: s.Display()})
	}
	return cols
}

// Display returns a human-readable representation of the stage.
func (s Stage) Display() string {
	switch s {
	case StageDispatched:
		return "Dispatched"
	case StageInspection:
		return "Inspection"
	case StageRepairing:
		return "Repairing"
	case StageCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// IsValid returns true if the stage is one of the four built-in stages.
// Boards built from configuration may use other keys.
func (s Stage) IsValid() bool {
	switch s {
	case StageDispatched, StageInspection, StageRepairing, StageCompleted:
		return true
	default:
		return false
	}
}
