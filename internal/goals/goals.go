// Package goals reads and classifies the externally-maintained goals.yaml
// status document. The file is the single source of truth: callers re-load
// it on every loop iteration and never write it back.
package goals

// Status is the lifecycle state of a goal as recorded in goals.yaml.
// The set of recognized values is fixed, but the file is produced by an
// external agent, so any string may show up here.
type Status string

const (
	StatusNotStarted           Status = "not_started"
	StatusPending              Status = "pending"
	StatusReadyForExecution    Status = "ready_for_execution"
	StatusInProgress           Status = "in_progress"
	StatusReadyForVerification Status = "ready_for_verification"
	StatusCompleted            Status = "completed"
)

// Classification buckets a status for the session loop. Every status falls
// into exactly one bucket; unrecognized strings classify as pending.
type Classification int

const (
	ClassPending Classification = iota
	ClassActive
	ClassCompleted
)

// Classify maps a status to its loop classification.
func (s Status) Classify() Classification {
	switch s {
	case StatusCompleted:
		return ClassCompleted
	case StatusInProgress, StatusReadyForExecution, StatusReadyForVerification:
		return ClassActive
	default:
		return ClassPending
	}
}

// Goal is one unit of work tracked in goals.yaml. ID uniqueness is trusted,
// not enforced. Plan is display-only and unused by the loop.
type Goal struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Status      Status `yaml:"status"`
	Plan        string `yaml:"plan,omitempty"`
}

// File is the parsed goals document, in file order.
type File struct {
	Goals []Goal `yaml:"goals"`
}

// Counts partitions goals by classification. Completed+Active+Pending
// always equals the number of goals.
type Counts struct {
	Completed int
	Active    int
	Pending   int
}

// Total returns the number of goals counted.
func (c Counts) Total() int {
	return c.Completed + c.Active + c.Pending
}

// Counts classifies every goal in the file.
func (f *File) Counts() Counts {
	var c Counts
	for _, g := range f.Goals {
		switch g.Status.Classify() {
		case ClassCompleted:
			c.Completed++
		case ClassActive:
			c.Active++
		default:
			c.Pending++
		}
	}
	return c
}

// HasPendingWork reports whether any goal should trigger another session:
// pending, ready_for_execution, in_progress, or ready_for_verification.
// Goals still not_started (or carrying an unrecognized status) show up in
// the pending count but do not keep the loop running; the agent promotes
// them to pending when it picks them up. An empty file has no pending work.
func (f *File) HasPendingWork() bool {
	for _, g := range f.Goals {
		switch g.Status {
		case StatusPending, StatusReadyForExecution, StatusInProgress, StatusReadyForVerification:
			return true
		}
	}
	return false
}
