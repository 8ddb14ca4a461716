package driver

// Stage identifies the phase a pack is currently in.
type Stage uint8

const (
	StageQueued Stage = iota
	StageLoad
	StageQueries
	StageLint
)

// Status identifies how a stage is progressing.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event is one progress notification. File is empty for run-wide events.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

func emit(events chan<- Event, file string, stage Stage, status Status) {
	if events == nil {
		return
	}
	events <- Event{File: file, Stage: stage, Status: status}
}
