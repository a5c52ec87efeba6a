package driven

import "context"

// RecordEventOp classifies a change to a community record file.
type RecordEventOp int

const (
	// RecordWritten means a record file was created or modified.
	RecordWritten RecordEventOp = iota

	// RecordRemoved means a record file was deleted or renamed away.
	RecordRemoved
)

// RecordEvent is one observed change to a record file.
type RecordEvent struct {
	// Path is the absolute path of the record file.
	Path string

	// Op is the kind of change.
	Op RecordEventOp
}

// RecordWatcher reports changes to the community record directory.
type RecordWatcher interface {
	// Watch blocks and delivers record changes to the channel until the
	// context is cancelled. Only eligible record files produce events.
	Watch(ctx context.Context, events chan<- RecordEvent) error

	// Close releases resources.
	Close() error
}
