package task

import (
	"fmt"
	"time"
)

// Action identifies the phrase recorded in the history log for a
// mutation. The phrases match the on-disk format of earlier versions,
// so existing history files stay greppable.
type Action string

const (
	ActionAdded             Action = "This task was added"
	ActionModified          Action = "The description of this task was modified"
	ActionRemoved           Action = "This task was removed"
	ActionOptionsAdded      Action = "A label was added to this task"
	ActionLabelRemoved      Action = "A label was removed from this task"
	ActionLabelsCleared     Action = "All labels of this task were removed"
	ActionDependencyRemoved Action = "A dependence was removed from this task"
)

// auditTimeLayout is the timestamp format used in history-log entries.
const auditTimeLayout = "2006-01-02 15:04:05"

// AuditEntry records one successful mutation for the history log. For
// Create the snapshot is the new record; for every other mutation it is
// the record as it was before the change.
type AuditEntry struct {
	Action Action
	Task   Task
	At     time.Time
}

// String formats the entry as a single history-log line, without a
// trailing newline.
func (e AuditEntry) String() string {
	return fmt.Sprintf("[%s at %s] %s", e.Action, e.At.Format(auditTimeLayout), e.Task.Line())
}
