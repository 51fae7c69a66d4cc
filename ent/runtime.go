// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/pm-runner/pmrunner/ent/queueevent"
	"github.com/pm-runner/pmrunner/ent/queuetask"
	"github.com/pm-runner/pmrunner/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	queueeventFields := schema.QueueEvent{}.Fields()
	_ = queueeventFields
	// queueeventDescCreatedAt is the schema descriptor for created_at field.
	queueeventDescCreatedAt := queueeventFields[4].Descriptor()
	// queueevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	queueevent.DefaultCreatedAt = queueeventDescCreatedAt.Default.(func() time.Time)
	queuetaskFields := schema.QueueTask{}.Fields()
	_ = queuetaskFields
	// queuetaskDescCreatedAt is the schema descriptor for created_at field.
	queuetaskDescCreatedAt := queuetaskFields[7].Descriptor()
	// queuetask.DefaultCreatedAt holds the default value on creation for the created_at field.
	queuetask.DefaultCreatedAt = queuetaskDescCreatedAt.Default.(func() time.Time)
	// queuetaskDescUpdatedAt is the schema descriptor for updated_at field.
	queuetaskDescUpdatedAt := queuetaskFields[8].Descriptor()
	// queuetask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	queuetask.DefaultUpdatedAt = queuetaskDescUpdatedAt.Default.(func() time.Time)
	// queuetaskDescAttempt is the schema descriptor for attempt field.
	queuetaskDescAttempt := queuetaskFields[13].Descriptor()
	// queuetask.DefaultAttempt holds the default value on creation for the attempt field.
	queuetask.DefaultAttempt = queuetaskDescAttempt.Default.(int)
}
