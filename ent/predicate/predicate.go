// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// QueueEvent is the predicate function for queueevent builders.
type QueueEvent func(*sql.Selector)

// QueueTask is the predicate function for queuetask builders.
type QueueTask func(*sql.Selector)
