package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueEvent holds the schema definition for the QueueEvent entity: the
// persisted half of the publisher's persist-and-notify channel. Rows are
// written with raw SQL inside the publisher transaction (pg_notify must
// fire atomically with the insert); this entity exists for schema
// generation, catch-up reads, and retention sweeps.
type QueueEvent struct {
	ent.Schema
}

// Fields of the QueueEvent. The default integer id doubles as the catch-up
// cursor (clients resume from the last id they saw).
func (QueueEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("namespace"),
		field.String("task_id").
			Comment("Id-based reference; tasks own their lifecycle, events never cascade"),
		field.String("channel"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the QueueEvent.
func (QueueEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("namespace", "id"),
		index.Fields("task_id"),
		index.Fields("created_at"),
	}
}

// Annotations for PostgreSQL-specific features.
func (QueueEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "queue_events"},
	}
}
