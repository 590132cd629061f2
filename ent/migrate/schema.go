// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "skills", Type: field.TypeJSON},
		{Name: "correct", Type: field.TypeBool},
		{Name: "help_level", Type: field.TypeInt, Default: 0},
		{Name: "time_ms", Type: field.TypeInt},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5]},
			},
		},
	}
	// InsightEventsColumns holds the columns for the "insight_events" table.
	InsightEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "p_known", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "classification", Type: field.TypeString},
		{Name: "opportunities", Type: field.TypeInt},
		{Name: "success_count", Type: field.TypeInt},
	}
	// InsightEventsTable holds the schema information for the "insight_events" table.
	InsightEventsTable = &schema.Table{
		Name:       "insight_events",
		Columns:    InsightEventsColumns,
		PrimaryKey: []*schema.Column{InsightEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "insightevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InsightEventsColumns[1]},
			},
			{
				Name:    "insightevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InsightEventsColumns[2]},
			},
			{
				Name:    "insightevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{InsightEventsColumns[3]},
			},
			{
				Name:    "insightevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{InsightEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		InsightEventsTable,
	}
)

func init() {
}
