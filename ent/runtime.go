// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/priyali/arithma/ent/attemptevent"
	"github.com/priyali/arithma/ent/insightevent"
	"github.com/priyali/arithma/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescHelpLevel is the schema descriptor for help_level field.
	attempteventDescHelpLevel := attempteventFields[3].Descriptor()
	// attemptevent.DefaultHelpLevel holds the default value on creation for the help_level field.
	attemptevent.DefaultHelpLevel = attempteventDescHelpLevel.Default.(int)
	insighteventMixin := schema.InsightEvent{}.Mixin()
	insighteventMixinFields0 := insighteventMixin[0].Fields()
	_ = insighteventMixinFields0
	insighteventFields := schema.InsightEvent{}.Fields()
	_ = insighteventFields
	// insighteventDescTimestamp is the schema descriptor for timestamp field.
	insighteventDescTimestamp := insighteventMixinFields0[1].Descriptor()
	// insightevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	insightevent.DefaultTimestamp = insighteventDescTimestamp.Default.(func() time.Time)
	// insighteventDescRunID is the schema descriptor for run_id field.
	insighteventDescRunID := insighteventFields[0].Descriptor()
	// insightevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	insightevent.RunIDValidator = insighteventDescRunID.Validators[0].(func(string) error)
	// insighteventDescSkillID is the schema descriptor for skill_id field.
	insighteventDescSkillID := insighteventFields[1].Descriptor()
	// insightevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	insightevent.SkillIDValidator = insighteventDescSkillID.Validators[0].(func(string) error)
	// insighteventDescClassification is the schema descriptor for classification field.
	insighteventDescClassification := insighteventFields[4].Descriptor()
	// insightevent.ClassificationValidator is a validator for the "classification" field. It is called by the builders before save.
	insightevent.ClassificationValidator = insighteventDescClassification.Validators[0].(func(string) error)
}
