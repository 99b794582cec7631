// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Rafi-Luffy/ManaQuiz/ent/attemptevent"
	"github.com/Rafi-Luffy/ManaQuiz/ent/schema"
	"github.com/Rafi-Luffy/ManaQuiz/ent/snapshot"
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
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescExamTitle is the schema descriptor for exam_title field.
	attempteventDescExamTitle := attempteventFields[1].Descriptor()
	// attemptevent.ExamTitleValidator is a validator for the "exam_title" field. It is called by the builders before save.
	attemptevent.ExamTitleValidator = attempteventDescExamTitle.Validators[0].(func(string) error)
	// attempteventDescCategory is the schema descriptor for category field.
	attempteventDescCategory := attempteventFields[2].Descriptor()
	// attemptevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	attemptevent.CategoryValidator = attempteventDescCategory.Validators[0].(func(string) error)
	// attempteventDescDifficulty is the schema descriptor for difficulty field.
	attempteventDescDifficulty := attempteventFields[4].Descriptor()
	// attemptevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	attemptevent.DifficultyValidator = attempteventDescDifficulty.Validators[0].(func(string) error)
	// attempteventDescSource is the schema descriptor for source field.
	attempteventDescSource := attempteventFields[9].Descriptor()
	// attemptevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	attemptevent.SourceValidator = attempteventDescSource.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
