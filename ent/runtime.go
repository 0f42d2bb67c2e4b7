// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ksander/retain/ent/lessonevent"
	"github.com/ksander/retain/ent/quizevent"
	"github.com/ksander/retain/ent/ratingevent"
	"github.com/ksander/retain/ent/reviewevent"
	"github.com/ksander/retain/ent/rewardevent"
	"github.com/ksander/retain/ent/schema"
	"github.com/ksander/retain/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[0].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	// lessoneventDescAction is the schema descriptor for action field.
	lessoneventDescAction := lessoneventFields[1].Descriptor()
	// lessonevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	lessonevent.ActionValidator = lessoneventDescAction.Validators[0].(func(string) error)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescLessonID is the schema descriptor for lesson_id field.
	quizeventDescLessonID := quizeventFields[0].Descriptor()
	// quizevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	quizevent.LessonIDValidator = quizeventDescLessonID.Validators[0].(func(string) error)
	ratingeventMixin := schema.RatingEvent{}.Mixin()
	ratingeventMixinFields0 := ratingeventMixin[0].Fields()
	_ = ratingeventMixinFields0
	ratingeventFields := schema.RatingEvent{}.Fields()
	_ = ratingeventFields
	// ratingeventDescTimestamp is the schema descriptor for timestamp field.
	ratingeventDescTimestamp := ratingeventMixinFields0[1].Descriptor()
	// ratingevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	ratingevent.DefaultTimestamp = ratingeventDescTimestamp.Default.(func() time.Time)
	// ratingeventDescUnitID is the schema descriptor for unit_id field.
	ratingeventDescUnitID := ratingeventFields[0].Descriptor()
	// ratingevent.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	ratingevent.UnitIDValidator = ratingeventDescUnitID.Validators[0].(func(string) error)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[0].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(string) error)
	// revieweventDescLessonID is the schema descriptor for lesson_id field.
	revieweventDescLessonID := revieweventFields[1].Descriptor()
	// reviewevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	reviewevent.LessonIDValidator = revieweventDescLessonID.Validators[0].(func(string) error)
	rewardeventMixin := schema.RewardEvent{}.Mixin()
	rewardeventMixinFields0 := rewardeventMixin[0].Fields()
	_ = rewardeventMixinFields0
	rewardeventFields := schema.RewardEvent{}.Fields()
	_ = rewardeventFields
	// rewardeventDescTimestamp is the schema descriptor for timestamp field.
	rewardeventDescTimestamp := rewardeventMixinFields0[1].Descriptor()
	// rewardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rewardevent.DefaultTimestamp = rewardeventDescTimestamp.Default.(func() time.Time)
	// rewardeventDescKind is the schema descriptor for kind field.
	rewardeventDescKind := rewardeventFields[0].Descriptor()
	// rewardevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	rewardevent.KindValidator = rewardeventDescKind.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
