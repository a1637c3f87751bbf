// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/cognify/ent/answerevent"
	"github.com/abhisek/cognify/ent/masteryevent"
	"github.com/abhisek/cognify/ent/schema"
	"github.com/abhisek/cognify/ent/snapshot"
	"github.com/abhisek/cognify/ent/stateevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescLearnerID is the schema descriptor for learner_id field.
	answereventDescLearnerID := answereventFields[0].Descriptor()
	// answerevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	answerevent.LearnerIDValidator = answereventDescLearnerID.Validators[0].(func(string) error)
	// answereventDescCompetencyID is the schema descriptor for competency_id field.
	answereventDescCompetencyID := answereventFields[1].Descriptor()
	// answerevent.CompetencyIDValidator is a validator for the "competency_id" field. It is called by the builders before save.
	answerevent.CompetencyIDValidator = answereventDescCompetencyID.Validators[0].(func(string) error)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescLearnerID is the schema descriptor for learner_id field.
	masteryeventDescLearnerID := masteryeventFields[0].Descriptor()
	// masteryevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	masteryevent.LearnerIDValidator = masteryeventDescLearnerID.Validators[0].(func(string) error)
	// masteryeventDescCompetencyID is the schema descriptor for competency_id field.
	masteryeventDescCompetencyID := masteryeventFields[1].Descriptor()
	// masteryevent.CompetencyIDValidator is a validator for the "competency_id" field. It is called by the builders before save.
	masteryevent.CompetencyIDValidator = masteryeventDescCompetencyID.Validators[0].(func(string) error)
	// masteryeventDescTrigger is the schema descriptor for trigger field.
	masteryeventDescTrigger := masteryeventFields[3].Descriptor()
	// masteryevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	masteryevent.TriggerValidator = masteryeventDescTrigger.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	stateeventMixin := schema.StateEvent{}.Mixin()
	stateeventMixinFields0 := stateeventMixin[0].Fields()
	_ = stateeventMixinFields0
	stateeventFields := schema.StateEvent{}.Fields()
	_ = stateeventFields
	// stateeventDescTimestamp is the schema descriptor for timestamp field.
	stateeventDescTimestamp := stateeventMixinFields0[1].Descriptor()
	// stateevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	stateevent.DefaultTimestamp = stateeventDescTimestamp.Default.(func() time.Time)
	// stateeventDescState is the schema descriptor for state field.
	stateeventDescState := stateeventFields[1].Descriptor()
	// stateevent.StateValidator is a validator for the "state" field. It is called by the builders before save.
	stateevent.StateValidator = stateeventDescState.Validators[0].(func(string) error)
}
