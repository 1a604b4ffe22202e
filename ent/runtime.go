// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/smehra/sayright/ent/attemptevent"
	"github.com/smehra/sayright/ent/confidencerecord"
	"github.com/smehra/sayright/ent/masteryrecord"
	"github.com/smehra/sayright/ent/progressrecord"
	"github.com/smehra/sayright/ent/schema"
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
	// attempteventDescLearnerID is the schema descriptor for learner_id field.
	attempteventDescLearnerID := attempteventFields[0].Descriptor()
	// attemptevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	attemptevent.LearnerIDValidator = attempteventDescLearnerID.Validators[0].(func(string) error)
	// attempteventDescUnitID is the schema descriptor for unit_id field.
	attempteventDescUnitID := attempteventFields[1].Descriptor()
	// attemptevent.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	attemptevent.UnitIDValidator = attempteventDescUnitID.Validators[0].(func(string) error)
	// attempteventDescAttemptNumber is the schema descriptor for attempt_number field.
	attempteventDescAttemptNumber := attempteventFields[2].Descriptor()
	// attemptevent.AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	attemptevent.AttemptNumberValidator = attempteventDescAttemptNumber.Validators[0].(func(int) error)
	confidencerecordFields := schema.ConfidenceRecord{}.Fields()
	_ = confidencerecordFields
	// confidencerecordDescLearnerID is the schema descriptor for learner_id field.
	confidencerecordDescLearnerID := confidencerecordFields[0].Descriptor()
	// confidencerecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	confidencerecord.LearnerIDValidator = confidencerecordDescLearnerID.Validators[0].(func(string) error)
	// confidencerecordDescComputedAt is the schema descriptor for computed_at field.
	confidencerecordDescComputedAt := confidencerecordFields[7].Descriptor()
	// confidencerecord.DefaultComputedAt holds the default value on creation for the computed_at field.
	confidencerecord.DefaultComputedAt = confidencerecordDescComputedAt.Default.(func() time.Time)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescLearnerID is the schema descriptor for learner_id field.
	masteryrecordDescLearnerID := masteryrecordFields[0].Descriptor()
	// masteryrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	masteryrecord.LearnerIDValidator = masteryrecordDescLearnerID.Validators[0].(func(string) error)
	// masteryrecordDescWord is the schema descriptor for word field.
	masteryrecordDescWord := masteryrecordFields[1].Descriptor()
	// masteryrecord.WordValidator is a validator for the "word" field. It is called by the builders before save.
	masteryrecord.WordValidator = masteryrecordDescWord.Validators[0].(func(string) error)
	// masteryrecordDescVersion is the schema descriptor for version field.
	masteryrecordDescVersion := masteryrecordFields[2].Descriptor()
	// masteryrecord.DefaultVersion holds the default value on creation for the version field.
	masteryrecord.DefaultVersion = masteryrecordDescVersion.Default.(int64)
	// masteryrecordDescObservations is the schema descriptor for observations field.
	masteryrecordDescObservations := masteryrecordFields[3].Descriptor()
	// masteryrecord.DefaultObservations holds the default value on creation for the observations field.
	masteryrecord.DefaultObservations = masteryrecordDescObservations.Default.(int)
	// masteryrecordDescSuccesses is the schema descriptor for successes field.
	masteryrecordDescSuccesses := masteryrecordFields[4].Descriptor()
	// masteryrecord.DefaultSuccesses holds the default value on creation for the successes field.
	masteryrecord.DefaultSuccesses = masteryrecordDescSuccesses.Default.(int)
	// masteryrecordDescAvgScore is the schema descriptor for avg_score field.
	masteryrecordDescAvgScore := masteryrecordFields[5].Descriptor()
	// masteryrecord.DefaultAvgScore holds the default value on creation for the avg_score field.
	masteryrecord.DefaultAvgScore = masteryrecordDescAvgScore.Default.(float64)
	// masteryrecordDescDifficulty is the schema descriptor for difficulty field.
	masteryrecordDescDifficulty := masteryrecordFields[6].Descriptor()
	// masteryrecord.DefaultDifficulty holds the default value on creation for the difficulty field.
	masteryrecord.DefaultDifficulty = masteryrecordDescDifficulty.Default.(float64)
	// masteryrecordDescInitialDifficulty is the schema descriptor for initial_difficulty field.
	masteryrecordDescInitialDifficulty := masteryrecordFields[7].Descriptor()
	// masteryrecord.DefaultInitialDifficulty holds the default value on creation for the initial_difficulty field.
	masteryrecord.DefaultInitialDifficulty = masteryrecordDescInitialDifficulty.Default.(float64)
	// masteryrecordDescImprovementRate is the schema descriptor for improvement_rate field.
	masteryrecordDescImprovementRate := masteryrecordFields[8].Descriptor()
	// masteryrecord.DefaultImprovementRate holds the default value on creation for the improvement_rate field.
	masteryrecord.DefaultImprovementRate = masteryrecordDescImprovementRate.Default.(float64)
	// masteryrecordDescLevel is the schema descriptor for level field.
	masteryrecordDescLevel := masteryrecordFields[9].Descriptor()
	// masteryrecord.DefaultLevel holds the default value on creation for the level field.
	masteryrecord.DefaultLevel = masteryrecordDescLevel.Default.(string)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescLearnerID is the schema descriptor for learner_id field.
	progressrecordDescLearnerID := progressrecordFields[0].Descriptor()
	// progressrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	progressrecord.LearnerIDValidator = progressrecordDescLearnerID.Validators[0].(func(string) error)
	// progressrecordDescUnitID is the schema descriptor for unit_id field.
	progressrecordDescUnitID := progressrecordFields[1].Descriptor()
	// progressrecord.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	progressrecord.UnitIDValidator = progressrecordDescUnitID.Validators[0].(func(string) error)
	// progressrecordDescVersion is the schema descriptor for version field.
	progressrecordDescVersion := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultVersion holds the default value on creation for the version field.
	progressrecord.DefaultVersion = progressrecordDescVersion.Default.(int64)
	// progressrecordDescAttempts is the schema descriptor for attempts field.
	progressrecordDescAttempts := progressrecordFields[3].Descriptor()
	// progressrecord.DefaultAttempts holds the default value on creation for the attempts field.
	progressrecord.DefaultAttempts = progressrecordDescAttempts.Default.(int)
	// progressrecordDescBestScore is the schema descriptor for best_score field.
	progressrecordDescBestScore := progressrecordFields[4].Descriptor()
	// progressrecord.DefaultBestScore holds the default value on creation for the best_score field.
	progressrecord.DefaultBestScore = progressrecordDescBestScore.Default.(float64)
	// progressrecordDescLastScore is the schema descriptor for last_score field.
	progressrecordDescLastScore := progressrecordFields[5].Descriptor()
	// progressrecord.DefaultLastScore holds the default value on creation for the last_score field.
	progressrecord.DefaultLastScore = progressrecordDescLastScore.Default.(float64)
	// progressrecordDescAvgScore is the schema descriptor for avg_score field.
	progressrecordDescAvgScore := progressrecordFields[6].Descriptor()
	// progressrecord.DefaultAvgScore holds the default value on creation for the avg_score field.
	progressrecord.DefaultAvgScore = progressrecordDescAvgScore.Default.(float64)
	// progressrecordDescPassed is the schema descriptor for passed field.
	progressrecordDescPassed := progressrecordFields[9].Descriptor()
	// progressrecord.DefaultPassed holds the default value on creation for the passed field.
	progressrecord.DefaultPassed = progressrecordDescPassed.Default.(bool)
}
