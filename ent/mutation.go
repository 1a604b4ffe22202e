// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/smehra/sayright/ent/attemptevent"
	"github.com/smehra/sayright/ent/confidencerecord"
	"github.com/smehra/sayright/ent/masteryrecord"
	"github.com/smehra/sayright/ent/predicate"
	"github.com/smehra/sayright/ent/progressrecord"
	"github.com/smehra/sayright/internal/confidence"
	"github.com/smehra/sayright/internal/mastery"
	"github.com/smehra/sayright/internal/scorer"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttemptEvent     = "AttemptEvent"
	TypeConfidenceRecord = "ConfidenceRecord"
	TypeMasteryRecord    = "MasteryRecord"
	TypeProgressRecord   = "ProgressRecord"
)

// AttemptEventMutation represents an operation that mutates the AttemptEvent nodes in the graph.
type AttemptEventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	sequence            *int64
	addsequence         *int64
	timestamp           *time.Time
	learner_id          *string
	unit_id             *string
	attempt_number      *int
	addattempt_number   *int
	overall_score       *float64
	addoverall_score    *float64
	fluency_score       *float64
	addfluency_score    *float64
	passed              *bool
	threshold           *float64
	addthreshold        *float64
	word_scores         *[]scorer.WordScore
	appendword_scores   []scorer.WordScore
	weak_letters        *[]string
	appendweak_letters  []string
	weak_phonemes       *[]string
	appendweak_phonemes []string
	idempotency_key     *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AttemptEvent, error)
	predicates          []predicate.AttemptEvent
}

var _ ent.Mutation = (*AttemptEventMutation)(nil)

// attempteventOption allows management of the mutation configuration using functional options.
type attempteventOption func(*AttemptEventMutation)

// newAttemptEventMutation creates new mutation for the AttemptEvent entity.
func newAttemptEventMutation(c config, op Op, opts ...attempteventOption) *AttemptEventMutation {
	m := &AttemptEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptEventID sets the ID field of the mutation.
func withAttemptEventID(id int) attempteventOption {
	return func(m *AttemptEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptEvent
		)
		m.oldValue = func(ctx context.Context) (*AttemptEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptEvent sets the old AttemptEvent of the mutation.
func withAttemptEvent(node *AttemptEvent) attempteventOption {
	return func(m *AttemptEventMutation) {
		m.oldValue = func(context.Context) (*AttemptEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AttemptEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AttemptEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AttemptEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AttemptEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AttemptEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AttemptEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttemptEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AttemptEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *AttemptEventMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *AttemptEventMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *AttemptEventMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetUnitID sets the "unit_id" field.
func (m *AttemptEventMutation) SetUnitID(s string) {
	m.unit_id = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *AttemptEventMutation) UnitID() (r string, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *AttemptEventMutation) ResetUnitID() {
	m.unit_id = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *AttemptEventMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *AttemptEventMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *AttemptEventMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *AttemptEventMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *AttemptEventMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *AttemptEventMutation) SetOverallScore(f float64) {
	m.overall_score = &f
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *AttemptEventMutation) OverallScore() (r float64, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldOverallScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds f to the "overall_score" field.
func (m *AttemptEventMutation) AddOverallScore(f float64) {
	if m.addoverall_score != nil {
		*m.addoverall_score += f
	} else {
		m.addoverall_score = &f
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *AttemptEventMutation) AddedOverallScore() (r float64, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *AttemptEventMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetFluencyScore sets the "fluency_score" field.
func (m *AttemptEventMutation) SetFluencyScore(f float64) {
	m.fluency_score = &f
	m.addfluency_score = nil
}

// FluencyScore returns the value of the "fluency_score" field in the mutation.
func (m *AttemptEventMutation) FluencyScore() (r float64, exists bool) {
	v := m.fluency_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFluencyScore returns the old "fluency_score" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldFluencyScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFluencyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFluencyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFluencyScore: %w", err)
	}
	return oldValue.FluencyScore, nil
}

// AddFluencyScore adds f to the "fluency_score" field.
func (m *AttemptEventMutation) AddFluencyScore(f float64) {
	if m.addfluency_score != nil {
		*m.addfluency_score += f
	} else {
		m.addfluency_score = &f
	}
}

// AddedFluencyScore returns the value that was added to the "fluency_score" field in this mutation.
func (m *AttemptEventMutation) AddedFluencyScore() (r float64, exists bool) {
	v := m.addfluency_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearFluencyScore clears the value of the "fluency_score" field.
func (m *AttemptEventMutation) ClearFluencyScore() {
	m.fluency_score = nil
	m.addfluency_score = nil
	m.clearedFields[attemptevent.FieldFluencyScore] = struct{}{}
}

// FluencyScoreCleared returns if the "fluency_score" field was cleared in this mutation.
func (m *AttemptEventMutation) FluencyScoreCleared() bool {
	_, ok := m.clearedFields[attemptevent.FieldFluencyScore]
	return ok
}

// ResetFluencyScore resets all changes to the "fluency_score" field.
func (m *AttemptEventMutation) ResetFluencyScore() {
	m.fluency_score = nil
	m.addfluency_score = nil
	delete(m.clearedFields, attemptevent.FieldFluencyScore)
}

// SetPassed sets the "passed" field.
func (m *AttemptEventMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *AttemptEventMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *AttemptEventMutation) ResetPassed() {
	m.passed = nil
}

// SetThreshold sets the "threshold" field.
func (m *AttemptEventMutation) SetThreshold(f float64) {
	m.threshold = &f
	m.addthreshold = nil
}

// Threshold returns the value of the "threshold" field in the mutation.
func (m *AttemptEventMutation) Threshold() (r float64, exists bool) {
	v := m.threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldThreshold returns the old "threshold" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreshold: %w", err)
	}
	return oldValue.Threshold, nil
}

// AddThreshold adds f to the "threshold" field.
func (m *AttemptEventMutation) AddThreshold(f float64) {
	if m.addthreshold != nil {
		*m.addthreshold += f
	} else {
		m.addthreshold = &f
	}
}

// AddedThreshold returns the value that was added to the "threshold" field in this mutation.
func (m *AttemptEventMutation) AddedThreshold() (r float64, exists bool) {
	v := m.addthreshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetThreshold resets all changes to the "threshold" field.
func (m *AttemptEventMutation) ResetThreshold() {
	m.threshold = nil
	m.addthreshold = nil
}

// SetWordScores sets the "word_scores" field.
func (m *AttemptEventMutation) SetWordScores(ss []scorer.WordScore) {
	m.word_scores = &ss
	m.appendword_scores = nil
}

// WordScores returns the value of the "word_scores" field in the mutation.
func (m *AttemptEventMutation) WordScores() (r []scorer.WordScore, exists bool) {
	v := m.word_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldWordScores returns the old "word_scores" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldWordScores(ctx context.Context) (v []scorer.WordScore, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordScores: %w", err)
	}
	return oldValue.WordScores, nil
}

// AppendWordScores adds ss to the "word_scores" field.
func (m *AttemptEventMutation) AppendWordScores(ss []scorer.WordScore) {
	m.appendword_scores = append(m.appendword_scores, ss...)
}

// AppendedWordScores returns the list of values that were appended to the "word_scores" field in this mutation.
func (m *AttemptEventMutation) AppendedWordScores() ([]scorer.WordScore, bool) {
	if len(m.appendword_scores) == 0 {
		return nil, false
	}
	return m.appendword_scores, true
}

// ClearWordScores clears the value of the "word_scores" field.
func (m *AttemptEventMutation) ClearWordScores() {
	m.word_scores = nil
	m.appendword_scores = nil
	m.clearedFields[attemptevent.FieldWordScores] = struct{}{}
}

// WordScoresCleared returns if the "word_scores" field was cleared in this mutation.
func (m *AttemptEventMutation) WordScoresCleared() bool {
	_, ok := m.clearedFields[attemptevent.FieldWordScores]
	return ok
}

// ResetWordScores resets all changes to the "word_scores" field.
func (m *AttemptEventMutation) ResetWordScores() {
	m.word_scores = nil
	m.appendword_scores = nil
	delete(m.clearedFields, attemptevent.FieldWordScores)
}

// SetWeakLetters sets the "weak_letters" field.
func (m *AttemptEventMutation) SetWeakLetters(s []string) {
	m.weak_letters = &s
	m.appendweak_letters = nil
}

// WeakLetters returns the value of the "weak_letters" field in the mutation.
func (m *AttemptEventMutation) WeakLetters() (r []string, exists bool) {
	v := m.weak_letters
	if v == nil {
		return
	}
	return *v, true
}

// OldWeakLetters returns the old "weak_letters" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldWeakLetters(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeakLetters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeakLetters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeakLetters: %w", err)
	}
	return oldValue.WeakLetters, nil
}

// AppendWeakLetters adds s to the "weak_letters" field.
func (m *AttemptEventMutation) AppendWeakLetters(s []string) {
	m.appendweak_letters = append(m.appendweak_letters, s...)
}

// AppendedWeakLetters returns the list of values that were appended to the "weak_letters" field in this mutation.
func (m *AttemptEventMutation) AppendedWeakLetters() ([]string, bool) {
	if len(m.appendweak_letters) == 0 {
		return nil, false
	}
	return m.appendweak_letters, true
}

// ClearWeakLetters clears the value of the "weak_letters" field.
func (m *AttemptEventMutation) ClearWeakLetters() {
	m.weak_letters = nil
	m.appendweak_letters = nil
	m.clearedFields[attemptevent.FieldWeakLetters] = struct{}{}
}

// WeakLettersCleared returns if the "weak_letters" field was cleared in this mutation.
func (m *AttemptEventMutation) WeakLettersCleared() bool {
	_, ok := m.clearedFields[attemptevent.FieldWeakLetters]
	return ok
}

// ResetWeakLetters resets all changes to the "weak_letters" field.
func (m *AttemptEventMutation) ResetWeakLetters() {
	m.weak_letters = nil
	m.appendweak_letters = nil
	delete(m.clearedFields, attemptevent.FieldWeakLetters)
}

// SetWeakPhonemes sets the "weak_phonemes" field.
func (m *AttemptEventMutation) SetWeakPhonemes(s []string) {
	m.weak_phonemes = &s
	m.appendweak_phonemes = nil
}

// WeakPhonemes returns the value of the "weak_phonemes" field in the mutation.
func (m *AttemptEventMutation) WeakPhonemes() (r []string, exists bool) {
	v := m.weak_phonemes
	if v == nil {
		return
	}
	return *v, true
}

// OldWeakPhonemes returns the old "weak_phonemes" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldWeakPhonemes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeakPhonemes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeakPhonemes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeakPhonemes: %w", err)
	}
	return oldValue.WeakPhonemes, nil
}

// AppendWeakPhonemes adds s to the "weak_phonemes" field.
func (m *AttemptEventMutation) AppendWeakPhonemes(s []string) {
	m.appendweak_phonemes = append(m.appendweak_phonemes, s...)
}

// AppendedWeakPhonemes returns the list of values that were appended to the "weak_phonemes" field in this mutation.
func (m *AttemptEventMutation) AppendedWeakPhonemes() ([]string, bool) {
	if len(m.appendweak_phonemes) == 0 {
		return nil, false
	}
	return m.appendweak_phonemes, true
}

// ClearWeakPhonemes clears the value of the "weak_phonemes" field.
func (m *AttemptEventMutation) ClearWeakPhonemes() {
	m.weak_phonemes = nil
	m.appendweak_phonemes = nil
	m.clearedFields[attemptevent.FieldWeakPhonemes] = struct{}{}
}

// WeakPhonemesCleared returns if the "weak_phonemes" field was cleared in this mutation.
func (m *AttemptEventMutation) WeakPhonemesCleared() bool {
	_, ok := m.clearedFields[attemptevent.FieldWeakPhonemes]
	return ok
}

// ResetWeakPhonemes resets all changes to the "weak_phonemes" field.
func (m *AttemptEventMutation) ResetWeakPhonemes() {
	m.weak_phonemes = nil
	m.appendweak_phonemes = nil
	delete(m.clearedFields, attemptevent.FieldWeakPhonemes)
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *AttemptEventMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *AttemptEventMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldIdempotencyKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (m *AttemptEventMutation) ClearIdempotencyKey() {
	m.idempotency_key = nil
	m.clearedFields[attemptevent.FieldIdempotencyKey] = struct{}{}
}

// IdempotencyKeyCleared returns if the "idempotency_key" field was cleared in this mutation.
func (m *AttemptEventMutation) IdempotencyKeyCleared() bool {
	_, ok := m.clearedFields[attemptevent.FieldIdempotencyKey]
	return ok
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *AttemptEventMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
	delete(m.clearedFields, attemptevent.FieldIdempotencyKey)
}

// Where appends a list predicates to the AttemptEventMutation builder.
func (m *AttemptEventMutation) Where(ps ...predicate.AttemptEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptEvent).
func (m *AttemptEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.sequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, attemptevent.FieldTimestamp)
	}
	if m.learner_id != nil {
		fields = append(fields, attemptevent.FieldLearnerID)
	}
	if m.unit_id != nil {
		fields = append(fields, attemptevent.FieldUnitID)
	}
	if m.attempt_number != nil {
		fields = append(fields, attemptevent.FieldAttemptNumber)
	}
	if m.overall_score != nil {
		fields = append(fields, attemptevent.FieldOverallScore)
	}
	if m.fluency_score != nil {
		fields = append(fields, attemptevent.FieldFluencyScore)
	}
	if m.passed != nil {
		fields = append(fields, attemptevent.FieldPassed)
	}
	if m.threshold != nil {
		fields = append(fields, attemptevent.FieldThreshold)
	}
	if m.word_scores != nil {
		fields = append(fields, attemptevent.FieldWordScores)
	}
	if m.weak_letters != nil {
		fields = append(fields, attemptevent.FieldWeakLetters)
	}
	if m.weak_phonemes != nil {
		fields = append(fields, attemptevent.FieldWeakPhonemes)
	}
	if m.idempotency_key != nil {
		fields = append(fields, attemptevent.FieldIdempotencyKey)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.Sequence()
	case attemptevent.FieldTimestamp:
		return m.Timestamp()
	case attemptevent.FieldLearnerID:
		return m.LearnerID()
	case attemptevent.FieldUnitID:
		return m.UnitID()
	case attemptevent.FieldAttemptNumber:
		return m.AttemptNumber()
	case attemptevent.FieldOverallScore:
		return m.OverallScore()
	case attemptevent.FieldFluencyScore:
		return m.FluencyScore()
	case attemptevent.FieldPassed:
		return m.Passed()
	case attemptevent.FieldThreshold:
		return m.Threshold()
	case attemptevent.FieldWordScores:
		return m.WordScores()
	case attemptevent.FieldWeakLetters:
		return m.WeakLetters()
	case attemptevent.FieldWeakPhonemes:
		return m.WeakPhonemes()
	case attemptevent.FieldIdempotencyKey:
		return m.IdempotencyKey()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptevent.FieldSequence:
		return m.OldSequence(ctx)
	case attemptevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attemptevent.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case attemptevent.FieldUnitID:
		return m.OldUnitID(ctx)
	case attemptevent.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case attemptevent.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case attemptevent.FieldFluencyScore:
		return m.OldFluencyScore(ctx)
	case attemptevent.FieldPassed:
		return m.OldPassed(ctx)
	case attemptevent.FieldThreshold:
		return m.OldThreshold(ctx)
	case attemptevent.FieldWordScores:
		return m.OldWordScores(ctx)
	case attemptevent.FieldWeakLetters:
		return m.OldWeakLetters(ctx)
	case attemptevent.FieldWeakPhonemes:
		return m.OldWeakPhonemes(ctx)
	case attemptevent.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case attemptevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attemptevent.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case attemptevent.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case attemptevent.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case attemptevent.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case attemptevent.FieldFluencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFluencyScore(v)
		return nil
	case attemptevent.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case attemptevent.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreshold(v)
		return nil
	case attemptevent.FieldWordScores:
		v, ok := value.([]scorer.WordScore)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordScores(v)
		return nil
	case attemptevent.FieldWeakLetters:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeakLetters(v)
		return nil
	case attemptevent.FieldWeakPhonemes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeakPhonemes(v)
		return nil
	case attemptevent.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.addattempt_number != nil {
		fields = append(fields, attemptevent.FieldAttemptNumber)
	}
	if m.addoverall_score != nil {
		fields = append(fields, attemptevent.FieldOverallScore)
	}
	if m.addfluency_score != nil {
		fields = append(fields, attemptevent.FieldFluencyScore)
	}
	if m.addthreshold != nil {
		fields = append(fields, attemptevent.FieldThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.AddedSequence()
	case attemptevent.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	case attemptevent.FieldOverallScore:
		return m.AddedOverallScore()
	case attemptevent.FieldFluencyScore:
		return m.AddedFluencyScore()
	case attemptevent.FieldThreshold:
		return m.AddedThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case attemptevent.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	case attemptevent.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	case attemptevent.FieldFluencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFluencyScore(v)
		return nil
	case attemptevent.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attemptevent.FieldFluencyScore) {
		fields = append(fields, attemptevent.FieldFluencyScore)
	}
	if m.FieldCleared(attemptevent.FieldWordScores) {
		fields = append(fields, attemptevent.FieldWordScores)
	}
	if m.FieldCleared(attemptevent.FieldWeakLetters) {
		fields = append(fields, attemptevent.FieldWeakLetters)
	}
	if m.FieldCleared(attemptevent.FieldWeakPhonemes) {
		fields = append(fields, attemptevent.FieldWeakPhonemes)
	}
	if m.FieldCleared(attemptevent.FieldIdempotencyKey) {
		fields = append(fields, attemptevent.FieldIdempotencyKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptEventMutation) ClearField(name string) error {
	switch name {
	case attemptevent.FieldFluencyScore:
		m.ClearFluencyScore()
		return nil
	case attemptevent.FieldWordScores:
		m.ClearWordScores()
		return nil
	case attemptevent.FieldWeakLetters:
		m.ClearWeakLetters()
		return nil
	case attemptevent.FieldWeakPhonemes:
		m.ClearWeakPhonemes()
		return nil
	case attemptevent.FieldIdempotencyKey:
		m.ClearIdempotencyKey()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptEventMutation) ResetField(name string) error {
	switch name {
	case attemptevent.FieldSequence:
		m.ResetSequence()
		return nil
	case attemptevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attemptevent.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case attemptevent.FieldUnitID:
		m.ResetUnitID()
		return nil
	case attemptevent.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case attemptevent.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case attemptevent.FieldFluencyScore:
		m.ResetFluencyScore()
		return nil
	case attemptevent.FieldPassed:
		m.ResetPassed()
		return nil
	case attemptevent.FieldThreshold:
		m.ResetThreshold()
		return nil
	case attemptevent.FieldWordScores:
		m.ResetWordScores()
		return nil
	case attemptevent.FieldWeakLetters:
		m.ResetWeakLetters()
		return nil
	case attemptevent.FieldWeakPhonemes:
		m.ResetWeakPhonemes()
		return nil
	case attemptevent.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent edge %s", name)
}

// ConfidenceRecordMutation represents an operation that mutates the ConfidenceRecord nodes in the graph.
type ConfidenceRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	learner_id         *string
	score              *int
	addscore           *int
	pronunciation      *float64
	addpronunciation   *float64
	completion_rate    *float64
	addcompletion_rate *float64
	label              *string
	trend              *string
	history            *[]confidence.Entry
	appendhistory      []confidence.Entry
	computed_at        *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ConfidenceRecord, error)
	predicates         []predicate.ConfidenceRecord
}

var _ ent.Mutation = (*ConfidenceRecordMutation)(nil)

// confidencerecordOption allows management of the mutation configuration using functional options.
type confidencerecordOption func(*ConfidenceRecordMutation)

// newConfidenceRecordMutation creates new mutation for the ConfidenceRecord entity.
func newConfidenceRecordMutation(c config, op Op, opts ...confidencerecordOption) *ConfidenceRecordMutation {
	m := &ConfidenceRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeConfidenceRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConfidenceRecordID sets the ID field of the mutation.
func withConfidenceRecordID(id int) confidencerecordOption {
	return func(m *ConfidenceRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ConfidenceRecord
		)
		m.oldValue = func(ctx context.Context) (*ConfidenceRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConfidenceRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConfidenceRecord sets the old ConfidenceRecord of the mutation.
func withConfidenceRecord(node *ConfidenceRecord) confidencerecordOption {
	return func(m *ConfidenceRecordMutation) {
		m.oldValue = func(context.Context) (*ConfidenceRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConfidenceRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConfidenceRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConfidenceRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConfidenceRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConfidenceRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *ConfidenceRecordMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ConfidenceRecordMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the ConfidenceRecord entity.
// If the ConfidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfidenceRecordMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ConfidenceRecordMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetScore sets the "score" field.
func (m *ConfidenceRecordMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ConfidenceRecordMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ConfidenceRecord entity.
// If the ConfidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfidenceRecordMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *ConfidenceRecordMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ConfidenceRecordMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ConfidenceRecordMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetPronunciation sets the "pronunciation" field.
func (m *ConfidenceRecordMutation) SetPronunciation(f float64) {
	m.pronunciation = &f
	m.addpronunciation = nil
}

// Pronunciation returns the value of the "pronunciation" field in the mutation.
func (m *ConfidenceRecordMutation) Pronunciation() (r float64, exists bool) {
	v := m.pronunciation
	if v == nil {
		return
	}
	return *v, true
}

// OldPronunciation returns the old "pronunciation" field's value of the ConfidenceRecord entity.
// If the ConfidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfidenceRecordMutation) OldPronunciation(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPronunciation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPronunciation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPronunciation: %w", err)
	}
	return oldValue.Pronunciation, nil
}

// AddPronunciation adds f to the "pronunciation" field.
func (m *ConfidenceRecordMutation) AddPronunciation(f float64) {
	if m.addpronunciation != nil {
		*m.addpronunciation += f
	} else {
		m.addpronunciation = &f
	}
}

// AddedPronunciation returns the value that was added to the "pronunciation" field in this mutation.
func (m *ConfidenceRecordMutation) AddedPronunciation() (r float64, exists bool) {
	v := m.addpronunciation
	if v == nil {
		return
	}
	return *v, true
}

// ResetPronunciation resets all changes to the "pronunciation" field.
func (m *ConfidenceRecordMutation) ResetPronunciation() {
	m.pronunciation = nil
	m.addpronunciation = nil
}

// SetCompletionRate sets the "completion_rate" field.
func (m *ConfidenceRecordMutation) SetCompletionRate(f float64) {
	m.completion_rate = &f
	m.addcompletion_rate = nil
}

// CompletionRate returns the value of the "completion_rate" field in the mutation.
func (m *ConfidenceRecordMutation) CompletionRate() (r float64, exists bool) {
	v := m.completion_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionRate returns the old "completion_rate" field's value of the ConfidenceRecord entity.
// If the ConfidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfidenceRecordMutation) OldCompletionRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionRate: %w", err)
	}
	return oldValue.CompletionRate, nil
}

// AddCompletionRate adds f to the "completion_rate" field.
func (m *ConfidenceRecordMutation) AddCompletionRate(f float64) {
	if m.addcompletion_rate != nil {
		*m.addcompletion_rate += f
	} else {
		m.addcompletion_rate = &f
	}
}

// AddedCompletionRate returns the value that was added to the "completion_rate" field in this mutation.
func (m *ConfidenceRecordMutation) AddedCompletionRate() (r float64, exists bool) {
	v := m.addcompletion_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionRate resets all changes to the "completion_rate" field.
func (m *ConfidenceRecordMutation) ResetCompletionRate() {
	m.completion_rate = nil
	m.addcompletion_rate = nil
}

// SetLabel sets the "label" field.
func (m *ConfidenceRecordMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *ConfidenceRecordMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the ConfidenceRecord entity.
// If the ConfidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfidenceRecordMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *ConfidenceRecordMutation) ResetLabel() {
	m.label = nil
}

// SetTrend sets the "trend" field.
func (m *ConfidenceRecordMutation) SetTrend(s string) {
	m.trend = &s
}

// Trend returns the value of the "trend" field in the mutation.
func (m *ConfidenceRecordMutation) Trend() (r string, exists bool) {
	v := m.trend
	if v == nil {
		return
	}
	return *v, true
}

// OldTrend returns the old "trend" field's value of the ConfidenceRecord entity.
// If the ConfidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfidenceRecordMutation) OldTrend(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrend: %w", err)
	}
	return oldValue.Trend, nil
}

// ResetTrend resets all changes to the "trend" field.
func (m *ConfidenceRecordMutation) ResetTrend() {
	m.trend = nil
}

// SetHistory sets the "history" field.
func (m *ConfidenceRecordMutation) SetHistory(c []confidence.Entry) {
	m.history = &c
	m.appendhistory = nil
}

// History returns the value of the "history" field in the mutation.
func (m *ConfidenceRecordMutation) History() (r []confidence.Entry, exists bool) {
	v := m.history
	if v == nil {
		return
	}
	return *v, true
}

// OldHistory returns the old "history" field's value of the ConfidenceRecord entity.
// If the ConfidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfidenceRecordMutation) OldHistory(ctx context.Context) (v []confidence.Entry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHistory: %w", err)
	}
	return oldValue.History, nil
}

// AppendHistory adds c to the "history" field.
func (m *ConfidenceRecordMutation) AppendHistory(c []confidence.Entry) {
	m.appendhistory = append(m.appendhistory, c...)
}

// AppendedHistory returns the list of values that were appended to the "history" field in this mutation.
func (m *ConfidenceRecordMutation) AppendedHistory() ([]confidence.Entry, bool) {
	if len(m.appendhistory) == 0 {
		return nil, false
	}
	return m.appendhistory, true
}

// ClearHistory clears the value of the "history" field.
func (m *ConfidenceRecordMutation) ClearHistory() {
	m.history = nil
	m.appendhistory = nil
	m.clearedFields[confidencerecord.FieldHistory] = struct{}{}
}

// HistoryCleared returns if the "history" field was cleared in this mutation.
func (m *ConfidenceRecordMutation) HistoryCleared() bool {
	_, ok := m.clearedFields[confidencerecord.FieldHistory]
	return ok
}

// ResetHistory resets all changes to the "history" field.
func (m *ConfidenceRecordMutation) ResetHistory() {
	m.history = nil
	m.appendhistory = nil
	delete(m.clearedFields, confidencerecord.FieldHistory)
}

// SetComputedAt sets the "computed_at" field.
func (m *ConfidenceRecordMutation) SetComputedAt(t time.Time) {
	m.computed_at = &t
}

// ComputedAt returns the value of the "computed_at" field in the mutation.
func (m *ConfidenceRecordMutation) ComputedAt() (r time.Time, exists bool) {
	v := m.computed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldComputedAt returns the old "computed_at" field's value of the ConfidenceRecord entity.
// If the ConfidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfidenceRecordMutation) OldComputedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComputedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComputedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComputedAt: %w", err)
	}
	return oldValue.ComputedAt, nil
}

// ResetComputedAt resets all changes to the "computed_at" field.
func (m *ConfidenceRecordMutation) ResetComputedAt() {
	m.computed_at = nil
}

// Where appends a list predicates to the ConfidenceRecordMutation builder.
func (m *ConfidenceRecordMutation) Where(ps ...predicate.ConfidenceRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConfidenceRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConfidenceRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConfidenceRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConfidenceRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConfidenceRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConfidenceRecord).
func (m *ConfidenceRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConfidenceRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.learner_id != nil {
		fields = append(fields, confidencerecord.FieldLearnerID)
	}
	if m.score != nil {
		fields = append(fields, confidencerecord.FieldScore)
	}
	if m.pronunciation != nil {
		fields = append(fields, confidencerecord.FieldPronunciation)
	}
	if m.completion_rate != nil {
		fields = append(fields, confidencerecord.FieldCompletionRate)
	}
	if m.label != nil {
		fields = append(fields, confidencerecord.FieldLabel)
	}
	if m.trend != nil {
		fields = append(fields, confidencerecord.FieldTrend)
	}
	if m.history != nil {
		fields = append(fields, confidencerecord.FieldHistory)
	}
	if m.computed_at != nil {
		fields = append(fields, confidencerecord.FieldComputedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConfidenceRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case confidencerecord.FieldLearnerID:
		return m.LearnerID()
	case confidencerecord.FieldScore:
		return m.Score()
	case confidencerecord.FieldPronunciation:
		return m.Pronunciation()
	case confidencerecord.FieldCompletionRate:
		return m.CompletionRate()
	case confidencerecord.FieldLabel:
		return m.Label()
	case confidencerecord.FieldTrend:
		return m.Trend()
	case confidencerecord.FieldHistory:
		return m.History()
	case confidencerecord.FieldComputedAt:
		return m.ComputedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConfidenceRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case confidencerecord.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case confidencerecord.FieldScore:
		return m.OldScore(ctx)
	case confidencerecord.FieldPronunciation:
		return m.OldPronunciation(ctx)
	case confidencerecord.FieldCompletionRate:
		return m.OldCompletionRate(ctx)
	case confidencerecord.FieldLabel:
		return m.OldLabel(ctx)
	case confidencerecord.FieldTrend:
		return m.OldTrend(ctx)
	case confidencerecord.FieldHistory:
		return m.OldHistory(ctx)
	case confidencerecord.FieldComputedAt:
		return m.OldComputedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConfidenceRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfidenceRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case confidencerecord.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case confidencerecord.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case confidencerecord.FieldPronunciation:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPronunciation(v)
		return nil
	case confidencerecord.FieldCompletionRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionRate(v)
		return nil
	case confidencerecord.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case confidencerecord.FieldTrend:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrend(v)
		return nil
	case confidencerecord.FieldHistory:
		v, ok := value.([]confidence.Entry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHistory(v)
		return nil
	case confidencerecord.FieldComputedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComputedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConfidenceRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConfidenceRecordMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, confidencerecord.FieldScore)
	}
	if m.addpronunciation != nil {
		fields = append(fields, confidencerecord.FieldPronunciation)
	}
	if m.addcompletion_rate != nil {
		fields = append(fields, confidencerecord.FieldCompletionRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConfidenceRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case confidencerecord.FieldScore:
		return m.AddedScore()
	case confidencerecord.FieldPronunciation:
		return m.AddedPronunciation()
	case confidencerecord.FieldCompletionRate:
		return m.AddedCompletionRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfidenceRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case confidencerecord.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case confidencerecord.FieldPronunciation:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPronunciation(v)
		return nil
	case confidencerecord.FieldCompletionRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionRate(v)
		return nil
	}
	return fmt.Errorf("unknown ConfidenceRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConfidenceRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(confidencerecord.FieldHistory) {
		fields = append(fields, confidencerecord.FieldHistory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConfidenceRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConfidenceRecordMutation) ClearField(name string) error {
	switch name {
	case confidencerecord.FieldHistory:
		m.ClearHistory()
		return nil
	}
	return fmt.Errorf("unknown ConfidenceRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConfidenceRecordMutation) ResetField(name string) error {
	switch name {
	case confidencerecord.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case confidencerecord.FieldScore:
		m.ResetScore()
		return nil
	case confidencerecord.FieldPronunciation:
		m.ResetPronunciation()
		return nil
	case confidencerecord.FieldCompletionRate:
		m.ResetCompletionRate()
		return nil
	case confidencerecord.FieldLabel:
		m.ResetLabel()
		return nil
	case confidencerecord.FieldTrend:
		m.ResetTrend()
		return nil
	case confidencerecord.FieldHistory:
		m.ResetHistory()
		return nil
	case confidencerecord.FieldComputedAt:
		m.ResetComputedAt()
		return nil
	}
	return fmt.Errorf("unknown ConfidenceRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConfidenceRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConfidenceRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConfidenceRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConfidenceRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConfidenceRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConfidenceRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConfidenceRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConfidenceRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConfidenceRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConfidenceRecord edge %s", name)
}

// MasteryRecordMutation represents an operation that mutates the MasteryRecord nodes in the graph.
type MasteryRecordMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	learner_id            *string
	word                  *string
	version               *int64
	addversion            *int64
	observations          *int
	addobservations       *int
	successes             *int
	addsuccesses          *int
	avg_score             *float64
	addavg_score          *float64
	difficulty            *float64
	adddifficulty         *float64
	initial_difficulty    *float64
	addinitial_difficulty *float64
	improvement_rate      *float64
	addimprovement_rate   *float64
	level                 *string
	score_history         *[]mastery.Observation
	appendscore_history   []mastery.Observation
	mastered_at           *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*MasteryRecord, error)
	predicates            []predicate.MasteryRecord
}

var _ ent.Mutation = (*MasteryRecordMutation)(nil)

// masteryrecordOption allows management of the mutation configuration using functional options.
type masteryrecordOption func(*MasteryRecordMutation)

// newMasteryRecordMutation creates new mutation for the MasteryRecord entity.
func newMasteryRecordMutation(c config, op Op, opts ...masteryrecordOption) *MasteryRecordMutation {
	m := &MasteryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMasteryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryRecordID sets the ID field of the mutation.
func withMasteryRecordID(id int) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MasteryRecord
		)
		m.oldValue = func(ctx context.Context) (*MasteryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MasteryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMasteryRecord sets the old MasteryRecord of the mutation.
func withMasteryRecord(node *MasteryRecord) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		m.oldValue = func(context.Context) (*MasteryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MasteryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *MasteryRecordMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *MasteryRecordMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *MasteryRecordMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetWord sets the "word" field.
func (m *MasteryRecordMutation) SetWord(s string) {
	m.word = &s
}

// Word returns the value of the "word" field in the mutation.
func (m *MasteryRecordMutation) Word() (r string, exists bool) {
	v := m.word
	if v == nil {
		return
	}
	return *v, true
}

// OldWord returns the old "word" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldWord(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWord is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWord requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWord: %w", err)
	}
	return oldValue.Word, nil
}

// ResetWord resets all changes to the "word" field.
func (m *MasteryRecordMutation) ResetWord() {
	m.word = nil
}

// SetVersion sets the "version" field.
func (m *MasteryRecordMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *MasteryRecordMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *MasteryRecordMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *MasteryRecordMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *MasteryRecordMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetObservations sets the "observations" field.
func (m *MasteryRecordMutation) SetObservations(i int) {
	m.observations = &i
	m.addobservations = nil
}

// Observations returns the value of the "observations" field in the mutation.
func (m *MasteryRecordMutation) Observations() (r int, exists bool) {
	v := m.observations
	if v == nil {
		return
	}
	return *v, true
}

// OldObservations returns the old "observations" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldObservations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservations: %w", err)
	}
	return oldValue.Observations, nil
}

// AddObservations adds i to the "observations" field.
func (m *MasteryRecordMutation) AddObservations(i int) {
	if m.addobservations != nil {
		*m.addobservations += i
	} else {
		m.addobservations = &i
	}
}

// AddedObservations returns the value that was added to the "observations" field in this mutation.
func (m *MasteryRecordMutation) AddedObservations() (r int, exists bool) {
	v := m.addobservations
	if v == nil {
		return
	}
	return *v, true
}

// ResetObservations resets all changes to the "observations" field.
func (m *MasteryRecordMutation) ResetObservations() {
	m.observations = nil
	m.addobservations = nil
}

// SetSuccesses sets the "successes" field.
func (m *MasteryRecordMutation) SetSuccesses(i int) {
	m.successes = &i
	m.addsuccesses = nil
}

// Successes returns the value of the "successes" field in the mutation.
func (m *MasteryRecordMutation) Successes() (r int, exists bool) {
	v := m.successes
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccesses returns the old "successes" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldSuccesses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccesses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccesses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccesses: %w", err)
	}
	return oldValue.Successes, nil
}

// AddSuccesses adds i to the "successes" field.
func (m *MasteryRecordMutation) AddSuccesses(i int) {
	if m.addsuccesses != nil {
		*m.addsuccesses += i
	} else {
		m.addsuccesses = &i
	}
}

// AddedSuccesses returns the value that was added to the "successes" field in this mutation.
func (m *MasteryRecordMutation) AddedSuccesses() (r int, exists bool) {
	v := m.addsuccesses
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccesses resets all changes to the "successes" field.
func (m *MasteryRecordMutation) ResetSuccesses() {
	m.successes = nil
	m.addsuccesses = nil
}

// SetAvgScore sets the "avg_score" field.
func (m *MasteryRecordMutation) SetAvgScore(f float64) {
	m.avg_score = &f
	m.addavg_score = nil
}

// AvgScore returns the value of the "avg_score" field in the mutation.
func (m *MasteryRecordMutation) AvgScore() (r float64, exists bool) {
	v := m.avg_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgScore returns the old "avg_score" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldAvgScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgScore: %w", err)
	}
	return oldValue.AvgScore, nil
}

// AddAvgScore adds f to the "avg_score" field.
func (m *MasteryRecordMutation) AddAvgScore(f float64) {
	if m.addavg_score != nil {
		*m.addavg_score += f
	} else {
		m.addavg_score = &f
	}
}

// AddedAvgScore returns the value that was added to the "avg_score" field in this mutation.
func (m *MasteryRecordMutation) AddedAvgScore() (r float64, exists bool) {
	v := m.addavg_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgScore resets all changes to the "avg_score" field.
func (m *MasteryRecordMutation) ResetAvgScore() {
	m.avg_score = nil
	m.addavg_score = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *MasteryRecordMutation) SetDifficulty(f float64) {
	m.difficulty = &f
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *MasteryRecordMutation) Difficulty() (r float64, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds f to the "difficulty" field.
func (m *MasteryRecordMutation) AddDifficulty(f float64) {
	if m.adddifficulty != nil {
		*m.adddifficulty += f
	} else {
		m.adddifficulty = &f
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *MasteryRecordMutation) AddedDifficulty() (r float64, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *MasteryRecordMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetInitialDifficulty sets the "initial_difficulty" field.
func (m *MasteryRecordMutation) SetInitialDifficulty(f float64) {
	m.initial_difficulty = &f
	m.addinitial_difficulty = nil
}

// InitialDifficulty returns the value of the "initial_difficulty" field in the mutation.
func (m *MasteryRecordMutation) InitialDifficulty() (r float64, exists bool) {
	v := m.initial_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialDifficulty returns the old "initial_difficulty" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldInitialDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialDifficulty: %w", err)
	}
	return oldValue.InitialDifficulty, nil
}

// AddInitialDifficulty adds f to the "initial_difficulty" field.
func (m *MasteryRecordMutation) AddInitialDifficulty(f float64) {
	if m.addinitial_difficulty != nil {
		*m.addinitial_difficulty += f
	} else {
		m.addinitial_difficulty = &f
	}
}

// AddedInitialDifficulty returns the value that was added to the "initial_difficulty" field in this mutation.
func (m *MasteryRecordMutation) AddedInitialDifficulty() (r float64, exists bool) {
	v := m.addinitial_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetInitialDifficulty resets all changes to the "initial_difficulty" field.
func (m *MasteryRecordMutation) ResetInitialDifficulty() {
	m.initial_difficulty = nil
	m.addinitial_difficulty = nil
}

// SetImprovementRate sets the "improvement_rate" field.
func (m *MasteryRecordMutation) SetImprovementRate(f float64) {
	m.improvement_rate = &f
	m.addimprovement_rate = nil
}

// ImprovementRate returns the value of the "improvement_rate" field in the mutation.
func (m *MasteryRecordMutation) ImprovementRate() (r float64, exists bool) {
	v := m.improvement_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldImprovementRate returns the old "improvement_rate" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldImprovementRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImprovementRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImprovementRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImprovementRate: %w", err)
	}
	return oldValue.ImprovementRate, nil
}

// AddImprovementRate adds f to the "improvement_rate" field.
func (m *MasteryRecordMutation) AddImprovementRate(f float64) {
	if m.addimprovement_rate != nil {
		*m.addimprovement_rate += f
	} else {
		m.addimprovement_rate = &f
	}
}

// AddedImprovementRate returns the value that was added to the "improvement_rate" field in this mutation.
func (m *MasteryRecordMutation) AddedImprovementRate() (r float64, exists bool) {
	v := m.addimprovement_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetImprovementRate resets all changes to the "improvement_rate" field.
func (m *MasteryRecordMutation) ResetImprovementRate() {
	m.improvement_rate = nil
	m.addimprovement_rate = nil
}

// SetLevel sets the "level" field.
func (m *MasteryRecordMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *MasteryRecordMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *MasteryRecordMutation) ResetLevel() {
	m.level = nil
}

// SetScoreHistory sets the "score_history" field.
func (m *MasteryRecordMutation) SetScoreHistory(value []mastery.Observation) {
	m.score_history = &value
	m.appendscore_history = nil
}

// ScoreHistory returns the value of the "score_history" field in the mutation.
func (m *MasteryRecordMutation) ScoreHistory() (r []mastery.Observation, exists bool) {
	v := m.score_history
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreHistory returns the old "score_history" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldScoreHistory(ctx context.Context) (v []mastery.Observation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreHistory: %w", err)
	}
	return oldValue.ScoreHistory, nil
}

// AppendScoreHistory adds value to the "score_history" field.
func (m *MasteryRecordMutation) AppendScoreHistory(value []mastery.Observation) {
	m.appendscore_history = append(m.appendscore_history, value...)
}

// AppendedScoreHistory returns the list of values that were appended to the "score_history" field in this mutation.
func (m *MasteryRecordMutation) AppendedScoreHistory() ([]mastery.Observation, bool) {
	if len(m.appendscore_history) == 0 {
		return nil, false
	}
	return m.appendscore_history, true
}

// ClearScoreHistory clears the value of the "score_history" field.
func (m *MasteryRecordMutation) ClearScoreHistory() {
	m.score_history = nil
	m.appendscore_history = nil
	m.clearedFields[masteryrecord.FieldScoreHistory] = struct{}{}
}

// ScoreHistoryCleared returns if the "score_history" field was cleared in this mutation.
func (m *MasteryRecordMutation) ScoreHistoryCleared() bool {
	_, ok := m.clearedFields[masteryrecord.FieldScoreHistory]
	return ok
}

// ResetScoreHistory resets all changes to the "score_history" field.
func (m *MasteryRecordMutation) ResetScoreHistory() {
	m.score_history = nil
	m.appendscore_history = nil
	delete(m.clearedFields, masteryrecord.FieldScoreHistory)
}

// SetMasteredAt sets the "mastered_at" field.
func (m *MasteryRecordMutation) SetMasteredAt(t time.Time) {
	m.mastered_at = &t
}

// MasteredAt returns the value of the "mastered_at" field in the mutation.
func (m *MasteryRecordMutation) MasteredAt() (r time.Time, exists bool) {
	v := m.mastered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteredAt returns the old "mastered_at" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldMasteredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteredAt: %w", err)
	}
	return oldValue.MasteredAt, nil
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (m *MasteryRecordMutation) ClearMasteredAt() {
	m.mastered_at = nil
	m.clearedFields[masteryrecord.FieldMasteredAt] = struct{}{}
}

// MasteredAtCleared returns if the "mastered_at" field was cleared in this mutation.
func (m *MasteryRecordMutation) MasteredAtCleared() bool {
	_, ok := m.clearedFields[masteryrecord.FieldMasteredAt]
	return ok
}

// ResetMasteredAt resets all changes to the "mastered_at" field.
func (m *MasteryRecordMutation) ResetMasteredAt() {
	m.mastered_at = nil
	delete(m.clearedFields, masteryrecord.FieldMasteredAt)
}

// Where appends a list predicates to the MasteryRecordMutation builder.
func (m *MasteryRecordMutation) Where(ps ...predicate.MasteryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MasteryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MasteryRecord).
func (m *MasteryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryRecordMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.learner_id != nil {
		fields = append(fields, masteryrecord.FieldLearnerID)
	}
	if m.word != nil {
		fields = append(fields, masteryrecord.FieldWord)
	}
	if m.version != nil {
		fields = append(fields, masteryrecord.FieldVersion)
	}
	if m.observations != nil {
		fields = append(fields, masteryrecord.FieldObservations)
	}
	if m.successes != nil {
		fields = append(fields, masteryrecord.FieldSuccesses)
	}
	if m.avg_score != nil {
		fields = append(fields, masteryrecord.FieldAvgScore)
	}
	if m.difficulty != nil {
		fields = append(fields, masteryrecord.FieldDifficulty)
	}
	if m.initial_difficulty != nil {
		fields = append(fields, masteryrecord.FieldInitialDifficulty)
	}
	if m.improvement_rate != nil {
		fields = append(fields, masteryrecord.FieldImprovementRate)
	}
	if m.level != nil {
		fields = append(fields, masteryrecord.FieldLevel)
	}
	if m.score_history != nil {
		fields = append(fields, masteryrecord.FieldScoreHistory)
	}
	if m.mastered_at != nil {
		fields = append(fields, masteryrecord.FieldMasteredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldLearnerID:
		return m.LearnerID()
	case masteryrecord.FieldWord:
		return m.Word()
	case masteryrecord.FieldVersion:
		return m.Version()
	case masteryrecord.FieldObservations:
		return m.Observations()
	case masteryrecord.FieldSuccesses:
		return m.Successes()
	case masteryrecord.FieldAvgScore:
		return m.AvgScore()
	case masteryrecord.FieldDifficulty:
		return m.Difficulty()
	case masteryrecord.FieldInitialDifficulty:
		return m.InitialDifficulty()
	case masteryrecord.FieldImprovementRate:
		return m.ImprovementRate()
	case masteryrecord.FieldLevel:
		return m.Level()
	case masteryrecord.FieldScoreHistory:
		return m.ScoreHistory()
	case masteryrecord.FieldMasteredAt:
		return m.MasteredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case masteryrecord.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case masteryrecord.FieldWord:
		return m.OldWord(ctx)
	case masteryrecord.FieldVersion:
		return m.OldVersion(ctx)
	case masteryrecord.FieldObservations:
		return m.OldObservations(ctx)
	case masteryrecord.FieldSuccesses:
		return m.OldSuccesses(ctx)
	case masteryrecord.FieldAvgScore:
		return m.OldAvgScore(ctx)
	case masteryrecord.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case masteryrecord.FieldInitialDifficulty:
		return m.OldInitialDifficulty(ctx)
	case masteryrecord.FieldImprovementRate:
		return m.OldImprovementRate(ctx)
	case masteryrecord.FieldLevel:
		return m.OldLevel(ctx)
	case masteryrecord.FieldScoreHistory:
		return m.OldScoreHistory(ctx)
	case masteryrecord.FieldMasteredAt:
		return m.OldMasteredAt(ctx)
	}
	return nil, fmt.Errorf("unknown MasteryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case masteryrecord.FieldWord:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWord(v)
		return nil
	case masteryrecord.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case masteryrecord.FieldObservations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservations(v)
		return nil
	case masteryrecord.FieldSuccesses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccesses(v)
		return nil
	case masteryrecord.FieldAvgScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgScore(v)
		return nil
	case masteryrecord.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case masteryrecord.FieldInitialDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialDifficulty(v)
		return nil
	case masteryrecord.FieldImprovementRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImprovementRate(v)
		return nil
	case masteryrecord.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case masteryrecord.FieldScoreHistory:
		v, ok := value.([]mastery.Observation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreHistory(v)
		return nil
	case masteryrecord.FieldMasteredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteredAt(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, masteryrecord.FieldVersion)
	}
	if m.addobservations != nil {
		fields = append(fields, masteryrecord.FieldObservations)
	}
	if m.addsuccesses != nil {
		fields = append(fields, masteryrecord.FieldSuccesses)
	}
	if m.addavg_score != nil {
		fields = append(fields, masteryrecord.FieldAvgScore)
	}
	if m.adddifficulty != nil {
		fields = append(fields, masteryrecord.FieldDifficulty)
	}
	if m.addinitial_difficulty != nil {
		fields = append(fields, masteryrecord.FieldInitialDifficulty)
	}
	if m.addimprovement_rate != nil {
		fields = append(fields, masteryrecord.FieldImprovementRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldVersion:
		return m.AddedVersion()
	case masteryrecord.FieldObservations:
		return m.AddedObservations()
	case masteryrecord.FieldSuccesses:
		return m.AddedSuccesses()
	case masteryrecord.FieldAvgScore:
		return m.AddedAvgScore()
	case masteryrecord.FieldDifficulty:
		return m.AddedDifficulty()
	case masteryrecord.FieldInitialDifficulty:
		return m.AddedInitialDifficulty()
	case masteryrecord.FieldImprovementRate:
		return m.AddedImprovementRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case masteryrecord.FieldObservations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddObservations(v)
		return nil
	case masteryrecord.FieldSuccesses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccesses(v)
		return nil
	case masteryrecord.FieldAvgScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgScore(v)
		return nil
	case masteryrecord.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case masteryrecord.FieldInitialDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInitialDifficulty(v)
		return nil
	case masteryrecord.FieldImprovementRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImprovementRate(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(masteryrecord.FieldScoreHistory) {
		fields = append(fields, masteryrecord.FieldScoreHistory)
	}
	if m.FieldCleared(masteryrecord.FieldMasteredAt) {
		fields = append(fields, masteryrecord.FieldMasteredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ClearField(name string) error {
	switch name {
	case masteryrecord.FieldScoreHistory:
		m.ClearScoreHistory()
		return nil
	case masteryrecord.FieldMasteredAt:
		m.ClearMasteredAt()
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ResetField(name string) error {
	switch name {
	case masteryrecord.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case masteryrecord.FieldWord:
		m.ResetWord()
		return nil
	case masteryrecord.FieldVersion:
		m.ResetVersion()
		return nil
	case masteryrecord.FieldObservations:
		m.ResetObservations()
		return nil
	case masteryrecord.FieldSuccesses:
		m.ResetSuccesses()
		return nil
	case masteryrecord.FieldAvgScore:
		m.ResetAvgScore()
		return nil
	case masteryrecord.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case masteryrecord.FieldInitialDifficulty:
		m.ResetInitialDifficulty()
		return nil
	case masteryrecord.FieldImprovementRate:
		m.ResetImprovementRate()
		return nil
	case masteryrecord.FieldLevel:
		m.ResetLevel()
		return nil
	case masteryrecord.FieldScoreHistory:
		m.ResetScoreHistory()
		return nil
	case masteryrecord.FieldMasteredAt:
		m.ResetMasteredAt()
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord edge %s", name)
}

// ProgressRecordMutation represents an operation that mutates the ProgressRecord nodes in the graph.
type ProgressRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	learner_id          *string
	unit_id             *string
	version             *int64
	addversion          *int64
	attempts            *int
	addattempts         *int
	best_score          *float64
	addbest_score       *float64
	last_score          *float64
	addlast_score       *float64
	avg_score           *float64
	addavg_score        *float64
	weak_letters        *[]string
	appendweak_letters  []string
	weak_phonemes       *[]string
	appendweak_phonemes []string
	passed              *bool
	passed_at           *time.Time
	last_attempt_at     *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ProgressRecord, error)
	predicates          []predicate.ProgressRecord
}

var _ ent.Mutation = (*ProgressRecordMutation)(nil)

// progressrecordOption allows management of the mutation configuration using functional options.
type progressrecordOption func(*ProgressRecordMutation)

// newProgressRecordMutation creates new mutation for the ProgressRecord entity.
func newProgressRecordMutation(c config, op Op, opts ...progressrecordOption) *ProgressRecordMutation {
	m := &ProgressRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeProgressRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressRecordID sets the ID field of the mutation.
func withProgressRecordID(id int) progressrecordOption {
	return func(m *ProgressRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ProgressRecord
		)
		m.oldValue = func(ctx context.Context) (*ProgressRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProgressRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgressRecord sets the old ProgressRecord of the mutation.
func withProgressRecord(node *ProgressRecord) progressrecordOption {
	return func(m *ProgressRecordMutation) {
		m.oldValue = func(context.Context) (*ProgressRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProgressRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *ProgressRecordMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ProgressRecordMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ProgressRecordMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetUnitID sets the "unit_id" field.
func (m *ProgressRecordMutation) SetUnitID(s string) {
	m.unit_id = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *ProgressRecordMutation) UnitID() (r string, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *ProgressRecordMutation) ResetUnitID() {
	m.unit_id = nil
}

// SetVersion sets the "version" field.
func (m *ProgressRecordMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ProgressRecordMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ProgressRecordMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ProgressRecordMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ProgressRecordMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetAttempts sets the "attempts" field.
func (m *ProgressRecordMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *ProgressRecordMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *ProgressRecordMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *ProgressRecordMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *ProgressRecordMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetBestScore sets the "best_score" field.
func (m *ProgressRecordMutation) SetBestScore(f float64) {
	m.best_score = &f
	m.addbest_score = nil
}

// BestScore returns the value of the "best_score" field in the mutation.
func (m *ProgressRecordMutation) BestScore() (r float64, exists bool) {
	v := m.best_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBestScore returns the old "best_score" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldBestScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestScore: %w", err)
	}
	return oldValue.BestScore, nil
}

// AddBestScore adds f to the "best_score" field.
func (m *ProgressRecordMutation) AddBestScore(f float64) {
	if m.addbest_score != nil {
		*m.addbest_score += f
	} else {
		m.addbest_score = &f
	}
}

// AddedBestScore returns the value that was added to the "best_score" field in this mutation.
func (m *ProgressRecordMutation) AddedBestScore() (r float64, exists bool) {
	v := m.addbest_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetBestScore resets all changes to the "best_score" field.
func (m *ProgressRecordMutation) ResetBestScore() {
	m.best_score = nil
	m.addbest_score = nil
}

// SetLastScore sets the "last_score" field.
func (m *ProgressRecordMutation) SetLastScore(f float64) {
	m.last_score = &f
	m.addlast_score = nil
}

// LastScore returns the value of the "last_score" field in the mutation.
func (m *ProgressRecordMutation) LastScore() (r float64, exists bool) {
	v := m.last_score
	if v == nil {
		return
	}
	return *v, true
}

// OldLastScore returns the old "last_score" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldLastScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastScore: %w", err)
	}
	return oldValue.LastScore, nil
}

// AddLastScore adds f to the "last_score" field.
func (m *ProgressRecordMutation) AddLastScore(f float64) {
	if m.addlast_score != nil {
		*m.addlast_score += f
	} else {
		m.addlast_score = &f
	}
}

// AddedLastScore returns the value that was added to the "last_score" field in this mutation.
func (m *ProgressRecordMutation) AddedLastScore() (r float64, exists bool) {
	v := m.addlast_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastScore resets all changes to the "last_score" field.
func (m *ProgressRecordMutation) ResetLastScore() {
	m.last_score = nil
	m.addlast_score = nil
}

// SetAvgScore sets the "avg_score" field.
func (m *ProgressRecordMutation) SetAvgScore(f float64) {
	m.avg_score = &f
	m.addavg_score = nil
}

// AvgScore returns the value of the "avg_score" field in the mutation.
func (m *ProgressRecordMutation) AvgScore() (r float64, exists bool) {
	v := m.avg_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgScore returns the old "avg_score" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldAvgScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgScore: %w", err)
	}
	return oldValue.AvgScore, nil
}

// AddAvgScore adds f to the "avg_score" field.
func (m *ProgressRecordMutation) AddAvgScore(f float64) {
	if m.addavg_score != nil {
		*m.addavg_score += f
	} else {
		m.addavg_score = &f
	}
}

// AddedAvgScore returns the value that was added to the "avg_score" field in this mutation.
func (m *ProgressRecordMutation) AddedAvgScore() (r float64, exists bool) {
	v := m.addavg_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgScore resets all changes to the "avg_score" field.
func (m *ProgressRecordMutation) ResetAvgScore() {
	m.avg_score = nil
	m.addavg_score = nil
}

// SetWeakLetters sets the "weak_letters" field.
func (m *ProgressRecordMutation) SetWeakLetters(s []string) {
	m.weak_letters = &s
	m.appendweak_letters = nil
}

// WeakLetters returns the value of the "weak_letters" field in the mutation.
func (m *ProgressRecordMutation) WeakLetters() (r []string, exists bool) {
	v := m.weak_letters
	if v == nil {
		return
	}
	return *v, true
}

// OldWeakLetters returns the old "weak_letters" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldWeakLetters(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeakLetters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeakLetters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeakLetters: %w", err)
	}
	return oldValue.WeakLetters, nil
}

// AppendWeakLetters adds s to the "weak_letters" field.
func (m *ProgressRecordMutation) AppendWeakLetters(s []string) {
	m.appendweak_letters = append(m.appendweak_letters, s...)
}

// AppendedWeakLetters returns the list of values that were appended to the "weak_letters" field in this mutation.
func (m *ProgressRecordMutation) AppendedWeakLetters() ([]string, bool) {
	if len(m.appendweak_letters) == 0 {
		return nil, false
	}
	return m.appendweak_letters, true
}

// ClearWeakLetters clears the value of the "weak_letters" field.
func (m *ProgressRecordMutation) ClearWeakLetters() {
	m.weak_letters = nil
	m.appendweak_letters = nil
	m.clearedFields[progressrecord.FieldWeakLetters] = struct{}{}
}

// WeakLettersCleared returns if the "weak_letters" field was cleared in this mutation.
func (m *ProgressRecordMutation) WeakLettersCleared() bool {
	_, ok := m.clearedFields[progressrecord.FieldWeakLetters]
	return ok
}

// ResetWeakLetters resets all changes to the "weak_letters" field.
func (m *ProgressRecordMutation) ResetWeakLetters() {
	m.weak_letters = nil
	m.appendweak_letters = nil
	delete(m.clearedFields, progressrecord.FieldWeakLetters)
}

// SetWeakPhonemes sets the "weak_phonemes" field.
func (m *ProgressRecordMutation) SetWeakPhonemes(s []string) {
	m.weak_phonemes = &s
	m.appendweak_phonemes = nil
}

// WeakPhonemes returns the value of the "weak_phonemes" field in the mutation.
func (m *ProgressRecordMutation) WeakPhonemes() (r []string, exists bool) {
	v := m.weak_phonemes
	if v == nil {
		return
	}
	return *v, true
}

// OldWeakPhonemes returns the old "weak_phonemes" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldWeakPhonemes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeakPhonemes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeakPhonemes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeakPhonemes: %w", err)
	}
	return oldValue.WeakPhonemes, nil
}

// AppendWeakPhonemes adds s to the "weak_phonemes" field.
func (m *ProgressRecordMutation) AppendWeakPhonemes(s []string) {
	m.appendweak_phonemes = append(m.appendweak_phonemes, s...)
}

// AppendedWeakPhonemes returns the list of values that were appended to the "weak_phonemes" field in this mutation.
func (m *ProgressRecordMutation) AppendedWeakPhonemes() ([]string, bool) {
	if len(m.appendweak_phonemes) == 0 {
		return nil, false
	}
	return m.appendweak_phonemes, true
}

// ClearWeakPhonemes clears the value of the "weak_phonemes" field.
func (m *ProgressRecordMutation) ClearWeakPhonemes() {
	m.weak_phonemes = nil
	m.appendweak_phonemes = nil
	m.clearedFields[progressrecord.FieldWeakPhonemes] = struct{}{}
}

// WeakPhonemesCleared returns if the "weak_phonemes" field was cleared in this mutation.
func (m *ProgressRecordMutation) WeakPhonemesCleared() bool {
	_, ok := m.clearedFields[progressrecord.FieldWeakPhonemes]
	return ok
}

// ResetWeakPhonemes resets all changes to the "weak_phonemes" field.
func (m *ProgressRecordMutation) ResetWeakPhonemes() {
	m.weak_phonemes = nil
	m.appendweak_phonemes = nil
	delete(m.clearedFields, progressrecord.FieldWeakPhonemes)
}

// SetPassed sets the "passed" field.
func (m *ProgressRecordMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *ProgressRecordMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *ProgressRecordMutation) ResetPassed() {
	m.passed = nil
}

// SetPassedAt sets the "passed_at" field.
func (m *ProgressRecordMutation) SetPassedAt(t time.Time) {
	m.passed_at = &t
}

// PassedAt returns the value of the "passed_at" field in the mutation.
func (m *ProgressRecordMutation) PassedAt() (r time.Time, exists bool) {
	v := m.passed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPassedAt returns the old "passed_at" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldPassedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassedAt: %w", err)
	}
	return oldValue.PassedAt, nil
}

// ClearPassedAt clears the value of the "passed_at" field.
func (m *ProgressRecordMutation) ClearPassedAt() {
	m.passed_at = nil
	m.clearedFields[progressrecord.FieldPassedAt] = struct{}{}
}

// PassedAtCleared returns if the "passed_at" field was cleared in this mutation.
func (m *ProgressRecordMutation) PassedAtCleared() bool {
	_, ok := m.clearedFields[progressrecord.FieldPassedAt]
	return ok
}

// ResetPassedAt resets all changes to the "passed_at" field.
func (m *ProgressRecordMutation) ResetPassedAt() {
	m.passed_at = nil
	delete(m.clearedFields, progressrecord.FieldPassedAt)
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (m *ProgressRecordMutation) SetLastAttemptAt(t time.Time) {
	m.last_attempt_at = &t
}

// LastAttemptAt returns the value of the "last_attempt_at" field in the mutation.
func (m *ProgressRecordMutation) LastAttemptAt() (r time.Time, exists bool) {
	v := m.last_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptAt returns the old "last_attempt_at" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldLastAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptAt: %w", err)
	}
	return oldValue.LastAttemptAt, nil
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (m *ProgressRecordMutation) ClearLastAttemptAt() {
	m.last_attempt_at = nil
	m.clearedFields[progressrecord.FieldLastAttemptAt] = struct{}{}
}

// LastAttemptAtCleared returns if the "last_attempt_at" field was cleared in this mutation.
func (m *ProgressRecordMutation) LastAttemptAtCleared() bool {
	_, ok := m.clearedFields[progressrecord.FieldLastAttemptAt]
	return ok
}

// ResetLastAttemptAt resets all changes to the "last_attempt_at" field.
func (m *ProgressRecordMutation) ResetLastAttemptAt() {
	m.last_attempt_at = nil
	delete(m.clearedFields, progressrecord.FieldLastAttemptAt)
}

// Where appends a list predicates to the ProgressRecordMutation builder.
func (m *ProgressRecordMutation) Where(ps ...predicate.ProgressRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProgressRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProgressRecord).
func (m *ProgressRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressRecordMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.learner_id != nil {
		fields = append(fields, progressrecord.FieldLearnerID)
	}
	if m.unit_id != nil {
		fields = append(fields, progressrecord.FieldUnitID)
	}
	if m.version != nil {
		fields = append(fields, progressrecord.FieldVersion)
	}
	if m.attempts != nil {
		fields = append(fields, progressrecord.FieldAttempts)
	}
	if m.best_score != nil {
		fields = append(fields, progressrecord.FieldBestScore)
	}
	if m.last_score != nil {
		fields = append(fields, progressrecord.FieldLastScore)
	}
	if m.avg_score != nil {
		fields = append(fields, progressrecord.FieldAvgScore)
	}
	if m.weak_letters != nil {
		fields = append(fields, progressrecord.FieldWeakLetters)
	}
	if m.weak_phonemes != nil {
		fields = append(fields, progressrecord.FieldWeakPhonemes)
	}
	if m.passed != nil {
		fields = append(fields, progressrecord.FieldPassed)
	}
	if m.passed_at != nil {
		fields = append(fields, progressrecord.FieldPassedAt)
	}
	if m.last_attempt_at != nil {
		fields = append(fields, progressrecord.FieldLastAttemptAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progressrecord.FieldLearnerID:
		return m.LearnerID()
	case progressrecord.FieldUnitID:
		return m.UnitID()
	case progressrecord.FieldVersion:
		return m.Version()
	case progressrecord.FieldAttempts:
		return m.Attempts()
	case progressrecord.FieldBestScore:
		return m.BestScore()
	case progressrecord.FieldLastScore:
		return m.LastScore()
	case progressrecord.FieldAvgScore:
		return m.AvgScore()
	case progressrecord.FieldWeakLetters:
		return m.WeakLetters()
	case progressrecord.FieldWeakPhonemes:
		return m.WeakPhonemes()
	case progressrecord.FieldPassed:
		return m.Passed()
	case progressrecord.FieldPassedAt:
		return m.PassedAt()
	case progressrecord.FieldLastAttemptAt:
		return m.LastAttemptAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progressrecord.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case progressrecord.FieldUnitID:
		return m.OldUnitID(ctx)
	case progressrecord.FieldVersion:
		return m.OldVersion(ctx)
	case progressrecord.FieldAttempts:
		return m.OldAttempts(ctx)
	case progressrecord.FieldBestScore:
		return m.OldBestScore(ctx)
	case progressrecord.FieldLastScore:
		return m.OldLastScore(ctx)
	case progressrecord.FieldAvgScore:
		return m.OldAvgScore(ctx)
	case progressrecord.FieldWeakLetters:
		return m.OldWeakLetters(ctx)
	case progressrecord.FieldWeakPhonemes:
		return m.OldWeakPhonemes(ctx)
	case progressrecord.FieldPassed:
		return m.OldPassed(ctx)
	case progressrecord.FieldPassedAt:
		return m.OldPassedAt(ctx)
	case progressrecord.FieldLastAttemptAt:
		return m.OldLastAttemptAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProgressRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progressrecord.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case progressrecord.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case progressrecord.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case progressrecord.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case progressrecord.FieldBestScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestScore(v)
		return nil
	case progressrecord.FieldLastScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastScore(v)
		return nil
	case progressrecord.FieldAvgScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgScore(v)
		return nil
	case progressrecord.FieldWeakLetters:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeakLetters(v)
		return nil
	case progressrecord.FieldWeakPhonemes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeakPhonemes(v)
		return nil
	case progressrecord.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case progressrecord.FieldPassedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassedAt(v)
		return nil
	case progressrecord.FieldLastAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressRecordMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, progressrecord.FieldVersion)
	}
	if m.addattempts != nil {
		fields = append(fields, progressrecord.FieldAttempts)
	}
	if m.addbest_score != nil {
		fields = append(fields, progressrecord.FieldBestScore)
	}
	if m.addlast_score != nil {
		fields = append(fields, progressrecord.FieldLastScore)
	}
	if m.addavg_score != nil {
		fields = append(fields, progressrecord.FieldAvgScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case progressrecord.FieldVersion:
		return m.AddedVersion()
	case progressrecord.FieldAttempts:
		return m.AddedAttempts()
	case progressrecord.FieldBestScore:
		return m.AddedBestScore()
	case progressrecord.FieldLastScore:
		return m.AddedLastScore()
	case progressrecord.FieldAvgScore:
		return m.AddedAvgScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case progressrecord.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case progressrecord.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case progressrecord.FieldBestScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBestScore(v)
		return nil
	case progressrecord.FieldLastScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastScore(v)
		return nil
	case progressrecord.FieldAvgScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgScore(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(progressrecord.FieldWeakLetters) {
		fields = append(fields, progressrecord.FieldWeakLetters)
	}
	if m.FieldCleared(progressrecord.FieldWeakPhonemes) {
		fields = append(fields, progressrecord.FieldWeakPhonemes)
	}
	if m.FieldCleared(progressrecord.FieldPassedAt) {
		fields = append(fields, progressrecord.FieldPassedAt)
	}
	if m.FieldCleared(progressrecord.FieldLastAttemptAt) {
		fields = append(fields, progressrecord.FieldLastAttemptAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressRecordMutation) ClearField(name string) error {
	switch name {
	case progressrecord.FieldWeakLetters:
		m.ClearWeakLetters()
		return nil
	case progressrecord.FieldWeakPhonemes:
		m.ClearWeakPhonemes()
		return nil
	case progressrecord.FieldPassedAt:
		m.ClearPassedAt()
		return nil
	case progressrecord.FieldLastAttemptAt:
		m.ClearLastAttemptAt()
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressRecordMutation) ResetField(name string) error {
	switch name {
	case progressrecord.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case progressrecord.FieldUnitID:
		m.ResetUnitID()
		return nil
	case progressrecord.FieldVersion:
		m.ResetVersion()
		return nil
	case progressrecord.FieldAttempts:
		m.ResetAttempts()
		return nil
	case progressrecord.FieldBestScore:
		m.ResetBestScore()
		return nil
	case progressrecord.FieldLastScore:
		m.ResetLastScore()
		return nil
	case progressrecord.FieldAvgScore:
		m.ResetAvgScore()
		return nil
	case progressrecord.FieldWeakLetters:
		m.ResetWeakLetters()
		return nil
	case progressrecord.FieldWeakPhonemes:
		m.ResetWeakPhonemes()
		return nil
	case progressrecord.FieldPassed:
		m.ResetPassed()
		return nil
	case progressrecord.FieldPassedAt:
		m.ResetPassedAt()
		return nil
	case progressrecord.FieldLastAttemptAt:
		m.ResetLastAttemptAt()
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProgressRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProgressRecord edge %s", name)
}
