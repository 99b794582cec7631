// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Rafi-Luffy/ManaQuiz/ent/attemptevent"
	"github.com/Rafi-Luffy/ManaQuiz/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdate) SetAttemptID(v string) *AttemptEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetExamTitle sets the "exam_title" field.
func (_u *AttemptEventUpdate) SetExamTitle(v string) *AttemptEventUpdate {
	_u.mutation.SetExamTitle(v)
	return _u
}

// SetNillableExamTitle sets the "exam_title" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableExamTitle(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetExamTitle(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AttemptEventUpdate) SetCategory(v string) *AttemptEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCategory(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *AttemptEventUpdate) SetSubcategory(v string) *AttemptEventUpdate {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSubcategory(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *AttemptEventUpdate) ClearSubcategory() *AttemptEventUpdate {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptEventUpdate) SetDifficulty(v string) *AttemptEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDifficulty(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *AttemptEventUpdate) SetTotalQuestions(v int) *AttemptEventUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTotalQuestions(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *AttemptEventUpdate) AddTotalQuestions(v int) *AttemptEventUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AttemptEventUpdate) SetCorrectAnswers(v int) *AttemptEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrectAnswers(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *AttemptEventUpdate) AddCorrectAnswers(v int) *AttemptEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdate) SetScore(v float64) *AttemptEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableScore(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdate) AddScore(v float64) *AttemptEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTimeSpent sets the "time_spent" field.
func (_u *AttemptEventUpdate) SetTimeSpent(v int) *AttemptEventUpdate {
	_u.mutation.ResetTimeSpent()
	_u.mutation.SetTimeSpent(v)
	return _u
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTimeSpent(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTimeSpent(*v)
	}
	return _u
}

// AddTimeSpent adds value to the "time_spent" field.
func (_u *AttemptEventUpdate) AddTimeSpent(v int) *AttemptEventUpdate {
	_u.mutation.AddTimeSpent(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *AttemptEventUpdate) SetSource(v string) *AttemptEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSource(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *AttemptEventUpdate) SetFileName(v string) *AttemptEventUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableFileName(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *AttemptEventUpdate) ClearFileName() *AttemptEventUpdate {
	_u.mutation.ClearFileName()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamTitle(); ok {
		if err := attemptevent.ExamTitleValidator(v); err != nil {
			return &ValidationError{Name: "exam_title", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.exam_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := attemptevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := attemptevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := attemptevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamTitle(); ok {
		_spec.SetField(attemptevent.FieldExamTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(attemptevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(attemptevent.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(attemptevent.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(attemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(attemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpent(); ok {
		_spec.SetField(attemptevent.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpent(); ok {
		_spec.AddField(attemptevent.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(attemptevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(attemptevent.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(attemptevent.FieldFileName, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdateOne) SetAttemptID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetExamTitle sets the "exam_title" field.
func (_u *AttemptEventUpdateOne) SetExamTitle(v string) *AttemptEventUpdateOne {
	_u.mutation.SetExamTitle(v)
	return _u
}

// SetNillableExamTitle sets the "exam_title" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableExamTitle(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetExamTitle(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AttemptEventUpdateOne) SetCategory(v string) *AttemptEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCategory(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *AttemptEventUpdateOne) SetSubcategory(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSubcategory(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *AttemptEventUpdateOne) ClearSubcategory() *AttemptEventUpdateOne {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptEventUpdateOne) SetDifficulty(v string) *AttemptEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDifficulty(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *AttemptEventUpdateOne) SetTotalQuestions(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTotalQuestions(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *AttemptEventUpdateOne) AddTotalQuestions(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AttemptEventUpdateOne) SetCorrectAnswers(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrectAnswers(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *AttemptEventUpdateOne) AddCorrectAnswers(v int) *AttemptEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdateOne) SetScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableScore(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdateOne) AddScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTimeSpent sets the "time_spent" field.
func (_u *AttemptEventUpdateOne) SetTimeSpent(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTimeSpent()
	_u.mutation.SetTimeSpent(v)
	return _u
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTimeSpent(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeSpent(*v)
	}
	return _u
}

// AddTimeSpent adds value to the "time_spent" field.
func (_u *AttemptEventUpdateOne) AddTimeSpent(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTimeSpent(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *AttemptEventUpdateOne) SetSource(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSource(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *AttemptEventUpdateOne) SetFileName(v string) *AttemptEventUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableFileName(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *AttemptEventUpdateOne) ClearFileName() *AttemptEventUpdateOne {
	_u.mutation.ClearFileName()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamTitle(); ok {
		if err := attemptevent.ExamTitleValidator(v); err != nil {
			return &ValidationError{Name: "exam_title", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.exam_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := attemptevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := attemptevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := attemptevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamTitle(); ok {
		_spec.SetField(attemptevent.FieldExamTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(attemptevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(attemptevent.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(attemptevent.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(attemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(attemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpent(); ok {
		_spec.SetField(attemptevent.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpent(); ok {
		_spec.AddField(attemptevent.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(attemptevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(attemptevent.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(attemptevent.FieldFileName, field.TypeString)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
