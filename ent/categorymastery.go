// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/categorymastery"
)

// CategoryMastery is the model entity for the CategoryMastery schema.
type CategoryMastery struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID string `json:"category_id,omitempty"`
	// TotalCorrect holds the value of the "total_correct" field.
	TotalCorrect int `json:"total_correct,omitempty"`
	// TotalAnswered holds the value of the "total_answered" field.
	TotalAnswered int `json:"total_answered,omitempty"`
	// Decay-weighted correctness, [0,100]
	WeightedCorrectScore float64 `json:"weighted_correct_score,omitempty"`
	// MasteryLevel holds the value of the "mastery_level" field.
	MasteryLevel string `json:"mastery_level,omitempty"`
	// LastAnswered holds the value of the "last_answered" field.
	LastAnswered *time.Time `json:"last_answered,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CategoryMastery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case categorymastery.FieldWeightedCorrectScore:
			values[i] = new(sql.NullFloat64)
		case categorymastery.FieldID, categorymastery.FieldTotalCorrect, categorymastery.FieldTotalAnswered:
			values[i] = new(sql.NullInt64)
		case categorymastery.FieldCategoryID, categorymastery.FieldMasteryLevel:
			values[i] = new(sql.NullString)
		case categorymastery.FieldLastAnswered:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CategoryMastery fields.
func (_m *CategoryMastery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case categorymastery.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case categorymastery.FieldCategoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				_m.CategoryID = value.String
			}
		case categorymastery.FieldTotalCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_correct", values[i])
			} else if value.Valid {
				_m.TotalCorrect = int(value.Int64)
			}
		case categorymastery.FieldTotalAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_answered", values[i])
			} else if value.Valid {
				_m.TotalAnswered = int(value.Int64)
			}
		case categorymastery.FieldWeightedCorrectScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weighted_correct_score", values[i])
			} else if value.Valid {
				_m.WeightedCorrectScore = value.Float64
			}
		case categorymastery.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				_m.MasteryLevel = value.String
			}
		case categorymastery.FieldLastAnswered:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_answered", values[i])
			} else if value.Valid {
				_m.LastAnswered = new(time.Time)
				*_m.LastAnswered = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CategoryMastery.
// This includes values selected through modifiers, order, etc.
func (_m *CategoryMastery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CategoryMastery.
// Note that you need to call CategoryMastery.Unwrap() before calling this method if this CategoryMastery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CategoryMastery) Update() *CategoryMasteryUpdateOne {
	return NewCategoryMasteryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CategoryMastery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CategoryMastery) Unwrap() *CategoryMastery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CategoryMastery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CategoryMastery) String() string {
	var builder strings.Builder
	builder.WriteString("CategoryMastery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("category_id=")
	builder.WriteString(_m.CategoryID)
	builder.WriteString(", ")
	builder.WriteString("total_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCorrect))
	builder.WriteString(", ")
	builder.WriteString("total_answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAnswered))
	builder.WriteString(", ")
	builder.WriteString("weighted_correct_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeightedCorrectScore))
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(_m.MasteryLevel)
	builder.WriteString(", ")
	if v := _m.LastAnswered; v != nil {
		builder.WriteString("last_answered=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CategoryMasteries is a parsable slice of CategoryMastery.
type CategoryMasteries []*CategoryMastery
