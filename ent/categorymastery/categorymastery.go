// Code generated by ent, DO NOT EDIT.

package categorymastery

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the categorymastery type in the database.
	Label = "category_mastery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCategoryID holds the string denoting the category_id field in the database.
	FieldCategoryID = "category_id"
	// FieldTotalCorrect holds the string denoting the total_correct field in the database.
	FieldTotalCorrect = "total_correct"
	// FieldTotalAnswered holds the string denoting the total_answered field in the database.
	FieldTotalAnswered = "total_answered"
	// FieldWeightedCorrectScore holds the string denoting the weighted_correct_score field in the database.
	FieldWeightedCorrectScore = "weighted_correct_score"
	// FieldMasteryLevel holds the string denoting the mastery_level field in the database.
	FieldMasteryLevel = "mastery_level"
	// FieldLastAnswered holds the string denoting the last_answered field in the database.
	FieldLastAnswered = "last_answered"
	// Table holds the table name of the categorymastery in the database.
	Table = "category_masteries"
)

// Columns holds all SQL columns for categorymastery fields.
var Columns = []string{
	FieldID,
	FieldCategoryID,
	FieldTotalCorrect,
	FieldTotalAnswered,
	FieldWeightedCorrectScore,
	FieldMasteryLevel,
	FieldLastAnswered,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	CategoryIDValidator func(string) error
	// DefaultTotalCorrect holds the default value on creation for the "total_correct" field.
	DefaultTotalCorrect int
	// TotalCorrectValidator is a validator for the "total_correct" field. It is called by the builders before save.
	TotalCorrectValidator func(int) error
	// DefaultTotalAnswered holds the default value on creation for the "total_answered" field.
	DefaultTotalAnswered int
	// TotalAnsweredValidator is a validator for the "total_answered" field. It is called by the builders before save.
	TotalAnsweredValidator func(int) error
	// DefaultWeightedCorrectScore holds the default value on creation for the "weighted_correct_score" field.
	DefaultWeightedCorrectScore float64
	// DefaultMasteryLevel holds the default value on creation for the "mastery_level" field.
	DefaultMasteryLevel string
)

// OrderOption defines the ordering options for the CategoryMastery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCategoryID orders the results by the category_id field.
func ByCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryID, opts...).ToFunc()
}

// ByTotalCorrect orders the results by the total_correct field.
func ByTotalCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCorrect, opts...).ToFunc()
}

// ByTotalAnswered orders the results by the total_answered field.
func ByTotalAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAnswered, opts...).ToFunc()
}

// ByWeightedCorrectScore orders the results by the weighted_correct_score field.
func ByWeightedCorrectScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeightedCorrectScore, opts...).ToFunc()
}

// ByMasteryLevel orders the results by the mastery_level field.
func ByMasteryLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryLevel, opts...).ToFunc()
}

// ByLastAnswered orders the results by the last_answered field.
func ByLastAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAnswered, opts...).ToFunc()
}
