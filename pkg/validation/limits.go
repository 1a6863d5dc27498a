package validation

import (
	"unicode/utf8"

	dErrors "partysearch/pkg/domain-errors"
)

// Field length limits, in characters.
const (
	MaxPartyIDLength    = 64
	MaxPartyNameLength  = 256
	MaxMatchScoreLength = 32
)

// MaxBulkParties caps the records accepted by one bulk load.
const MaxBulkParties = 10_000

// CheckSliceCount validates that a collection does not exceed the maximum count.
func CheckSliceCount(fieldName string, count, max int) error {
	if count > max {
		return dErrors.Newf(dErrors.CodeValidation, "too many %s: max %d allowed", fieldName, max)
	}
	return nil
}

// CheckStringLength validates that a string does not exceed max characters.
func CheckStringLength(fieldName, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return dErrors.Newf(dErrors.CodeValidation, "%s exceeds max length of %d", fieldName, max)
	}
	return nil
}
