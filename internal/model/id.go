package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrInvalidID is returned when an ID cannot be parsed.
	ErrInvalidID = errors.New("invalid ID format")

	// ErrInvalidPrefix is returned when a board prefix is malformed.
	ErrInvalidPrefix = errors.New("invalid board prefix")

	// recordIDRegex matches record IDs like PB-07, pb-7, PB-007
	recordIDRegex = regexp.MustCompile(`^([A-Za-z]{2,3})-(\d+)$`)

	// prefixRegex matches board prefixes (2-3 letters)
	prefixRegex = regexp.MustCompile(`^[A-Za-z]{2,3}$`)
)

// ParseRecordID parses a record ID string and returns the prefix and number.
// Accepts various formats: PB-07, pb-7, PB-007 all parse to prefix="PB", num=7.
// Returns ErrInvalidID if the format is invalid.
func ParseRecordID(s string) (prefix string, num int, err error) {
	matches := recordIDRegex.FindStringSubmatch(s)
	if matches == nil {
		return "", 0, fmt.Errorf("%w: %q is not a valid record ID", ErrInvalidID, s)
	}

	prefix = strings.ToUpper(matches[1])
	num, err = strconv.Atoi(matches[2])
	if err != nil || num <= 0 {
		return "", 0, fmt.Errorf("%w: %q has invalid number", ErrInvalidID, s)
	}

	return prefix, num, nil
}

// FormatRecordID formats a record ID with zero-padding.
// Width is a minimum of 2 digits and grows with the number itself, so an
// already-issued ID never changes retroactively (IDs are immutable).
func FormatRecordID(prefix string, num int) string {
	return fmt.Sprintf("%s-%02d", strings.ToUpper(prefix), num)
}

// NormalizeID normalizes an ID to uppercase canonical form.
// Unparseable input is uppercased and returned as-is.
func NormalizeID(s string) string {
	prefix, num, err := ParseRecordID(s)
	if err != nil {
		return strings.ToUpper(s)
	}
	return FormatRecordID(prefix, num)
}

// ValidatePrefix checks that a board prefix is 2-3 letters.
func ValidatePrefix(prefix string) error {
	if !prefixRegex.MatchString(prefix) {
		return fmt.Errorf("%w: %q (expected 2-3 letters)", ErrInvalidPrefix, prefix)
	}
	return nil
}
