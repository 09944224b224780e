package entity

import (
	"fmt"
	"strings"
	"time"
)

// Shared field rules. Every entity constructor and mutator funnels through
// these so that construction-time and update-time validation cannot drift.

// validateName enforces the common 2..100 character rule for human-readable
// names and titles. The minimum is measured on the trimmed value, the maximum
// on the raw value, matching how updates behave everywhere in this domain.
func validateName(field, label, value string) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{Field: field, Message: label + " cannot be empty"}
	}
	if len(value) > 100 {
		return ValidationError{Field: field, Message: label + " cannot exceed 100 characters"}
	}
	if len(strings.TrimSpace(value)) < 2 {
		return ValidationError{Field: field, Message: label + " must be at least 2 characters long"}
	}
	return nil
}

// dateOnly drops the time-of-day component and pins the result to UTC, so
// date fields compare as calendar dates regardless of the Location they were
// scanned or constructed with (pgx yields UTC midnights for date columns
// while time.Now is local).
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func today() time.Time {
	return dateOnly(time.Now())
}

// notInFuture rejects date fields set after today.
func notInFuture(field, label string, value time.Time) error {
	if dateOnly(value).After(today()) {
		return ValidationError{Field: field, Message: label + " cannot be in the future"}
	}
	return nil
}

func notBefore(field, label string, value time.Time, min time.Time) error {
	if dateOnly(value).Before(min) {
		return ValidationError{Field: field, Message: fmt.Sprintf("%s cannot be before %d", label, min.Year())}
	}
	return nil
}

// yearsBetween is the exact, month/day-aware age calculation used for
// members.
func yearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}

// daysBetween counts whole calendar days from a to b. Both ends are
// normalized to UTC midnights first, so the count stays exact when the
// inputs carry different Locations or the interval spans a DST change.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)) / (24 * time.Hour))
}
