// Package validation checks user-supplied request parameters before they
// reach the Intervals.icu API.
package validation

import (
	"errors"
	"regexp"
	"time"
)

var athleteIDPattern = regexp.MustCompile(`^i?\d+$`)

// ValidateAthleteID checks the athlete ID format. An empty string is
// allowed (no default athlete configured); otherwise the ID must be all
// digits or 'i' followed by digits.
func ValidateAthleteID(athleteID string) error {
	if athleteID != "" && !athleteIDPattern.MatchString(athleteID) {
		return errors.New("athlete ID must be all digits (e.g. 123456) or start with 'i' followed by digits (e.g. i123456)")
	}
	return nil
}

// ValidateDate checks that a date string is in YYYY-MM-DD form and returns
// it unchanged when valid.
func ValidateDate(dateStr string) (string, error) {
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return "", errors.New("invalid date format, please use YYYY-MM-DD")
	}
	return dateStr, nil
}
