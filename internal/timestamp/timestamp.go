// Package timestamp implements the event timestamp format
// "YYYY-MM-DD|HH:MM-HH:MM": a calendar date, a pipe, then a start-end
// time-of-day range. All values are naive local time; there is no zone
// handling anywhere in the format.
package timestamp

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidFormat is returned when the raw string does not match the
	// date|start-end grammar.
	ErrInvalidFormat = errors.New("timestamp does not match YYYY-MM-DD|HH:MM-HH:MM")

	// ErrInvalidDate is returned when the grammar is fine but the date
	// component is not a real calendar day (e.g. 2024-02-30).
	ErrInvalidDate = errors.New("timestamp date is not a valid calendar date")
)

const dateLayout = "2006-01-02"

// displayLayout matches JavaScript's Date.toDateString rendering, which the
// previous generation of clients already parse ("Wed May 01 2024").
const displayLayout = "Mon Jan 02 2006"

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// Hours and minutes may be written with one digit: "9:5-10:30" is
	// accepted alongside "09:05-10:30".
	timeRe = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})-(\d{1,2}):(\d{1,2})$`)
)

// Parsed is the decomposed form of a valid timestamp.
type Parsed struct {
	// Start is the calendar date combined with the range's start time.
	Start time.Time

	// TimeRange is the raw "HH:MM-HH:MM" substring, kept verbatim.
	TimeRange string
}

// Parse splits and validates raw, returning its decomposed form.
func Parse(raw string) (Parsed, error) {
	datePart, timePart, ok := strings.Cut(raw, "|")
	if !ok {
		return Parsed{}, ErrInvalidFormat
	}

	if !dateRe.MatchString(datePart) {
		return Parsed{}, ErrInvalidFormat
	}

	m := timeRe.FindStringSubmatch(timePart)
	if m == nil {
		return Parsed{}, ErrInvalidFormat
	}
	for i := 1; i < len(m); i += 2 {
		hour, _ := strconv.Atoi(m[i])
		minute, _ := strconv.Atoi(m[i+1])
		if hour > 23 || minute > 59 {
			return Parsed{}, ErrInvalidFormat
		}
	}

	year, _ := strconv.Atoi(datePart[0:4])
	month, _ := strconv.Atoi(datePart[5:7])
	day, _ := strconv.Atoi(datePart[8:10])
	startHour, _ := strconv.Atoi(m[1])
	startMinute, _ := strconv.Atoi(m[2])

	// time.Date normalizes out-of-range components (February 30 rolls into
	// March), so an impossible day is caught by re-rendering the date and
	// comparing against the original substring.
	start := time.Date(year, time.Month(month), day, startHour, startMinute, 0, 0, time.Local)
	if start.Format(dateLayout) != datePart {
		return Parsed{}, ErrInvalidDate
	}

	return Parsed{Start: start, TimeRange: timePart}, nil
}

// Validate reports whether raw is a well-formed timestamp with a real
// calendar date.
func Validate(raw string) error {
	_, err := Parse(raw)
	return err
}

// Decode renders raw for client responses: a long-form display date and the
// time range exactly as stored.
func Decode(raw string) (displayDate, displayTime string, err error) {
	p, err := Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("decode timestamp %q: %w", raw, err)
	}
	return p.Start.Format(displayLayout), p.TimeRange, nil
}
