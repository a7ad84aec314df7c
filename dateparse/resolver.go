// Package dateparse resolves sitemap last-modified expressions.
//
// Keywords ("now", "today", "yesterday", ...), weekdays ("monday",
// "next friday") and offsets ("+2 days", "3 weeks ago", "next month") are
// resolved against the supplied current time. Anything else is handed to
// araddon/dateparse, which understands most absolute date layouts, and
// then to markusmobius/go-dateparser for natural-language forms such as
// "in 2 days".
package dateparse

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fwojciec/seokit"
	dps "github.com/markusmobius/go-dateparser"
)

// Ensure Resolver implements seokit.DateResolver.
var _ seokit.DateResolver = (*Resolver)(nil)

// Resolver resolves date expressions.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the time expr refers to, relative to now. Absolute dates
// without a zone are interpreted in now's location.
func (r *Resolver) Resolve(expr string, now time.Time) (time.Time, error) {
	raw := strings.TrimSpace(expr)
	s := strings.ToLower(raw)
	if s == "" {
		return time.Time{}, &seokit.DateParseError{Expr: expr, Err: errors.New("empty expression")}
	}

	switch s {
	case "now":
		return now, nil
	case "today", "midnight":
		return midnight(now), nil
	case "yesterday":
		return midnight(now).AddDate(0, 0, -1), nil
	case "tomorrow":
		return midnight(now).AddDate(0, 0, 1), nil
	}

	fields := tokenize(s)
	if t, ok := resolveWeekday(fields, now); ok {
		return t, nil
	}
	if t, ok := resolveOffset(fields, now); ok {
		return t, nil
	}

	t, err := dateparse.ParseIn(raw, now.Location())
	if err == nil {
		return t, nil
	}

	cfg := &dps.Configuration{
		CurrentTime:     now,
		DefaultTimezone: now.Location(),
	}
	if dt, nerr := dps.Parse(cfg, raw); nerr == nil && !dt.Time.IsZero() {
		return dt.Time, nil
	}
	return time.Time{}, &seokit.DateParseError{Expr: expr, Err: err}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// gluedRE splits tokens such as "+3days" into number and unit.
var gluedRE = regexp.MustCompile(`^([+-]?\d+)([a-z]+)$`)

func tokenize(s string) []string {
	var out []string
	for _, f := range strings.Fields(s) {
		if m := gluedRE.FindStringSubmatch(f); m != nil {
			out = append(out, m[1], m[2])
			continue
		}
		out = append(out, f)
	}
	return out
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// resolveWeekday handles "monday", "this monday", "next monday" and
// "last monday", all at midnight. A bare or "this" weekday is today when
// today matches; "next" and "last" never are.
func resolveWeekday(fields []string, now time.Time) (time.Time, bool) {
	var dir string
	switch len(fields) {
	case 1:
		dir = "this"
	case 2:
		dir = fields[0]
		fields = fields[1:]
	default:
		return time.Time{}, false
	}
	wd, ok := weekdays[fields[0]]
	if !ok {
		return time.Time{}, false
	}

	today := midnight(now)
	ahead := (int(wd) - int(today.Weekday()) + 7) % 7
	switch dir {
	case "this":
		return today.AddDate(0, 0, ahead), true
	case "next":
		if ahead == 0 {
			ahead = 7
		}
		return today.AddDate(0, 0, ahead), true
	case "last":
		behind := (int(today.Weekday()) - int(wd) + 7) % 7
		if behind == 0 {
			behind = 7
		}
		return today.AddDate(0, 0, -behind), true
	}
	return time.Time{}, false
}

// resolveOffset handles offset expressions. ok is false unless every token
// is part of a recognised offset, so absolute dates such as "1 March 2024"
// fall through to the date parsers.
func resolveOffset(fields []string, now time.Time) (time.Time, bool) {
	if len(fields) == 0 {
		return time.Time{}, false
	}

	sign := 1
	if fields[len(fields)-1] == "ago" {
		sign = -1
		fields = fields[:len(fields)-1]
	}

	if len(fields) == 2 && (fields[0] == "next" || fields[0] == "last") {
		n := 1
		if fields[0] == "last" {
			n = -1
		}
		return addUnit(now, n*sign, fields[1])
	}

	if len(fields) == 0 || len(fields)%2 != 0 {
		return time.Time{}, false
	}

	t := now
	for i := 0; i < len(fields); i += 2 {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return time.Time{}, false
		}
		var ok bool
		if t, ok = addUnit(t, n*sign, fields[i+1]); !ok {
			return time.Time{}, false
		}
	}
	return t, true
}

func addUnit(t time.Time, n int, unit string) (time.Time, bool) {
	switch unit {
	case "sec", "secs", "second", "seconds":
		return t.Add(time.Duration(n) * time.Second), true
	case "min", "mins", "minute", "minutes":
		return t.Add(time.Duration(n) * time.Minute), true
	case "hour", "hours":
		return t.Add(time.Duration(n) * time.Hour), true
	case "day", "days":
		return t.AddDate(0, 0, n), true
	case "week", "weeks":
		return t.AddDate(0, 0, 7*n), true
	case "fortnight", "fortnights":
		return t.AddDate(0, 0, 14*n), true
	case "month", "months":
		return t.AddDate(0, n, 0), true
	case "year", "years":
		return t.AddDate(n, 0, 0), true
	}
	return time.Time{}, false
}
