package notation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/couchcryptid/meteoraid/internal/domain"
)

var (
	// statementRe splits a statement into its name and optional parenthesised
	// argument list, e.g. `areas(area14(11), area7(10))` -> "areas", "area14(11), area7(10)".
	statementRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*(?:\((.*)\))?$`)

	// areaCountRe parses one "areaK(N)" argument of areas(...).
	areaCountRe = regexp.MustCompile(`^area(\d+)\s*\(\s*(\d+)\s*\)$`)

	// dateRe matches a double- or single-quoted date literal.
	dateRe = regexp.MustCompile(`^(?:"([^"]*)"|'([^']*)')$`)
)

const (
	maxArea         = 30
	maxCloudPercent = 99
	maxRA           = 360
	maxDec          = 90
)

// ParseStatement turns a single statement (comment, checkpoint and "<<" suffix
// already removed) into the event it denotes.
func ParseStatement(stmt string) (domain.Event, error) {
	m := statementRe.FindStringSubmatch(strings.TrimSpace(stmt))
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatement, stmt)
	}
	name, args := m[1], m[2]
	hasArgs := strings.Contains(stmt, "(")

	if !hasArgs {
		switch name {
		case "period_start":
			return domain.PeriodStart{}, nil
		case "period_end":
			return domain.PeriodEnd{}, nil
		case "new_period":
			return domain.NewPeriod{}, nil
		case "break_start":
			return domain.BreakStart{}, nil
		case "break_end":
			return domain.BreakEnd{}, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatement, stmt)
	}

	switch name {
	case "date":
		return parseDate(args)
	case "clouds":
		return parseClouds(args)
	case "showers":
		return parseShowers(args)
	case "areas":
		return parseAreas(args)
	case "fieldC":
		return parseField(args)
	}

	if name == strings.ToLower(name) {
		if shower, ok := domain.ShowerFromCode(name); ok {
			return parseMeteor(shower, args)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStatement, stmt)
}

func parseDate(args string) (domain.Event, error) {
	m := dateRe.FindStringSubmatch(strings.TrimSpace(args))
	if m == nil {
		return nil, invalidArg("date", "expected a quoted string, got %q", args)
	}
	date := m[1] + m[2]
	if strings.TrimSpace(date) == "" {
		return nil, invalidArg("date", "empty date")
	}
	return domain.PeriodDate{Date: date}, nil
}

func parseClouds(args string) (domain.Event, error) {
	pct, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return nil, invalidArg("clouds", "expected an integer percentage, got %q", args)
	}
	if pct < 0 || pct > maxCloudPercent {
		return nil, invalidArg("clouds", "percentage %d outside 0-%d", pct, maxCloudPercent)
	}
	return domain.Clouds{Percent: pct}, nil
}

func parseShowers(args string) (domain.Event, error) {
	parts, err := splitArgs(args)
	if err != nil {
		return nil, invalidArg("showers", "%v", err)
	}
	showers := make([]domain.Shower, 0, len(parts))
	for _, code := range parts {
		s, ok := domain.ShowerFromCode(code)
		if !ok {
			return nil, invalidArg("showers", "unknown shower code %q", code)
		}
		showers = append(showers, s)
	}
	if len(showers) == 0 {
		return nil, invalidArg("showers", "at least one shower is required")
	}
	return domain.Showers{Showers: showers}, nil
}

func parseAreas(args string) (domain.Event, error) {
	parts, err := splitArgs(args)
	if err != nil {
		return nil, invalidArg("areas", "%v", err)
	}
	counts := make([]domain.AreaCount, 0, len(parts))
	for _, p := range parts {
		m := areaCountRe.FindStringSubmatch(p)
		if m == nil {
			return nil, invalidArg("areas", "expected areaK(N), got %q", p)
		}
		area, _ := strconv.Atoi(m[1])
		stars, _ := strconv.Atoi(m[2])
		if area < 1 || area > maxArea {
			return nil, invalidArg("areas", "area %d outside 1-%d", area, maxArea)
		}
		counts = append(counts, domain.AreaCount{Stars: stars, Area: area})
	}
	if len(counts) == 0 {
		return nil, invalidArg("areas", "at least one area count is required")
	}
	return domain.AreasCounted{Counts: counts}, nil
}

func parseField(args string) (domain.Event, error) {
	parts, err := splitArgs(args)
	if err != nil || len(parts) != 2 {
		return nil, invalidArg("fieldC", "expected (ra, dec), got %q", args)
	}
	ra, err := parseFinite(parts[0])
	if err != nil {
		return nil, invalidArg("fieldC", "right ascension: %v", err)
	}
	if ra < 0 || ra > maxRA {
		return nil, invalidArg("fieldC", "right ascension %v outside 0-%d", ra, maxRA)
	}
	dec, err := parseFinite(parts[1])
	if err != nil {
		return nil, invalidArg("fieldC", "declination: %v", err)
	}
	if dec < -maxDec || dec > maxDec {
		return nil, invalidArg("fieldC", "declination %v outside -%d-%d", dec, maxDec, maxDec)
	}
	return domain.FieldEvent{Field: domain.Field{RA: ra, Dec: dec}}, nil
}

func parseMeteor(shower domain.Shower, args string) (domain.Event, error) {
	name := strings.ToLower(shower.Code())
	mag, err := parseFinite(strings.TrimSpace(args))
	if err != nil {
		return nil, invalidArg(name, "expected a magnitude, got %q", args)
	}
	tenths := int(math.Round(mag * 10))
	if tenths%5 != 0 {
		return nil, invalidArg(name, "magnitude %v is not a multiple of 0.5", mag)
	}
	return domain.MeteorEvent{Meteor: domain.Meteor{Shower: shower, Magnitude: tenths}}, nil
}

// parseFinite parses a float, rejecting NaN and infinities.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

// splitArgs splits a comma-separated argument list at the top nesting level,
// so "area14(11), area7(10)" yields two parts.
func splitArgs(args string) ([]string, error) {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range args {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses in %q", args)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(args[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses in %q", args)
	}
	if last := strings.TrimSpace(args[start:]); last != "" || len(parts) > 0 {
		parts = append(parts, last)
	}
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("empty argument in %q", args)
		}
	}
	return parts, nil
}
