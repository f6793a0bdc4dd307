package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type DimensionKind string

const (
	DimensionDate    DimensionKind = "date"
	DimensionTeam    DimensionKind = "team"
	DimensionChatter DimensionKind = "chatter"
)

func (d DimensionKind) Valid() bool {
	switch d {
	case DimensionDate, DimensionTeam, DimensionChatter:
		return true
	}
	return false
}

func ParseDimensionKind(s string) (DimensionKind, error) {
	d := DimensionKind(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDimension, s)
	}
	return d, nil
}

// ParseDimensionKinds parses a non-empty list of distinct dimension tokens.
func ParseDimensionKinds(tokens []string) ([]DimensionKind, error) {
	if len(tokens) == 0 {
		return nil, ErrNoDimensions
	}
	out := make([]DimensionKind, 0, len(tokens))
	seen := make(map[DimensionKind]bool, len(tokens))
	for _, t := range tokens {
		d, err := ParseDimensionKind(t)
		if err != nil {
			return nil, err
		}
		if seen[d] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDimension, t)
		}
		seen[d] = true
		out = append(out, d)
	}
	return out, nil
}

func ValidateDimensions(dims []DimensionKind) error {
	if len(dims) == 0 {
		return ErrNoDimensions
	}
	seen := make(map[DimensionKind]bool, len(dims))
	for _, d := range dims {
		if !d.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownDimension, string(d))
		}
		if seen[d] {
			return fmt.Errorf("%w: %q", ErrDuplicateDimension, string(d))
		}
		seen[d] = true
	}
	return nil
}

// DimensionValue is one component of a grouping key.
type DimensionValue struct {
	Kind DimensionKind
	Date time.Time // DimensionDate
	ID   int64     // chatter id, or team id when known
	Name string    // chatter or team name
	Null bool      // DimensionTeam only: the record had no team
}

// Project reads dimension d from r.
func Project(d DimensionKind, r PerformanceRecord) DimensionValue {
	switch d {
	case DimensionDate:
		return DimensionValue{Kind: d, Date: Day(r.Date)}
	case DimensionTeam:
		if r.TeamName == nil {
			return DimensionValue{Kind: d, Null: true}
		}
		v := DimensionValue{Kind: d, Name: *r.TeamName}
		if r.TeamID != nil {
			v.ID = *r.TeamID
		}
		return v
	default:
		return DimensionValue{Kind: DimensionChatter, ID: r.ChatterID, Name: r.ChatterName}
	}
}

// Label is the presentation value of v; empty for a null team.
func (v DimensionValue) Label() string {
	switch v.Kind {
	case DimensionDate:
		return v.Date.Format(DateLayout)
	default:
		return v.Name
	}
}

// key identifies v inside a grouping key. Teams group by name, chatters by id.
func (v DimensionValue) key() string {
	switch v.Kind {
	case DimensionDate:
		return "d:" + v.Date.Format(DateLayout)
	case DimensionTeam:
		if v.Null {
			return "t:-"
		}
		return "t:" + strconv.Quote(v.Name)
	default:
		return "c:" + strconv.FormatInt(v.ID, 10)
	}
}

// GroupKey joins the keys of a dimension tuple.
func GroupKey(values []DimensionValue) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(v.key())
	}
	return b.String()
}

// Compare orders two values of the same dimension: dates ascending, names
// lexicographic, null teams last, chatter id as the final tie-break.
func (v DimensionValue) Compare(o DimensionValue) int {
	switch v.Kind {
	case DimensionDate:
		return v.Date.Compare(o.Date)
	case DimensionTeam:
		switch {
		case v.Null && o.Null:
			return 0
		case v.Null:
			return 1
		case o.Null:
			return -1
		}
		return strings.Compare(v.Name, o.Name)
	default:
		if c := strings.Compare(v.Name, o.Name); c != 0 {
			return c
		}
		switch {
		case v.ID < o.ID:
			return -1
		case v.ID > o.ID:
			return 1
		}
		return 0
	}
}
