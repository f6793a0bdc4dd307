package domain

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DailyPerformance is the write model of one chatter's raw numbers for one
// date. (ChatterID, Date) is the natural key.
type DailyPerformance struct {
	ChatterID int64
	TeamID    *int64
	Date      time.Time

	SalesAmount      *float64
	SoldCount        *int64
	RetentionCount   *int64
	UnlockCount      *int64
	OpportunityCount *int64
	TotalSales       *float64
	WorkedHours      *float64

	AvgResolutionTime *time.Duration

	SPH            *float64
	GoldenRatio    *float64
	ConversionRate *float64
	UnlockRatio    *float64
}

// DefaultOpportunities fills OpportunityCount with sold + retention +
// unlock when it was not supplied and at least one of them was.
func (p *DailyPerformance) DefaultOpportunities() {
	if p.OpportunityCount != nil {
		return
	}
	if p.SoldCount == nil && p.RetentionCount == nil && p.UnlockCount == nil {
		return
	}
	var total int64
	for _, v := range []*int64{p.SoldCount, p.RetentionCount, p.UnlockCount} {
		if v != nil {
			total += *v
		}
	}
	p.OpportunityCount = &total
}

var ErrInvalidDuration = errors.New("invalid resolution time")

var durationPart = regexp.MustCompile(`^(\d+)([hms])$`)

// ParseResolutionTime reads "1h 2m 3s", "3m 42s", "58s" or anything
// time.ParseDuration accepts.
func ParseResolutionTime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}

	var total time.Duration
	fields := strings.Fields(strings.ToLower(s))
	ok := true
	for _, f := range fields {
		m := durationPart.FindStringSubmatch(f)
		if m == nil {
			ok = false
			break
		}
		unit := time.Second
		switch m[2] {
		case "h":
			unit = time.Hour
		case "m":
			unit = time.Minute
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil || n > int64(math.MaxInt64/unit) {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidDuration, f)
		}
		part := time.Duration(n) * unit
		if total > math.MaxInt64-part {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidDuration, s)
		}
		total += part
	}
	if ok {
		return total, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	return d, nil
}
