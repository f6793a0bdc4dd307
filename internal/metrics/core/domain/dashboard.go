package domain

import (
	"fmt"
	"time"
)

// Thresholds classify chatters by SPH. Callers always pass them explicitly.
type Thresholds struct {
	ExcellentMin float64
	ReviewMax    float64
}

func (t Thresholds) Validate() error {
	if t.ReviewMax < 0 || t.ExcellentMin <= 0 || t.ReviewMax >= t.ExcellentMin {
		return fmt.Errorf("%w (excellent_min=%g, review_max=%g)", ErrInvalidThresholds, t.ExcellentMin, t.ReviewMax)
	}
	return nil
}

type Classification string

const (
	ClassExcellent   Classification = "excellent"
	ClassStandard    Classification = "standard"
	ClassNeedsReview Classification = "needs_review"
	ClassUnrated     Classification = "unrated"
)

func Classify(sph *float64, t Thresholds) Classification {
	switch {
	case sph == nil:
		return ClassUnrated
	case *sph >= t.ExcellentMin:
		return ClassExcellent
	case *sph <= t.ReviewMax:
		return ClassNeedsReview
	default:
		return ClassStandard
	}
}

// ChatterSnapshot is one line of the dashboard summary.
type ChatterSnapshot struct {
	ChatterID      int64
	ChatterName    string
	Team           *string
	Start          time.Time
	End            time.Time
	TotalSales     *float64
	WorkedHours    *float64
	SPH            *float64
	GoldenRatio    *float64
	UnlockRatio    *float64
	ResolutionSecs *float64
	Rank           int // 0: no sales recorded
	Class          Classification
}

// FormatDuration renders whole seconds as "1h 2m 3s", "2m 3s" or "3s".
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}
	h, m, s := total/3600, (total%3600)/60, total%60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// SecondsToDuration converts an aggregated seconds value back to a duration.
func SecondsToDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}
