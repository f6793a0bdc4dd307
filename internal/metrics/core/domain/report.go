package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

type Preset string

const (
	PresetLast7Days   Preset = "last_7_days"
	PresetLast30Days  Preset = "last_30_days"
	PresetLast3Months Preset = "last_3_months"
	PresetLast6Months Preset = "last_6_months"
	PresetLast1Year   Preset = "last_1_year"
)

// Months are approximated as 30 days.
var presetDays = map[Preset]int{
	PresetLast7Days:   7,
	PresetLast30Days:  30,
	PresetLast3Months: 90,
	PresetLast6Months: 180,
	PresetLast1Year:   365,
}

func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presetDays[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
	return p, nil
}

// Resolve returns [today-(N-1), today].
func (p Preset) Resolve(today time.Time) DateRange {
	end := Day(today)
	return DateRange{Start: end.AddDate(0, 0, -(presetDays[p] - 1)), End: end}
}

// ResolveRange turns an explicit start/end pair or a preset into a range.
// The explicit pair wins when both are given.
func ResolveRange(start, end, preset string, today time.Time) (DateRange, error) {
	start, end, preset = strings.TrimSpace(start), strings.TrimSpace(end), strings.TrimSpace(preset)

	switch {
	case start != "" && end != "":
		s, err := ParseDate(start)
		if err != nil {
			return DateRange{}, err
		}
		e, err := ParseDate(end)
		if err != nil {
			return DateRange{}, err
		}
		return NewDateRange(s, e)
	case start != "" || end != "":
		return DateRange{}, ErrIncompleteDateRange
	case preset != "":
		p, err := ParsePreset(preset)
		if err != nil {
			return DateRange{}, err
		}
		return p.Resolve(today), nil
	default:
		return DateRange{}, ErrMissingDateRange
	}
}

// ReportFilters narrows the records a report reads.
type ReportFilters struct {
	Team      string `json:"team,omitempty"`
	ChatterID int64  `json:"chatter_id,omitempty"`
}

// ReportConfig is a report specification as data: what clients send and
// what saved reports store.
type ReportConfig struct {
	Metrics    []string       `json:"metrics"`
	Dimensions []string       `json:"dimensions"`
	Start      string         `json:"start,omitempty"`
	End        string         `json:"end,omitempty"`
	Preset     string         `json:"preset,omitempty"`
	Filters    *ReportFilters `json:"filters,omitempty"`
}

// ReportSpec is a validated ReportConfig with its range resolved.
type ReportSpec struct {
	Metrics    []MetricKind
	Dimensions []DimensionKind
	Range      DateRange
	Filters    ReportFilters
}

// Resolve validates c completely before anything is computed.
func (c ReportConfig) Resolve(today time.Time) (ReportSpec, error) {
	metrics, err := ParseMetricKinds(c.Metrics)
	if err != nil {
		return ReportSpec{}, err
	}
	dims, err := ParseDimensionKinds(c.Dimensions)
	if err != nil {
		return ReportSpec{}, err
	}
	rng, err := ResolveRange(c.Start, c.End, c.Preset, today)
	if err != nil {
		return ReportSpec{}, err
	}
	spec := ReportSpec{Metrics: metrics, Dimensions: dims, Range: rng}
	if c.Filters != nil {
		spec.Filters = *c.Filters
		spec.Filters.Team = strings.TrimSpace(spec.Filters.Team)
	}
	return spec, nil
}

// ReportRow is a presentation row: grouping key fields side by side with a
// nested map of metric values.
type ReportRow struct {
	Key    []DimensionValue
	Values map[MetricKind]*float64
}

func NewReportRow(r AggregatedRow) ReportRow {
	values := make(map[MetricKind]*float64, len(r.Metrics))
	for i, m := range r.Metrics {
		values[m] = r.Values[i]
	}
	return ReportRow{Key: r.Key, Values: values}
}

// MarshalJSON renders {"<dimension>": value, ..., "values": {...}}.
func (r ReportRow) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Key)+2)
	for _, v := range r.Key {
		switch {
		case v.Kind == DimensionTeam && v.Null:
			out[string(v.Kind)] = nil
		case v.Kind == DimensionChatter:
			out["chatter"] = v.Name
			out["chatter_id"] = v.ID
		default:
			out[string(v.Kind)] = v.Label()
		}
	}
	values := make(map[string]*float64, len(r.Values))
	for m, v := range r.Values {
		values[string(m)] = v
	}
	out["values"] = values
	return json.Marshal(out)
}

// SortReportRows orders rows by their key, dimension by dimension.
func SortReportRows(rows []ReportRow) {
	slices.SortStableFunc(rows, func(a, b ReportRow) int {
		for i := range a.Key {
			if i >= len(b.Key) {
				return 1
			}
			if c := a.Key[i].Compare(b.Key[i]); c != 0 {
				return c
			}
		}
		return 0
	})
}
