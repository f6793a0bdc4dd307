package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"chatter-metrics-service/internal/metrics/core/domain"
	"chatter-metrics-service/internal/metrics/core/usecase"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func checkFormat(format string) error {
	if format != formatTable && format != formatJSON {
		return fmt.Errorf("unknown output format %q (want table or json)", format)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatValue prints nil as "-".
func formatValue(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func printReport(w io.Writer, format string, res *usecase.RunReportResult) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		rows := res.Rows
		if rows == nil {
			rows = []domain.ReportRow{}
		}
		return writeJSON(w, map[string]any{
			"range": map[string]string{
				"start": res.Spec.Range.Start.Format(domain.DateLayout),
				"end":   res.Spec.Range.End.Format(domain.DateLayout),
			},
			"rows": rows,
		})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := make([]string, 0, len(res.Spec.Dimensions)+len(res.Spec.Metrics))
	for _, d := range res.Spec.Dimensions {
		header = append(header, strings.ToUpper(string(d)))
	}
	for _, m := range res.Spec.Metrics {
		header = append(header, strings.ToUpper(string(m)))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range res.Rows {
		cells := make([]string, 0, len(header))
		for _, k := range row.Key {
			label := k.Label()
			if k.Null {
				label = "(no team)"
			}
			cells = append(cells, label)
		}
		for _, m := range res.Spec.Metrics {
			cells = append(cells, formatValue(row.Values[m]))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func printRankings(w io.Writer, format string, entries []domain.RankingEntry) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		type entry struct {
			Rank        int     `json:"rank"`
			ChatterID   int64   `json:"chatter_id"`
			ChatterName string  `json:"chatter_name"`
			Value       float64 `json:"value"`
		}
		out := make([]entry, 0, len(entries))
		for _, e := range entries {
			out = append(out, entry{Rank: e.Rank, ChatterID: e.ChatterID, ChatterName: e.ChatterName, Value: e.Value})
		}
		return writeJSON(w, out)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tCHATTER\tID\tVALUE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", e.Rank, e.ChatterName, e.ChatterID, strconv.FormatFloat(e.Value, 'f', -1, 64))
	}
	return tw.Flush()
}

func printRecompute(w io.Writer, format string, results []usecase.RecomputeResult) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		out := make([]map[string]any, 0, len(results))
		for _, r := range results {
			counts := make(map[string]int, len(r.Entries))
			for m, n := range r.Entries {
				counts[string(m)] = n
			}
			out = append(out, map[string]any{"date": r.Date.Format(domain.DateLayout), "entries": counts})
		}
		return writeJSON(w, out)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tMETRIC\tENTRIES")
	for _, r := range results {
		for _, m := range slices.Sorted(maps.Keys(r.Entries)) {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", r.Date.Format(domain.DateLayout), m, r.Entries[m])
		}
	}
	return tw.Flush()
}

func printKPIs(w io.Writer, format string, s *domain.KPISummary) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		values := make(map[string]any, len(s.Metrics))
		for _, m := range s.Metrics {
			values[string(m)] = map[string]any{
				"current":       s.CurrentVals[m],
				"previous":      s.PreviousVals[m],
				"delta_percent": s.DeltaPercent[m],
			}
		}
		return writeJSON(w, map[string]any{
			"current":  s.Current.String(),
			"previous": s.Previous.String(),
			"values":   values,
		})
	}

	fmt.Fprintf(w, "current %s, previous %s\n", s.Current, s.Previous)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tCURRENT\tPREVIOUS\tDELTA %")
	for _, m := range s.Metrics {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m,
			formatValue(s.CurrentVals[m]),
			formatValue(s.PreviousVals[m]),
			strconv.FormatFloat(s.DeltaPercent[m], 'f', 1, 64))
	}
	return tw.Flush()
}
