package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/mediactl/mediactl-go/pkg/trace"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents       int
	EventsByStream    map[trace.Stream]int
	EventsByDirection map[trace.Direction]int
	EventsByKind      map[trace.Kind]int
	Sessions          map[string]*SessionStats
	Migrations        int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single combiner session.
type SessionStats struct {
	FirstSeen     time.Time
	LastSeen      time.Time
	Inputs        int
	MergedLoads   int
	MergedRemoves int
	Keys          map[string]bool
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

// CollectStats reads the trace file at path and aggregates it.
func CollectStats(path string) (*Stats, error) {
	reader, err := trace.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByStream:    make(map[trace.Stream]int),
		EventsByDirection: make(map[trace.Direction]int),
		EventsByKind:      make(map[trace.Kind]int),
		Sessions:          make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByStream[event.Stream]++
		stats.EventsByDirection[event.Direction]++
		stats.EventsByKind[event.Kind]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
				Keys:      make(map[string]bool),
			}
			stats.Sessions[event.SessionID] = sess
		}
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}
		sess.Keys[event.Key] = true

		switch {
		case event.Direction == trace.DirectionIn:
			sess.Inputs++
			if event.OldKey != "" && event.OldKey != event.Key {
				stats.Migrations++
			}
		case event.Kind == trace.KindLoaded:
			sess.MergedLoads++
		default:
			sess.MergedRemoves++
		}
	}

	return stats, nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Media Combiner Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Stream:")
	for _, s := range []trace.Stream{trace.StreamContent, trace.StreamDevice, trace.StreamMerged} {
		if count := stats.EventsByStream[s]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", s.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, d := range []trace.Direction{trace.DirectionIn, trace.DirectionOut} {
		if count := stats.EventsByDirection[d]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", d.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	for _, k := range []trace.Kind{trace.KindLoaded, trace.KindRemoved} {
		if count := stats.EventsByKind[k]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", k.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if stats.Migrations > 0 {
		fmt.Fprintf(w, "Key Migrations: %d\n", stats.Migrations)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) == 0 {
		return
	}

	type sessionInfo struct {
		id    string
		stats *SessionStats
	}
	sessions := make([]sessionInfo, 0, len(stats.Sessions))
	for id, ss := range stats.Sessions {
		sessions = append(sessions, sessionInfo{id, ss})
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
	})

	fmt.Fprintln(w)
	for _, s := range sessions {
		duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
		fmt.Fprintf(w, "  [%s] %d inputs, %d keys, duration %s\n",
			trace.ShortID(s.id), s.stats.Inputs, len(s.stats.Keys), duration)
		fmt.Fprintf(w, "           Merged: %d loaded, %d removed\n", s.stats.MergedLoads, s.stats.MergedRemoves)
	}
}
