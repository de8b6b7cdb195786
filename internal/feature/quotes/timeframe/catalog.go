// Package timeframe holds the static catalog of selectable timeframes and
// their mapping to a provider outputsize (candle count).
package timeframe

import "fmt"

// Provider interval tokens as understood by the Twelve Data API.
const (
	Interval5Min  = "5min"
	Interval15Min = "15min"
	Interval1H    = "1h"
)

// Entry is one selectable (interval, duration label) pair.
type Entry struct {
	Label      string // duration label, e.g. "4h"
	OutputSize int    // candle count requested from the provider
}

// Group is one section of the timeframe menu, all entries sharing an interval.
type Group struct {
	Interval string // provider interval token
	Display  string // human-facing interval name used on buttons
	Entries  []Entry
}

// candlesPerHour maps an interval token to how many candles cover one hour.
var candlesPerHour = map[string]int{
	Interval5Min:  12,
	Interval15Min: 4,
	Interval1H:    1,
}

var groups []Group

func init() {
	build := func(interval, display string, hours []int) Group {
		g := Group{Interval: interval, Display: display}
		for _, h := range hours {
			g.Entries = append(g.Entries, Entry{
				Label:      fmt.Sprintf("%dh", h),
				OutputSize: h * candlesPerHour[interval],
			})
		}
		return g
	}

	groups = []Group{
		build(Interval5Min, "5-min", []int{1, 2, 3, 4, 5}),
		build(Interval15Min, "15-min", []int{1, 2, 3, 4, 5, 6, 9, 12, 18, 21}),
		build(Interval1H, "1H", []int{6, 12, 18, 24, 30, 36, 42, 48, 54, 60}),
	}
}

// Groups returns the catalog in menu order: 5-min, 15-min, 1H sections.
// The returned slice is shared; callers must not mutate it.
func Groups() []Group {
	return groups
}

// Resolve maps an (interval, label) pair to its outputsize. The second return
// value is false for any pair not in the catalog; such a selection must never
// reach the market-data fetcher.
func Resolve(interval, label string) (int, bool) {
	for _, g := range groups {
		if g.Interval != interval {
			continue
		}
		for _, e := range g.Entries {
			if e.Label == label {
				return e.OutputSize, true
			}
		}
	}
	return 0, false
}

// KnownInterval reports whether s is one of the provider interval tokens.
func KnownInterval(s string) bool {
	_, ok := candlesPerHour[s]
	return ok
}
