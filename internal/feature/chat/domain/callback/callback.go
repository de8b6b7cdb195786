// Package callback encodes and decodes inline-button payloads.
//
// Two payload shapes exist. A timeframe selection is "<interval>_<label>",
// e.g. "15min_9h". A timezone toggle is "convert_<UTC|IST>_<interval>_<label>",
// e.g. "convert_IST_1h_24h".
//
// Decoding is total: anything that does not match one of the shapes comes back
// as KindInvalid instead of leaking malformed input into the controller.
package callback

import (
	"fmt"
	"strings"

	"goldbot/internal/feature/quotes/render"
	"goldbot/internal/feature/quotes/timeframe"
)

const togglePrefix = "convert"

// Kind tags the decoded variant of a callback payload.
type Kind int

const (
	KindInvalid Kind = iota
	KindTimeframeSelected
	KindTimezoneToggled
)

// Callback is the decoded form of a button payload.
type Callback struct {
	Kind     Kind
	Interval string          // set for TimeframeSelected and TimezoneToggled
	Label    string          // set for TimeframeSelected and TimezoneToggled
	Timezone render.Timezone // set for TimezoneToggled only
}

// TimeframeData builds the payload for a timeframe selection button.
func TimeframeData(interval, label string) string {
	return fmt.Sprintf("%s_%s", interval, label)
}

// ToggleData builds the payload for a timezone toggle button.
func ToggleData(tz render.Timezone, interval, label string) string {
	return fmt.Sprintf("%s_%s_%s_%s", togglePrefix, tz, interval, label)
}

// Decode parses a raw payload into its tagged variant. It validates shape and
// tokens only; whether the (interval, label) pair exists in the catalog is the
// controller's decision.
func Decode(data string) Callback {
	parts := strings.Split(data, "_")

	switch {
	case len(parts) == 2:
		interval, label := parts[0], parts[1]
		if !timeframe.KnownInterval(interval) || label == "" {
			return Callback{Kind: KindInvalid}
		}
		return Callback{Kind: KindTimeframeSelected, Interval: interval, Label: label}

	case len(parts) == 4 && parts[0] == togglePrefix:
		tz, ok := render.ParseTimezone(parts[1])
		if !ok {
			return Callback{Kind: KindInvalid}
		}
		interval, label := parts[2], parts[3]
		if !timeframe.KnownInterval(interval) || label == "" {
			return Callback{Kind: KindInvalid}
		}
		return Callback{Kind: KindTimezoneToggled, Interval: interval, Label: label, Timezone: tz}
	}

	return Callback{Kind: KindInvalid}
}
