// Package render formats candle series into chat-ready text reports.
package render

import (
	"fmt"
	"strings"
	"time"

	"goldbot/internal/feature/quotes/domain/entity"
)

// Timezone selects the display timezone of a report.
type Timezone string

const (
	TimezoneUTC Timezone = "UTC"
	TimezoneIST Timezone = "IST"
)

// istLocation is the fixed UTC+5:30 offset. IST has no daylight saving, so a
// fixed zone is sufficient.
var istLocation = time.FixedZone("IST", 5*3600+30*60)

// ParseTimezone maps a timezone token to a Timezone. The second return value
// is false for anything other than "UTC" or "IST".
func ParseTimezone(s string) (Timezone, bool) {
	switch Timezone(s) {
	case TimezoneUTC:
		return TimezoneUTC, true
	case TimezoneIST:
		return TimezoneIST, true
	}
	return "", false
}

// Location returns the time.Location used to localize displayed timestamps.
func (tz Timezone) Location() *time.Location {
	if tz == TimezoneIST {
		return istLocation
	}
	return time.UTC
}

// Format renders a chronological candle sequence into a single text report:
// a header naming the selection and timezone, then one block per candle with
// the localized timestamp and the OHLCV values exactly as upstream sent them.
//
// The output is one blob with no pagination. Very large selections may exceed
// the chat platform's message-length limit and get truncated there.
func Format(candles []entity.Candle, label, interval string, tz Timezone) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 XAU/USD (Gold vs USD) OHLCV Data (%s - %s) - %s\n\n", label, interval, tz)

	loc := tz.Location()
	for _, c := range candles {
		fmt.Fprintf(&b, "🕒 %s\n", c.Time.In(loc).Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&b, "O: %s | H: %s | L: %s | C: %s | V: %s\n\n", c.Open, c.High, c.Low, c.Close, c.Volume)
	}
	return b.String()
}
