// Package entity defines the domain models for the quotes feature.
package entity

import "time"

// VolumeUnavailable is rendered when the provider omits the volume field.
// Spot metals feeds frequently carry no volume.
const VolumeUnavailable = "N/A"

// Candle represents one OHLCV (Open, High, Low, Close, Volume) bucket of the
// XAU/USD time series. Price fields keep the provider's string representation
// untouched so the rendered report shows exactly what upstream returned.
type Candle struct {
	Time   time.Time // Start of the bucket, UTC
	Open   string
	High   string
	Low    string
	Close  string
	Volume string // VolumeUnavailable when the provider omits it
}
