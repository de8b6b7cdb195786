package entity

// ProviderError is returned when the market-data provider answers without a
// time series, e.g. on rate limits or bad credentials. Its message is shown to
// the user verbatim.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}
