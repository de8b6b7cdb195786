package entity

// Button is one inline keyboard button, independent of the chat platform's
// wire types. Data is the callback payload sent back when the user taps it.
type Button struct {
	Text string
	Data string
}
