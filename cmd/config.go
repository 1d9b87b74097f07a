package cmd

// Config carries the process configuration. Latencies and display durations
// are expressed in milliseconds; zero values fall back to the controller
// defaults during composition.
type Config struct {
	HTTPPort          string
	SubmitLatencyMS   int
	BookingLatencyMS  int
	MessageLatencyMS  int
	ToastDurationMS   int
	OverlayDurationMS int
	MessageTemplates  []string
	SeedOrders        bool
}
