package telegram

// Client delivers operator-facing notifications. Implementations must be
// safe to construct when notifications are disabled; sends then become
// no-ops.
type Client interface {
	SendToChannel(text string) error
}
