package domain

// ParseMode selects how the platform renders message text
type ParseMode string

const (
	ParseModeNone     ParseMode = ""
	ParseModeHTML     ParseMode = "HTML"
	ParseModeMarkdown ParseMode = "Markdown"
)

// Button is an inline keyboard button. Exactly one of Data or URL is set.
type Button struct {
	Text string
	Data string
	URL  string
}

// Message is an outbound text message with an optional inline keyboard
type Message struct {
	Text      string
	ParseMode ParseMode
	Inline    [][]Button
}
