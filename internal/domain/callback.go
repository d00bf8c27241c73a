package domain

// Action is the decoded kind of an inline button press
type Action int

const (
	ActionUnknown Action = iota
	ActionLearnMore
	ActionBuy
	ActionPay
	ActionCopy
)

func (a Action) String() string {
	switch a {
	case ActionLearnMore:
		return "learn_more"
	case ActionBuy:
		return "buy"
	case ActionPay:
		return "pay"
	case ActionCopy:
		return "copy"
	default:
		return "unknown"
	}
}

// Callback is a decoded callback payload. CourseID is empty for
// ActionCopy, Currency is empty for ActionBuy and ActionLearnMore.
type Callback struct {
	Action   Action
	CourseID CourseID
	Currency Currency
}
