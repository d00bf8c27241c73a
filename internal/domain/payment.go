package domain

// CourseID identifies a sellable course offering (e.g. "express", "author_premium")
type CourseID string

// Currency is a payment currency code (e.g. "rub", "eur", "uah")
type Currency string

// Expectation records that the next photo from a user is a payment
// screenshot to be routed to AdminID for CourseID
type Expectation struct {
	UserID   int64
	AdminID  int64
	CourseID CourseID
}

// Trail holds the bot-authored message ids of a user's current flow
type Trail struct {
	MainMessageID int
	HasMain       bool
	SubMessageIDs []int
}

// MessageIDs returns main (if any) followed by all sub ids
func (t Trail) MessageIDs() []int {
	ids := make([]int, 0, len(t.SubMessageIDs)+1)
	if t.HasMain {
		ids = append(ids, t.MainMessageID)
	}
	return append(ids, t.SubMessageIDs...)
}

// Requisites is the payment instruction for a course and currency.
// Found is false when the pair is not in the catalog.
type Requisites struct {
	CourseID     CourseID
	Currency     Currency
	Text         string
	AdminKey     string
	AdminID      int64
	AdminHandle  string
	CopyLabel    string
	RawCopyValue string
	Found        bool
}

// FlowState is a step of the per-user payment flow
type FlowState string

const (
	StateIdle                   FlowState = "idle"
	StateCourseViewed           FlowState = "course_viewed"
	StateCurrencySelectionShown FlowState = "currency_selection_shown"
	StateRequisitesShown        FlowState = "requisites_shown"
	StateAwaitingScreenshot     FlowState = "awaiting_screenshot"
)
