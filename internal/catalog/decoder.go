package catalog

import (
	"regexp"
	"strings"

	"coursebot/internal/domain"

	"github.com/cockroachdb/errors"
)

// Decoder turns callback payloads into domain.Callback values.
// Accepted forms: {course}_more, {course}_buy, {course}_pay_{currency}, copy_{currency}.
type Decoder struct {
	re *regexp.Regexp
}

// NewDecoder compiles a decoder for the given closed sets
func NewDecoder(courses []domain.CourseID, currencies []domain.Currency) (*Decoder, error) {
	if len(courses) == 0 || len(currencies) == 0 {
		return nil, errors.New("decoder needs at least one course and one currency")
	}

	courseAlt := make([]string, len(courses))
	for i, id := range courses {
		courseAlt[i] = regexp.QuoteMeta(string(id))
	}
	currencyAlt := make([]string, len(currencies))
	for i, code := range currencies {
		currencyAlt[i] = regexp.QuoteMeta(string(code))
	}
	c := strings.Join(courseAlt, "|")
	k := strings.Join(currencyAlt, "|")

	pattern := `^(?:(` + c + `)_(more|buy)|(` + c + `)_pay_(` + k + `)|copy_(` + k + `))$`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile callback pattern")
	}
	return &Decoder{re: re}, nil
}

// Decode returns ActionUnknown for anything outside the grammar
func (d *Decoder) Decode(data string) domain.Callback {
	m := d.re.FindStringSubmatch(data)
	if m == nil {
		return domain.Callback{Action: domain.ActionUnknown}
	}

	switch {
	case m[1] != "":
		action := domain.ActionBuy
		if m[2] == "more" {
			action = domain.ActionLearnMore
		}
		return domain.Callback{Action: action, CourseID: domain.CourseID(m[1])}
	case m[3] != "":
		return domain.Callback{
			Action:   domain.ActionPay,
			CourseID: domain.CourseID(m[3]),
			Currency: domain.Currency(m[4]),
		}
	default:
		return domain.Callback{Action: domain.ActionCopy, Currency: domain.Currency(m[5])}
	}
}

// LearnMoreData encodes the "learn more" payload for a course
func LearnMoreData(id domain.CourseID) string {
	return string(id) + "_more"
}

// BuyData encodes the "buy" payload for a course
func BuyData(id domain.CourseID) string {
	return string(id) + "_buy"
}

// PayData encodes the currency selection payload
func PayData(id domain.CourseID, code domain.Currency) string {
	return string(id) + "_pay_" + string(code)
}

// CopyData encodes the "reveal number" payload
func CopyData(code domain.Currency) string {
	return "copy_" + string(code)
}
