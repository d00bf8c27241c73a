package catalog

import (
	"fmt"
	"strings"

	"coursebot/internal/domain"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// Resolve returns the payment instruction for a course and currency.
// Unknown pairs yield a Requisites with Found == false.
func (c *Catalog) Resolve(id domain.CourseID, code domain.Currency) domain.Requisites {
	notFound := domain.Requisites{CourseID: id, Currency: code}

	course, ok := c.Course(id)
	if !ok {
		return notFound
	}
	price, ok := course.Prices[code]
	if !ok {
		return notFound
	}
	cur, ok := c.Currency(code)
	if !ok {
		return notFound
	}
	admin, ok := c.Admins[price.Admin]
	if !ok {
		return notFound
	}

	return domain.Requisites{
		CourseID:     id,
		Currency:     code,
		Text:         requisitesText(course, cur, price.Amount),
		AdminKey:     price.Admin,
		AdminID:      admin.ID,
		AdminHandle:  admin.Handle,
		CopyLabel:    cur.CopyButton,
		RawCopyValue: cur.Raw,
		Found:        true,
	}
}

// Lookup is Resolve for callers that want an error for unknown pairs
func (c *Catalog) Lookup(id domain.CourseID, code domain.Currency) (domain.Requisites, error) {
	req := c.Resolve(id, code)
	if !req.Found {
		return req, errors.Wrapf(domain.ErrRequisitesNotFound, "course %q, currency %q", id, code)
	}
	return req, nil
}

// Document returns the file id and caption of a course's descriptive document
func (c *Catalog) Document(id domain.CourseID) (fileID, caption string, err error) {
	course, ok := c.Course(id)
	if !ok || course.Document == "" {
		return "", "", errors.Wrapf(domain.ErrDocumentUnavailable, "course %q", id)
	}
	return course.Document, course.DocumentCaption, nil
}

// CopyValue returns the copy label and raw account value for a currency
func (c *Catalog) CopyValue(code domain.Currency) (label, raw string, ok bool) {
	cur, ok := c.Currency(code)
	if !ok || cur.Raw == "" {
		return "", "", false
	}
	return cur.CopyButton, cur.Raw, true
}

func requisitesText(course Course, cur Currency, amount decimal.Decimal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💳 Оплата: %s\n\n", course.Name)
	fmt.Fprintf(&b, "Сумма к оплате: %s\n\n", FormatPrice(amount, cur.Symbol))
	b.WriteString(strings.TrimSpace(cur.Details))
	return b.String()
}

// FormatPrice renders an amount with thousands grouping, e.g. "12 500 ₽"
func FormatPrice(amount decimal.Decimal, symbol string) string {
	var s string
	if amount.IsInteger() {
		s = amount.StringFixed(0)
	} else {
		s = amount.StringFixed(2)
	}

	intPart, frac, _ := strings.Cut(s, ".")
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(' ')
		}
		grouped.WriteRune(r)
	}

	out := sign + grouped.String()
	if frac != "" {
		out += "," + frac
	}
	if symbol != "" {
		out += " " + symbol
	}
	return out
}

// StripSeparators removes the formatting separators people put in card numbers and IBANs
func StripSeparators(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '-', '.', '\u00a0':
			return -1
		}
		return r
	}, raw)
}
