package catalog

import (
	"os"
	"regexp"
	"sort"

	"coursebot/internal/domain"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Admin is a human administrator who confirms payments
type Admin struct {
	ID     int64  `yaml:"id"`
	Handle string `yaml:"handle"`
}

// Currency describes one supported payment currency and its account
type Currency struct {
	Code       domain.Currency `yaml:"code"`
	Button     string          `yaml:"button"`
	Symbol     string          `yaml:"symbol"`
	Details    string          `yaml:"details"`
	Raw        string          `yaml:"raw"`
	CopyButton string          `yaml:"copy_button"`
}

// Price is the amount of a course in one currency and who receives it
type Price struct {
	Amount decimal.Decimal `yaml:"amount"`
	Admin  string          `yaml:"admin"`
}

// Course is a sellable offering (a course or a tier of one)
type Course struct {
	ID              domain.CourseID           `yaml:"id"`
	Name            string                    `yaml:"name"`
	Document        string                    `yaml:"document"`
	DocumentCaption string                    `yaml:"document_caption"`
	MoreButton      string                    `yaml:"more_button"`
	BuyButton       string                    `yaml:"buy_button"`
	Prices          map[domain.Currency]Price `yaml:"prices"`
}

// Menu is a main-menu entry. It either lists courses or links to URL.
// Entries with the same Row share a keyboard row.
type Menu struct {
	Label     string            `yaml:"label"`
	Row       int               `yaml:"row"`
	Text      string            `yaml:"text"`
	Courses   []domain.CourseID `yaml:"courses"`
	URL       string            `yaml:"url"`
	URLButton string            `yaml:"url_button"`
}

// Catalog is the immutable course offering configured at startup
type Catalog struct {
	Admins     map[string]Admin `yaml:"admins"`
	Currencies []Currency       `yaml:"currencies"`
	Courses    []Course         `yaml:"courses"`
	Menus      []Menu           `yaml:"menus"`

	decoder *Decoder
}

// Load reads a catalog file, expanding ${VAR} references from the environment
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog file")
	}
	return Parse(data)
}

// envRef matches ${VAR}; a bare $ is left alone
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Parse decodes and validates a catalog document. ${VAR} references in
// scalar values are replaced after parsing, so values are taken verbatim.
func Parse(data []byte) (*Catalog, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog")
	}
	expandNode(&root)

	var cat Catalog
	if root.Kind != 0 {
		if err := root.Decode(&cat); err != nil {
			return nil, errors.Wrap(err, "failed to decode catalog")
		}
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	decoder, err := NewDecoder(cat.courseIDs(), cat.currencyCodes())
	if err != nil {
		return nil, err
	}
	cat.decoder = decoder
	return &cat, nil
}

func expandNode(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && envRef.MatchString(n.Value) {
		n.Value = expandEnv(n.Value)
		// Plain scalars are re-resolved so an expanded id decodes as a number
		if n.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) == 0 {
			n.Tag = ""
		}
	}
	for _, child := range n.Content {
		expandNode(child)
	}
}

func expandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		return os.Getenv(envRef.FindStringSubmatch(ref)[1])
	})
}

// Validate checks that every price points to a known admin and currency
func (c *Catalog) Validate() error {
	if len(c.Courses) == 0 {
		return errors.New("catalog has no courses")
	}
	if len(c.Currencies) == 0 {
		return errors.New("catalog has no currencies")
	}
	for key, admin := range c.Admins {
		if admin.ID == 0 {
			return errors.Newf("admin %q has no id", key)
		}
	}

	currencies := make(map[domain.Currency]bool, len(c.Currencies))
	for _, cur := range c.Currencies {
		if cur.Code == "" {
			return errors.New("currency without code")
		}
		if currencies[cur.Code] {
			return errors.Newf("duplicate currency %q", cur.Code)
		}
		currencies[cur.Code] = true
	}

	courses := make(map[domain.CourseID]bool, len(c.Courses))
	for _, course := range c.Courses {
		if course.ID == "" {
			return errors.New("course without id")
		}
		if courses[course.ID] {
			return errors.Newf("duplicate course %q", course.ID)
		}
		courses[course.ID] = true

		for code, price := range course.Prices {
			if !currencies[code] {
				return errors.Newf("course %q: unknown currency %q", course.ID, code)
			}
			if _, ok := c.Admins[price.Admin]; !ok {
				return errors.Newf("course %q: unknown admin %q for %s", course.ID, price.Admin, code)
			}
			if !price.Amount.IsPositive() {
				return errors.Newf("course %q: price for %s must be positive", course.ID, code)
			}
		}
	}

	for _, menu := range c.Menus {
		if menu.Label == "" {
			return errors.New("menu without label")
		}
		for _, id := range menu.Courses {
			if !courses[id] {
				return errors.Newf("menu %q: unknown course %q", menu.Label, id)
			}
		}
	}
	return nil
}

// Course returns the course with the given id
func (c *Catalog) Course(id domain.CourseID) (Course, bool) {
	for _, course := range c.Courses {
		if course.ID == id {
			return course, true
		}
	}
	return Course{}, false
}

// Currency returns the currency with the given code
func (c *Catalog) Currency(code domain.Currency) (Currency, bool) {
	for _, cur := range c.Currencies {
		if cur.Code == code {
			return cur, true
		}
	}
	return Currency{}, false
}

// Menu returns the main-menu entry with the given label
func (c *Catalog) Menu(label string) (Menu, bool) {
	for _, menu := range c.Menus {
		if menu.Label == label {
			return menu, true
		}
	}
	return Menu{}, false
}

// MenuRows groups menu labels into keyboard rows, ordered by Row
func (c *Catalog) MenuRows() [][]string {
	type row struct {
		num    int
		labels []string
	}

	var rows []*row
	byNum := make(map[int]*row)
	for _, menu := range c.Menus {
		r, ok := byNum[menu.Row]
		if !ok {
			r = &row{num: menu.Row}
			byNum[menu.Row] = r
			rows = append(rows, r)
		}
		r.labels = append(r.labels, menu.Label)
	}
	sort.SliceStable(rows, func(a, b int) bool { return rows[a].num < rows[b].num })

	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = r.labels
	}
	return out
}

// Decode parses callback data against the catalog's courses and currencies
func (c *Catalog) Decode(data string) domain.Callback {
	if c.decoder == nil {
		return domain.Callback{Action: domain.ActionUnknown}
	}
	return c.decoder.Decode(data)
}

func (c *Catalog) courseIDs() []domain.CourseID {
	ids := make([]domain.CourseID, 0, len(c.Courses))
	for _, course := range c.Courses {
		ids = append(ids, course.ID)
	}
	return ids
}

func (c *Catalog) currencyCodes() []domain.Currency {
	codes := make([]domain.Currency, 0, len(c.Currencies))
	for _, cur := range c.Currencies {
		codes = append(codes, cur.Code)
	}
	return codes
}
