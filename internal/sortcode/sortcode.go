// Package sortcode parses textual sort directives such as
// "firstName asc, lastName desc" into ordered column/direction pairs.
package sortcode

import (
	"fmt"
	"strings"

	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/fetcher"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Order struct {
	Prop   string
	Column string
	Desc   bool
}

func (o Order) String() string {
	if o.Desc {
		return o.Prop + " desc"
	}
	return o.Prop + " asc"
}

// ParseError reports a sort directive that names an unknown property or an
// unknown direction.
type ParseError struct {
	Code   string
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid sort code %q: %s %q", e.Code, e.Reason, e.Token)
}

// Parse splits code on commas; each part is a property name optionally
// followed by "asc" or "desc" (case-insensitive, default asc). Properties are
// resolved against t. An empty code yields no orders.
func Parse(code string, t *fetcher.Type) ([]Order, error) {
	var orders []Order

	for _, part := range strings.Split(code, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 2 {
			return nil, &ParseError{Code: code, Token: strings.TrimSpace(part), Reason: "too many tokens in"}
		}

		prop, ok := t.Prop(fields[0])
		if !ok {
			return nil, &ParseError{Code: code, Token: fields[0], Reason: "unknown property"}
		}

		o := Order{Prop: prop.Name, Column: prop.Column}
		if len(fields) == 2 {
			switch strings.ToLower(fields[1]) {
			case "asc":
			case "desc":
				o.Desc = true
			default:
				return nil, &ParseError{Code: code, Token: fields[1], Reason: "unknown direction"}
			}
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// MustParse is Parse for directives fixed at compile time.
func MustParse(code string, t *fetcher.Type) []Order {
	orders, err := Parse(code, t)
	if err != nil {
		panic(err)
	}
	return orders
}

func Apply(db *gorm.DB, orders []Order) *gorm.DB {
	for _, o := range orders {
		db = db.Order(clause.OrderByColumn{
			Column: clause.Column{Name: o.Column},
			Desc:   o.Desc,
		})
	}
	return db
}
