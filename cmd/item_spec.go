package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/youssefsz/invoicer"
)

// parseItemSpec parses a line-item definition of the form
// name:quantity:price[:discount[:taxable]]. Discount is a percentage;
// taxable is t or f and defaults to t.
func parseItemSpec(spec string) (invoicer.InvoiceItem, error) {
	var it invoicer.InvoiceItem
	parts := strings.Split(spec, ":")
	if len(parts) < 3 || len(parts) > 5 {
		return it, fmt.Errorf("invalid item %q: want name:quantity:price[:discount[:taxable]]", spec)
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil || qty < 1 {
		return it, fmt.Errorf("invalid quantity in %q: must be an integer of at least 1", spec)
	}
	price, err := decimal.NewFromString(parts[2])
	if err != nil || price.IsNegative() {
		return it, fmt.Errorf("invalid price in %q: must be a non-negative number", spec)
	}
	discount := decimal.Zero
	if len(parts) > 3 && parts[3] != "" {
		discount, err = decimal.NewFromString(parts[3])
		if err != nil || discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
			return it, fmt.Errorf("invalid discount in %q: must be a percentage in [0,100]", spec)
		}
	}
	taxable := true
	if len(parts) > 4 {
		switch parts[4] {
		case "t", "true":
			taxable = true
		case "f", "false":
			taxable = false
		default:
			return it, fmt.Errorf("invalid taxable flag in %q: want t or f", spec)
		}
	}
	return invoicer.InvoiceItem{
		ID:           invoicer.NewID(),
		Name:         parts[0],
		Quantity:     qty,
		PricePerUnit: price,
		Discount:     discount,
		Taxable:      taxable,
	}, nil
}

// itemsFlag collects repeated -item definitions.
type itemsFlag struct {
	items []invoicer.InvoiceItem
}

func (l *itemsFlag) String() string { return fmt.Sprintf("%d item(s)", len(l.items)) }

func (l *itemsFlag) Set(spec string) error {
	it, err := parseItemSpec(spec)
	if err != nil {
		return err
	}
	l.items = append(l.items, it)
	return nil
}

// stringsFlag collects a repeatable string flag.
type stringsFlag []string

func (l *stringsFlag) String() string { return strings.Join(*l, ",") }

func (l *stringsFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// resolveSavedSpec turns a -saved reference (id[:quantity]) into a line
// item using the template's name and default price.
func resolveSavedSpec(s *invoicer.Store, spec string) (invoicer.InvoiceItem, error) {
	var it invoicer.InvoiceItem
	id, qtyStr, hasQty := strings.Cut(spec, ":")
	qty := 1
	if hasQty {
		var err error
		qty, err = strconv.Atoi(qtyStr)
		if err != nil || qty < 1 {
			return it, fmt.Errorf("invalid quantity in %q: must be an integer of at least 1", spec)
		}
	}
	saved := s.SavedItem(id)
	if saved == nil {
		return it, fmt.Errorf("no saved item with id %q", id)
	}
	return invoicer.InvoiceItem{
		ID:           invoicer.NewID(),
		Name:         saved.Name,
		Quantity:     qty,
		PricePerUnit: saved.DefaultPrice,
		Discount:     decimal.Zero,
		Taxable:      true,
	}, nil
}
