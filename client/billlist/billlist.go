// Package billlist fetches the bills of the signed-in user and prepares
// them for display.
package billlist

import (
	"context"
	"slices"
	"time"

	"billed.app/bills/model"
	"billed.app/client/diag"
	"billed.app/client/routes"
	"billed.app/client/session"
	"billed.app/client/store"
)

// PlaceholderReceiptURL is shown when a bill has no receipt.
const PlaceholderReceiptURL = "/assets/receipt-placeholder.png"

// Modal displays a receipt image above the list.
type Modal interface {
	Open(url string)
}

type noModal struct{}

func (noModal) Open(string) {}

// Icon is the receipt eye of one row.
type Icon struct {
	BillURL string
}

// DisplayBill is a fetched bill with its display labels.
type DisplayBill struct {
	model.Bill
	FormattedDate string
	StatusLabel   string
}

type Config struct {
	Store     store.BillStore
	Session   session.Session
	Navigator routes.Navigator
	Modal     Modal
	Logger    diag.Logger
}

type Bills struct {
	store     store.BillStore
	session   session.Session
	navigator routes.Navigator
	modal     Modal
	logger    diag.Logger
}

// New builds the list. A nil Modal or Navigator turns the matching click
// handler into a no-op.
func New(cfg Config) *Bills {
	modal := cfg.Modal
	if modal == nil {
		modal = noModal{}
	}
	return &Bills{
		store:     cfg.Store,
		session:   cfg.Session,
		navigator: routes.OrNowhere(cfg.Navigator),
		modal:     modal,
		logger:    diag.OrDiscard(cfg.Logger),
	}
}

// GetBills returns every bill of the store ordered by ascending date, with
// undated or malformed records last. A store rejection is returned as is.
func (b *Bills) GetBills(ctx context.Context) ([]DisplayBill, error) {
	fetched, err := b.store.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]DisplayBill, 0, len(fetched))
	for _, bill := range fetched {
		formatted, err := FormatDate(bill.Date)
		if err != nil {
			b.logger.Error("failed to format bill date", "error", err, "id", bill.ID, "email", b.session.Email)
		}
		out = append(out, DisplayBill{
			Bill:          bill,
			FormattedDate: formatted,
			StatusLabel:   FormatStatus(bill.Status),
		})
	}

	sortByDate(out, false)
	return out, nil
}

// SortByDateDesc orders bills latest first for display. Malformed dates stay
// last.
func SortByDateDesc(bills []DisplayBill) {
	sortByDate(bills, true)
}

func sortByDate(bills []DisplayBill, desc bool) {
	keys := make(map[string]time.Time, len(bills))
	valid := make(map[string]bool, len(bills))
	for _, bill := range bills {
		if t, err := parseDate(bill.Date); err == nil {
			keys[bill.Date] = t
			valid[bill.Date] = true
		}
	}

	slices.SortStableFunc(bills, func(x, y DisplayBill) int {
		xOK, yOK := valid[x.Date], valid[y.Date]
		switch {
		case !xOK && !yOK:
			return 0
		case !xOK:
			return 1
		case !yOK:
			return -1
		}
		c := keys[x.Date].Compare(keys[y.Date])
		if desc {
			return -c
		}
		return c
	})
}

// HandleClickIconEye opens the receipt of the clicked row.
func (b *Bills) HandleClickIconEye(icon Icon) {
	url := icon.BillURL
	if url == "" {
		url = PlaceholderReceiptURL
	}
	b.modal.Open(url)
}

// HandleClickNewBill moves to the bill creation view.
func (b *Bills) HandleClickNewBill() {
	b.navigator.Navigate(routes.NewBill)
}
