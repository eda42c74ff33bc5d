package billlist

import (
	"fmt"
	"strings"
	"time"

	"billed.app/bills/model"
)

var frenchMonths = [...]string{
	"Jan", "Fév", "Mar", "Avr", "Mai", "Jui",
	"Jui", "Aoû", "Sep", "Oct", "Nov", "Déc",
}

var dateLayouts = []string{time.DateOnly, time.RFC3339}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// FormatDate renders a stored date in the short French form, "4 Avr. 04"
// for 2004-04-04. On failure it returns raw unchanged with the parse error.
func FormatDate(raw string) (string, error) {
	t, err := parseDate(raw)
	if err != nil {
		return raw, fmt.Errorf("format date %q: %w", raw, err)
	}
	return fmt.Sprintf("%d %s. %02d", t.Day(), frenchMonths[t.Month()-1], t.Year()%100), nil
}

// FormatStatus returns the label shown for status, or status itself when it
// has none.
func FormatStatus(status model.BillStatus) string {
	switch status {
	case model.BillStatusPending:
		return "En attente"
	case model.BillStatusAccepted:
		return "Accepté"
	default:
		return string(status)
	}
}
