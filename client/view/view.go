// Package view renders the client screens on a terminal.
package view

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"billed.app/bills/model"
	"billed.app/client/billlist"
)

var billColumns = []string{"Type", "Nom", "Date", "Montant", "Statut", "Justificatif"}

// RenderBills writes bills as a table, one row per bill.
func RenderBills(w io.Writer, bills []billlist.DisplayBill) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(billColumns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, b := range bills {
		receipt := b.FileURL
		if receipt == "" {
			receipt = "-"
		}
		table.Append([]string{
			b.Type,
			b.Name,
			b.FormattedDate,
			strconv.FormatInt(b.Amount, 10) + " €",
			b.StatusLabel,
			receipt,
		})
	}

	table.Render()
}

// RenderError writes the error banner of a page that could not load.
func RenderError(w io.Writer, err error) {
	fmt.Fprintf(w, "/!\\ %s\n", err)
}

// RenderExpenseTypes lists the categories offered by the form.
func RenderExpenseTypes(w io.Writer) {
	for i, t := range model.ExpenseTypes {
		marker := " "
		if t == model.DefaultExpenseType {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %d. %s\n", marker, i+1, t)
	}
}

// TerminalModal shows a receipt link in place of an image overlay.
type TerminalModal struct {
	W io.Writer
}

func (m TerminalModal) Open(url string) {
	fmt.Fprintf(m.W, "Justificatif\n  %s\n", url)
}
