package cmd

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"billed.app/client/billlist"
	"billed.app/client/store"
	"billed.app/client/view"
)

var (
	showReceipt string
	startNew    bool
)

var billsCmd = &cobra.Command{
	Use:   "bills",
	Short: "List my expense bills",
	Long: `List the expense bills of the signed-in employee, latest first.

Example:
  billed bills
  billed bills --receipt 47qAXb6fIm2zOKkLzMro`,
	RunE: runBills,
}

func init() {
	billsCmd.Flags().StringVar(&showReceipt, "receipt", "", "show the receipt of the bill with this id")
	billsCmd.Flags().BoolVar(&startNew, "new", false, "go to the new bill form")
}

func runBills(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	list := billlist.New(billlist.Config{
		Store:     a.store,
		Session:   a.session,
		Navigator: a.navigator(cmd),
		Modal:     view.TerminalModal{W: cmd.OutOrStdout()},
		Logger:    a.logger,
	})

	if startNew {
		list.HandleClickNewBill()
		return nil
	}

	if showReceipt == "" {
		return showBills(cmd, a)
	}

	bill, err := a.store.Get(cmd.Context(), showReceipt)
	var statusErr *store.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("no bill with id %q", showReceipt)
	}
	if err != nil {
		view.RenderError(cmd.ErrOrStderr(), err)
		return err
	}

	list.HandleClickIconEye(billlist.Icon{BillURL: bill.FileURL})
	return nil
}

func showBills(cmd *cobra.Command, a *app) error {
	list := billlist.New(billlist.Config{Store: a.store, Session: a.session, Logger: a.logger})

	bills, err := list.GetBills(cmd.Context())
	if err != nil {
		view.RenderError(cmd.ErrOrStderr(), err)
		return err
	}

	billlist.SortByDateDesc(bills)
	view.RenderBills(cmd.OutOrStdout(), bills)
	return nil
}
