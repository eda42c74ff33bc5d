package cmd

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"billed.app/client/newbill"
	"billed.app/client/view"
)

var form struct {
	file   string
	values newbill.FormValues
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Submit a new expense bill",
	Long: `Upload a receipt (jpg, jpeg or png) and submit the bill that goes with it.

Example:
  billed new --file ticket.jpg --type Transports --name taxi \
    --date 2023-01-01 --amount 200 --vat 40 --pct 20`,
	RunE: runNew,
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List expense categories",
	Run: func(cmd *cobra.Command, args []string) {
		view.RenderExpenseTypes(cmd.OutOrStdout())
	},
}

func init() {
	f := newCmd.Flags()
	f.StringVar(&form.file, "file", "", "receipt image (jpg, jpeg or png)")
	f.StringVar(&form.values.Type, "type", "", "expense category, see billed types")
	f.StringVar(&form.values.Name, "name", "", "expense name")
	f.StringVar(&form.values.Date, "date", "", "expense date (YYYY-MM-DD)")
	f.StringVar(&form.values.Amount, "amount", "", "amount including VAT")
	f.StringVar(&form.values.VAT, "vat", "", "VAT amount")
	f.StringVar(&form.values.Pct, "pct", "", "VAT rate in percent")
	f.StringVar(&form.values.Commentary, "commentary", "", "free comment")
	_ = newCmd.MarkFlagRequired("file")
}

func runNew(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	content, err := os.ReadFile(form.file)
	if err != nil {
		return fmt.Errorf("read receipt: %w", err)
	}

	nb := newbill.New(newbill.Config{
		Store:     a.store,
		Session:   a.session,
		Navigator: a.navigator(cmd),
		Logger:    a.logger,
	})

	nb.HandleChangeFile(cmd.Context(), newbill.FileInput{
		Name:        filepath.Base(form.file),
		ContentType: mime.TypeByExtension(filepath.Ext(form.file)),
		Content:     content,
	})
	if nb.ErrorVisible() {
		fmt.Fprintln(cmd.ErrOrStderr(), "Seuls les fichiers jpg, jpeg ou png sont acceptés.")
		return nb.LastError()
	}
	if !nb.SubmitEnabled() {
		return nb.LastError()
	}

	if saved := nb.HandleSubmit(cmd.Context(), form.values); saved == nil {
		err := nb.LastError()
		if err == nil {
			err = errors.New("bill was not submitted")
		}
		return err
	}
	return nil
}
