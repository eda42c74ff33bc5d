package bill

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"billed.app/bills/model"
	"billed.app/bills/repository/bills"
)

// UpdateBill persists the editable fields of an existing bill. An empty receipt
// reference keeps the one already stored.
func (b *business) UpdateBill(ctx context.Context, bill *model.Bill) (*model.Bill, error) {
	if bill.ID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	status := bill.Status
	if status == "" {
		status = model.BillStatusPending
	}
	if !status.Valid() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill status"}
	}

	vat, err := parseVAT(bill.VAT)
	if err != nil {
		return nil, err
	}

	dbBill, err := b.billRepo.UpdateBill(ctx, bills.UpdateBillParams{
		ID:         bill.ID,
		Type:       text(bill.Type),
		Name:       text(bill.Name),
		Date:       text(bill.Date),
		Amount:     bill.Amount,
		Vat:        vat,
		Pct:        bill.Pct,
		Commentary: text(bill.Commentary),
		FileUrl:    text(bill.FileURL),
		FileName:   text(bill.FileName),
		Status:     string(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "bill not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update bill"}
	}

	return convertDBBillToModel(dbBill), nil
}
