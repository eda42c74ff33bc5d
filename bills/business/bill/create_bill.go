package bill

import (
	"context"
	"errors"
	"path"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"billed.app/bills/model"
	"billed.app/bills/repository/bills"
	"billed.app/internal/receipt"
)

// CreateBill registers a new bill, storing its receipt first when one is attached
func (b *business) CreateBill(ctx context.Context, bill *model.Bill, rcpt *Receipt) (*model.Bill, error) {
	id := b.newID()
	storedKey := ""

	if rcpt != nil && len(rcpt.Content) > 0 {
		if !receipt.IsAllowed(rcpt.FileName) {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "receipt must be a jpg, jpeg or png image"}
		}

		contentType := rcpt.ContentType
		if contentType == "" {
			contentType = receipt.ContentType(rcpt.FileName)
		}

		key := receiptKey(id, rcpt.FileName)
		url, err := b.receipts.Put(ctx, key, rcpt.Content, contentType)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to store receipt"}
		}
		storedKey = key
		bill.FileURL = url
		bill.FileName = rcpt.FileName
	}

	vat, err := parseVAT(bill.VAT)
	if err != nil {
		b.discardReceipt(storedKey)
		return nil, err
	}

	status := bill.Status
	if status == "" {
		status = model.BillStatusPending
	}

	dbBill, err := b.billRepo.CreateBill(ctx, bills.CreateBillParams{
		ID:             id,
		Email:          bill.Email,
		Type:           text(bill.Type),
		Name:           text(bill.Name),
		Date:           text(bill.Date),
		Amount:         bill.Amount,
		Vat:            vat,
		Pct:            bill.Pct,
		Commentary:     text(bill.Commentary),
		FileUrl:        text(bill.FileURL),
		FileName:       text(bill.FileName),
		Status:         string(status),
		IdempotencyKey: text(bill.IdempotencyKey),
	})
	if err != nil {
		b.discardReceipt(storedKey)

		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "bill is duplicated"}
		}

		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create bill"}
	}

	return convertDBBillToModel(dbBill), nil
}

// discardReceipt removes a receipt stored for a bill that was not created.
func (b *business) discardReceipt(key string) {
	if key == "" {
		return
	}
	runAsync("remove orphan receipt", func(ctx context.Context) error {
		return b.receipts.Remove(ctx, key)
	})
}

func receiptKey(billID, fileName string) string {
	return path.Join("receipts", billID, path.Base(fileName))
}

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
