package bill

import (
	"billed.app/bills/model"
	"billed.app/bills/repository/bills"
)

// convertDBBillToModel converts a database Bill to a domain model Bill
func convertDBBillToModel(dbBill bills.Bill) *model.Bill {
	return &model.Bill{
		ID:             dbBill.ID,
		Email:          dbBill.Email,
		Type:           dbBill.Type.String,
		Name:           dbBill.Name.String,
		Date:           dbBill.Date.String,
		Amount:         dbBill.Amount,
		VAT:            formatVAT(dbBill.Vat),
		Pct:            dbBill.Pct,
		Commentary:     dbBill.Commentary.String,
		CommentAdmin:   dbBill.CommentAdmin.String,
		FileURL:        dbBill.FileUrl.String,
		FileName:       dbBill.FileName.String,
		Status:         model.BillStatus(dbBill.Status),
		IdempotencyKey: dbBill.IdempotencyKey.String,
		CreatedAt:      dbBill.CreatedAt.Time,
		UpdatedAt:      dbBill.UpdatedAt.Time,
	}
}
