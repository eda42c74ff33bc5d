package bills

import (
	"billed.app/bills/model"
)

// BillFields are the user-editable fields of a bill.
type BillFields struct {
	Type       string           `json:"type" validate:"max=100"`
	Name       string           `json:"name" validate:"max=255"`
	Date       string           `json:"date" validate:"max=32"`
	Amount     int64            `json:"amount" validate:"gte=0"`
	VAT        string           `json:"vat" validate:"omitempty,numeric"`
	Pct        int32            `json:"pct" validate:"gte=0,lte=100"`
	Commentary string           `json:"commentary" validate:"max=1000"`
	FileURL    string           `json:"fileUrl"`
	FileName   string           `json:"fileName" validate:"omitempty,receipt_ext"`
	Status     model.BillStatus `json:"status" validate:"omitempty,oneof=pending accepted refused"`
}

func (f *BillFields) toModel() *model.Bill {
	return &model.Bill{
		Type:       f.Type,
		Name:       f.Name,
		Date:       f.Date,
		Amount:     f.Amount,
		VAT:        f.VAT,
		Pct:        f.Pct,
		Commentary: f.Commentary,
		FileURL:    f.FileURL,
		FileName:   f.FileName,
		Status:     f.Status,
	}
}

type BillResponse struct {
	Bill model.Bill `json:"bill"`
}
