package model

import (
	"time"
)

type Bill struct {
	ID             string     `json:"id,omitempty"`
	Email          string     `json:"email"`
	Type           string     `json:"type"`
	Name           string     `json:"name"`
	Date           string     `json:"date"`
	Amount         int64      `json:"amount"`
	VAT            string     `json:"vat"`
	Pct            int32      `json:"pct"`
	Commentary     string     `json:"commentary,omitempty"`
	CommentAdmin   string     `json:"commentAdmin,omitempty"`
	FileURL        string     `json:"fileUrl"`
	FileName       string     `json:"fileName"`
	Status         BillStatus `json:"status"`
	IdempotencyKey string     `json:"-"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// HasReceipt reports whether the bill references an uploaded receipt.
func (b *Bill) HasReceipt() bool {
	return b.FileURL != "" && b.FileName != ""
}

type BillStatus string

const (
	BillStatusPending  BillStatus = "pending"
	BillStatusAccepted BillStatus = "accepted"
	BillStatusRefused  BillStatus = "refused"
)

func (s BillStatus) Valid() bool {
	switch s {
	case BillStatusPending, BillStatusAccepted, BillStatusRefused:
		return true
	}
	return false
}

// ExpenseTypes lists the categories offered by the new bill form, in form order.
var ExpenseTypes = []string{
	"Transports",
	"Restaurants et bars",
	"Hôtel et logement",
	"Services en ligne",
	"IT et électronique",
	"Equipement et matériel",
	"Fournitures de bureau",
}

// DefaultExpenseType is preselected in the form.
const DefaultExpenseType = "Transports"

func IsKnownExpenseType(t string) bool {
	for _, known := range ExpenseTypes {
		if known == t {
			return true
		}
	}
	return false
}
