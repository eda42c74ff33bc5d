package bills

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type Bill struct {
	ID             string              `json:"id"`
	Email          string              `json:"email"`
	Type           pgtype.Text         `json:"type"`
	Name           pgtype.Text         `json:"name"`
	Date           pgtype.Text         `json:"date"`
	Amount         int64               `json:"amount"`
	Vat            decimal.NullDecimal `json:"vat"`
	Pct            int32               `json:"pct"`
	Commentary     pgtype.Text         `json:"commentary"`
	CommentAdmin   pgtype.Text         `json:"comment_admin"`
	FileUrl        pgtype.Text         `json:"file_url"`
	FileName       pgtype.Text         `json:"file_name"`
	Status         string              `json:"status"`
	IdempotencyKey pgtype.Text         `json:"idempotency_key"`
	CreatedAt      pgtype.Timestamptz  `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz  `json:"updated_at"`
}
