package bills

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const billColumns = `id, email, type, name, date, amount, vat, pct, commentary, comment_admin,
    file_url, file_name, status, idempotency_key, created_at, updated_at`

func scanBill(row interface {
	Scan(dest ...interface{}) error
}) (Bill, error) {
	var i Bill
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Type,
		&i.Name,
		&i.Date,
		&i.Amount,
		&i.Vat,
		&i.Pct,
		&i.Commentary,
		&i.CommentAdmin,
		&i.FileUrl,
		&i.FileName,
		&i.Status,
		&i.IdempotencyKey,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createBill = `-- name: CreateBill :one
INSERT INTO bills (
    id, email, type, name, date, amount, vat, pct, commentary,
    file_url, file_name, status, idempotency_key
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
)
RETURNING ` + billColumns

type CreateBillParams struct {
	ID             string              `json:"id"`
	Email          string              `json:"email"`
	Type           pgtype.Text         `json:"type"`
	Name           pgtype.Text         `json:"name"`
	Date           pgtype.Text         `json:"date"`
	Amount         int64               `json:"amount"`
	Vat            decimal.NullDecimal `json:"vat"`
	Pct            int32               `json:"pct"`
	Commentary     pgtype.Text         `json:"commentary"`
	FileUrl        pgtype.Text         `json:"file_url"`
	FileName       pgtype.Text         `json:"file_name"`
	Status         string              `json:"status"`
	IdempotencyKey pgtype.Text         `json:"idempotency_key"`
}

func (q *Queries) CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error) {
	row := q.db.QueryRow(ctx, createBill,
		arg.ID,
		arg.Email,
		arg.Type,
		arg.Name,
		arg.Date,
		arg.Amount,
		arg.Vat,
		arg.Pct,
		arg.Commentary,
		arg.FileUrl,
		arg.FileName,
		arg.Status,
		arg.IdempotencyKey,
	)
	return scanBill(row)
}

const getBill = `-- name: GetBill :one
SELECT ` + billColumns + `
FROM bills
WHERE id = $1`

func (q *Queries) GetBill(ctx context.Context, id string) (Bill, error) {
	row := q.db.QueryRow(ctx, getBill, id)
	return scanBill(row)
}

const listBills = `-- name: ListBills :many
SELECT ` + billColumns + `
FROM bills
ORDER BY created_at, id`

func (q *Queries) ListBills(ctx context.Context) ([]Bill, error) {
	return q.list(ctx, listBills)
}

const listBillsByEmail = `-- name: ListBillsByEmail :many
SELECT ` + billColumns + `
FROM bills
WHERE email = $1
ORDER BY created_at, id`

func (q *Queries) ListBillsByEmail(ctx context.Context, email string) ([]Bill, error) {
	return q.list(ctx, listBillsByEmail, email)
}

func (q *Queries) list(ctx context.Context, query string, args ...interface{}) ([]Bill, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Bill{}
	for rows.Next() {
		i, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateBill = `-- name: UpdateBill :one
UPDATE bills
SET type = $2,
    name = $3,
    date = $4,
    amount = $5,
    vat = $6,
    pct = $7,
    commentary = $8,
    file_url = COALESCE($9, file_url),
    file_name = COALESCE($10, file_name),
    status = $11,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + billColumns

type UpdateBillParams struct {
	ID         string              `json:"id"`
	Type       pgtype.Text         `json:"type"`
	Name       pgtype.Text         `json:"name"`
	Date       pgtype.Text         `json:"date"`
	Amount     int64               `json:"amount"`
	Vat        decimal.NullDecimal `json:"vat"`
	Pct        int32               `json:"pct"`
	Commentary pgtype.Text         `json:"commentary"`
	FileUrl    pgtype.Text         `json:"file_url"`
	FileName   pgtype.Text         `json:"file_name"`
	Status     string              `json:"status"`
}

func (q *Queries) UpdateBill(ctx context.Context, arg UpdateBillParams) (Bill, error) {
	row := q.db.QueryRow(ctx, updateBill,
		arg.ID,
		arg.Type,
		arg.Name,
		arg.Date,
		arg.Amount,
		arg.Vat,
		arg.Pct,
		arg.Commentary,
		arg.FileUrl,
		arg.FileName,
		arg.Status,
	)
	return scanBill(row)
}
