package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"billed.app/bills/repository/bills"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Bills bills.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Bills: bills.New(db),
	}
}
