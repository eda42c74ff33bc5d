package bills

import (
	"github.com/go-playground/validator/v10"

	"encore.dev/rlog"
	"encore.dev/storage/objects"
	"encore.dev/storage/sqldb"

	"billed.app/bills/business/bill"
	"billed.app/bills/repository"
	"billed.app/internal/receipt"
)

var billsDB = sqldb.NewDatabase("bills", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var receiptsBucket = objects.NewBucket("receipts", objects.BucketConfig{
	Public: true,
})

var validate = newValidator()

//encore:service
type Service struct {
	business bill.Business
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(billsDB)

	rlog.Info("Initializing repository", "pgxdb", pgxdb)
	repo := repository.NewRepository(pgxdb)

	receipts := &bucketReceiptStore{
		bucket: objects.BucketRef[receiptBucket](receiptsBucket),
	}

	return &Service{
		business: bill.NewBillBusiness(repo.Bills, receipts),
	}, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	if err := receipt.RegisterValidation(v); err != nil {
		panic(err)
	}
	return v
}
