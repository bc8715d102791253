// internal/database/seeder.go
package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"pallet-returns-dashboard/internal/models"
)

// ReturnSeeder is the part of the record store the seeder needs.
type ReturnSeeder interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, r *models.ReturnRequest) error
}

// SampleReturns are the records a fresh dashboard starts with.
func SampleReturns() []models.ReturnRequest {
	return []models.ReturnRequest{
		{
			OrderID:      "ORD123",
			CustomerName: "ABC Company",
			ReturnDate:   models.NewReturnDate(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)),
			PalletCount:  5,
			Status:       models.StatusPending,
			Remarks:      "Handle with care",
		},
		{
			OrderID:      "ORD124",
			CustomerName: "XYZ Ltd.",
			ReturnDate:   models.NewReturnDate(time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC)),
			PalletCount:  2,
			Status:       models.StatusCompleted,
		},
	}
}

// SeedReturns inserts the sample records into an empty collection. It returns
// the number of records inserted.
func SeedReturns(ctx context.Context, st ReturnSeeder, log logrus.FieldLogger) (int, error) {
	// Kiểm tra xem collection đã có dữ liệu chưa
	count, err := st.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.WithField("existing", count).Info("Return requests already present. Seeding skipped.")
		return 0, nil
	}

	log.Info("Returns collection is empty. Seeding...")
	inserted := 0
	for _, r := range SampleReturns() {
		r := r
		if err := st.Insert(ctx, &r); err != nil {
			return inserted, err
		}
		inserted++
	}

	log.WithField("inserted", inserted).Info("Return requests seeded successfully.")
	return inserted, nil
}
