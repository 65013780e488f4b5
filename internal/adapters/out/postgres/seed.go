package postgres

import (
	"context"

	"orders/internal/adapters/out/postgres/catalogrepo"
	"orders/internal/adapters/out/postgres/statusrepo"
	"orders/internal/adapters/out/seed"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedResult counts the rows actually inserted by Seed.
type SeedResult struct {
	Statuses int64
	Services int64
	Products int64
}

// Seed writes reference data in one transaction. Rows that already exist,
// by id or by unique status name, are left untouched.
func Seed(ctx context.Context, db *gorm.DB, data seed.Data) (SeedResult, error) {
	var result SeedResult

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		skipExisting := tx.Clauses(clause.OnConflict{DoNothing: true})

		if len(data.Statuses) > 0 {
			rows := make([]statusrepo.StatusDTO, 0, len(data.Statuses))
			for _, s := range data.Statuses {
				rows = append(rows, statusrepo.FromDomain(s))
			}
			res := skipExisting.Create(&rows)
			if res.Error != nil {
				return res.Error
			}
			result.Statuses = res.RowsAffected
		}

		if len(data.Services) > 0 {
			rows := make([]catalogrepo.ServiceDTO, 0, len(data.Services))
			for _, s := range data.Services {
				rows = append(rows, catalogrepo.ServiceFromDomain(s))
			}
			res := skipExisting.Create(&rows)
			if res.Error != nil {
				return res.Error
			}
			result.Services = res.RowsAffected
		}

		if len(data.Products) > 0 {
			rows := make([]catalogrepo.ProductDTO, 0, len(data.Products))
			for _, p := range data.Products {
				rows = append(rows, catalogrepo.ProductFromDomain(p))
			}
			res := skipExisting.Omit("Service").Create(&rows)
			if res.Error != nil {
				return res.Error
			}
			result.Products = res.RowsAffected
		}

		return nil
	})

	return result, err
}
