package repository

import (
	"gorm.io/gorm"

	"warga-registry-svc/internal/models/response"
)

// SummaryRepository defines the interface for registry statistics operations
type SummaryRepository interface {
	GetRegistrySummary(rt *int) (*response.RegistrySummaryResponse, error)
}

// summaryRepository implements SummaryRepository
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new instance of SummaryRepository
func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

// GetRegistrySummary retrieves aggregate registry statistics with an optional RT filter
func (r *summaryRepository) GetRegistrySummary(rt *int) (*response.RegistrySummaryResponse, error) {
	var result response.RegistrySummaryResponse

	totalsQuery := `
		SELECT
			COUNT(*) AS total_warga,
			COUNT(DISTINCT rt) AS total_rt,
			COUNT(DISTINCT rw) AS total_rw
		FROM warga
	`

	var args []interface{}

	// Add RT filter if provided
	if rt != nil {
		totalsQuery += " WHERE rt = ?"
		args = append(args, *rt)
	}

	if err := r.db.Raw(totalsQuery, args...).Scan(&result).Error; err != nil {
		return nil, err
	}

	perRTQuery := `
		SELECT rt, COUNT(*) AS jumlah_warga
		FROM warga
		WHERE rt IS NOT NULL
	`

	var perRTArgs []interface{}

	if rt != nil {
		perRTQuery += " AND rt = ?"
		perRTArgs = append(perRTArgs, *rt)
	}

	perRTQuery += `
		GROUP BY rt
		ORDER BY rt
	`

	var perRT []response.RTCount
	if err := r.db.Raw(perRTQuery, perRTArgs...).Scan(&perRT).Error; err != nil {
		return nil, err
	}
	result.PerRT = perRT

	return &result, nil
}
