package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"warga-registry-svc/internal/apperr"
	"warga-registry-svc/internal/models"
	"warga-registry-svc/internal/models/pagination"
)

// WargaRepository defines the interface for warga data operations
type WargaRepository interface {
	Create(warga *models.Warga) error
	FindByNik(nik string) (*models.Warga, error)
	FindByPhoneNumber(phoneNumber string) (*models.Warga, error)
	Update(warga *models.Warga) error
	Delete(warga *models.Warga) error
	Search(paging pagination.BasePaging, filter models.WargaFilter, sortColumn, sortDirection string) ([]*models.Warga, int64, error)
}

// wargaRepository implements WargaRepository
type wargaRepository struct {
	db *gorm.DB
}

// NewWargaRepository creates a new instance of WargaRepository
func NewWargaRepository(db *gorm.DB) WargaRepository {
	return &wargaRepository{
		db: db,
	}
}

// Create inserts a new warga record. The unique constraints on nik and
// phone_number are the authority for duplicates: a translated duplicated-key
// error surfaces as the same conflict as the service-level pre-check.
func (r *wargaRepository) Create(warga *models.Warga) error {
	if err := r.db.Create(warga).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflictf("warga dengan NIK %s atau nomor telepon %s sudah terdaftar", warga.Nik, warga.PhoneNumber)
		}
		return err
	}
	return nil
}

// FindByNik retrieves a warga by NIK; a missing record returns (nil, nil)
func (r *wargaRepository) FindByNik(nik string) (*models.Warga, error) {
	var warga models.Warga

	err := r.db.Where("nik = ?", nik).First(&warga).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &warga, nil
}

// FindByPhoneNumber retrieves a warga by phone number; a missing record returns (nil, nil)
func (r *wargaRepository) FindByPhoneNumber(phoneNumber string) (*models.Warga, error) {
	var warga models.Warga

	err := r.db.Where("phone_number = ?", phoneNumber).First(&warga).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &warga, nil
}

// Update persists changes to an existing warga record
func (r *wargaRepository) Update(warga *models.Warga) error {
	if err := r.db.Save(warga).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflictf("nomor telepon %s sudah terdaftar", warga.PhoneNumber)
		}
		return err
	}
	return nil
}

// Delete removes a warga record
func (r *wargaRepository) Delete(warga *models.Warga) error {
	return r.db.Delete(warga).Error
}

// Search runs one logical paginated query: total matching count plus one page
// of records ordered by the already-whitelisted sort column and direction.
func (r *wargaRepository) Search(paging pagination.BasePaging, filter models.WargaFilter, sortColumn, sortDirection string) ([]*models.Warga, int64, error) {
	conds, args := composeSearchConditions(paging.Q, filter)

	countQuery := r.db.Model(&models.Warga{})
	dataQuery := r.db.Model(&models.Warga{})
	if len(conds) > 0 {
		where := strings.Join(conds, " AND ")
		countQuery = countQuery.Where(where, args...)
		dataQuery = dataQuery.Where(where, args...)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var wargas []*models.Warga
	err := dataQuery.
		Order(fmt.Sprintf("%s %s", sortColumn, sortDirection)).
		Limit(paging.PerPage).
		Offset(paging.Offset()).
		Find(&wargas).Error
	if err != nil {
		return nil, 0, err
	}

	return wargas, total, nil
}

// composeSearchConditions builds the WHERE clause as an ordered list of
// parameterized fragments combined with AND. An empty list matches all
// records. Untrusted input only ever lands in args, never in the fragments.
func composeSearchConditions(q string, filter models.WargaFilter) ([]string, []interface{}) {
	var conds []string
	var args []interface{}

	// Free text search over nik, nama, phone_number and alamat
	if trimmed := strings.TrimSpace(q); trimmed != "" {
		like := "%" + strings.ToLower(trimmed) + "%"
		conds = append(conds, "(LOWER(nik) LIKE ? OR LOWER(nama) LIKE ? OR LOWER(phone_number) LIKE ? OR LOWER(alamat) LIKE ?)")
		args = append(args, like, like, like, like)
	}

	// Filter by RT
	if filter.Rt > 0 {
		conds = append(conds, "rt = ?")
		args = append(args, filter.Rt)
	}

	// Filter by RW
	if filter.Rw > 0 {
		conds = append(conds, "rw = ?")
		args = append(args, filter.Rw)
	}

	return conds, args
}
