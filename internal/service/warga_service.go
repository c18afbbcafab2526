package service

import (
	"context"
	"strings"

	"warga-registry-svc/internal/apperr"
	"warga-registry-svc/internal/cache"
	"warga-registry-svc/internal/models"
	"warga-registry-svc/internal/models/pagination"
	"warga-registry-svc/internal/models/request"
	"warga-registry-svc/internal/models/response"
	"warga-registry-svc/internal/repository"
	"warga-registry-svc/pkg/logger"
)

// WargaService interface defines warga lifecycle operations
type WargaService interface {
	CreateWarga(ctx context.Context, req request.WargaCreateRequest) (*response.WargaResponse, error)
	GetAllWarga(ctx context.Context, req request.ListWargaRequest) (*pagination.PageEnvelope[response.WargaResponse], error)
	GetWargaByNik(ctx context.Context, nik string) (*response.WargaResponse, error)
	UpdateWarga(ctx context.Context, nik string, req request.WargaUpdateRequest) (*response.WargaResponse, error)
	DeleteWarga(ctx context.Context, nik string) error
}

// wargaService implements WargaService interface
type wargaService struct {
	wargaRepo  repository.WargaRepository
	wargaCache cache.WargaCache
	logger     *logger.Logger
}

// NewWargaService creates a new warga service
func NewWargaService(wargaRepo repository.WargaRepository, wargaCache cache.WargaCache, logger *logger.Logger) WargaService {
	return &wargaService{
		wargaRepo:  wargaRepo,
		wargaCache: wargaCache,
		logger:     logger,
	}
}

// sortColumns whitelists sortable fields and maps them to their columns.
// Anything outside the whitelist falls back to created_at.
var sortColumns = map[string]string{
	"nama":        "nama",
	"nik":         "nik",
	"phoneNumber": "phone_number",
	"rt":          "rt",
	"rw":          "rw",
	"createdAt":   "created_at",
}

// normalizeSortField returns the whitelisted field name and its column
func normalizeSortField(input string) (string, string) {
	field := strings.TrimSpace(input)
	if column, ok := sortColumns[field]; ok {
		return field, column
	}
	return "createdAt", "created_at"
}

// normalizeSortDirection accepts only case-insensitive "desc"; everything else is asc
func normalizeSortDirection(input string) string {
	if strings.EqualFold(input, pagination.SortDesc) {
		return pagination.SortDesc
	}
	return pagination.SortAsc
}

// CreateWarga registers a new warga. NIK and phone number must be unique.
func (s *wargaService) CreateWarga(ctx context.Context, req request.WargaCreateRequest) (*response.WargaResponse, error) {
	s.logger.WithField("nama", req.Nama).Info("Start create warga")

	existing, err := s.wargaRepo.FindByNik(req.Nik)
	if err != nil {
		s.logger.WithError(err).WithField("nik", req.Nik).Error("Failed to check existing NIK")
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflictf("NIK %s sudah terdaftar", req.Nik)
	}

	existing, err = s.wargaRepo.FindByPhoneNumber(req.PhoneNumber)
	if err != nil {
		s.logger.WithError(err).WithField("phone_number", req.PhoneNumber).Error("Failed to check existing phone number")
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflictf("nomor telepon %s sudah terdaftar", req.PhoneNumber)
	}

	warga := &models.Warga{
		Nik:         req.Nik,
		Nama:        req.Nama,
		PhoneNumber: req.PhoneNumber,
		Alamat:      req.Alamat,
		Rt:          req.Rt,
		Rw:          req.Rw,
	}

	if err := s.wargaRepo.Create(warga); err != nil {
		s.logger.WithError(err).WithField("nik", req.Nik).Error("Failed to create warga")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"id":   warga.ID.String(),
		"nama": warga.Nama,
	}).Info("End create warga")

	return mapToResponse(warga), nil
}

// GetAllWarga runs the paginated, filtered search and wraps the result in a page envelope
func (s *wargaService) GetAllWarga(ctx context.Context, req request.ListWargaRequest) (*pagination.PageEnvelope[response.WargaResponse], error) {
	s.logger.Info("Start get all warga")

	paging := req.Paging.Normalize()
	sortField, sortColumn := normalizeSortField(paging.SortField)
	sortDirection := normalizeSortDirection(paging.SortDirection)

	wargas, total, err := s.wargaRepo.Search(paging, req.Filter, sortColumn, sortDirection)
	if err != nil {
		s.logger.WithError(err).Error("Failed to search warga")
		return nil, err
	}

	content := make([]response.WargaResponse, 0, len(wargas))
	for _, warga := range wargas {
		content = append(content, *mapToResponse(warga))
	}

	sortMeta := pagination.SortMeta{Field: sortField, Direction: sortDirection}
	envelope := pagination.NewPageEnvelope(paging, total, content, sortMeta)

	s.logger.WithFields(map[string]interface{}{
		"page":           envelope.Page,
		"size":           envelope.Size,
		"total_elements": envelope.TotalElements,
		"total_pages":    envelope.TotalPages,
	}).Info("End get all warga")

	return &envelope, nil
}

// GetWargaByNik retrieves a single warga, served from the cache when possible
func (s *wargaService) GetWargaByNik(ctx context.Context, nik string) (*response.WargaResponse, error) {
	s.logger.WithField("nik", nik).Info("Start get warga by NIK")

	cached, err := s.wargaCache.GetByNik(ctx, nik)
	if err != nil {
		// Cache trouble degrades to the database
		s.logger.WithError(err).WithField("nik", nik).Warn("Cache read failed, falling back to database")
	}
	if cached != nil {
		s.logger.WithField("nik", nik).Info("End get warga by NIK (cache hit)")
		return mapToResponse(cached), nil
	}

	warga, err := s.wargaRepo.FindByNik(nik)
	if err != nil {
		s.logger.WithError(err).WithField("nik", nik).Error("Failed to get warga by NIK")
		return nil, err
	}
	if warga == nil {
		return nil, apperr.NotFoundf("warga dengan NIK %s tidak dapat ditemukan", nik)
	}

	if err := s.wargaCache.SetByNik(ctx, warga); err != nil {
		s.logger.WithError(err).WithField("nik", nik).Warn("Failed to populate cache")
	}

	s.logger.WithField("nik", nik).Info("End get warga by NIK")
	return mapToResponse(warga), nil
}

// UpdateWarga mutates the mutable fields of an existing warga and evicts its cache entry
func (s *wargaService) UpdateWarga(ctx context.Context, nik string, req request.WargaUpdateRequest) (*response.WargaResponse, error) {
	s.logger.WithField("nik", nik).Info("Start update warga")

	warga, err := s.wargaRepo.FindByNik(nik)
	if err != nil {
		s.logger.WithError(err).WithField("nik", nik).Error("Failed to get warga for update")
		return nil, err
	}
	if warga == nil {
		return nil, apperr.NotFoundf("update warga dengan NIK %s tidak ditemukan", nik)
	}

	if warga.PhoneNumber != req.PhoneNumber {
		other, err := s.wargaRepo.FindByPhoneNumber(req.PhoneNumber)
		if err != nil {
			s.logger.WithError(err).WithField("phone_number", req.PhoneNumber).Error("Failed to check existing phone number")
			return nil, err
		}
		if other != nil {
			return nil, apperr.Conflictf("nomor telepon %s sudah terdaftar", req.PhoneNumber)
		}
	}

	warga.Nama = req.Nama
	warga.PhoneNumber = req.PhoneNumber
	warga.Alamat = req.Alamat
	warga.Rt = req.Rt
	warga.Rw = req.Rw

	if err := s.wargaRepo.Update(warga); err != nil {
		s.logger.WithError(err).WithField("nik", nik).Error("Failed to update warga")
		return nil, err
	}

	if err := s.wargaCache.DeleteByNik(ctx, nik); err != nil {
		s.logger.WithError(err).WithField("nik", nik).Warn("Failed to evict cache entry")
	}

	s.logger.WithField("nik", nik).Info("End update warga")
	return mapToResponse(warga), nil
}

// DeleteWarga removes a warga and evicts its cache entry
func (s *wargaService) DeleteWarga(ctx context.Context, nik string) error {
	s.logger.WithField("nik", nik).Info("Start delete warga")

	warga, err := s.wargaRepo.FindByNik(nik)
	if err != nil {
		s.logger.WithError(err).WithField("nik", nik).Error("Failed to get warga for delete")
		return err
	}
	if warga == nil {
		return apperr.NotFoundf("delete warga dengan NIK %s tidak ditemukan", nik)
	}

	if err := s.wargaRepo.Delete(warga); err != nil {
		s.logger.WithError(err).WithField("nik", nik).Error("Failed to delete warga")
		return err
	}

	if err := s.wargaCache.DeleteByNik(ctx, nik); err != nil {
		s.logger.WithError(err).WithField("nik", nik).Warn("Failed to evict cache entry")
	}

	s.logger.WithField("nik", nik).Info("End delete warga")
	return nil
}

// mapToResponse converts a warga entity to its response DTO
func mapToResponse(warga *models.Warga) *response.WargaResponse {
	return &response.WargaResponse{
		ID:          warga.ID.String(),
		Nik:         warga.Nik,
		Nama:        warga.Nama,
		PhoneNumber: warga.PhoneNumber,
		Alamat:      warga.Alamat,
		Rt:          warga.Rt,
		Rw:          warga.Rw,
	}
}
