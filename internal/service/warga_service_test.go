package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warga-registry-svc/internal/apperr"
	"warga-registry-svc/internal/models"
	"warga-registry-svc/internal/models/pagination"
	"warga-registry-svc/internal/models/request"
	"warga-registry-svc/pkg/logger"
)

// fakeWargaRepo is an in-memory WargaRepository mirroring the store semantics
type fakeWargaRepo struct {
	records      []*models.Warga
	findNikCalls int
}

func (f *fakeWargaRepo) Create(warga *models.Warga) error {
	if warga.ID == uuid.Nil {
		warga.ID = uuid.New()
	}
	for _, r := range f.records {
		if r.Nik == warga.Nik || r.PhoneNumber == warga.PhoneNumber {
			return apperr.Conflictf("duplikat")
		}
	}
	f.records = append(f.records, warga)
	return nil
}

func (f *fakeWargaRepo) FindByNik(nik string) (*models.Warga, error) {
	f.findNikCalls++
	for _, r := range f.records {
		if r.Nik == nik {
			copied := *r
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeWargaRepo) FindByPhoneNumber(phoneNumber string) (*models.Warga, error) {
	for _, r := range f.records {
		if r.PhoneNumber == phoneNumber {
			copied := *r
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeWargaRepo) Update(warga *models.Warga) error {
	for i, r := range f.records {
		if r.Nik == warga.Nik {
			f.records[i] = warga
			return nil
		}
	}
	return fmt.Errorf("missing record")
}

func (f *fakeWargaRepo) Delete(warga *models.Warga) error {
	for i, r := range f.records {
		if r.Nik == warga.Nik {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("missing record")
}

func (f *fakeWargaRepo) Search(paging pagination.BasePaging, filter models.WargaFilter, sortColumn, sortDirection string) ([]*models.Warga, int64, error) {
	var matched []*models.Warga
	q := strings.ToLower(strings.TrimSpace(paging.Q))
	for _, r := range f.records {
		if q != "" {
			haystack := strings.ToLower(r.Nik + " " + r.Nama + " " + r.PhoneNumber + " " + r.Alamat)
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		if filter.Rt > 0 && (r.Rt == nil || *r.Rt != filter.Rt) {
			continue
		}
		if filter.Rw > 0 && (r.Rw == nil || *r.Rw != filter.Rw) {
			continue
		}
		matched = append(matched, r)
	}

	if sortColumn == "nama" {
		sort.Slice(matched, func(i, j int) bool {
			if sortDirection == pagination.SortDesc {
				return matched[i].Nama > matched[j].Nama
			}
			return matched[i].Nama < matched[j].Nama
		})
	}

	total := int64(len(matched))
	start := paging.Offset()
	if start > len(matched) {
		return nil, total, nil
	}
	end := start + paging.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// fakeWargaCache records cache traffic
type fakeWargaCache struct {
	entries   map[string]*models.Warga
	sets      int
	evictions int
}

func newFakeWargaCache() *fakeWargaCache {
	return &fakeWargaCache{entries: make(map[string]*models.Warga)}
}

func (f *fakeWargaCache) GetByNik(ctx context.Context, nik string) (*models.Warga, error) {
	return f.entries[nik], nil
}

func (f *fakeWargaCache) SetByNik(ctx context.Context, warga *models.Warga) error {
	f.sets++
	copied := *warga
	f.entries[warga.Nik] = &copied
	return nil
}

func (f *fakeWargaCache) DeleteByNik(ctx context.Context, nik string) error {
	f.evictions++
	delete(f.entries, nik)
	return nil
}

func intPtr(v int) *int { return &v }

func newTestService() (WargaService, *fakeWargaRepo, *fakeWargaCache) {
	repo := &fakeWargaRepo{}
	cache := newFakeWargaCache()
	svc := NewWargaService(repo, cache, logger.NewLogger("error", "text"))
	return svc, repo, cache
}

func seedWarga(t *testing.T, svc WargaService, nik, nama, phone string, rt, rw *int) {
	t.Helper()
	_, err := svc.CreateWarga(context.Background(), request.WargaCreateRequest{
		Nik:         nik,
		Nama:        nama,
		PhoneNumber: phone,
		Rt:          rt,
		Rw:          rw,
	})
	require.NoError(t, err)
}

func TestCreateWarga(t *testing.T) {
	svc, repo, _ := newTestService()

	res, err := svc.CreateWarga(context.Background(), request.WargaCreateRequest{
		Nik:         "3175094109900001",
		Nama:        "Budi Santoso",
		PhoneNumber: "081234567890",
		Alamat:      "Jl. Merdeka No. 17",
		Rt:          intPtr(5),
		Rw:          intPtr(2),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "3175094109900001", res.Nik)
	assert.Equal(t, "Budi Santoso", res.Nama)
	assert.Len(t, repo.records, 1)
}

func TestCreateWargaDuplicateNik(t *testing.T) {
	svc, repo, _ := newTestService()
	seedWarga(t, svc, "3175094109900001", "Budi Santoso", "081234567890", nil, nil)

	_, err := svc.CreateWarga(context.Background(), request.WargaCreateRequest{
		Nik:         "3175094109900001",
		Nama:        "Orang Lain",
		PhoneNumber: "089999999999",
	})

	assert.ErrorIs(t, err, apperr.ErrDataExists)
	assert.Len(t, repo.records, 1)
}

func TestCreateWargaDuplicatePhoneNumber(t *testing.T) {
	svc, repo, _ := newTestService()
	seedWarga(t, svc, "3175094109900001", "Budi Santoso", "081234567890", nil, nil)

	_, err := svc.CreateWarga(context.Background(), request.WargaCreateRequest{
		Nik:         "3175094109900002",
		Nama:        "Orang Lain",
		PhoneNumber: "081234567890",
	})

	assert.ErrorIs(t, err, apperr.ErrDataExists)
	assert.Len(t, repo.records, 1)
}

func TestGetWargaByNikNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetWargaByNik(context.Background(), "3175094109900001")

	assert.ErrorIs(t, err, apperr.ErrDataNotFound)
}

func TestGetWargaByNikPopulatesCache(t *testing.T) {
	svc, repo, cache := newTestService()
	seedWarga(t, svc, "3175094109900001", "Budi Santoso", "081234567890", nil, nil)

	callsBefore := repo.findNikCalls
	res, err := svc.GetWargaByNik(context.Background(), "3175094109900001")
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", res.Nama)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, callsBefore+1, repo.findNikCalls)

	// Second read is served from the cache without touching the store
	res, err = svc.GetWargaByNik(context.Background(), "3175094109900001")
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", res.Nama)
	assert.Equal(t, callsBefore+1, repo.findNikCalls)
}

func TestUpdateWargaNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateWarga(context.Background(), "3175094109900001", request.WargaUpdateRequest{
		Nama:        "Budi Santoso",
		PhoneNumber: "081234567890",
	})

	assert.ErrorIs(t, err, apperr.ErrDataNotFound)
}

func TestUpdateWargaPhoneConflict(t *testing.T) {
	svc, _, _ := newTestService()
	seedWarga(t, svc, "3175094109900001", "Budi Santoso", "081234567890", nil, nil)
	seedWarga(t, svc, "3175094109900002", "Siti Aminah", "089876543210", nil, nil)

	_, err := svc.UpdateWarga(context.Background(), "3175094109900001", request.WargaUpdateRequest{
		Nama:        "Budi Santoso",
		PhoneNumber: "089876543210",
	})

	assert.ErrorIs(t, err, apperr.ErrDataExists)
}

func TestUpdateWargaEvictsCache(t *testing.T) {
	svc, _, cache := newTestService()
	seedWarga(t, svc, "3175094109900001", "Budi Santoso", "081234567890", nil, nil)

	// Populate the cache, then update with the same phone number
	_, err := svc.GetWargaByNik(context.Background(), "3175094109900001")
	require.NoError(t, err)

	res, err := svc.UpdateWarga(context.Background(), "3175094109900001", request.WargaUpdateRequest{
		Nama:        "Budi S.",
		PhoneNumber: "081234567890",
		Alamat:      "Jl. Baru No. 1",
		Rt:          intPtr(9),
	})

	require.NoError(t, err)
	assert.Equal(t, "Budi S.", res.Nama)
	assert.Equal(t, "Jl. Baru No. 1", res.Alamat)
	assert.Equal(t, 1, cache.evictions)
	assert.NotContains(t, cache.entries, "3175094109900001")
}

func TestDeleteWarga(t *testing.T) {
	svc, repo, cache := newTestService()
	seedWarga(t, svc, "3175094109900001", "Budi Santoso", "081234567890", nil, nil)

	err := svc.DeleteWarga(context.Background(), "3175094109900001")

	require.NoError(t, err)
	assert.Empty(t, repo.records)
	assert.Equal(t, 1, cache.evictions)
}

func TestDeleteWargaNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.DeleteWarga(context.Background(), "3175094109900001")

	assert.ErrorIs(t, err, apperr.ErrDataNotFound)
}

func TestGetAllWargaFreeTextMatchesCaseInsensitive(t *testing.T) {
	svc, _, _ := newTestService()
	seedWarga(t, svc, "3175094109900001", "Budi Santoso", "081234567890", intPtr(5), nil)
	seedWarga(t, svc, "3175094109900002", "Siti Aminah", "089876543210", intPtr(7), nil)

	env, err := svc.GetAllWarga(context.Background(), request.ListWargaRequest{
		Paging: pagination.NewBasePaging(1, 10, "", "", "budi"),
	})

	require.NoError(t, err)
	assert.EqualValues(t, 1, env.TotalElements)
	require.Len(t, env.Content, 1)
	assert.Equal(t, "Budi Santoso", env.Content[0].Nama)
}

func TestGetAllWargaRtFilterExcludes(t *testing.T) {
	svc, _, _ := newTestService()
	seedWarga(t, svc, "3175094109900001", "Budi Santoso", "081234567890", intPtr(5), nil)
	seedWarga(t, svc, "3175094109900002", "Siti Aminah", "089876543210", intPtr(7), nil)

	env, err := svc.GetAllWarga(context.Background(), request.ListWargaRequest{
		Paging: pagination.NewBasePaging(1, 10, "", "", ""),
		Filter: models.WargaFilter{Rt: 7},
	})

	require.NoError(t, err)
	assert.EqualValues(t, 1, env.TotalElements)
	require.Len(t, env.Content, 1)
	assert.Equal(t, "Siti Aminah", env.Content[0].Nama)
}

func TestGetAllWargaEnvelopeMath(t *testing.T) {
	svc, _, _ := newTestService()
	for i := 0; i < 25; i++ {
		seedWarga(t, svc,
			fmt.Sprintf("31750941099000%02d", i),
			fmt.Sprintf("Warga %02d", i),
			fmt.Sprintf("0812345678%02d", i),
			nil, nil)
	}

	env, err := svc.GetAllWarga(context.Background(), request.ListWargaRequest{
		Paging: pagination.NewBasePaging(3, 10, "", "", ""),
	})

	require.NoError(t, err)
	assert.EqualValues(t, 25, env.TotalElements)
	assert.Equal(t, 3, env.TotalPages)
	assert.EqualValues(t, 21, env.From)
	assert.EqualValues(t, 25, env.To)
	assert.Equal(t, 5, env.NumberOfElements)
	assert.True(t, env.Last)
	assert.False(t, env.HasNext)
	assert.Nil(t, env.NextPage)
}

func TestGetAllWargaSortMetaReflectsNormalization(t *testing.T) {
	svc, _, _ := newTestService()
	seedWarga(t, svc, "3175094109900001", "Budi Santoso", "081234567890", nil, nil)

	env, err := svc.GetAllWarga(context.Background(), request.ListWargaRequest{
		Paging: pagination.NewBasePaging(1, 10, "drop table warga", "DESC", ""),
	})

	require.NoError(t, err)
	assert.Equal(t, "createdAt", env.SortMeta.Field)
	assert.Equal(t, "desc", env.SortMeta.Direction)
}

func TestNormalizeSortField(t *testing.T) {
	tests := []struct {
		input      string
		wantField  string
		wantColumn string
	}{
		{"nama", "nama", "nama"},
		{"nik", "nik", "nik"},
		{"phoneNumber", "phoneNumber", "phone_number"},
		{"rt", "rt", "rt"},
		{"rw", "rw", "rw"},
		{"createdAt", "createdAt", "created_at"},
		{"", "createdAt", "created_at"},
		{"  ", "createdAt", "created_at"},
		{"alamat", "createdAt", "created_at"},
		{"nama; DROP TABLE warga", "createdAt", "created_at"},
	}

	for _, tt := range tests {
		field, column := normalizeSortField(tt.input)
		assert.Equal(t, tt.wantField, field, "input %q", tt.input)
		assert.Equal(t, tt.wantColumn, column, "input %q", tt.input)
	}
}

func TestNormalizeSortDirection(t *testing.T) {
	assert.Equal(t, "desc", normalizeSortDirection("desc"))
	assert.Equal(t, "desc", normalizeSortDirection("DESC"))
	assert.Equal(t, "asc", normalizeSortDirection("asc"))
	assert.Equal(t, "asc", normalizeSortDirection(""))
	assert.Equal(t, "asc", normalizeSortDirection("sideways"))
}
