package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"warga-registry-svc/internal/models"
)

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "desa::wargaByNik:3175094109900001", cacheKey("3175094109900001"))
}

func TestNilClientIsNoOp(t *testing.T) {
	c := NewWargaCache(nil, time.Hour)
	ctx := context.Background()

	warga, err := c.GetByNik(ctx, "3175094109900001")
	assert.NoError(t, err)
	assert.Nil(t, warga)

	assert.NoError(t, c.SetByNik(ctx, &models.Warga{Nik: "3175094109900001"}))
	assert.NoError(t, c.DeleteByNik(ctx, "3175094109900001"))
}
