package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sortByCreated = SortMeta{Field: "createdAt", Direction: "asc"}

func TestNewPageEnvelopeEmpty(t *testing.T) {
	paging := NewBasePaging(1, 10, "", "", "")

	env := NewPageEnvelope(paging, 0, []string{}, sortByCreated)

	assert.EqualValues(t, 0, env.TotalElements)
	assert.EqualValues(t, 0, env.From)
	assert.EqualValues(t, 0, env.To)
	assert.Equal(t, 0, env.TotalPages)
	assert.Equal(t, 0, env.NumberOfElements)
	assert.True(t, env.First)
	assert.True(t, env.Last)
	assert.False(t, env.HasNext)
	assert.Nil(t, env.NextPage)
}

func TestNewPageEnvelopeLastPage(t *testing.T) {
	paging := NewBasePaging(3, 10, "", "", "")
	content := []string{"a", "b", "c", "d", "e"}

	env := NewPageEnvelope(paging, 25, content, sortByCreated)

	assert.Equal(t, 3, env.TotalPages)
	assert.EqualValues(t, 21, env.From)
	assert.EqualValues(t, 25, env.To)
	assert.Equal(t, 5, env.NumberOfElements)
	assert.False(t, env.First)
	assert.True(t, env.Last)
	assert.False(t, env.HasNext)
	assert.Nil(t, env.NextPage)
}

func TestNewPageEnvelopeMiddlePage(t *testing.T) {
	paging := NewBasePaging(2, 10, "", "", "")
	content := make([]int, 10)

	env := NewPageEnvelope(paging, 25, content, sortByCreated)

	assert.Equal(t, 3, env.TotalPages)
	assert.EqualValues(t, 11, env.From)
	assert.EqualValues(t, 20, env.To)
	assert.False(t, env.First)
	assert.False(t, env.Last)
	assert.True(t, env.HasNext)
	if assert.NotNil(t, env.NextPage) {
		assert.Equal(t, 3, *env.NextPage)
	}
}

func TestNewPageEnvelopeBeyondLastPage(t *testing.T) {
	paging := NewBasePaging(3, 10, "", "", "")

	env := NewPageEnvelope(paging, 5, []string{}, sortByCreated)

	// Requested page lies beyond the content; from/to collapse to 0
	assert.EqualValues(t, 0, env.From)
	assert.EqualValues(t, 0, env.To)
	assert.Equal(t, 0, env.NumberOfElements)
	assert.Equal(t, 1, env.TotalPages)
	assert.True(t, env.Last)
	assert.False(t, env.HasNext)
	assert.Nil(t, env.NextPage)
}

func TestNewPageEnvelopeSinglePartialPage(t *testing.T) {
	paging := NewBasePaging(1, 10, "", "", "")
	content := []string{"a", "b", "c"}

	env := NewPageEnvelope(paging, 3, content, sortByCreated)

	assert.Equal(t, 1, env.TotalPages)
	assert.EqualValues(t, 1, env.From)
	assert.EqualValues(t, 3, env.To)
	assert.True(t, env.First)
	assert.True(t, env.Last)
	assert.False(t, env.HasNext)
}

func TestNewPageEnvelopeExactBoundary(t *testing.T) {
	paging := NewBasePaging(2, 10, "", "", "")
	content := make([]int, 10)

	env := NewPageEnvelope(paging, 20, content, sortByCreated)

	assert.Equal(t, 2, env.TotalPages)
	assert.EqualValues(t, 11, env.From)
	assert.EqualValues(t, 20, env.To)
	assert.True(t, env.Last)
	assert.False(t, env.HasNext)
}
