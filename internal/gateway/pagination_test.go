package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-coin/internal/ledger"
)

func TestPaginate_Math(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		page        int
		size        int
		wantItems   int
		wantPages   int
		hasNext     bool
		hasPrevious bool
	}{
		{name: "first of three pages", total: 25, page: 0, size: 10, wantItems: 10, wantPages: 3, hasNext: true, hasPrevious: false},
		{name: "middle page", total: 25, page: 1, size: 10, wantItems: 10, wantPages: 3, hasNext: true, hasPrevious: true},
		{name: "short last page", total: 25, page: 2, size: 10, wantItems: 5, wantPages: 3, hasNext: false, hasPrevious: true},
		{name: "page past the end", total: 25, page: 5, size: 10, wantItems: 0, wantPages: 3, hasNext: false, hasPrevious: true},
		{name: "exact fit", total: 20, page: 1, size: 10, wantItems: 10, wantPages: 2, hasNext: false, hasPrevious: true},
		{name: "empty list", total: 0, page: 0, size: 10, wantItems: 0, wantPages: 0, hasNext: false, hasPrevious: false},
		{name: "single item", total: 1, page: 0, size: 10, wantItems: 1, wantPages: 1, hasNext: false, hasPrevious: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			items := make([]int, tt.total)
			for i := range items {
				items[i] = i
			}

			// Act
			page := paginate(items, PageRequest{Page: tt.page, Size: tt.size})

			// Assert
			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, tt.wantPages, page.Pagination.TotalPages)
			assert.Equal(t, int64(tt.total), page.Pagination.TotalItems)
			assert.Equal(t, tt.hasNext, page.Pagination.HasNext)
			assert.Equal(t, tt.hasPrevious, page.Pagination.HasPrevious)
		})
	}
}

func TestPageRequest_ForwardsQueryParams(t *testing.T) {
	// Arrange
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"items":[],"pagination":{}}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	_, err := client.ListAdvantages(context.Background(), PageRequest{Page: 2, Size: 5, SortBy: "custoMoedas", Direction: "desc"})

	// Assert
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "size=5")
	assert.Contains(t, gotQuery, "sortBy=custoMoedas")
	assert.Contains(t, gotQuery, "direction=desc")
}

func TestListAdvantages_FallbackPaginatesLedger(t *testing.T) {
	// Arrange
	client := newTestClient(t, deadBackend)
	for i := 0; i < 12; i++ {
		_, err := client.store.CreateAdvantage(3, ledger.Advantage{Description: fmt.Sprintf("Vantagem %d", i), CoinCost: 100})
		require.NoError(t, err)
	}

	// Act
	first, err := client.ListAdvantages(context.Background(), PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)
	second, err := client.ListAdvantages(context.Background(), PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)

	// Assert
	assert.Len(t, first.Items, 10)
	assert.True(t, first.Pagination.HasNext)
	assert.False(t, first.Pagination.HasPrevious)
	assert.Len(t, second.Items, 2)
	assert.False(t, second.Pagination.HasNext)
	assert.True(t, second.Pagination.HasPrevious)
	assert.Equal(t, int64(12), second.Pagination.TotalItems)
}
