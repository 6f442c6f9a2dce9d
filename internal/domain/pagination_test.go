package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		total       int
		wantPages   int
		wantNext    bool
		wantPrev    bool
	}{
		{"first of several", 1, 25, 97, 4, true, false},
		{"middle page", 2, 25, 97, 4, true, true},
		{"last partial page", 4, 25, 97, 4, false, true},
		{"beyond last page", 5, 25, 97, 4, false, true},
		{"exact multiple", 2, 25, 50, 2, false, true},
		{"empty result", 1, 25, 0, 0, false, false},
		{"single item", 1, 25, 1, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPageInfo(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, info.CurrentPage)
			assert.Equal(t, tt.limit, info.Limit)
			assert.Equal(t, tt.total, info.TotalContacts)
			assert.Equal(t, tt.wantPages, info.TotalPages)
			assert.Equal(t, tt.wantNext, info.HasNextPage)
			assert.Equal(t, tt.wantPrev, info.HasPrevPage)
		})
	}
}
