package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusChanged(t *testing.T) {
	tests := []struct {
		name      string
		oldStatus string
		newStatus string
		isNew     bool
		want      bool
	}{
		{"activation", "inactive", "active", false, true},
		{"rejection", "active", "rejected", false, true},
		{"same value rewrite", "active", "active", false, false},
		{"creation never counts", "", "inactive", true, false},
		{"creation with matching statuses", "active", "active", true, false},
		{"empty old status on update", "", "active", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusChanged(tt.oldStatus, tt.newStatus, tt.isNew))
		})
	}
}
