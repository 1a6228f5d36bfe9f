package repository

import (
	"strings"
	"testing"

	"contractdraft-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListQuery_Paging(t *testing.T) {
	tests := []struct {
		name          string
		limit, offset int
		wantTail      string
		wantArgs      []interface{}
	}{
		{"unbounded", 0, 0, "ORDER BY created_at DESC, id", []interface{}{}},
		{"limit only", 10, 0, "ORDER BY created_at DESC, id LIMIT $1", []interface{}{10}},
		{"offset only", 0, 5, "ORDER BY created_at DESC, id OFFSET $1", []interface{}{5}},
		{"limit and offset", 10, 5, "ORDER BY created_at DESC, id LIMIT $1 OFFSET $2", []interface{}{10, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := listQuery(nil, nil, tt.limit, tt.offset)
			assert.True(t, strings.HasSuffix(query, tt.wantTail), query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestListQuery_FiltersNumberPlaceholders(t *testing.T) {
	owner := uuid.New()
	status := models.StatusSigned

	query, args := listQuery(&owner, &status, 0, 3)

	assert.Contains(t, query, "AND user_id = $1 AND status = $2")
	assert.True(t, strings.HasSuffix(query, "OFFSET $3"), query)
	assert.Equal(t, []interface{}{owner, status, 3}, args)
}
