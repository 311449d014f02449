package bingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCondition(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		wantErr   assert.ErrorAssertionFunc
	}{
		{"where equals", "WHERE blog_id = :id", assert.NoError},
		{"where like", "WHERE blog_title LIKE :title", assert.NoError},
		{"empty", "", assert.NoError},
		{"no keyword", "blog_id = ?", assert.NoError},
		{"no space", "WHERE", assert.Error},
		{"packed", "blog_id=:id", assert.Error},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Condition(tt.condition)
			if !tt.wantErr(t, err) {
				return
			}
			if err != nil {
				var condErr ErrInvalidCondition
				assert.ErrorAs(t, err, &condErr)
				return
			}
			assert.Equal(t, tt.condition, got)
		})
	}
}

func TestConditionIdempotent(t *testing.T) {
	first, err := Condition("WHERE blog_id = :id")
	assert.NoError(t, err)

	second, err := Condition(first)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
