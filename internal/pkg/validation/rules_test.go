package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireBodyCheck(t *testing.T) {
	rule := RequireBody("id and role are required", "id", "role")

	tests := []struct {
		name   string
		values map[string]interface{}
		want   bool
	}{
		{"all present", map[string]interface{}{"id": "64f0", "role": "admin"}, true},
		{"missing key", map[string]interface{}{"id": "64f0"}, false},
		{"null value", map[string]interface{}{"id": "64f0", "role": nil}, false},
		{"empty string", map[string]interface{}{"id": "", "role": "admin"}, false},
		{"whitespace counts", map[string]interface{}{"id": " ", "role": "admin"}, true},
		{"zero number", map[string]interface{}{"id": float64(0), "role": "admin"}, false},
		{"empty body", map[string]interface{}{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Check(tt.values))
		})
	}
}

func TestNonEmptyList(t *testing.T) {
	rule := Rule{Source: Body, Message: "userIds array is required", Fields: []Field{NonEmptyList("userIds")}}

	assert.False(t, rule.Check(map[string]interface{}{"userIds": []interface{}{}}))
	assert.False(t, rule.Check(map[string]interface{}{"userIds": nil}))
	assert.False(t, rule.Check(map[string]interface{}{}))
	assert.True(t, rule.Check(map[string]interface{}{"userIds": []interface{}{"u1"}}))
}

func TestWithDoesNotMutateBase(t *testing.T) {
	base := RequireBody("msg", "id")
	extended := base.With(Field{Name: "text"})

	assert.Len(t, base.Fields, 1)
	assert.Len(t, extended.Fields, 2)
	assert.Equal(t, "msg", extended.Message)
}
