package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "Ten digits", phone: "9876543210", valid: true},
		{name: "With country code", phone: "+919876543210", valid: true},
		{name: "Single digit country code", phone: "+19876543210", valid: true},
		{name: "Too short", phone: "12345", valid: false},
		{name: "Too long", phone: "98765432101", valid: false},
		{name: "Letters", phone: "98765abcde", valid: false},
		{name: "Spaces", phone: "98765 43210", valid: false},
		{name: "Empty", phone: "", valid: false},
		{name: "Bare plus", phone: "+9876543210", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsPhone(tt.phone))
		})
	}
}
