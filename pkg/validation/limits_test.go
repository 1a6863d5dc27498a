package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "partysearch/pkg/domain-errors"
)

func TestCheckSliceCount(t *testing.T) {
	assert.NoError(t, CheckSliceCount("parties", 3, 3))

	err := CheckSliceCount("parties", 4, 3)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.EqualError(t, err, "too many parties: max 3 allowed")
}

func TestCheckStringLength(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "under limit", value: "Smith", wantErr: false},
		{name: "at limit", value: strings.Repeat("a", 8), wantErr: false},
		{name: "multibyte counted as characters", value: strings.Repeat("é", 8), wantErr: false},
		{name: "over limit", value: strings.Repeat("a", 9), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStringLength("name", tt.value, 8)
			if tt.wantErr {
				assert.EqualError(t, err, "name exceeds max length of 8")
				return
			}
			assert.NoError(t, err)
		})
	}
}
