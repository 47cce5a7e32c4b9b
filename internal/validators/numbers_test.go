package validators

import (
	"testing"

	"github.com/MKhiriev/go-calculator/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateNumbers(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "both valid", a: "1", b: "2", want: true},
		{name: "negative and fraction", a: "-1.5", b: "0.25", want: true},
		{name: "first invalid", a: "abc", b: "2", want: false},
		{name: "second invalid", a: "1", b: "", want: false},
		{name: "both invalid", a: "x", b: "y", want: false},
		{name: "NaN literal", a: "NaN", b: "1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateNumbers(models.ParseOperand(tt.a), models.ParseOperand(tt.b))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateSingleNumber(t *testing.T) {
	assert.True(t, ValidateSingleNumber(models.ParseOperand("16")))
	assert.True(t, ValidateSingleNumber(models.ParseOperand("-4")))
	assert.False(t, ValidateSingleNumber(models.ParseOperand("")))
	assert.False(t, ValidateSingleNumber(models.ParseOperand("four")))
	assert.False(t, ValidateSingleNumber(models.Operand{}))
}
