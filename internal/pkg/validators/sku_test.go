//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type skuHolder struct {
	SKU string `validate:"skuValidation"`
}

func TestSKUValidation(t *testing.T) {
	validate := validator.New()
	err := validate.RegisterValidation("skuValidation", SKUValidation)
	require.NoError(t, err)

	tests := []struct {
		name    string
		sku     string
		wantErr bool
	}{
		{"copykit one-off", "COPYKIT-PRO", false},
		{"briefing monthly", "DAILYBRIEF-MONTHLY", false},
		{"single segment", "COPYKIT", false},
		{"digits", "COPYKIT-2025", false},
		{"lowercase", "copykit-pro", true},
		{"empty", "", true},
		{"trailing hyphen", "COPYKIT-", true},
		{"double hyphen", "COPYKIT--PRO", true},
		{"whitespace", "COPYKIT PRO", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(&skuHolder{SKU: tt.sku})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
