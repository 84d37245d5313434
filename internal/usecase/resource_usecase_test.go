package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Offset(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want int
	}{
		{name: "first page", page: Page{Size: 20, Number: 0}, want: 0},
		{name: "third page", page: Page{Size: 20, Number: 2}, want: 40},
		{name: "product overflows int", page: Page{Size: 3, Number: 6148914691236517206}, want: math.MaxInt},
		{name: "max number", page: Page{Size: 2, Number: math.MaxInt}, want: math.MaxInt},
		{name: "largest exact product", page: Page{Size: 1, Number: math.MaxInt}, want: math.MaxInt},
		{name: "invalid size", page: Page{Size: 0, Number: 5}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.Offset())
		})
	}
}
