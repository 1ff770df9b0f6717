package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityOrdering(t *testing.T) {
	assert.Less(t, PriorityLow.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityHigh.Rank())
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority("URGENT").Valid())
	assert.False(t, Priority("").Valid())
}

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{
		CategoryPersonal, CategoryWork, CategoryShopping,
		CategoryHealth, CategoryFinance, CategoryOther,
	} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("hobby").Valid())
}
