package cmd

import (
	"strconv"

	"github.com/vyyka/fptpray/internal/model"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

// categoryDisplay pairs a category key with its Vietnamese label.
type categoryDisplay struct {
	key   string
	label string
}

// categoriesForDisplay returns the categories in display order.
func categoriesForDisplay() []categoryDisplay {
	return []categoryDisplay{
		{key: model.CategoryFixture, label: "Bàn thờ"},
		{key: model.CategoryConsumable, label: "Nhang"},
	}
}
