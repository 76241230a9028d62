package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekday_Label(t *testing.T) {
	assert.Equal(t, "Monday", Monday.Label())
	assert.Equal(t, "Sunday", Sunday.Label())
	assert.Equal(t, "", Weekday("").Label())

	for _, d := range Weekdays {
		parsed, ok := ParseWeekday(d.Label())
		assert.True(t, ok, d)
		assert.Equal(t, d, parsed)
	}
}
