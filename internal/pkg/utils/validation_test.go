package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type clockPayload struct {
	Start string `validate:"required,clock"`
	Role  string `validate:"omitempty,role_name"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("accepts well formed clock and role", func(t *testing.T) {
		err := ValidateStruct(clockPayload{Start: "09:30", Role: "DOCTOR"})
		assert.NoError(t, err)
	})

	t.Run("rejects out of range clock", func(t *testing.T) {
		err := ValidateStruct(clockPayload{Start: "24:00"})
		assert.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		err := ValidateStruct(clockPayload{Start: "09:00", Role: "JANITOR"})
		assert.Error(t, err)
	})
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("13:45")
	assert.NoError(t, err)
	assert.Equal(t, 13*60+45, minutes)
	assert.Equal(t, "13:45", FormatClock(minutes))

	_, err = ParseClock("9:00")
	assert.Error(t, err, "single digit hour is not accepted")
}
