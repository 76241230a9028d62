package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.True(t, c.HasSpecialty("Cardiology"))
	assert.True(t, c.HasSpecialty("Dermatology"))
	assert.False(t, c.HasSpecialty("Astrology"))

	assert.Contains(t, c.ServicesFor("Cardiology"), "ECG")
	assert.Nil(t, c.ServicesFor("Astrology"))

	assert.True(t, c.OffersService("Cardiology", "ECG"))
	assert.False(t, c.OffersService("Dermatology", "ECG"))

	assert.True(t, c.HasPaymentMethod("upi"))
	assert.False(t, c.HasPaymentMethod("visa"))
	assert.Equal(t, "Google Pay", c.PaymentMethodLabel("gpay"))
	assert.Equal(t, "visa", c.PaymentMethodLabel("visa"))

	assert.Contains(t, c.Languages, "English")
	assert.Contains(t, c.Degrees, "MBBS")
}

func TestServicesForReturnsCopy(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	services := c.ServicesFor("Cardiology")
	services[0] = "changed"
	assert.Equal(t, "ECG", c.ServicesFor("Cardiology")[0])
}

func TestParseRejectsEmptyCatalog(t *testing.T) {
	_, err := Parse([]byte("languages: [English]"))
	assert.Error(t, err)

	_, err = Parse([]byte("specialties: ["))
	assert.Error(t, err)
}
