package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyUnmarshal(t *testing.T) {
	var limits GLLimits
	raw := `{
		"eachOccurrence": 1000000,
		"damageToRentedPremises": "Excluded",
		"medicalExpense": null,
		"personalAdvInjury": 0,
		"generalAggregate": true,
		"productsCompOp": false
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), &limits))

	assert.Equal(t, float64(1000000), limits.EachOccurrence.Value())
	assert.Equal(t, "Excluded", limits.DamageToRentedPremises.Value())
	assert.Nil(t, limits.MedicalExpense.Value())
	assert.False(t, limits.MedicalExpense.IsSet())
	assert.Equal(t, float64(0), limits.PersonalAdvInjury.Value())
	assert.True(t, limits.PersonalAdvInjury.Present())
	assert.Equal(t, "Included", limits.GeneralAggregate.Value())
	assert.False(t, limits.ProductsCompOp.IsSet())
}

func TestMoneyMarshalRoundTrip(t *testing.T) {
	in := GLLimits{
		EachOccurrence:         MoneyFromFloat(2000000),
		DamageToRentedPremises: MoneyFromString("Excluded"),
	}
	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out GLLimits
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in.EachOccurrence.Value(), out.EachOccurrence.Value())
	assert.Equal(t, in.DamageToRentedPremises.Value(), out.DamageToRentedPremises.Value())
	assert.False(t, out.MedicalExpense.IsSet())
}

func TestMoneyPresent(t *testing.T) {
	assert.False(t, Money{}.Present())
	assert.True(t, MoneyFromFloat(0).Present())
	assert.True(t, MoneyFromString("Included").Present())
	assert.False(t, MoneyFromString("   ").Present())
}
