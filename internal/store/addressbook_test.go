package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shippingAddress(city string, isDefault bool) Address {
	return Address{
		Type:       AddressShipping,
		FirstName:  "Isabella",
		LastName:   "V",
		Line1:      "12 Rue des Lilas",
		City:       city,
		PostalCode: "75011",
		Country:    "France",
		IsDefault:  isDefault,
	}
}

func TestAddressBook_SaveAssignsID(t *testing.T) {
	b := NewAddressBook()

	saved := b.Save(shippingAddress("Paris", false))

	assert.NotEmpty(t, saved.ID)
	require.Len(t, b.List(), 1)
	assert.Equal(t, saved.ID, b.List()[0].ID)
}

func TestAddressBook_SaveReplacesExisting(t *testing.T) {
	b := NewAddressBook()
	saved := b.Save(shippingAddress("Paris", false))

	saved.City = "Lyon"
	updated := b.Save(saved)

	assert.Equal(t, saved.ID, updated.ID)
	entries := b.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "Lyon", entries[0].City)
}

func TestAddressBook_DefaultMigratesWithinType(t *testing.T) {
	b := NewAddressBook()
	first := b.Save(shippingAddress("Paris", true))

	second := b.Save(shippingAddress("Lyon", true))

	got, ok := b.ByID(first.ID)
	require.True(t, ok)
	assert.False(t, got.IsDefault, "old default must be demoted")

	got, ok = b.ByID(second.ID)
	require.True(t, ok)
	assert.True(t, got.IsDefault)
}

func TestAddressBook_DefaultsAreScopedPerType(t *testing.T) {
	b := NewAddressBook()
	billing := shippingAddress("Paris", true)
	billing.Type = AddressBilling
	savedBilling := b.Save(billing)

	b.Save(shippingAddress("Lyon", true))

	got, ok := b.ByID(savedBilling.ID)
	require.True(t, ok)
	assert.True(t, got.IsDefault, "billing default must survive a new shipping default")
}

func TestAddressBook_NonDefaultSaveLeavesDefaultsAlone(t *testing.T) {
	b := NewAddressBook()
	first := b.Save(shippingAddress("Paris", true))

	b.Save(shippingAddress("Lyon", false))

	got, ok := b.ByID(first.ID)
	require.True(t, ok)
	assert.True(t, got.IsDefault)
}

func TestAddressBook_Remove(t *testing.T) {
	b := NewAddressBook()
	first := b.Save(shippingAddress("Paris", false))
	second := b.Save(shippingAddress("Lyon", false))

	b.Remove(first.ID)

	entries := b.List()
	require.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].ID)

	b.Remove("missing")
	assert.Len(t, b.List(), 1)
}

func TestAddressBook_ByIDMissing(t *testing.T) {
	b := NewAddressBook()
	_, ok := b.ByID("missing")
	assert.False(t, ok)
}
