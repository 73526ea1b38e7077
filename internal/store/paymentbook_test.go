package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveBrand(t *testing.T) {
	tests := []struct {
		name       string
		cardNumber string
		want       string
	}{
		{"mastercard prefix", "5555 4444 3333 1111", BrandMastercard},
		{"amex prefix", "3782 822463 10005", BrandAmex},
		{"visa prefix", "4242 4242 4242 4242", BrandVisa},
		{"unknown prefix falls back to visa", "9999 0000 1111 2222", BrandVisa},
		{"leading spaces stripped", "  5105105105105100", BrandMastercard},
		{"empty number", "", BrandVisa},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveBrand(tt.cardNumber))
		})
	}
}

func TestPaymentBook_CreateDerivesBrandAndLast4(t *testing.T) {
	b := NewPaymentBook()

	pm := b.Save(PaymentInput{CardNumber: "4242 4242 4242 4242", Expiry: "12/28"})

	assert.NotEmpty(t, pm.ID)
	assert.Equal(t, BrandVisa, pm.Brand)
	assert.Equal(t, "4242", pm.Last4)
	assert.Equal(t, "12/28", pm.Expiry)
	assert.False(t, pm.IsDefault)
}

func TestPaymentBook_Last4FallbackForShortNumbers(t *testing.T) {
	b := NewPaymentBook()

	pm := b.Save(PaymentInput{CardNumber: "51", Expiry: "01/27"})

	assert.Equal(t, BrandMastercard, pm.Brand)
	assert.Equal(t, "4242", pm.Last4)
}

func TestPaymentBook_EditPreservesBrandAndLast4(t *testing.T) {
	b := NewPaymentBook()
	created := b.Save(PaymentInput{CardNumber: "5555 4444 3333 9876", Expiry: "12/26"})

	// The edit submits a different card number; it must be ignored.
	edited := b.Save(PaymentInput{ID: created.ID, CardNumber: "4111 1111 1111 1111", Expiry: "03/29", IsDefault: true})

	assert.Equal(t, created.ID, edited.ID)
	assert.Equal(t, BrandMastercard, edited.Brand)
	assert.Equal(t, "9876", edited.Last4)
	assert.Equal(t, "03/29", edited.Expiry)
	assert.True(t, edited.IsDefault)
	assert.Len(t, b.List(), 1)
}

func TestPaymentBook_GlobalSingleDefault(t *testing.T) {
	b := NewPaymentBook()
	first := b.Save(PaymentInput{CardNumber: "4242424242424242", Expiry: "12/26", IsDefault: true})
	second := b.Save(PaymentInput{CardNumber: "5555444433331111", Expiry: "01/27", IsDefault: true})

	got, ok := b.ByID(first.ID)
	require.True(t, ok)
	assert.False(t, got.IsDefault, "old default must be demoted")

	got, ok = b.ByID(second.ID)
	require.True(t, ok)
	assert.True(t, got.IsDefault)

	defaults := 0
	for _, pm := range b.List() {
		if pm.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestPaymentBook_EditCanTakeOverDefault(t *testing.T) {
	b := NewPaymentBook()
	first := b.Save(PaymentInput{CardNumber: "4242424242424242", Expiry: "12/26", IsDefault: true})
	second := b.Save(PaymentInput{CardNumber: "5555444433331111", Expiry: "01/27"})

	b.Save(PaymentInput{ID: second.ID, Expiry: "01/27", IsDefault: true})

	got, ok := b.ByID(first.ID)
	require.True(t, ok)
	assert.False(t, got.IsDefault)
}

func TestPaymentBook_Remove(t *testing.T) {
	b := NewPaymentBook()
	first := b.Save(PaymentInput{CardNumber: "4242424242424242", Expiry: "12/26"})
	second := b.Save(PaymentInput{CardNumber: "3782822463100051", Expiry: "01/27"})

	b.Remove(first.ID)

	entries := b.List()
	require.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].ID)

	b.Remove("missing")
	assert.Len(t, b.List(), 1)
}
