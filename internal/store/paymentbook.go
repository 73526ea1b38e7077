package store

import (
	"strings"

	"github.com/google/uuid"
)

// Card brands resolved by the prefix heuristic.
const (
	BrandVisa       = "Visa"
	BrandMastercard = "Mastercard"
	BrandAmex       = "Amex"
)

// PaymentMethod is a saved card. Only the brand and last four digits survive
// creation; the full card number is never retained.
type PaymentMethod struct {
	ID        string `json:"id"`
	Brand     string `json:"brand"`
	Last4     string `json:"last4"`
	Expiry    string `json:"expiry"`
	IsDefault bool   `json:"is_default"`
}

// PaymentInput carries what the form submits. CardNumber is only consulted
// when creating; edits can change expiry and the default flag, nothing else.
type PaymentInput struct {
	ID         string
	CardNumber string
	Expiry     string
	IsDefault  bool
}

// PaymentBook owns the saved payment methods. At most one entry across the
// whole collection is the default.
type PaymentBook struct {
	entries []PaymentMethod
}

// NewPaymentBook returns an empty payment book.
func NewPaymentBook() *PaymentBook {
	return &PaymentBook{}
}

// Save creates or edits a payment method. Creation assigns a new id and
// derives brand and last4 from the raw card number; edits preserve the
// original brand and last4. When the saved entry is marked default, every
// other entry loses its default flag.
func (b *PaymentBook) Save(in PaymentInput) PaymentMethod {
	for i := range b.entries {
		if b.entries[i].ID == in.ID {
			b.entries[i].Expiry = in.Expiry
			b.entries[i].IsDefault = in.IsDefault
			saved := b.entries[i]
			b.clearOtherDefaults(saved)
			return saved
		}
	}
	pm := PaymentMethod{
		ID:        uuid.NewString(),
		Brand:     DeriveBrand(in.CardNumber),
		Last4:     deriveLast4(in.CardNumber),
		Expiry:    in.Expiry,
		IsDefault: in.IsDefault,
	}
	b.entries = append(b.entries, pm)
	b.clearOtherDefaults(pm)
	return pm
}

func (b *PaymentBook) clearOtherDefaults(pm PaymentMethod) {
	if !pm.IsDefault {
		return
	}
	for i := range b.entries {
		if b.entries[i].ID != pm.ID {
			b.entries[i].IsDefault = false
		}
	}
}

// Remove deletes the entry with the given id. As with addresses, the
// confirmation step happens before this call. Absent ids are a no-op.
func (b *PaymentBook) Remove(id string) {
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// List returns the saved payment methods in insertion order.
func (b *PaymentBook) List() []PaymentMethod {
	out := make([]PaymentMethod, len(b.entries))
	copy(out, b.entries)
	return out
}

// ByID looks up a payment method by id.
func (b *PaymentBook) ByID(id string) (PaymentMethod, bool) {
	for _, pm := range b.entries {
		if pm.ID == id {
			return pm, true
		}
	}
	return PaymentMethod{}, false
}

// DeriveBrand maps a raw card number to a brand by leading digit: 5 is
// Mastercard, 3 is Amex, anything else Visa. This is a mock prefix heuristic,
// not real card-network detection.
func DeriveBrand(cardNumber string) string {
	num := strings.ReplaceAll(cardNumber, " ", "")
	switch {
	case strings.HasPrefix(num, "5"):
		return BrandMastercard
	case strings.HasPrefix(num, "3"):
		return BrandAmex
	default:
		return BrandVisa
	}
}

func deriveLast4(cardNumber string) string {
	num := strings.ReplaceAll(cardNumber, " ", "")
	if len(num) < 4 {
		return "4242"
	}
	return num[len(num)-4:]
}
