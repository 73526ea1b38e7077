package store

import (
	"github.com/google/uuid"
)

// Address types. Defaults are scoped per type: one default Shipping address
// and one default Billing address may coexist.
const (
	AddressShipping = "Shipping"
	AddressBilling  = "Billing"
)

// Address is a saved delivery or billing address.
type Address struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"is_default"`
}

// AddressBook owns the saved addresses. Within each address type at most one
// entry is the default.
type AddressBook struct {
	entries []Address
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// Save replaces the entry whose id is already in the book, or assigns a new
// id and appends. When the saved entry is marked default, every other entry
// of the same type loses its default flag. The store receives a complete
// record; field validation happens at the input boundary.
func (b *AddressBook) Save(a Address) Address {
	replaced := false
	for i := range b.entries {
		if b.entries[i].ID == a.ID {
			b.entries[i] = a
			replaced = true
			break
		}
	}
	if !replaced {
		a.ID = uuid.NewString()
		b.entries = append(b.entries, a)
	}
	if a.IsDefault {
		for i := range b.entries {
			if b.entries[i].ID != a.ID && b.entries[i].Type == a.Type {
				b.entries[i].IsDefault = false
			}
		}
	}
	return a
}

// Remove deletes the entry with the given id. The user confirmation step is
// a caller-side gate; once invoked, removal is unconditional. Absent ids are
// a no-op.
func (b *AddressBook) Remove(id string) {
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// List returns the saved addresses in insertion order.
func (b *AddressBook) List() []Address {
	out := make([]Address, len(b.entries))
	copy(out, b.entries)
	return out
}

// ByID looks up an address by id.
func (b *AddressBook) ByID(id string) (Address, bool) {
	for _, a := range b.entries {
		if a.ID == id {
			return a, true
		}
	}
	return Address{}, false
}
