package sales

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrMissingPolicy  = errors.New("missing policy")
	ErrUnknownSeller  = errors.New("unknown seller")
	ErrUnknownProduct = errors.New("unknown product")
)

// InvalidInputError reports a missing or empty top level collection.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidInput
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// MissingPolicyError reports an absent revenue or bonus policy.
type MissingPolicyError struct {
	Policy string
}

func (e *MissingPolicyError) Error() string {
	return fmt.Sprintf("missing policy: %s policy is not set", e.Policy)
}

// Is reports whether target is ErrMissingPolicy
func (e *MissingPolicyError) Is(target error) bool {
	return target == ErrMissingPolicy
}

// UnknownSellerError reports a purchase record whose seller id does not resolve.
type UnknownSellerError struct {
	SellerID    string
	RecordIndex int
}

func (e *UnknownSellerError) Error() string {
	return fmt.Sprintf("unknown seller %q in purchase record %d", e.SellerID, e.RecordIndex)
}

// Is reports whether target is ErrUnknownSeller
func (e *UnknownSellerError) Is(target error) bool {
	return target == ErrUnknownSeller
}

// UnknownProductError reports a line item whose sku does not resolve.
type UnknownProductError struct {
	SKU         string
	SellerID    string
	RecordIndex int
	ItemIndex   int
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product %q in purchase record %d item %d (seller %q)",
		e.SKU, e.RecordIndex, e.ItemIndex, e.SellerID)
}

// Is reports whether target is ErrUnknownProduct
func (e *UnknownProductError) Is(target error) bool {
	return target == ErrUnknownProduct
}

// recordIndexOf returns the purchase record index a referential error points at.
func recordIndexOf(err error) int {
	var seller *UnknownSellerError
	if errors.As(err, &seller) {
		return seller.RecordIndex
	}
	var product *UnknownProductError
	if errors.As(err, &product) {
		return product.RecordIndex
	}
	return -1
}
