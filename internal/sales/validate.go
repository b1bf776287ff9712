package sales

import (
	"reflect"

	"salesreport/pkg/contracts/domain"
)

// Validate gates a run: every collection must be present and non-empty and both policies
// must be set. It has no side effects.
func Validate(data *domain.Dataset, opts Options) error {
	if data == nil {
		return &InvalidInputError{Field: "data", Reason: "is missing"}
	}
	if len(data.Sellers) == 0 {
		return &InvalidInputError{Field: "sellers", Reason: "must be a non-empty list"}
	}
	if len(data.Products) == 0 {
		return &InvalidInputError{Field: "products", Reason: "must be a non-empty list"}
	}
	if len(data.PurchaseRecords) == 0 {
		return &InvalidInputError{Field: "purchase_records", Reason: "must be a non-empty list"}
	}

	if isNilPolicy(opts.Revenue) {
		return &MissingPolicyError{Policy: "revenue"}
	}
	if isNilPolicy(opts.Bonus) {
		return &MissingPolicyError{Policy: "bonus"}
	}
	return nil
}

// isNilPolicy also catches typed nils such as RevenueFunc(nil) wrapped in the interface.
func isNilPolicy(p any) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Interface, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}
