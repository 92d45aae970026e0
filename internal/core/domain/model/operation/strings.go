package operation

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// TypeFromString parses a wire name back into a Type.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s && t != TypeUnknown {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"operationType", fmt.Errorf("%q is not a valid operation type", s))
}

// ResultFromString parses a wire name back into a Result.
func ResultFromString(s string) (Result, error) {
	switch s {
	case "SUCCESS":
		return ResultSuccess, nil
	case "FAILED":
		return ResultFailed, nil
	default:
		return ResultUnknown, errs.NewValueIsInvalidErrorWithCause(
			"result", fmt.Errorf("%q is not a valid result", s))
	}
}
