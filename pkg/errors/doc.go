// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Domain failures that callers must react to carry one of two codes:
// ErrCodeInvalidRecipeField and ErrCodeInvalidInventoryAmount. Expected
// business outcomes such as a refused purchase are not errors.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInvalidInventoryAmount,
//	    "amount must be a non-negative integer",
//	    map[string]any{
//	        "ingredient": "milk",
//	        "value":      "-3",
//	    },
//	)
//
//	if errors.HasCode(err, errors.ErrCodeInvalidInventoryAmount) {
//	    // surface to the operator and retry
//	}
package errors
