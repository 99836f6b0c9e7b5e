// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Every failure raised while resolving quantity metadata or materializing a
// quantity carries one of the ErrorCode values below and a stable message, so
// host applications can branch on CodeOf(err) instead of parsing text.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeConversionNotAllowed,
//	    "Box.Width (Meter) cannot be converted to Degree.",
//	    map[string]any{
//	        "type":   "Box",
//	        "field":  "Width",
//	        "target": "Degree",
//	    },
//	)
//
//	if errors.IsCode(err, errors.ErrCodeConversionNotAllowed) {
//	    // fall back to the declared unit
//	}
package errors
