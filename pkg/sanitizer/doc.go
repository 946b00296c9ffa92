// Package sanitizer provides input normalization for creator records.
//
// All normalization functions are idempotent - applying them multiple times produces
// the same result. Functions handle invalid input gracefully, typically by returning
// empty strings rather than errors; validation decides what to reject.
//
// Normalization includes:
//   - Social handles: a bare handle, "@handle" or a profile URL becomes the canonical handle
//   - Names: collapse whitespace, trim leading/trailing spaces
//   - Descriptions and URLs: trim leading/trailing spaces
//
// Normalization runs after validation and before a record is persisted, so stored
// social fields always hold canonical handles.
package sanitizer
