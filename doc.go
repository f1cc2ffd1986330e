// Package schemakit aggregates rule evaluation records into an immutable
// validation Result.
//
// A Result pairs the coerced output of a validation run with the records
// produced by the rule engine. Messages are rendered lazily: nothing is
// interpolated until Errors, Messages or Hints is called.
//
// Key Features:
//
//   - Build-then-seal lifecycle: a Builder collects output and records, Freeze
//     turns it into a Result that has no mutating methods
//   - Failures vs hints: hints are advisory and only surface when a render
//     produced no failures
//   - Nested merging: records of a sub-schema result are absorbed under a key
//   - Localized rendering through pkg/message and pkg/i18n
//
// Basic Usage:
//
//	result := schemakit.New(map[string]any{"age": 18}, nil, func(b *schemakit.Builder) {
//		b.Concat(rule.Evaluate(rule.NewPath("age"), rule.Gt(18, 18))...)
//	})
//
//	result.Success()  // false
//	result.Errors()   // map[string]any{"age": []string{"must be greater than 18"}}
//
// Nested Schemas:
//
//	address := schemakit.New(addressOutput, compiler, buildAddress)
//	user := schemakit.New(userOutput, compiler, func(b *schemakit.Builder) {
//		b.Nest("address", address)
//	})
//
//	user.Messages() // {"address": {"street": ["must be filled"]}}
//
// Equality:
//
// Two results are Equal when their outputs and rendered errors match.
//
// Errors:
//
// Validation failures are data, not errors. The only faults are contract
// violations: mutating a frozen Builder panics with ErrFrozen, and Fetch on an
// absent key returns an error wrapping ErrMissingKey. Use Err to convert a
// failed result into a ValidationError when an error return is needed.
package schemakit
