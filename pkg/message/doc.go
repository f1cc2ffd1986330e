// Package message turns rule evaluation records into display-ready messages.
//
// A Compiler renders records into a Set. The Set partitions messages into
// failures and hints and Dump exposes exactly one of the two subsets as a
// nested map keyed by path segments:
//
//	set := message.NewCompiler().Compile(records, message.NewOptions(message.WithLocale("de")))
//	set.Dump() // map[string]any{"address": map[string]any{"street": []string{"muss ausgefüllt sein"}}}
//
// # Failures and hints
//
// Which subset Dump returns is decided by Options.Failures, a tri-state Flag.
// Only an explicit Yes exposes failures. CatalogCompiler resolves an unset flag
// to Yes whenever at least one failure was rendered, so hints surface only when
// a render call produced no failures at all. Setting Hints to No drops hint
// records before rendering.
//
// # Grouping
//
// Messages sharing a path are appended to the same leaf list in order. A path
// that is both a leaf and the prefix of a deeper path keeps its own messages
// under SelfKey inside the nested node.
//
// # Configuration
//
// Config carries the env-tagged settings consumed by NewCompilerFromConfig.
package message
