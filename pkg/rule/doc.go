// Package rule produces rule evaluation records: the per-field outcomes that a
// Result accumulates and a message compiler renders.
//
// A Record carries a Path, a Kind (failure or hint) and the data needed to
// render it later: a predicate name, a default template and its arguments.
// Rendering is deferred on purpose so that validation itself never pays for
// string interpolation.
//
// # Rules
//
// Rule binds a predicate to its input. Evaluate runs a chain of rules as a
// conjunction: the first rule that fails becomes a failure record and every
// rule after it becomes a hint, so users see what the value still has to
// satisfy once the blocking error is fixed.
//
//	records := rule.Apply(
//	    rule.Evaluate(rule.NewPath("age"), rule.Filled(age), rule.Gt(age, 18)),
//	    rule.Evaluate(rule.NewPath("email"), rule.Filled(email), rule.Format(email, emailRe)),
//	)
//
// Records from a nested schema are merged under their parent key with Prefix.
package rule
