// Package i18n stores localized message templates for validation messages.
//
// A Catalog maps a locale and a dot-separated key to a template string. Keys
// are flattened from nested YAML, JSON or TOML documents whose top level is the
// locale code:
//
//	en:
//	  errors:
//	    "gt?": "must be greater than %{num}"
//
// Templates use named placeholders in the form %{name}; Sprintf fills them
// from a parameter map and leaves unknown placeholders untouched.
//
// # Locale resolution
//
// Resolve matches the requested locale exactly, then by language using
// golang.org/x/text/language (so "de-AT" resolves to "de"), and finally falls
// back to the default locale. Keys missing from a resolved locale are looked up
// in the default locale as well.
//
// # Loading
//
//	catalog, err := i18n.LoadDir(ctx, "./locales", i18n.WithDefaultLocale("en"))
//	if err != nil {
//		return err
//	}
//
// Default returns a catalog built from the English and German files embedded in
// the package.
//
// # Error Handling
//
// Loading errors wrap the sentinel values in errors.go and can be checked with errors.Is:
//
//	if errors.Is(err, i18n.ErrNoCatalogFiles) {
//	    // fall back to i18n.Default()
//	}
package i18n
