// Package site resolves the clinic configuration the brochure site is
// rendered from and exposes it read-only to the presentation layer.
//
// Resolution walks an explicit chain of [Source] values. An
// [InlineOverride] is a JSON object shallow-merged over the built-in
// default: every top-level key it names replaces the default's block
// wholesale, nested objects are never merged. A [NamedTenant] selects a
// configuration from the [Registry] verbatim. [DefaultSource] always succeeds.
// Sources that cannot be used are logged and skipped, so [Loader.Resolve]
// never fails.
//
// The resolved value is held by an [Accessor], built once in the
// composition root and passed to whoever needs it. Service icons are
// looked up in a closed [Icon] enumeration with Smile as the fallback.
package site
