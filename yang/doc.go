// Package yang prints a resolved schema.Module as YANG text.
//
// The printer walks the tree top-down in a single pass: the module header,
// imports and includes, metadata, revisions, identities and typedefs, and
// then the data nodes. Each nesting level is indented by two spaces and
// every block takes the form
//
//	keyword argument {
//	  ...
//	}
//
// The printer does not check the tree. References are assumed resolved,
// nodes of a kind not allowed at a given place are skipped, and absent
// optional fields are omitted. The only error Fprint returns is one
// reported by the underlying writer.
package yang
