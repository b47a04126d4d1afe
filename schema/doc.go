// Package schema defines the in-memory representation of a resolved YANG
// module: its header, imports, revisions, identities and typedefs, and the
// tree of schema nodes below it.
//
// A Module is the sole owner of everything reachable from it. Nodes own
// their children; the Module and Parent fields of a node are back-references
// and never a second ownership path. Consumers such as the printer in
// package yang only read the tree, so a fully built Module may be shared
// between goroutines.
//
// Optional string fields are absent when empty.
package schema
