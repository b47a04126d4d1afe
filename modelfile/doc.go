// Package modelfile builds resolved schema.Module trees from YAML model
// files.
//
// A model file lists one or more modules:
//
//	modules:
//	  - name: m1
//	    namespace: urn:m1
//	    prefix: m
//	    imports:
//	      - {module: m2, prefix: b}
//	    typedefs:
//	      - name: percent
//	        type: {name: uint8, range: "0..100"}
//	    nodes:
//	      - container: c1
//	        config: true
//	        children:
//	          - leaf: l1
//	            type: string
//	          - leaf: l2
//	            type: b:name
//
// Each node names its kind by the key that carries its name (container,
// choice, leaf, leaf-list, list, grouping or uses). A type is either a
// plain name or a mapping with the name and the restrictions of the type.
//
// References are resolved while loading: imports by module name among
// the modules loaded so far, types and identity bases by name in the
// enclosing typedef scopes or, when prefixed, in the imported module.
// Nodes without a config value inherit the one of their parent.
package modelfile
