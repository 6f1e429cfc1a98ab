// Package shacl compiles a SHACL shapes graph into an in-memory model a
// validation engine can query: constraint components indexed by parameter,
// memoized shapes with their constraints, target-node discovery, and a
// property-path compiler with traversal semantics.
//
// The model is built once per shapes graph and reused across validation
// passes:
//
//	sg := shacl.New(shapesGraph, registry)
//	shapes, err := sg.ShapesWithTarget()
//	for _, shape := range shapes {
//	    for _, focus := range shape.TargetNodes(dataGraph) {
//	        values := shape.ValueNodes(focus, dataGraph)
//	        // invoke the constraints' validators against values
//	    }
//	}
//
// Validator implementations are supplied through the ValidatorRegistry
// interface; the validation package provides the built-in registry and an
// engine driving the loop above.
package shacl
