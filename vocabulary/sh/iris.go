package sh

// Namespace is the base IRI prefix for SHACL vocabulary terms.
const Namespace = "http://www.w3.org/ns/shacl#"

// Class IRIs for shapes and components.
const (
	// Shape is the abstract shape class.
	Shape = Namespace + "Shape"

	// NodeShape is the class of shapes about a focus node itself.
	NodeShape = Namespace + "NodeShape"

	// PropertyShape is the class of shapes about values reached via a path.
	PropertyShape = Namespace + "PropertyShape"

	// ConstraintComponentClass is the class of constraint component
	// declarations scanned at shapes-graph build time.
	ConstraintComponentClass = Namespace + "ConstraintComponent"

	// ValidatorClass is the class of validator declarations.
	ValidatorClass = Namespace + "Validator"
)

// Severity IRIs.
const (
	// Violation is the default severity of a shape.
	Violation = Namespace + "Violation"

	// Warning is the advisory severity.
	Warning = Namespace + "Warning"

	// Info is the informational severity.
	Info = Namespace + "Info"
)

// Target declaration IRIs.
const (
	// TargetClass selects all instances of a class as focus nodes.
	TargetClass = Namespace + "targetClass"

	// TargetNode selects an explicitly named focus node.
	TargetNode = Namespace + "targetNode"

	// TargetSubjectsOf selects subjects of triples with a given predicate.
	TargetSubjectsOf = Namespace + "targetSubjectsOf"

	// TargetObjectsOf selects objects of triples with a given predicate.
	TargetObjectsOf = Namespace + "targetObjectsOf"

	// Target is the generic (SPARQL/custom) target declaration. It is
	// recognized when filtering shapes with targets but never resolved
	// into focus nodes.
	Target = Namespace + "target"
)

// Shape property IRIs.
const (
	// Path links a property shape to its property path term.
	Path = Namespace + "path"

	// Severity overrides the default severity of a shape.
	Severity = Namespace + "severity"

	// Deactivated switches a shape off without removing it.
	Deactivated = Namespace + "deactivated"

	// Message overrides the component message on a shape.
	Message = Namespace + "message"
)

// Path operator IRIs.
const (
	// InversePath wraps a path evaluated against incoming edges.
	InversePath = Namespace + "inversePath"

	// AlternativePath holds a list of paths combined by union.
	AlternativePath = Namespace + "alternativePath"

	// ZeroOrMorePath marks a reflexive-transitive closure path.
	ZeroOrMorePath = Namespace + "zeroOrMorePath"

	// OneOrMorePath marks a transitive closure path.
	OneOrMorePath = Namespace + "oneOrMorePath"

	// ZeroOrOnePath marks an optional path.
	ZeroOrOnePath = Namespace + "zeroOrOnePath"
)

// Component declaration IRIs.
const (
	// Parameter links a constraint component to a parameter declaration.
	Parameter = Namespace + "parameter"

	// Optional marks a component parameter as optional.
	Optional = Namespace + "optional"

	// NodeValidator is the validator slot used for node shapes.
	NodeValidator = Namespace + "nodeValidator"

	// PropertyValidator is the validator slot used for property shapes.
	PropertyValidator = Namespace + "propertyValidator"

	// GenericValidator is the shared fallback validator slot.
	GenericValidator = Namespace + "validator"
)

// Node kind IRIs, the value space of sh:nodeKind.
const (
	IRI                = Namespace + "IRI"
	BlankNode          = Namespace + "BlankNode"
	Literal            = Namespace + "Literal"
	BlankNodeOrIRI     = Namespace + "BlankNodeOrIRI"
	BlankNodeOrLiteral = Namespace + "BlankNodeOrLiteral"
	IRIOrLiteral       = Namespace + "IRIOrLiteral"
)

// Constraint parameter IRIs for the built-in components.
const (
	// ClassParam constrains values to instances of a class.
	ClassParam = Namespace + "class"

	// Datatype constrains literal values to a datatype.
	Datatype = Namespace + "datatype"

	// NodeKind constrains the kind of value terms.
	NodeKind = Namespace + "nodeKind"

	// MinCount is the minimum number of value nodes.
	MinCount = Namespace + "minCount"

	// MaxCount is the maximum number of value nodes.
	MaxCount = Namespace + "maxCount"

	// MinLength is the minimum string length of values.
	MinLength = Namespace + "minLength"

	// MaxLength is the maximum string length of values.
	MaxLength = Namespace + "maxLength"

	// Pattern is a regular expression values must match.
	Pattern = Namespace + "pattern"

	// Flags holds regular expression flags for sh:pattern.
	Flags = Namespace + "flags"

	// MinInclusive is the inclusive lower bound of numeric values.
	MinInclusive = Namespace + "minInclusive"

	// MinExclusive is the exclusive lower bound of numeric values.
	MinExclusive = Namespace + "minExclusive"

	// MaxInclusive is the inclusive upper bound of numeric values.
	MaxInclusive = Namespace + "maxInclusive"

	// MaxExclusive is the exclusive upper bound of numeric values.
	MaxExclusive = Namespace + "maxExclusive"

	// HasValue requires a specific term among the values.
	HasValue = Namespace + "hasValue"

	// In constrains values to the members of an RDF list.
	In = Namespace + "in"

	// Node requires values to conform to a node shape.
	Node = Namespace + "node"

	// Property attaches a property shape to a shape.
	Property = Namespace + "property"

	// Not requires values not to conform to a shape.
	Not = Namespace + "not"

	// And requires values to conform to all shapes in a list.
	And = Namespace + "and"

	// Or requires values to conform to at least one shape in a list.
	Or = Namespace + "or"

	// Xone requires values to conform to exactly one shape in a list.
	Xone = Namespace + "xone"
)

// Constraint component IRIs for the built-in components.
const (
	ClassConstraintComponent        = Namespace + "ClassConstraintComponent"
	DatatypeConstraintComponent     = Namespace + "DatatypeConstraintComponent"
	NodeKindConstraintComponent     = Namespace + "NodeKindConstraintComponent"
	MinCountConstraintComponent     = Namespace + "MinCountConstraintComponent"
	MaxCountConstraintComponent     = Namespace + "MaxCountConstraintComponent"
	MinLengthConstraintComponent    = Namespace + "MinLengthConstraintComponent"
	MaxLengthConstraintComponent    = Namespace + "MaxLengthConstraintComponent"
	PatternConstraintComponent      = Namespace + "PatternConstraintComponent"
	MinInclusiveConstraintComponent = Namespace + "MinInclusiveConstraintComponent"
	MinExclusiveConstraintComponent = Namespace + "MinExclusiveConstraintComponent"
	MaxInclusiveConstraintComponent = Namespace + "MaxInclusiveConstraintComponent"
	MaxExclusiveConstraintComponent = Namespace + "MaxExclusiveConstraintComponent"
	HasValueConstraintComponent     = Namespace + "HasValueConstraintComponent"
	InConstraintComponent           = Namespace + "InConstraintComponent"
	NodeConstraintComponent         = Namespace + "NodeConstraintComponent"
	PropertyConstraintComponent     = Namespace + "PropertyConstraintComponent"
	NotConstraintComponent          = Namespace + "NotConstraintComponent"
	AndConstraintComponent          = Namespace + "AndConstraintComponent"
	OrConstraintComponent           = Namespace + "OrConstraintComponent"
	XoneConstraintComponent         = Namespace + "XoneConstraintComponent"
)
