package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/c360studio/semshacl/shacl"
	"github.com/c360studio/semshacl/term"
	"github.com/c360studio/semshacl/vocabulary/sh"
)

// paramInt reads an integer-valued parameter.
func paramInt(c *shacl.Constraint, name string) (int, bool) {
	v, ok := c.ParameterValue(name)
	if !ok || !v.IsLiteral() {
		return 0, false
	}
	n, err := strconv.Atoi(v.Value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// numeric parses the lexical form of a literal as a number.
func numeric(t term.Term) (float64, bool) {
	if !t.IsLiteral() {
		return 0, false
	}
	f, err := strconv.ParseFloat(t.Value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func validateClass(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	class, ok := c.ParameterValue("class")
	if !ok {
		return nil
	}
	instances := ctx.Data().InstancesOf(class)

	var failing []term.Term
	for _, v := range values {
		if v.IsLiteral() || !instances.Contains(v) {
			failing = append(failing, v)
		}
	}
	return failing
}

func validateDatatype(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	datatype, ok := c.ParameterValue("datatype")
	if !ok {
		return nil
	}

	var failing []term.Term
	for _, v := range values {
		if !v.IsLiteral() || v.Datatype != datatype.Value {
			failing = append(failing, v)
		}
	}
	return failing
}

func validateNodeKind(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	kind, ok := c.ParameterValue("nodeKind")
	if !ok {
		return nil
	}

	var failing []term.Term
	for _, v := range values {
		if !nodeKindAllows(kind.Value, v) {
			failing = append(failing, v)
		}
	}
	return failing
}

func nodeKindAllows(kind string, v term.Term) bool {
	switch kind {
	case sh.IRI:
		return v.IsIRI()
	case sh.BlankNode:
		return v.IsBlankNode()
	case sh.Literal:
		return v.IsLiteral()
	case sh.BlankNodeOrIRI:
		return v.IsBlankNode() || v.IsIRI()
	case sh.BlankNodeOrLiteral:
		return v.IsBlankNode() || v.IsLiteral()
	case sh.IRIOrLiteral:
		return v.IsIRI() || v.IsLiteral()
	default:
		return false
	}
}

func validateMinCount(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	min, ok := paramInt(c, "minCount")
	if !ok {
		return nil
	}
	if len(values) < min {
		return []term.Term{focus}
	}
	return nil
}

func validateMaxCount(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	max, ok := paramInt(c, "maxCount")
	if !ok {
		return nil
	}
	if len(values) > max {
		return []term.Term{focus}
	}
	return nil
}

func validateMinLength(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	return validateLength(c, "minLength", values, func(length, bound int) bool {
		return length >= bound
	})
}

func validateMaxLength(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	return validateLength(c, "maxLength", values, func(length, bound int) bool {
		return length <= bound
	})
}

func validateLength(c *shacl.Constraint, name string, values []term.Term, ok func(length, bound int) bool) []term.Term {
	bound, found := paramInt(c, name)
	if !found {
		return nil
	}

	var failing []term.Term
	for _, v := range values {
		// Blank nodes have no string representation to measure.
		if v.IsBlankNode() || !ok(len([]rune(v.Value)), bound) {
			failing = append(failing, v)
		}
	}
	return failing
}

func validatePattern(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	pattern, ok := c.ParameterValue("pattern")
	if !ok {
		return nil
	}
	expr := pattern.Value
	if flags, ok := c.ParameterValue("flags"); ok {
		expr = regexpFlags(flags.Value) + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		// An uncompilable pattern can never match: every value fails.
		return values
	}

	var failing []term.Term
	for _, v := range values {
		if v.IsBlankNode() || !re.MatchString(v.Value) {
			failing = append(failing, v)
		}
	}
	return failing
}

// regexpFlags translates SHACL (XPath) regex flags to Go inline flags.
func regexpFlags(flags string) string {
	var out strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			out.WriteRune(f)
		}
	}
	if out.Len() == 0 {
		return ""
	}
	return "(?" + out.String() + ")"
}

func validateMinInclusive(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	return validateRange(c, "minInclusive", values, func(v, bound float64) bool { return v >= bound })
}

func validateMinExclusive(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	return validateRange(c, "minExclusive", values, func(v, bound float64) bool { return v > bound })
}

func validateMaxInclusive(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	return validateRange(c, "maxInclusive", values, func(v, bound float64) bool { return v <= bound })
}

func validateMaxExclusive(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	return validateRange(c, "maxExclusive", values, func(v, bound float64) bool { return v < bound })
}

func validateRange(c *shacl.Constraint, name string, values []term.Term, ok func(v, bound float64) bool) []term.Term {
	boundTerm, found := c.ParameterValue(name)
	if !found {
		return nil
	}
	bound, numericBound := numeric(boundTerm)

	var failing []term.Term
	for _, v := range values {
		n, isNumeric := numeric(v)
		if !numericBound || !isNumeric || !ok(n, bound) {
			failing = append(failing, v)
		}
	}
	return failing
}

func validateHasValue(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	expected, ok := c.ParameterValue("hasValue")
	if !ok {
		return nil
	}
	for _, v := range values {
		if v.Equal(expected) {
			return nil
		}
	}
	return []term.Term{focus}
}

func validateIn(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	head, ok := c.ParameterValue("in")
	if !ok {
		return nil
	}
	allowed, err := ctx.Shapes().Graph().List(head)
	if err != nil {
		return values
	}
	allowedSet := make(map[term.Term]struct{}, len(allowed))
	for _, a := range allowed {
		allowedSet[a] = struct{}{}
	}

	var failing []term.Term
	for _, v := range values {
		if _, ok := allowedSet[v]; !ok {
			failing = append(failing, v)
		}
	}
	return failing
}

func validateNode(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	shapeNode, ok := c.ParameterValue("node")
	if !ok {
		return nil
	}

	var failing []term.Term
	for _, v := range values {
		if !ctx.NestedConforms(shapeNode, v) {
			failing = append(failing, v)
		}
	}
	return failing
}

func validateProperty(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	propertyShape, ok := c.ParameterValue("property")
	if !ok {
		return nil
	}

	var failing []term.Term
	for _, v := range values {
		if !ctx.NestedConforms(propertyShape, v) {
			failing = append(failing, v)
		}
	}
	return failing
}

func validateNot(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	shapeNode, ok := c.ParameterValue("not")
	if !ok {
		return nil
	}

	var failing []term.Term
	for _, v := range values {
		if ctx.NestedConforms(shapeNode, v) {
			failing = append(failing, v)
		}
	}
	return failing
}

func validateAnd(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	return validateShapeList(ctx, c, "and", values, func(conforming, total int) bool {
		return conforming == total
	})
}

func validateOr(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	return validateShapeList(ctx, c, "or", values, func(conforming, total int) bool {
		return conforming > 0
	})
}

func validateXone(ctx shacl.Context, c *shacl.Constraint, focus term.Term, values []term.Term) []term.Term {
	return validateShapeList(ctx, c, "xone", values, func(conforming, total int) bool {
		return conforming == 1
	})
}

func validateShapeList(ctx shacl.Context, c *shacl.Constraint, name string, values []term.Term, ok func(conforming, total int) bool) []term.Term {
	head, found := c.ParameterValue(name)
	if !found {
		return nil
	}
	shapes, err := ctx.Shapes().Graph().List(head)
	if err != nil {
		return values
	}

	var failing []term.Term
	for _, v := range values {
		conforming := 0
		for _, shapeNode := range shapes {
			if ctx.NestedConforms(shapeNode, v) {
				conforming++
			}
		}
		if !ok(conforming, len(shapes)) {
			failing = append(failing, v)
		}
	}
	return failing
}
