// SPDX-License-Identifier: MIT
package token

// Op int identifying an Operator Token's concrete operator.
type Op int

// The closed operator set.
//
// Every member maps to exactly one lexeme; only `->` requires lookahead to
// disambiguate from `-`. Members without a tokenizer rule yet are staged for
// the grammar's growth & currently unreachable from a scan.
const (
	_ Op = iota // Consume 0 to start actual numbering at 1.

	// Scoping, accessing.
	OpScopeAccessor  // ::
	OpMemberAccessor // ->

	// Generics.
	OpGenericBlockBegin // <
	OpGenericBlockEnd   // >

	// Types.
	OpTypeSpecifier       // :
	OpReturnType          // ->
	OpCommaSeparator      // ,
	OpStatementTerminator // ;

	// Arithmetic.
	OpAddition       // +
	OpSubtraction    // -
	OpMultiplication // *
	OpDivision       // /
	OpModulo         // %

	// Comparison.
	OpEquals             // ==
	OpNotEquals          // !=
	OpLessThan           // <
	OpLessThanOrEqual    // <=
	OpGreaterThan        // >
	OpGreaterThanOrEqual // >=

	// Logic.
	OpLogicalAnd // &&
	OpLogicalOr  // ||
	OpLogicalNot // !

	// Bitwise.
	OpBitwiseAnd        // &
	OpBitwiseXOr        // ^
	OpBitwiseOr         // |
	OpBitwiseNot        // ~
	OpBitwiseRightShift // >>
	OpBitwiseLeftShift  // <<

	// Assignment.
	OpValueAssignment          // =
	OpAdditionAssignment       // +=
	OpSubtractionAssignment    // -=
	OpMultiplicationAssignment // *=
	OpDivisionAssignment       // /=
	OpModuloAssignment         // %=
	OpIncrement                // ++
	OpDecrement                // --

	OpBitwiseRightShiftAssignment // >>=
	OpBitwiseLeftShiftAssignment  // <<=
	OpBitwiseAndAssignment        // &=
	OpBitwiseXOrAssignment        // ^=
	OpBitwiseOrAssignment         // |=
)

var opNames = [...]string{
	OpScopeAccessor:  "ScopeAccessor",
	OpMemberAccessor: "MemberAccessor",

	OpGenericBlockBegin: "GenericBlockBegin",
	OpGenericBlockEnd:   "GenericBlockEnd",

	OpTypeSpecifier:       "TypeSpecifier",
	OpReturnType:          "ReturnType",
	OpCommaSeparator:      "CommaSeparator",
	OpStatementTerminator: "StatementTerminator",

	OpAddition:       "Addition",
	OpSubtraction:    "Subtraction",
	OpMultiplication: "Multiplication",
	OpDivision:       "Division",
	OpModulo:         "Modulo",

	OpEquals:             "Equals",
	OpNotEquals:          "NotEquals",
	OpLessThan:           "LessThan",
	OpLessThanOrEqual:    "LessThanOrEqual",
	OpGreaterThan:        "GreaterThan",
	OpGreaterThanOrEqual: "GreaterThanOrEqual",

	OpLogicalAnd: "LogicalAnd",
	OpLogicalOr:  "LogicalOr",
	OpLogicalNot: "LogicalNot",

	OpBitwiseAnd:        "BitwiseAnd",
	OpBitwiseXOr:        "BitwiseXOr",
	OpBitwiseOr:         "BitwiseOr",
	OpBitwiseNot:        "BitwiseNot",
	OpBitwiseRightShift: "BitwiseRightShift",
	OpBitwiseLeftShift:  "BitwiseLeftShift",

	OpValueAssignment:          "ValueAssignment",
	OpAdditionAssignment:       "AdditionAssignment",
	OpSubtractionAssignment:    "SubtractionAssignment",
	OpMultiplicationAssignment: "MultiplicationAssignment",
	OpDivisionAssignment:       "DivisionAssignment",
	OpModuloAssignment:         "ModuloAssignment",
	OpIncrement:                "Increment",
	OpDecrement:                "Decrement",

	OpBitwiseRightShiftAssignment: "BitwiseRightShiftAssignment",
	OpBitwiseLeftShiftAssignment:  "BitwiseLeftShiftAssignment",
	OpBitwiseAndAssignment:        "BitwiseAndAssignment",
	OpBitwiseXOrAssignment:        "BitwiseXOrAssignment",
	OpBitwiseOrAssignment:         "BitwiseOrAssignment",
}

// String yields the Op's name.
func (o Op) String() string {
	if o < 1 || int(o) >= len(opNames) {
		return "Unknown"
	}

	return opNames[o]
}
