// SPDX-License-Identifier: MIT
//
// File: operation.go
// Role: The closed set of job operations and their names.

package job

import (
	"errors"
	"fmt"
)

// ErrUnknownOperation indicates a method name outside the Operation set.
var ErrUnknownOperation = errors.New("job: unknown operation")

// Operation is one analysis a job can request.
type Operation int

const (
	OpReflexiveClosure Operation = iota + 1
	OpSymmetricClosure
	OpFloydTransitiveClosure
	OpTransitiveClosure
	OpConnectedComponents
	OpSubframe
	OpSubformulas
	OpValidity
	OpSatisfyingPoints
	OpComputeClosure
	OpQuotientFrame
	OpPMorphism
	OpLogEqual
	OpMEquivalent
)

var operationNames = [...]string{
	OpReflexiveClosure:       "reflexive_closure",
	OpSymmetricClosure:       "symmetric_closure",
	OpFloydTransitiveClosure: "floyd_transitive_closure",
	OpTransitiveClosure:      "transitive_closure",
	OpConnectedComponents:    "find_connected_components",
	OpSubframe:               "find_subframe",
	OpSubformulas:            "find_subformulas",
	OpValidity:               "is_formula_valid_in_model",
	OpSatisfyingPoints:       "get_satisfying_points_ast",
	OpComputeClosure:         "compute_closure",
	OpQuotientFrame:          "quotient_frame",
	OpPMorphism:              "check_p_morphism",
	OpLogEqual:               "log_equal",
	OpMEquivalent:            "m_equivalent",
}

// String returns the method name used in setup files.
func (o Operation) String() string {
	if o < OpReflexiveClosure || int(o) >= len(operationNames) {
		return fmt.Sprintf("Operation(%d)", int(o))
	}

	return operationNames[o]
}

// ParseOperation maps a method name to its Operation.
func ParseOperation(name string) (Operation, error) {
	for op := OpReflexiveClosure; int(op) < len(operationNames); op++ {
		if operationNames[op] == name {
			return op, nil
		}
	}

	return 0, fmt.Errorf("method %q: %w", name, ErrUnknownOperation)
}

// Operations lists every Operation in declaration order.
func Operations() []Operation {
	out := make([]Operation, 0, len(operationNames)-1)
	for op := OpReflexiveClosure; int(op) < len(operationNames); op++ {
		out = append(out, op)
	}

	return out
}

// Params returns the canonical parameter names of o, in positional order.
func (o Operation) Params() []string {
	if o < OpReflexiveClosure || int(o) >= len(operationNames) {
		return nil
	}

	return append([]string(nil), dispatch[o].params...)
}
