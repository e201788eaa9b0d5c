// SPDX-License-Identifier: MIT
//
// File: setup.go
// Role: JSON setup files and typed decoding of their parameters.

package job

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/framelogic/core"
	"github.com/katalvlaran/framelogic/setfamily"
)

var (
	// ErrBadSetup indicates a setup file that does not decode.
	ErrBadSetup = errors.New("job: malformed setup")

	// ErrMissingParameter indicates a param naming no parameter or result.
	ErrMissingParameter = errors.New("job: missing parameter")

	// ErrBadParameter indicates a parameter of the wrong shape or count.
	ErrBadParameter = errors.New("job: bad parameter")
)

// Parameters holds the named inputs of a job as raw JSON.
type Parameters map[string]json.RawMessage

// Setup is a decoded job file.
type Setup struct {
	Parameters Parameters `json:"parameters"`
	Methods    []Method   `json:"methods"`
}

// Method requests one operation with positional params.
type Method struct {
	Name   string  `json:"name"`
	Params []Param `json:"params"`
}

// Param is a positional argument: either a parameter name, or a slot name
// bound to the result of an earlier method (From = "<method>_result").
type Param struct {
	Name string
	From string
}

// UnmarshalJSON accepts "name" or {"slot": ["<method>_result"]}.
func (p *Param) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*p = Param{Name: name}
		return nil
	}
	var binding map[string][]string
	if err := json.Unmarshal(data, &binding); err != nil || len(binding) != 1 {
		return fmt.Errorf("job: param %s: %w", data, ErrBadSetup)
	}
	for slot, from := range binding {
		if len(from) != 1 {
			return fmt.Errorf("job: param %s: want exactly one source: %w", data, ErrBadSetup)
		}
		*p = Param{Name: slot, From: from[0]}
	}

	return nil
}

// MarshalJSON mirrors UnmarshalJSON.
func (p Param) MarshalJSON() ([]byte, error) {
	if p.From == "" {
		return json.Marshal(p.Name)
	}

	return json.Marshal(map[string][]string{p.Name: {p.From}})
}

// ResultKey is the name under which a method's result can be bound.
func ResultKey(method string) string { return method + "_result" }

// LoadSetup decodes a setup from r. Unknown top-level fields are rejected.
func LoadSetup(r io.Reader) (*Setup, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var s Setup
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, ErrBadSetup) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrBadSetup, err)
	}
	if s.Parameters == nil {
		s.Parameters = Parameters{}
	}

	return &s, nil
}

// ReadSetupFile opens and decodes the setup at path.
func ReadSetupFile(path string) (*Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("job: read setup: %w", err)
	}

	return LoadSetup(bytes.NewReader(data))
}

// FrameSpec is the serialized form of a frame: n worlds, pairs over [0,n),
// and optional labels.
type FrameSpec struct {
	N        int      `json:"n"`
	Relation [][]int  `json:"R"`
	Labels   []string `json:"labels,omitempty"`
}

// Frame validates s and builds the frame.
func (s FrameSpec) Frame() (*core.Frame, error) {
	pairs, err := pairsOf(s.Relation)
	if err != nil {
		return nil, fmt.Errorf("frame R: %w", err)
	}
	var opts []core.FrameOption
	if len(s.Labels) > 0 {
		opts = append(opts, core.WithLabels(s.Labels...))
	}

	return core.NewFrame(s.N, core.RelationFromLists(pairs), opts...)
}

// pairsOf checks that every entry of lists is a pair.
func pairsOf(lists [][]int) ([][2]int, error) {
	pairs := make([][2]int, len(lists))
	for i, l := range lists {
		if len(l) != 2 {
			return nil, fmt.Errorf("entry %d %v is not a pair: %w", i, l, ErrBadParameter)
		}
		pairs[i] = [2]int{l[0], l[1]}
	}

	return pairs, nil
}

// args holds the resolved positional arguments of one method.
type args struct {
	op   Operation
	vals []json.RawMessage
	refs []Param
}

func (a args) decode(i int, dst any) error {
	if err := json.Unmarshal(a.vals[i], dst); err != nil {
		return fmt.Errorf("param %q: %v: %w", a.refs[i].Name, err, ErrBadParameter)
	}

	return nil
}

func (a args) integer(i int) (int, error) {
	var v int
	err := a.decode(i, &v)

	return v, err
}

func (a args) text(i int) (string, error) {
	var v string
	err := a.decode(i, &v)

	return v, err
}

func (a args) relation(i int) (core.Relation, error) {
	var lists [][]int
	if err := a.decode(i, &lists); err != nil {
		return nil, err
	}
	pairs, err := pairsOf(lists)
	if err != nil {
		return nil, fmt.Errorf("param %q: %w", a.refs[i].Name, err)
	}

	return core.RelationFromLists(pairs), nil
}

func (a args) valuation(i int) (core.Valuation, error) {
	var lists map[string][]int
	if err := a.decode(i, &lists); err != nil {
		return nil, err
	}

	return core.ValuationFromLists(lists), nil
}

func (a args) worlds(i int) (setfamily.Subset, error) {
	var ws []int
	if err := a.decode(i, &ws); err != nil {
		return 0, err
	}

	return setfamily.FromWorlds(ws)
}

func (a args) family(i int) (*setfamily.Family, error) {
	var lists [][]int
	if err := a.decode(i, &lists); err != nil {
		return nil, err
	}

	return setfamily.FamilyFromLists(lists)
}

func (a args) frame(i int) (*core.Frame, error) {
	var spec FrameSpec
	if err := a.decode(i, &spec); err != nil {
		return nil, err
	}

	return spec.Frame()
}
