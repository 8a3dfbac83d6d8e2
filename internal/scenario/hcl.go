package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/insectgrid/internal/simulation"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclScenarioFile is the top-level structure of an .hcl scenario.
type hclScenarioFile struct {
	Board   hclBoard     `hcl:"board,block"`
	Insects []*hclInsect `hcl:"insect,block"`
	Foods   []*hclFood   `hcl:"food,block"`
}

type hclBoard struct {
	Size int `hcl:"size"`
}

type hclInsect struct {
	Color  string         `hcl:"color,label"`
	Kind   string         `hcl:"kind,label"`
	Row    hcl.Expression `hcl:"row"`
	Column hcl.Expression `hcl:"column"`
}

type hclFood struct {
	Value  hcl.Expression `hcl:"value"`
	Row    hcl.Expression `hcl:"row"`
	Column hcl.Expression `hcl:"column"`
}

// HCLSource serves a scenario decoded from HCL. Counts are the number of
// blocks; expressions are evaluated on demand.
type HCLSource struct {
	file    hclScenarioFile
	evalCtx *hcl.EvalContext
	insect  int
	food    int
}

var _ simulation.Source = (*HCLSource)(nil)

// NewHCLSource parses src. Syntax and structure errors are reported as
// malformed input.
func NewHCLSource(src []byte, filename string) (*HCLSource, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, simulation.Reject(simulation.MalformedInput, "failed to parse %s: %s", filename, diags.Error())
	}

	var root hclScenarioFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, simulation.Reject(simulation.MalformedInput, "failed to decode %s: %s", filename, diags.Error())
	}

	return &HCLSource{
		file: root,
		evalCtx: &hcl.EvalContext{
			Variables: map[string]cty.Value{
				"size": cty.NumberIntVal(int64(root.Board.Size)),
			},
		},
	}, nil
}

// BoardSize returns the size attribute of the board block.
func (s *HCLSource) BoardSize() (int, error) { return s.file.Board.Size, nil }

// InsectCount returns the number of insect blocks.
func (s *HCLSource) InsectCount() (int, error) { return len(s.file.Insects), nil }

// FoodCount returns the number of food blocks.
func (s *HCLSource) FoodCount() (int, error) { return len(s.file.Foods), nil }

// NextInsect evaluates the next insect block.
func (s *HCLSource) NextInsect() (simulation.InsectRecord, error) {
	if s.insect >= len(s.file.Insects) {
		return simulation.InsectRecord{}, simulation.Reject(simulation.MalformedInput, "no more insect blocks")
	}
	block := s.file.Insects[s.insect]
	s.insect++

	rec := simulation.InsectRecord{Color: block.Color, Kind: block.Kind}
	var err error
	if rec.Row, err = s.integer(block.Row, "row"); err != nil {
		return rec, err
	}
	if rec.Column, err = s.integer(block.Column, "column"); err != nil {
		return rec, err
	}
	return rec, nil
}

// NextFood evaluates the next food block.
func (s *HCLSource) NextFood() (simulation.FoodRecord, error) {
	if s.food >= len(s.file.Foods) {
		return simulation.FoodRecord{}, simulation.Reject(simulation.MalformedInput, "no more food blocks")
	}
	block := s.file.Foods[s.food]
	s.food++

	var rec simulation.FoodRecord
	var err error
	if rec.Value, err = s.integer(block.Value, "value"); err != nil {
		return rec, err
	}
	if rec.Row, err = s.integer(block.Row, "row"); err != nil {
		return rec, err
	}
	if rec.Column, err = s.integer(block.Column, "column"); err != nil {
		return rec, err
	}
	return rec, nil
}

// integer evaluates expr against the scenario variables and converts the
// result to a whole number.
func (s *HCLSource) integer(expr hcl.Expression, name string) (int, error) {
	val, diags := expr.Value(s.evalCtx)
	if diags.HasErrors() {
		return 0, simulation.Reject(simulation.MalformedInput, "%s: %s", name, diags.Error())
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, simulation.Reject(simulation.MalformedInput, "%s at %s: %v", name, expr.Range(), err)
	}
	if num.IsNull() || !num.IsKnown() {
		return 0, simulation.Reject(simulation.MalformedInput, "%s at %s: value is required", name, expr.Range())
	}
	var n int
	if err := gocty.FromCtyValue(num, &n); err != nil {
		return 0, simulation.Reject(simulation.MalformedInput, "%s at %s: %v", name, expr.Range(), err)
	}
	return n, nil
}

// String describes the source for logs.
func (s *HCLSource) String() string {
	return fmt.Sprintf("hcl scenario (%d insects, %d food)", len(s.file.Insects), len(s.file.Foods))
}
