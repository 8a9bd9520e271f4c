package problem

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fixdataflow/point"
)

// FixtureNode describes one node of a synthetic natural-number data-flow
// problem (lattice: naturals under join=max, bottom=0, change detector
// old!=new — the lattice every scenario in spec §8 uses), expressed as
// data instead of a hand-assembled Go literal.
//
// Kind selects the transfer function shape:
//   - "const": returns Value, ignoring Deps.
//   - "self_inc_saturate": dependOn(Deps[0]) + 1, capped at SaturateAt.
//   - "sum_deps": the sum of dependOn(d) over every d in Deps.
//   - "plus_n": Value + dependOn(Deps[0]) (spec §8 S5's per-node shape).
type FixtureNode struct {
	ID         uint64 `yaml:"id"`
	Kind       string `yaml:"kind"`
	Value      int    `yaml:"value,omitempty"`
	SaturateAt int    `yaml:"saturate_at,omitempty"`
	Deps       []uint64 `yaml:"deps,omitempty"`
}

// FixtureScenario is a complete synthetic problem: a root node and the
// set of nodes reachable from it.
type FixtureScenario struct {
	Name  string        `yaml:"name"`
	Root  uint64        `yaml:"root"`
	Nodes []FixtureNode `yaml:"nodes"`
}

// LoadFixture decodes a YAML-encoded FixtureScenario from r. This is test
// tooling for the scenario tests of spec §8 — no other non-test code in
// the module calls it, though this file (and its YAML import) is compiled
// into package problem.
func LoadFixture(r io.Reader) (FixtureScenario, error) {
	var scenario FixtureScenario
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&scenario); err != nil {
		return FixtureScenario{}, fmt.Errorf("problem: decode fixture: %w", err)
	}
	return scenario, nil
}

// Build assembles a *DataFlowProblem[int] and the root Point from a
// decoded FixtureScenario, interpreting each FixtureNode.Kind.
func (s FixtureScenario) Build() (*DataFlowProblem[int], point.Point, error) {
	prob := New[int]()
	for _, n := range s.Nodes {
		n := n
		var transfer TransferFunc[int]
		switch n.Kind {
		case "const":
			v := n.Value
			transfer = func(Env[int], point.ArgTuple) int { return v }
		case "self_inc_saturate":
			if len(n.Deps) != 1 {
				return nil, point.Point{}, fmt.Errorf("problem: node %d: self_inc_saturate needs exactly one dep", n.ID)
			}
			dep := point.NodeId(n.Deps[0])
			cap := n.SaturateAt
			transfer = func(env Env[int], _ point.ArgTuple) int {
				v := env.DependOn(dep, point.Unit{}) + 1
				if v > cap {
					return cap
				}
				return v
			}
		case "sum_deps":
			deps := make([]point.NodeId, len(n.Deps))
			for i, d := range n.Deps {
				deps[i] = point.NodeId(d)
			}
			transfer = func(env Env[int], _ point.ArgTuple) int {
				total := 0
				for _, d := range deps {
					total += env.DependOn(d, point.Unit{})
				}
				return total
			}
		case "plus_n":
			if len(n.Deps) != 1 {
				return nil, point.Point{}, fmt.Errorf("problem: node %d: plus_n needs exactly one dep", n.ID)
			}
			dep := point.NodeId(n.Deps[0])
			add := n.Value
			transfer = func(env Env[int], _ point.ArgTuple) int {
				return add + env.DependOn(dep, point.Unit{})
			}
		default:
			return nil, point.Point{}, fmt.Errorf("problem: node %d: unknown fixture kind %q", n.ID, n.Kind)
		}
		prob.Register(point.NodeId(n.ID), transfer, DefaultChangeDetector[int]())
	}
	root := point.Point{Node: point.NodeId(s.Root), Args: point.Unit{}}
	return prob, root, nil
}
