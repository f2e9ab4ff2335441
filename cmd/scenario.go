package cmd

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cloudnetsim/cloudnetsim/network"
	"github.com/cloudnetsim/cloudnetsim/networkmodel"
	"github.com/cloudnetsim/cloudnetsim/sim"
)

// A Scenario describes one simulation run: the hosts, the actor placement,
// the network model, and the traffic to inject.
type Scenario struct {
	Hosts    []string          `yaml:"hosts"`
	Bindings map[string]string `yaml:"bindings"`
	Model    ModelSpec         `yaml:"model"`
	Workload WorkloadSpec      `yaml:"workload"`
}

// ModelSpec selects and parameterizes the network model.
type ModelSpec struct {
	Kind      string  `yaml:"kind"` // "constant" or "shared"
	Latency   float64 `yaml:"latency"`
	Bandwidth float64 `yaml:"bandwidth"`
}

// WorkloadSpec is the traffic injected at the start of the run.
type WorkloadSpec struct {
	Messages  []MessageSpec  `yaml:"messages"`
	Transfers []TransferSpec `yaml:"transfers"`
}

// MessageSpec describes one message to send.
type MessageSpec struct {
	Src     string `yaml:"src"`
	Dst     string `yaml:"dst"`
	Payload string `yaml:"payload"`
}

// TransferSpec describes one data transfer to request. Notify defaults to
// Dst when empty.
type TransferSpec struct {
	Src    string  `yaml:"src"`
	Dst    string  `yaml:"dst"`
	Size   float64 `yaml:"size"`
	Notify string  `yaml:"notify"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var scn Scenario
	if err := yaml.Unmarshal(data, &scn); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	if err := scn.validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scn, nil
}

func (s *Scenario) validate() error {
	switch s.Model.Kind {
	case "constant", "shared":
	case "":
		return fmt.Errorf("model kind is required")
	default:
		return fmt.Errorf("unknown model kind %q", s.Model.Kind)
	}

	if s.Model.Bandwidth <= 0 {
		return fmt.Errorf("model bandwidth must be positive, got %f",
			s.Model.Bandwidth)
	}

	if s.Model.Latency < 0 {
		return fmt.Errorf("model latency must be non-negative, got %f",
			s.Model.Latency)
	}

	for i, t := range s.Workload.Transfers {
		if t.Size < 0 {
			return fmt.Errorf("transfer %d: size must be non-negative, got %f",
				i, t.Size)
		}
	}

	return nil
}

// BuildModel instantiates the network model the scenario selects.
func (s *Scenario) BuildModel(engine network.Engine) network.Model {
	latency := sim.VTimeInSec(s.Model.Latency)

	switch s.Model.Kind {
	case "shared":
		return networkmodel.NewSharedBandwidthModel(
			engine, engine, s.Model.Bandwidth, latency)
	default:
		return networkmodel.NewConstantBandwidthModel(
			s.Model.Bandwidth, latency)
	}
}

// ActorNames collects every actor the scenario mentions, in lexical order.
func (s *Scenario) ActorNames() []sim.ActorID {
	seen := make(map[sim.ActorID]bool)

	for actor := range s.Bindings {
		seen[sim.ActorID(actor)] = true
	}

	for _, m := range s.Workload.Messages {
		seen[sim.ActorID(m.Src)] = true
		seen[sim.ActorID(m.Dst)] = true
	}

	for _, t := range s.Workload.Transfers {
		seen[sim.ActorID(t.Src)] = true
		seen[sim.ActorID(t.Dst)] = true
		if t.Notify != "" {
			seen[sim.ActorID(t.Notify)] = true
		}
	}

	names := make([]sim.ActorID, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}
