// Package simulation assembles the engine, the actor registry, and the
// optional recording and monitoring services into one runnable simulation.
package simulation

import (
	"github.com/cloudnetsim/cloudnetsim/datarecording"
	"github.com/cloudnetsim/cloudnetsim/monitoring"
	"github.com/cloudnetsim/cloudnetsim/sim"
)

// A Simulation provides the services required to define and run a
// simulation.
type Simulation struct {
	id     string
	engine sim.Engine

	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor

	actors     []sim.Actor
	actorIndex map[sim.ActorID]int
}

// ID returns the unique ID of the simulation run.
func (s *Simulation) ID() string {
	return s.id
}

// Engine returns the engine used in the simulation.
func (s *Simulation) Engine() sim.Engine {
	return s.engine
}

// DataRecorder returns the data recorder used in the simulation, or nil if
// recording is disabled.
func (s *Simulation) DataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// Monitor returns the monitor attached to the simulation, or nil if
// monitoring is disabled.
func (s *Simulation) Monitor() *monitoring.Monitor {
	return s.monitor
}

// RegisterActor registers an actor under its name. Actor names must be
// unique within a simulation.
func (s *Simulation) RegisterActor(a sim.Actor) {
	name := a.Name()
	if _, ok := s.actorIndex[name]; ok {
		panic("actor " + string(name) + " already registered")
	}

	s.actors = append(s.actors, a)
	s.actorIndex[name] = len(s.actors) - 1

	if s.monitor != nil {
		s.monitor.RegisterActor(a)
	}
}

// Actor returns the actor registered under the given ID, or nil if there is
// none.
func (s *Simulation) Actor(id sim.ActorID) sim.Actor {
	index, ok := s.actorIndex[id]
	if !ok {
		return nil
	}

	return s.actors[index]
}

// Actors returns all the registered actors.
func (s *Simulation) Actors() []sim.Actor {
	return s.actors
}

// Run processes all the scheduled events until no event is left, then
// invokes the simulation-end handlers.
func (s *Simulation) Run() error {
	err := s.engine.Run()
	if err != nil {
		return err
	}

	s.engine.Finished()

	return nil
}

// Terminate releases the resources held by the simulation.
func (s *Simulation) Terminate() {
	if s.dataRecorder != nil {
		s.dataRecorder.Close()
	}
}
