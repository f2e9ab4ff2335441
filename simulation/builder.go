package simulation

import (
	"github.com/rs/xid"

	"github.com/cloudnetsim/cloudnetsim/datarecording"
	"github.com/cloudnetsim/cloudnetsim/monitoring"
	"github.com/cloudnetsim/cloudnetsim/sim"
)

// Builder can be used to build a simulation.
type Builder struct {
	engine        sim.Engine
	recordingOn   bool
	recordingPath string
	monitorOn     bool
	monitorPort   int
}

// MakeBuilder creates a new builder with the default configuration: a serial
// engine, no recording, no monitoring.
func MakeBuilder() Builder {
	return Builder{}
}

// WithEngine sets the engine the simulation runs on.
func (b Builder) WithEngine(e sim.Engine) Builder {
	b.engine = e
	return b
}

// WithDataRecording enables recording into a SQLite database at the given
// path. An empty path picks a unique file name.
func (b Builder) WithDataRecording(path string) Builder {
	b.recordingOn = true
	b.recordingPath = path
	return b
}

// WithMonitoring enables the monitoring server. A port of 0 picks a random
// port.
func (b Builder) WithMonitoring(port int) Builder {
	b.monitorOn = true
	b.monitorPort = port
	return b
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	s := &Simulation{
		id:         xid.New().String(),
		actorIndex: make(map[sim.ActorID]int),
	}

	s.engine = b.engine
	if s.engine == nil {
		s.engine = sim.NewSerialEngine()
	}

	if b.recordingOn {
		path := b.recordingPath
		if path == "" {
			path = "cloudnetsim_" + s.id
		}
		s.dataRecorder = datarecording.New(path)
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterEngine(s.engine)
		s.monitor.StartServer()
	}

	return s
}
