package cmd

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cloudnetsim/cloudnetsim/network"
	"github.com/cloudnetsim/cloudnetsim/sim"
	"github.com/cloudnetsim/cloudnetsim/simulation"
)

var (
	scenarioPath  string
	recordingOn   bool
	recordingPath string
	monitorOn     bool
	monitorPort   int
	logEvents     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenario()
	},
}

func runScenario() error {
	scn, err := LoadScenario(scenarioPath)
	if err != nil {
		return err
	}

	b := simulation.MakeBuilder()
	if recordingOn {
		b = b.WithDataRecording(recordingPath)
	}
	if monitorOn {
		b = b.WithMonitoring(monitorPort)
	}
	s := b.Build()
	defer s.Terminate()

	engine := s.Engine()
	net := network.New(engine, s, scn.BuildModel(engine))
	s.RegisterActor(net)

	for _, host := range scn.Hosts {
		net.RegisterHost(host)
	}
	for actor, host := range scn.Bindings {
		net.BindActor(sim.ActorID(actor), host)
	}

	endpoints := make(map[sim.ActorID]*endpointActor)
	for _, name := range scn.ActorNames() {
		ep := newEndpointActor(name)
		endpoints[name] = ep
		s.RegisterActor(ep)
	}

	if s.DataRecorder() != nil {
		engine.AcceptHook(network.NewTrafficRecorder(s.DataRecorder()))
	}
	if s.Monitor() != nil {
		engine.AcceptHook(network.NewProgressReporter(s.Monitor()))
	}
	if logEvents {
		engine.AcceptHook(sim.NewEventLogger(logrus.StandardLogger()))
	}

	for _, m := range scn.Workload.Messages {
		net.SendMessage(m.Payload,
			sim.ActorID(m.Src), sim.ActorID(m.Dst))
	}
	for _, t := range scn.Workload.Transfers {
		notify := t.Notify
		if notify == "" {
			notify = t.Dst
		}
		net.RequestTransfer(
			sim.ActorID(t.Src), sim.ActorID(t.Dst),
			t.Size, sim.ActorID(notify))
	}

	if err := s.Run(); err != nil {
		return err
	}

	logrus.Infof("simulation %s finished at time %.6f", s.ID(),
		engine.CurrentTime())
	for _, name := range scn.ActorNames() {
		ep := endpoints[name]
		logrus.Infof("  %s: %d messages, %d transfer notifications",
			name, ep.messagesReceived, ep.transfersNotified)
	}

	return nil
}

func init() {
	// .env can set the monitor port, so load it before flag defaults are
	// registered.
	_ = godotenv.Load()

	defaultPort := 0
	if p, err := strconv.Atoi(os.Getenv("CLOUDNETSIM_MONITOR_PORT")); err == nil {
		defaultPort = p
	}

	runCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "scenario.yaml",
		"path to the scenario file")
	runCmd.Flags().BoolVar(&recordingOn, "recording", false,
		"record traffic into a SQLite database")
	runCmd.Flags().StringVar(&recordingPath, "recording-path", "",
		"recording database path, a unique name is picked when empty")
	runCmd.Flags().BoolVar(&monitorOn, "monitor", false,
		"serve the monitoring API while the simulation runs")
	runCmd.Flags().IntVar(&monitorPort, "monitor-port", defaultPort,
		"monitoring port, 0 picks a random port")
	runCmd.Flags().BoolVar(&logEvents, "log-events", false,
		"log every triggered event")

	rootCmd.AddCommand(runCmd)
}
