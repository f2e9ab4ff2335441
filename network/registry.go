package network

import (
	"sort"

	"github.com/cloudnetsim/cloudnetsim/sim"
)

// hostInfo currently carries no attributes. It is the extension point for
// topology metadata.
type hostInfo struct{}

// A HostRegistry maintains the set of known hosts and the binding from each
// actor to the host it executes on. The network actor is the sole mutator;
// all access happens inside the single-threaded event loop.
type HostRegistry struct {
	hosts      map[string]hostInfo
	actorHosts map[sim.ActorID]string
}

// NewHostRegistry creates an empty HostRegistry.
func NewHostRegistry() *HostRegistry {
	return &HostRegistry{
		hosts:      make(map[string]hostInfo),
		actorHosts: make(map[sim.ActorID]string),
	}
}

// RegisterHost adds a host to the known set. Registering the same host twice
// is a no-op.
func (r *HostRegistry) RegisterHost(host string) {
	r.hosts[host] = hostInfo{}
}

// BindActor records the host an actor runs on, overwriting any previous
// binding. The host does not have to be registered; unregistered hosts are
// simply never matched.
func (r *HostRegistry) BindActor(actor sim.ActorID, host string) {
	r.actorHosts[actor] = host
}

// HostOf returns the host the actor is bound to, if any.
func (r *HostRegistry) HostOf(actor sim.ActorID) (string, bool) {
	host, ok := r.actorHosts[actor]
	return host, ok
}

// AreCoLocated returns true iff both actors are bound and bound to the same
// host. An actor with no binding is treated as not co-located, so latency is
// always charged when locality is unknown.
func (r *HostRegistry) AreCoLocated(a, b sim.ActorID) bool {
	hostA, okA := r.actorHosts[a]
	hostB, okB := r.actorHosts[b]
	return okA && okB && hostA == hostB
}

// KnownHosts enumerates the registered hosts in lexical order.
func (r *HostRegistry) KnownHosts() []string {
	hosts := make([]string, 0, len(r.hosts))
	for host := range r.hosts {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	return hosts
}
