// Package hostroute maps an inbound host and path to a tenant routing decision.
//
// Resolution is textual: the root domain suffix is stripped from the host and
// whatever remains is treated as the tenant. Nothing is validated against DNS
// or the tenant store, so every (host, path) pair yields exactly one Decision.
package hostroute

import "strings"

// InternalPrefix is the path prefix of tenant-scoped routes.
const InternalPrefix = "/c/"

// Kind classifies a routing decision.
type Kind int

const (
	// PassThrough serves the default application routes unchanged.
	PassThrough Kind = iota
	// Rewrite prefixes the path with the tenant route.
	Rewrite
	// AlreadyInternal means the path already targets the tenant route.
	AlreadyInternal
)

func (k Kind) String() string {
	switch k {
	case PassThrough:
		return "pass_through"
	case Rewrite:
		return "rewrite"
	case AlreadyInternal:
		return "already_internal"
	default:
		return "unknown"
	}
}

// Decision is the outcome of Resolve.
type Decision struct {
	Kind Kind
	// Path is the internal routing target. Empty for PassThrough.
	Path string
	// Tenant is the host remainder after stripping the root domain.
	// Empty for PassThrough.
	Tenant string
}

// Options configures a Resolver.
type Options struct {
	// RootDomain is the production apex, e.g. example.com.
	RootDomain string
	// LocalRootDomain replaces RootDomain for hosts containing "localhost".
	LocalRootDomain string
	// BareHosts are served as the root application when the host contains any of them.
	BareHosts []string
}

// Resolver is safe for concurrent use; it holds no mutable state.
type Resolver struct {
	rootDomain      string
	localRootDomain string
	bareHosts       []string
}

func New(opts Options) *Resolver {
	local := opts.LocalRootDomain
	if local == "" {
		local = "localhost:3000"
	}
	hosts := make([]string, 0, len(opts.BareHosts))
	for _, h := range opts.BareHosts {
		if h != "" {
			hosts = append(hosts, h)
		}
	}
	return &Resolver{rootDomain: opts.RootDomain, localRootDomain: local, bareHosts: hosts}
}

// Resolve classifies hostname (which may carry a port) and path.
func (r *Resolver) Resolve(hostname, path string) Decision {
	root := r.rootDomain
	if strings.Contains(hostname, "localhost") {
		root = r.localRootDomain
	}

	current := strings.Replace(hostname, "."+root, "", 1)

	// An empty remainder has no tenant to route to.
	if current == "" || current == root || current == "www" || r.isBareHost(hostname) {
		return Decision{Kind: PassThrough}
	}

	prefix := InternalPrefix + current
	if strings.HasPrefix(path, prefix) {
		return Decision{Kind: AlreadyInternal, Path: path, Tenant: current}
	}
	return Decision{Kind: Rewrite, Path: prefix + path, Tenant: current}
}

func (r *Resolver) isBareHost(hostname string) bool {
	for _, h := range r.bareHosts {
		if strings.Contains(hostname, h) {
			return true
		}
	}
	return false
}
