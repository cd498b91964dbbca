// Package policy contains the request-time security controls: the domain
// allow-list derived from the catalog and the per-client rate limiter.
package policy

import (
	"net/url"
	"sort"

	"github.com/apilooter/gateway/model"
)

// AllowedHosts extracts the set of network locations (host[:port]) from the
// catalog's endpoints, sorted for stable output. This is the single source
// of truth for the allow-list: both the Domain policy and the catalog
// validator CLI derive it from here.
func AllowedHosts(providers []model.Provider) []string {
	seen := make(map[string]bool)
	for _, p := range providers {
		if p.Endpoint == "" {
			continue
		}
		u, err := url.Parse(p.Endpoint)
		if err != nil || u.Host == "" {
			continue
		}
		seen[u.Host] = true
	}

	hosts := make([]string, 0, len(seen))
	for h := range seen {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts
}

// Domain is the allow-list gate consulted before every outbound call. It is
// built once from an immutable catalog snapshot at startup and is safe for
// unsynchronized concurrent reads.
type Domain struct {
	allowed map[string]bool
}

// NewDomain builds the allow-list from the given catalog.
func NewDomain(providers []model.Provider) *Domain {
	hosts := AllowedHosts(providers)
	allowed := make(map[string]bool, len(hosts))
	for _, h := range hosts {
		allowed[h] = true
	}
	return &Domain{allowed: allowed}
}

// IsAllowed reports whether the candidate URL's host[:port] is in the
// allow-list. Malformed URLs are never allowed.
func (d *Domain) IsAllowed(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	return d.allowed[u.Host]
}

// Hosts returns the allow-list, sorted.
func (d *Domain) Hosts() []string {
	hosts := make([]string, 0, len(d.allowed))
	for h := range d.allowed {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts
}
