package policy

import (
	"testing"

	"github.com/apilooter/gateway/model"
)

func domainProviders() []model.Provider {
	return []model.Provider{
		{ID: 1, Name: "Dog CEO", Endpoint: "https://dog.ceo/api/breeds/image/random"},
		{ID: 2, Name: "Cat Facts", Endpoint: "https://catfact.ninja/fact"},
		{ID: 3, Name: "Broken", Endpoint: "://not-a-url"},
		{ID: 4, Name: "Dupe", Endpoint: "https://dog.ceo/api/breeds/list"},
	}
}

func TestAllowedHosts(t *testing.T) {
	hosts := AllowedHosts(domainProviders())

	want := []string{"catfact.ninja", "dog.ceo"}
	if len(hosts) != len(want) {
		t.Fatalf("AllowedHosts() = %v, want %v", hosts, want)
	}
	for i := range want {
		if hosts[i] != want[i] {
			t.Errorf("AllowedHosts()[%d] = %q, want %q", i, hosts[i], want[i])
		}
	}
}

func TestDomainIsAllowed(t *testing.T) {
	d := NewDomain(domainProviders())

	tests := []struct {
		url  string
		want bool
	}{
		{"https://dog.ceo/api/breeds/image/random", true},
		{"https://dog.ceo/anything/else", true},
		{"https://catfact.ninja/fact?max_length=100", true},
		{"https://evil.example.com/fact", false},
		{"https://dog.ceo.evil.example.com/", false},
		{"://not-a-url", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := d.IsAllowed(tt.url); got != tt.want {
			t.Errorf("IsAllowed(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestDomainHostsMatchesAllowedHosts(t *testing.T) {
	providers := domainProviders()
	d := NewDomain(providers)

	fromFunc := AllowedHosts(providers)
	fromDomain := d.Hosts()
	if len(fromFunc) != len(fromDomain) {
		t.Fatalf("Hosts() = %v, AllowedHosts() = %v", fromDomain, fromFunc)
	}
	for i := range fromFunc {
		if fromFunc[i] != fromDomain[i] {
			t.Errorf("Hosts()[%d] = %q, want %q", i, fromDomain[i], fromFunc[i])
		}
	}
}
