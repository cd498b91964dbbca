package catalog

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"

	"github.com/apilooter/gateway/model"
)

// Finding describes a single validation finding against a catalog entry.
type Finding struct {
	Provider string `json:"provider"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Provider, f.Message)
}

// Report is the outcome of validating a catalog: fatal errors and advisory
// warnings, each in catalog order.
type Report struct {
	Errors   []Finding
	Warnings []Finding
}

// OK reports whether the catalog passed validation. Warnings never fail a
// catalog; any error does.
func (r *Report) OK() bool {
	return len(r.Errors) == 0
}

// legacyHTTPHosts are the endpoints grandfathered onto plain HTTP. Anything
// else must be HTTPS.
var legacyHTTPHosts = []string{"numbersapi.com"}

// validCategories is the known category set. Unrecognized categories are a
// warning only, since the set is extensible.
var validCategories = map[string]bool{
	"Images": true, "Fun": true, "Data": true, "Cryptocurrency": true,
}

// localhostPatterns match hosts that resolve to the local machine. Substring
// match, except local. (prefix) and .local (suffix).
var localhostPatterns = []string{"localhost", "127.0.0.1", "0.0.0.0", "::1"}

// internalSuffixes match internal-network naming conventions.
var internalSuffixes = []string{".internal", ".corp", ".lan", ".home"}

// suspiciousKeywords are injection-indicative substrings rejected in any
// narrative field.
var suspiciousKeywords = []string{"<script", "javascript:", "onclick", "onerror", "eval("}

// minNarrativeLength is the minimum trimmed length of why_use and how_use.
const minNarrativeLength = 10

// Validator checks a catalog against the security and schema invariants that
// must hold before the catalog is trusted at runtime. It runs at build/CI
// time, never on the request path, and never mutates the catalog.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate walks the catalog in order and collects errors and warnings for
// every entry.
func (v *Validator) Validate(providers []model.Provider) *Report {
	report := &Report{}

	seenIDs := make(map[int]bool)
	seenNames := make(map[string]bool)
	seenEndpoints := make(map[string]bool)

	for idx, p := range providers {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("provider #%d", idx+1)
		}

		v.checkRequiredFields(report, name, p)
		v.checkEndpoint(report, name, p.Endpoint)

		if seenIDs[p.ID] {
			report.addError(name, "DUPLICATE_ID", fmt.Sprintf("duplicate id %d", p.ID))
		}
		seenIDs[p.ID] = true

		if seenNames[p.Name] {
			report.addError(name, "DUPLICATE_NAME", fmt.Sprintf("duplicate name %q", p.Name))
		}
		seenNames[p.Name] = true

		if p.Endpoint != "" {
			if seenEndpoints[p.Endpoint] {
				report.addWarning(name, "DUPLICATE_ENDPOINT",
					fmt.Sprintf("duplicate endpoint (may be intentional): %s", p.Endpoint))
			}
			seenEndpoints[p.Endpoint] = true
		}

		if p.ID != idx+1 {
			report.addWarning(name, "SEQUENCE",
				fmt.Sprintf("id is %d, expected %d (should be sequential)", p.ID, idx+1))
		}

		v.checkNarrative(report, name, "why_use", p.WhyUse)
		v.checkNarrative(report, name, "how_use", p.HowUse)

		if p.Category != "" && !validCategories[p.Category] {
			report.addWarning(name, "UNKNOWN_CATEGORY",
				fmt.Sprintf("new category %q (known: Images, Fun, Data, Cryptocurrency)", p.Category))
		}

		v.checkParameters(report, name, p.Parameters)
		v.checkSuspiciousContent(report, name, p)
	}

	return report
}

func (v *Validator) checkRequiredFields(report *Report, name string, p model.Provider) {
	if p.ID < 1 {
		report.addError(name, "REQUIRED", "id must be a positive integer")
	}
	if p.Name == "" {
		report.addError(name, "REQUIRED", "name is required")
	}
	if p.Description == "" {
		report.addError(name, "REQUIRED", "description is required")
	}
	if p.Category == "" {
		report.addError(name, "REQUIRED", "category is required")
	}
	if p.Parameters == nil {
		report.addError(name, "REQUIRED", "parameters is required (use an empty list)")
	}
}

// checkEndpoint enforces the SSRF-relevant invariants: HTTPS scheme, no
// private or loopback addresses, no internal-network host suffixes. An
// unparseable or empty endpoint short-circuits the remaining checks.
func (v *Validator) checkEndpoint(report *Report, name, endpoint string) {
	if endpoint == "" {
		report.addError(name, "REQUIRED", "endpoint cannot be empty")
		return
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		report.addError(name, "INVALID_URL", fmt.Sprintf("invalid endpoint URL: %v", err))
		return
	}

	host := strings.ToLower(u.Hostname())

	if u.Scheme != "https" {
		if isLegacyHTTPHost(host) {
			report.addWarning(name, "INSECURE_SCHEME",
				"using HTTP (legacy API - consider finding an HTTPS alternative)")
		} else {
			report.addError(name, "INSECURE_SCHEME",
				fmt.Sprintf("endpoint must use HTTPS, not %s://", u.Scheme))
		}
	}

	if host == "" {
		report.addError(name, "INVALID_URL", "invalid endpoint URL (no host)")
		return
	}

	if addr, err := netip.ParseAddr(host); err == nil {
		if addr.IsPrivate() || addr.IsLoopback() || addr.IsLinkLocalUnicast() || addr.IsLinkLocalMulticast() {
			report.addError(name, "PRIVATE_HOST",
				fmt.Sprintf("cannot use private/localhost IP addresses: %s", host))
		}
	}

	if matchesLocalhost(host) {
		report.addError(name, "LOCAL_HOST",
			fmt.Sprintf("cannot use localhost/local domains: %s", host))
	}

	for _, suffix := range internalSuffixes {
		if strings.HasSuffix(host, suffix) {
			report.addError(name, "INTERNAL_HOST",
				fmt.Sprintf("cannot use internal domains: %s", host))
			break
		}
	}
}

func (v *Validator) checkNarrative(report *Report, name, field, value string) {
	if len(strings.TrimSpace(value)) < minNarrativeLength {
		report.addError(name, "FIELD_TOO_SHORT",
			fmt.Sprintf("%q field is too short (min %d characters)", field, minNarrativeLength))
	}
}

func (v *Validator) checkParameters(report *Report, name string, params []model.ParameterSpec) {
	for i, param := range params {
		ref := param.Name
		if ref == "" {
			ref = fmt.Sprintf("#%d", i+1)
		}

		if param.Name == "" {
			report.addError(name, "REQUIRED", fmt.Sprintf("parameter %s missing field 'name'", ref))
		}
		if param.Label == "" {
			report.addError(name, "REQUIRED", fmt.Sprintf("parameter %s missing field 'label'", ref))
		}

		switch param.Type {
		case model.ParamTypeText:
		case model.ParamTypeSelect:
			if len(param.Options) == 0 {
				report.addError(name, "REQUIRED",
					fmt.Sprintf("select parameter %s must have options", ref))
			}
		default:
			report.addError(name, "INVALID_ENUM",
				fmt.Sprintf("parameter %s has invalid type %q (must be 'text' or 'select')", ref, param.Type))
		}
	}
}

func (v *Validator) checkSuspiciousContent(report *Report, name string, p model.Provider) {
	fields := map[string]string{
		"name":        p.Name,
		"description": p.Description,
		"why_use":     p.WhyUse,
		"how_use":     p.HowUse,
	}
	// Fixed field order so findings are deterministic.
	for _, field := range []string{"name", "description", "why_use", "how_use"} {
		value := strings.ToLower(fields[field])
		for _, keyword := range suspiciousKeywords {
			if strings.Contains(value, keyword) {
				report.addError(name, "SUSPICIOUS_CONTENT",
					fmt.Sprintf("suspicious content in %q: %s", field, keyword))
			}
		}
	}
}

func isLegacyHTTPHost(host string) bool {
	for _, legacy := range legacyHTTPHosts {
		if strings.Contains(host, legacy) {
			return true
		}
	}
	return false
}

func matchesLocalhost(host string) bool {
	for _, pattern := range localhostPatterns {
		if strings.Contains(host, pattern) {
			return true
		}
	}
	return strings.HasPrefix(host, "local.") || strings.HasSuffix(host, ".local")
}

func (r *Report) addError(provider, code, message string) {
	r.Errors = append(r.Errors, Finding{Provider: provider, Code: code, Message: message})
}

func (r *Report) addWarning(provider, code, message string) {
	r.Warnings = append(r.Warnings, Finding{Provider: provider, Code: code, Message: message})
}
