// Package domainauth reports on the DNS verification state of a Mepost
// sending domain.
//
// AddDomain returns the SPF, DKIM and DMARC records to publish; Mepost marks
// each one verified once it sees it in DNS. Check summarizes that state and
// Validate turns it into an error.
package domainauth

import (
	"strings"

	"github.com/mepost/mepost-go"
)

// Report summarizes the verification state of one sending domain.
type Report struct {
	Domain string `json:"domain"`
	// Passed is true when SPF, DKIM and DMARC are all verified.
	Passed            bool `json:"passed"`
	SPFPassed         bool `json:"spfPassed"`
	DKIMPassed        bool `json:"dkimPassed"`
	DMARCPassed       bool `json:"dmarcPassed"`
	AWSIdentityPassed bool `json:"awsIdentityPassed"`
	// Failures describes each record still missing. Never nil.
	Failures []string `json:"failures"`
}

// Check builds a Report for d. The AWS identity is reported but does not
// affect Passed.
func Check(d mepost.CompanyDomain) Report {
	var failures []string

	if !d.SPFVerified {
		failures = append(failures, pending("SPF", d.SPFName, d.SPFContent))
	}
	if !d.DKIMVerified {
		failures = append(failures, pending("DKIM", d.DKIMName, d.DKIMContent))
	}
	if !d.DMARCVerified {
		failures = append(failures, pending("DMARC", d.DMARCName, d.DMARCContent))
	}

	awsPassed := d.HasAWSIdentity && d.AWSVerified
	if !awsPassed {
		msg := "AWS identity not verified"
		if d.AWSRegion != "" {
			msg += " (region: " + d.AWSRegion + ")"
		}
		failures = append(failures, msg)
	}

	if failures == nil {
		failures = []string{}
	}

	return Report{
		Domain:            d.Domain,
		Passed:            d.SPFVerified && d.DKIMVerified && d.DMARCVerified,
		SPFPassed:         d.SPFVerified,
		DKIMPassed:        d.DKIMVerified,
		DMARCPassed:       d.DMARCVerified,
		AWSIdentityPassed: awsPassed,
		Failures:          failures,
	}
}

func pending(kind, name, content string) string {
	var b strings.Builder
	b.WriteString(kind)
	b.WriteString(" record not verified")
	if name != "" {
		b.WriteString(": publish TXT ")
		b.WriteString(name)
		if content != "" {
			b.WriteString(" = ")
			b.WriteString(content)
		}
	}
	return b.String()
}

// IsPassing reports whether SPF, DKIM and DMARC are verified.
func (r Report) IsPassing() bool {
	return r.Passed
}

// Find returns the domain named name from a ListDomains payload.
func Find(domains []mepost.CompanyDomain, name string) (mepost.CompanyDomain, bool) {
	for _, d := range domains {
		if strings.EqualFold(d.Domain, name) {
			return d, true
		}
	}
	return mepost.CompanyDomain{}, false
}
