package dmarc

//go:generate msgp -file=decision.go -o=decision_gen.go

//msgp:replace Policy with:string
//msgp:replace Record with:map[string]string

// Decision is the outcome of policy discovery for a From domain.
type Decision struct {
	// FromDomain is the domain policy discovery was done for.
	FromDomain string `msg:"from"`

	// PolicyDomain is the domain whose record is used. Empty without record.
	PolicyDomain string `msg:"policydomain"`

	// OrgDomain is the organizational domain determined during discovery.
	OrgDomain string `msg:"orgdomain"`

	// PSDDomain is set when the record of a public suffix domain is used.
	PSDDomain string `msg:"psddomain"`

	// Comment describes where the record came from.
	Comment string `msg:"comment"`

	// Policy is the policy that applies to FromDomain.
	Policy Policy `msg:"policy"`

	// Record is the record that was used, nil if none was found.
	Record Record `msg:"record,omitempty"`

	// Walk holds the records found during a tree walk.
	Walk *TreeWalkResult `msg:"walk"`
}

// TreeWalkResult holds the outcome of a DNS tree walk.
type TreeWalkResult struct {
	// Queried lists the domains whose record was looked up, in walk order.
	Queried []string `msg:"queried"`

	// Entries are the domains with a record, longest domain first.
	Entries []WalkEntry `msg:"entries"`
}

// WalkEntry is a record found during a tree walk.
type WalkEntry struct {
	Domain string `msg:"domain"`
	Record Record `msg:"record"`

	// PSD is "y" or "n" when the domain is known to be, or not to be, a public
	// suffix domain. Empty otherwise.
	PSD string `msg:"psd"`

	// Inferred is set when PSD was not published in the record, but derived
	// from the PSD registry.
	Inferred bool `msg:"inferred"`
}
