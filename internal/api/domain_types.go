package api

// AddDomainRequest is the request body for POST /company/domain/add.
type AddDomainRequest struct {
	Domain string `json:"domain"`
}

// RemoveDomainRequest is the request body for DELETE /company/domain/remove.
type RemoveDomainRequest struct {
	Domain string `json:"domain"`
}

// DNSRecord is a DNS entry the domain owner must publish.
type DNSRecord struct {
	Content string `json:"content"`
	Name    string `json:"name"`
	Type    string `json:"type"`
}

// AddDomainResponse carries the DNS records needed to verify a new domain.
type AddDomainResponse struct {
	DKIM   DNSRecord `json:"dkim"`
	DMARC  DNSRecord `json:"dmarc"`
	Domain string    `json:"domain"`
	SPF    DNSRecord `json:"spf"`
}

// RemoveDomainResponse confirms a domain removal.
type RemoveDomainResponse struct {
	Domain    string `json:"domain"`
	RemovedAt string `json:"removedAt"`
}

// CompanyDomain is a sending domain with its verification state.
type CompanyDomain struct {
	AWSRegion      string  `json:"awsRegion"`
	AWSVerified    bool    `json:"awsVerified"`
	Company        Company `json:"company"`
	CompanyID      int     `json:"companyId"`
	CreatedAt      string  `json:"createdAt"`
	DKIMContent    string  `json:"dkimContent"`
	DKIMName       string  `json:"dkimName"`
	DKIMPrivateKey string  `json:"dkimPrivateKey"`
	DKIMSelector   string  `json:"dkimSelector"`
	DKIMVerified   bool    `json:"dkimVerified"`
	DMARCContent   string  `json:"dmarcContent"`
	DMARCName      string  `json:"dmarcName"`
	DMARCVerified  bool    `json:"dmarcVerified"`
	Domain         string  `json:"domain"`
	HasAWSIdentity bool    `json:"hasAwsIdentity"`
	IsVerified     bool    `json:"isVerified"`
	SPFContent     string  `json:"spfContent"`
	SPFName        string  `json:"spfName"`
	SPFVerified    bool    `json:"spfVerified"`
	UpdatedAt      string  `json:"updatedAt"`
	UUID           string  `json:"uuid"`
}

// Company is the account owning a domain.
type Company struct {
	CompanyPlan   CompanyPlan `json:"companyPlan"`
	CompanyPlanID int         `json:"companyPlanID"`
	CreatedAt     Timestamp   `json:"createdAt"`
	FooterHTML    string      `json:"footerHtml"`
	FooterText    string      `json:"footerText"`
	Name          string      `json:"name"`
	OwnerID       int         `json:"ownerId"`
	Priority      int         `json:"priority"`
	UpdatedAt     Timestamp   `json:"updatedAt"`
	UUID          string      `json:"uuid"`
}

// CompanyPlan is the subscription a company is on.
type CompanyPlan struct {
	CompanyID             int         `json:"companyID"`
	CreatedAt             Timestamp   `json:"createdAt"`
	CurrentUsage          int         `json:"currentUsage"`
	EndedAt               Timestamp   `json:"endedAt"`
	LastBilled            Timestamp   `json:"lastBilled"`
	PricingPlan           PricingPlan `json:"pricingPlan"`
	PricingPlanID         int         `json:"pricingPlanID"`
	SelectedContactsLimit int         `json:"selectedContactsLimit"`
	SelectedDataRetention int         `json:"selectedDataRetention"`
	SelectedEmailLimit    int         `json:"selectedEmailLimit"`
	StartedAt             Timestamp   `json:"startedAt"`
	Status                string      `json:"status"`
	UpdatedAt             Timestamp   `json:"updatedAt"`
	UUID                  string      `json:"uuid"`
}

// PricingPlan describes plan limits.
type PricingPlan struct {
	CreatedAt    Timestamp `json:"createdAt"`
	DailyLimit   int       `json:"dailyLimit"`
	MaximumEmail int       `json:"maximumEmail"`
	Name         string    `json:"name"`
	PlanType     string    `json:"planType"`
	UpdatedAt    Timestamp `json:"updatedAt"`
	UUID         string    `json:"uuid"`
}
