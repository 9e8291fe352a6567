package api

// CreateGroupRequest is the request body for POST /groups.
type CreateGroupRequest struct {
	Name       string      `json:"name"`
	Recipients []Recipient `json:"to"`
}

// RenameGroupRequest is the request body for PUT /groups/{groupId}.
type RenameGroupRequest struct {
	Name string `json:"name"`
}

// AddSubscriberRequest is the request body for POST /groups/{groupId}/subscribers.
type AddSubscriberRequest struct {
	Recipients []Recipient `json:"to"`
}

// DeleteSubscriberRequest is the request body for DELETE /groups/{groupId}/subscribers.
type DeleteSubscriberRequest struct {
	Emails []string `json:"emails"`
}

// EmailGroup is a subscriber list.
type EmailGroup struct {
	CompanyID             int       `json:"companyId"`
	CreatedAt             Timestamp `json:"createdAt"`
	GeneralScore          float64   `json:"generalScore"`
	IsWeb                 bool      `json:"isWeb"`
	Name                  string    `json:"name"`
	NewsletterScore       float64   `json:"newsletterScore"`
	Priority              int       `json:"priority"`
	TotalActiveSubscriber int       `json:"totalActiveSubscriber"`
	TotalSubscriber       int       `json:"totalSubscriber"`
	TotalUnsubscribe      int       `json:"totalUnsubscribe"`
	UpdatedAt             Timestamp `json:"updatedAt"`
	UUID                  string    `json:"uuid"`
}

// EmailGroupWithCounts is an EmailGroup that also reports bounces.
type EmailGroupWithCounts struct {
	CompanyID             int       `json:"companyId"`
	CreatedAt             Timestamp `json:"createdAt"`
	GeneralScore          float64   `json:"generalScore"`
	IsWeb                 bool      `json:"isWeb"`
	Name                  string    `json:"name"`
	NewsletterScore       float64   `json:"newsletterScore"`
	Priority              int       `json:"priority"`
	TotalActiveSubscriber int       `json:"totalActiveSubscriber"`
	TotalBounced          int       `json:"totalBounced"`
	TotalSubscriber       int       `json:"totalSubscriber"`
	TotalUnsubscribe      int       `json:"totalUnsubscribe"`
	UpdatedAt             Timestamp `json:"updatedAt"`
	UUID                  string    `json:"uuid"`
}

// Subscriber is a member of an email group.
type Subscriber struct {
	Bounced      bool          `json:"bounced"`
	ConfirmCode  string        `json:"confirmCode"`
	ConfirmIP    string        `json:"confirmIp"`
	Confirmed    bool          `json:"confirmed"`
	CreatedAt    Timestamp     `json:"createdAt"`
	CustomFields []CustomField `json:"customFields"`
	EmailAddress string        `json:"emailAddress"`
	EmailGroupID int           `json:"emailGroupId"`
	SubscribedAt Timestamp     `json:"subscribedAt"`
	Unsubscribed bool          `json:"unsubscribed"`
	UpdatedAt    Timestamp     `json:"updatedAt"`
	UUID         string        `json:"uuid"`
}
