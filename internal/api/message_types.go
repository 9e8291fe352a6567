package api

import "encoding/base64"

// Attachment is a file sent with a message.
type Attachment struct {
	Base64Content string `json:"base64Content"`
	FileName      string `json:"fileName"`
}

// NewAttachment base64-encodes content as an Attachment.
func NewAttachment(fileName string, content []byte) Attachment {
	return Attachment{
		Base64Content: base64.StdEncoding.EncodeToString(content),
		FileName:      fileName,
	}
}

// Message is a transactional message. It is also the message half of the
// by-template requests.
type Message struct {
	Attachments   []Attachment      `json:"attachments,omitempty"`
	Customization map[string]string `json:"customization,omitempty"`
	FromEmail     string            `json:"fromEmail"`
	FromName      string            `json:"fromName"`
	Headers       map[string]string `json:"headers,omitempty"`
	HTML          string            `json:"html,omitempty"`
	IPGroup       string            `json:"ipGroup,omitempty"`
	ReturnPath    string            `json:"returnPath,omitempty"`
	ScheduledAt   string            `json:"scheduledAt,omitempty"`
	Subject       string            `json:"subject"`
	Text          string            `json:"text,omitempty"`
	To            []Recipient       `json:"to"`
}

// SendTransactionalRequest is the request body for POST /messages/transactional.
type SendTransactionalRequest = Message

// SendMarketingRequest is the request body for POST /messages/marketing.
// Marketing recipients are plain addresses.
type SendMarketingRequest struct {
	Attachments   []Attachment      `json:"attachments,omitempty"`
	Customization map[string]string `json:"customization,omitempty"`
	FromEmail     string            `json:"fromEmail"`
	FromName      string            `json:"fromName"`
	Headers       map[string]string `json:"headers,omitempty"`
	HTML          string            `json:"html,omitempty"`
	IPGroup       string            `json:"ipGroup,omitempty"`
	ReturnPath    string            `json:"returnPath,omitempty"`
	ScheduledAt   string            `json:"scheduledAt,omitempty"`
	Subject       string            `json:"subject"`
	Text          string            `json:"text,omitempty"`
	To            []string          `json:"to"`
}

// SendByTemplateRequest is the request body for both by-template send endpoints.
type SendByTemplateRequest struct {
	Message    Message `json:"message"`
	TemplateID string  `json:"templateId"`
}

// CancelScheduledMessageRequest is the request body for POST /messages/cancel-scheduled.
type CancelScheduledMessageRequest struct {
	ScheduledMessageID string `json:"scheduledMessageId"`
}

// Template is a stored message template.
type Template struct {
	Config    string    `json:"config"`
	CreatedAt Timestamp `json:"createdAt"`
	Name      string    `json:"name"`
	RawHTML   string    `json:"rawHtml"`
	RawText   string    `json:"rawText"`
	Subject   string    `json:"subject"`
	UpdatedAt Timestamp `json:"updatedAt"`
	UUID      string    `json:"uuid"`
}

// Schedule is a send job created by the send endpoints.
type Schedule struct {
	Approved         bool      `json:"approved"`
	AuthorizedToSend bool      `json:"authorizedToSend"`
	CreatedAt        Timestamp `json:"createdAt"`
	CreditAmount     int       `json:"creditAmount"`
	EmailGroupID     int       `json:"emailGroupId"`
	JobStatus        string    `json:"jobStatus"`
	JobType          string    `json:"jobType"`
	Reason           string    `json:"reason"`
	ResultType       string    `json:"resultType"`
	ScheduledAt      Timestamp `json:"scheduledAt"`
	StatID           string    `json:"statId"`
	Template         Template  `json:"template"`
	UpdatedAt        Timestamp `json:"updatedAt"`
	UUID             string    `json:"uuid"`
}

// EmailClickDetail is one recorded link click.
type EmailClickDetail struct {
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
	IP          string `json:"ip"`
	URL         string `json:"url"`
}

// EmailReadDetail is one recorded open.
type EmailReadDetail struct {
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
	IP          string `json:"ip"`
}

// GetMessageInfoResponse is the delivery state of one message to one recipient.
type GetMessageInfoResponse struct {
	Email             string             `json:"email"`
	EmailClicksCount  int                `json:"emailClicksCount"`
	EmailClicksDetail []EmailClickDetail `json:"emailClicksDetail"`
	EmailReadsCount   int                `json:"emailReadsCount"`
	EmailReadsDetail  []EmailReadDetail  `json:"emailReadsDetail"`
	State             string             `json:"state"`
	Subject           string             `json:"subject"`
	TemplateID        string             `json:"templateId"`
}

// EmailTransactionEvent is a tracking event recorded for a schedule.
type EmailTransactionEvent struct {
	BounceCode    string `json:"bounceCode,omitempty"`
	City          string `json:"city,omitempty"`
	CountryCode   string `json:"countryCode,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	Data          string `json:"data,omitempty"`
	EventType     string `json:"eventType,omitempty"`
	ID            string `json:"id,omitempty"`
	IP            string `json:"ip,omitempty"`
	StatID        string `json:"statId,omitempty"`
	SubscriberID  string `json:"subscriberId,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}

// ScheduleDetails groups a schedule's events by kind.
type ScheduleDetails struct {
	Clicks       []EmailTransactionEvent `json:"clicks"`
	HardBounces  []EmailTransactionEvent `json:"hardBounces"`
	Reads        []EmailTransactionEvent `json:"reads"`
	SoftBounces  []EmailTransactionEvent `json:"softBounces"`
	Unsubscribes []EmailTransactionEvent `json:"unsubscribes"`
}

// GetScheduleInfoResponse aggregates delivery statistics for a schedule.
type GetScheduleInfoResponse struct {
	Details          ScheduleDetails `json:"details"`
	EmailReadsCount  int             `json:"emailReadsCount"`
	EmailReadsUnique int             `json:"emailReadsUnique"`
	HardBounceCount  int             `json:"hardBounceCount"`
	LinkClicksCount  int             `json:"linkClicksCount"`
	OtherBounceCount int             `json:"otherBounceCount"`
	SenderFromEmail  string          `json:"senderFromEmail"`
	SenderFromName   string          `json:"senderFromName"`
	SoftBounceCount  int             `json:"softBounceCount"`
	State            string          `json:"state"`
	Subject          string          `json:"subject"`
	TemplateID       string          `json:"templateId"`
	UnsubscribeCount int             `json:"unsubscribeCount"`
}
