package mepost

import (
	"time"

	"github.com/mepost/mepost-go/internal/api"
)

// Response is the {data, error} envelope returned by every endpoint.
type Response[T any] = api.Response[T]

// BaseResult is the payload of paged list endpoints.
type BaseResult[T any] = api.BaseResult[T]

// Shared types.
type (
	Recipient   = api.Recipient
	CustomField = api.CustomField
	Timestamp   = api.Timestamp
)

// Domain types.
type (
	AddDomainRequest     = api.AddDomainRequest
	AddDomainResponse    = api.AddDomainResponse
	RemoveDomainRequest  = api.RemoveDomainRequest
	RemoveDomainResponse = api.RemoveDomainResponse
	DNSRecord            = api.DNSRecord
	CompanyDomain        = api.CompanyDomain
	Company              = api.Company
	CompanyPlan          = api.CompanyPlan
	PricingPlan          = api.PricingPlan
)

// Group and subscriber types.
type (
	CreateGroupRequest      = api.CreateGroupRequest
	RenameGroupRequest      = api.RenameGroupRequest
	AddSubscriberRequest    = api.AddSubscriberRequest
	DeleteSubscriberRequest = api.DeleteSubscriberRequest
	EmailGroup              = api.EmailGroup
	EmailGroupWithCounts    = api.EmailGroupWithCounts
	Subscriber              = api.Subscriber
)

// Message types.
type (
	Attachment                    = api.Attachment
	Message                       = api.Message
	SendTransactionalRequest      = api.SendTransactionalRequest
	SendMarketingRequest          = api.SendMarketingRequest
	SendByTemplateRequest         = api.SendByTemplateRequest
	CancelScheduledMessageRequest = api.CancelScheduledMessageRequest
	Schedule                      = api.Schedule
	Template                      = api.Template
	GetMessageInfoResponse        = api.GetMessageInfoResponse
	EmailClickDetail              = api.EmailClickDetail
	EmailReadDetail               = api.EmailReadDetail
	GetScheduleInfoResponse       = api.GetScheduleInfoResponse
	ScheduleDetails               = api.ScheduleDetails
	EmailTransactionEvent         = api.EmailTransactionEvent
)

// Outbound IP types.
type (
	CreateIPGroupRequest = api.CreateIPGroupRequest
	SetIPGroupRequest    = api.SetIPGroupRequest
	StartWarmUpRequest   = api.StartWarmUpRequest
	CancelWarmUpRequest  = api.CancelWarmUpRequest
	IPAddress            = api.IPAddress
	IPGroup              = api.IPGroup
	SetIPGroupResponse   = api.SetIPGroupResponse
	StartWarmUpResponse  = api.StartWarmUpResponse
	CancelWarmUpResponse = api.CancelWarmUpResponse
)

// NewAttachment base64-encodes content as an Attachment.
func NewAttachment(fileName string, content []byte) Attachment {
	return api.NewAttachment(fileName, content)
}

// NewTimestamp returns a Timestamp holding t in RFC 3339 form.
func NewTimestamp(t time.Time) Timestamp {
	return api.NewTimestamp(t)
}
