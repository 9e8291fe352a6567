package api

// CreateIPGroupRequest is the request body for POST /outbound/ip-group/create.
type CreateIPGroupRequest struct {
	GroupName string `json:"groupName"`
}

// SetIPGroupRequest is the request body for POST /outbound/ip/set-ip-group.
type SetIPGroupRequest struct {
	GroupName string `json:"groupName"`
	IPAddress string `json:"ipAddress"`
}

// StartWarmUpRequest is the request body for POST /outbound/ip/start-warmup.
type StartWarmUpRequest struct {
	IPAddress string `json:"ipAddress"`
}

// CancelWarmUpRequest is the request body for POST /outbound/ip/cancel-warmup.
type CancelWarmUpRequest struct {
	IPAddress string `json:"ipAddress"`
}

// IPAddress is a dedicated outbound IP.
type IPAddress struct {
	CompanyID  int    `json:"companyId"`
	CreatedAt  string `json:"createdAt"`
	IP         string `json:"ip"`
	IPGroupID  int    `json:"ipGroupId"`
	ReverseDNS string `json:"reverseDNS,omitempty"`
	Status     string `json:"status"`
	UpdatedAt  string `json:"updatedAt"`
	UUID       string `json:"uuid"`
}

// IPGroup is a named pool of outbound IPs.
type IPGroup struct {
	CompanyID   int         `json:"companyId"`
	CreatedAt   string      `json:"createdAt"`
	IPAddresses []IPAddress `json:"ipAddresses"`
	Name        string      `json:"name"`
	UpdatedAt   string      `json:"updatedAt"`
	UUID        string      `json:"uuid"`
}

// SetIPGroupResponse reports the group an IP now belongs to.
type SetIPGroupResponse struct {
	IPAddress string  `json:"ipAddress"`
	IPGroup   IPGroup `json:"ipGroup"`
}

// StartWarmUpResponse describes a started warmup window.
type StartWarmUpResponse struct {
	EndAt     string `json:"endAt"`
	IPAddress string `json:"ipAddress"`
	StartAt   string `json:"startAt"`
	Status    string `json:"status"`
}

// CancelWarmUpResponse confirms a cancelled warmup.
type CancelWarmUpResponse struct {
	CancelledAt string `json:"cancelledAt"`
	IPAddress   string `json:"ipAddress"`
	StartedAt   string `json:"startedAt"`
}
