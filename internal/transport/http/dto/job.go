package dto

// ServiceRequest is the raw webhook body POSTed by the marketplace.
type ServiceRequest struct {
	JobID        string        `json:"jobId"`
	BuyerAddress string        `json:"buyerAddress"`
	ServiceID    string        `json:"serviceId"`
	Parameters   JobParameters `json:"parameters"`
}

// JobParameters carries the per-service inputs of a job.
type JobParameters struct {
	TokenAddress string `json:"tokenAddress"`
}

// ServiceResponse is the envelope returned to the marketplace. An "error"
// status triggers a refund on the marketplace side.
type ServiceResponse struct {
	Status      string       `json:"status"`
	JobID       string       `json:"jobId"`
	Deliverable *Deliverable `json:"deliverable,omitempty"`
	Message     string       `json:"message,omitempty"`
}

// Deliverable wraps the analysis result for the marketplace.
type Deliverable struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// PaymentRequired is the 402 body for jobs without verified escrow payment.
type PaymentRequired struct {
	Detail string `json:"detail"`
}

// Health is the health check body.
type Health struct {
	Status    string `json:"status"`
	Agent     string `json:"agent"`
	Timestamp string `json:"timestamp"`
}

// AgentCard is the root body describing this agent and its price list.
type AgentCard struct {
	Agent    string            `json:"agent"`
	Version  string            `json:"version"`
	Services map[string]string `json:"services"`
	Profile  string            `json:"profile"`
}
