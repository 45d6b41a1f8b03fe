package zenegy

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// ConnectionStatus is the result of a connectivity check
type ConnectionStatus struct {
	Connected   bool      `json:"connected"`
	Environment string    `json:"environment"`
	CompanyName string    `json:"company_name,omitempty"`
	CheckedAt   time.Time `json:"checked_at"`
}

// TestConnection verifies credentials against the provider. In sandbox mode
// (or with no credentials configured) it answers locally without a network
// round trip.
func (c *Client) TestConnection(ctx context.Context) (*ConnectionStatus, error) {
	status := &ConnectionStatus{
		Environment: c.environment,
		CheckedAt:   time.Now(),
	}

	if c.IsSandbox() || !c.Configured() {
		status.Connected = c.Configured()
		status.CompanyName = "Sandbox"
		return status, nil
	}

	var out struct {
		Name string `json:"name"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/companies/"+c.companyID, nil, &out); err != nil {
		return status, err
	}

	status.Connected = true
	status.CompanyName = out.Name
	return status, nil
}

// BatchLine is one employee's hours in a payroll batch push
type BatchLine struct {
	EmployeeNumber string          `json:"employee_number"`
	NormalHours    decimal.Decimal `json:"normal_hours"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
	WeekendHours   decimal.Decimal `json:"weekend_hours"`
	Amount         decimal.Decimal `json:"amount"`
}

// PushBatchRequest pushes one period's confirmed hours
type PushBatchRequest struct {
	ExternalBatchID string      `json:"external_batch_id"`
	PeriodStart     string      `json:"period_start"`
	PeriodEnd       string      `json:"period_end"`
	Lines           []BatchLine `json:"lines"`
}

// PushBatchResponse is the provider's acknowledgement
type PushBatchResponse struct {
	ProviderBatchID string `json:"provider_batch_id"`
	Status          string `json:"status"`
}

// PushBatch submits a payroll batch to the provider
func (c *Client) PushBatch(ctx context.Context, req PushBatchRequest) (*PushBatchResponse, error) {
	if c.IsSandbox() {
		return &PushBatchResponse{
			ProviderBatchID: "sandbox-" + req.ExternalBatchID,
			Status:          "accepted",
		}, nil
	}

	var out PushBatchResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/payroll/batches", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
