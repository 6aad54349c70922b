// Package models - metric rows returned by the admin dashboards.
package models

// Metric is one dashboard card.
type Metric struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// RevenueMetric is one revenue card; Value1 is the request count and
// Value2 the summed income.
type RevenueMetric struct {
	Label  string  `json:"label"`
	Value1 int64   `json:"value1"`
	Value2 float64 `json:"value2"`
}

// TicketMetric is one ticket-count row with its client-side filter tag.
type TicketMetric struct {
	Type   string `json:"Type"`
	Count  int64  `json:"Count"`
	Filter string `json:"filter"`
}

// Filter tags the ticket dashboard hands to the client.
const (
	FilterAllTickets         = "all_tickets"
	FilterOpen               = "open"
	FilterWaitingForApproval = "waiting_for_approval"
	FilterClosed             = "closed"
	FilterRefundApproval     = "refund_approval"
)
