// Package requesthdl - HTTP handlers for service request records.
package requesthdl

import (
	"fmt"

	requestdto "gotask_backend/internal/api/request/dto"
	requestsvc "gotask_backend/internal/api/request/service"
	models "gotask_backend/internal/api/request/models"
	basehdl "gotask_backend/internal/api/base/handler"
)

// RequestHandler exposes the generic CRUD operations for service requests.
type RequestHandler struct {
	*basehdl.BaseHandler[models.ServiceRequest, requestdto.RequestCreateInput, requestdto.RequestUpdateInput]
	requestService *requestsvc.RequestService
}

// NewRequestHandler creates a RequestHandler with its service.
func NewRequestHandler() (*RequestHandler, error) {
	requestService, err := requestsvc.NewRequestService()
	if err != nil {
		return nil, fmt.Errorf("failed to create request service: %w", err)
	}
	return &RequestHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.ServiceRequest, requestdto.RequestCreateInput, requestdto.RequestUpdateInput](requestService),
		requestService: requestService,
	}, nil
}
