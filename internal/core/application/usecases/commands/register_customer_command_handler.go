package commands

import (
	"context"
	"time"

	"pastelstand/internal/core/domain/model/customer"
	"pastelstand/internal/core/domain/model/kernel"
)

// CustomerResponse is the public view of a customer record.
type CustomerResponse struct {
	ID        kernel.UUID
	Name      string
	CreatedAt time.Time
}

// RegisterCustomerCommandHandler handles self-service customer registration.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for registrations.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the new record.
func (h *RegisterCustomerCommandHandler) Handle(
	ctx context.Context, cmd RegisterCustomerCommand,
) (CustomerResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CustomerResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, err := customer.NewCustomer(kernel.NewUUID(), cmd.Name(), false, now)
	if err != nil {
		return CustomerResponse{}, err
	}

	if err = uow.CustomerRepository().Add(ctx, cust); err != nil {
		return CustomerResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CustomerResponse{}, err
	}

	return CustomerResponse{
		ID:        cust.ID(),
		Name:      cust.Name(),
		CreatedAt: cust.CreatedAt(),
	}, nil
}
