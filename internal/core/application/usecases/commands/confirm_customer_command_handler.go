package commands

import (
	"context"
	"errors"

	"pastelstand/internal/pkg/errs"
)

// ConfirmCustomerCommandHandler handles identity confirmation for returning
// customers. The supplied name must match the stored one case-insensitively;
// a match with different casing corrects the stored name.
type ConfirmCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewConfirmCustomerCommandHandler creates a handler for confirmations.
func NewConfirmCustomerCommandHandler(uowFactory CustomerUoWFactory) ConfirmCustomerCommandHandler {
	return ConfirmCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command and returns the confirmed
// record with its possibly corrected name.
func (h *ConfirmCustomerCommandHandler) Handle(
	ctx context.Context, cmd ConfirmCustomerCommand,
) (CustomerResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CustomerResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()

	cust, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return CustomerResponse{}, errs.NewBusinessError(errs.CodeCustomerNotFound, "customerId")
		}
		return CustomerResponse{}, err
	}

	renamed, err := cust.Confirm(cmd.Name())
	if err != nil {
		return CustomerResponse{}, err
	}

	if renamed {
		if err = customerRepo.Update(ctx, cust); err != nil {
			return CustomerResponse{}, err
		}
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
