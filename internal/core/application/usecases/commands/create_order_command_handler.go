package commands

import (
	"context"
	"errors"
	"time"

	"pastelstand/internal/core/domain/model/customer"
	"pastelstand/internal/core/domain/model/flavor"
	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/domain/model/order"
	"pastelstand/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreatedItemSummary describes one exploded single-unit item of a freshly
// created order.
type CreatedItemSummary struct {
	ID        kernel.UUID
	FlavorID  kernel.UUID
	Quantity  int
	Status    order.Status
	UnitPrice decimal.Decimal
}

// CreateOrderResponse is the result of a successful order creation.
type CreateOrderResponse struct {
	OrderID     kernel.UUID
	CustomerID  kernel.UUID
	TotalAmount decimal.Decimal
	Items       []CreatedItemSummary
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves or registers the customer, reserves flavor stock, and persists
// the order with its exploded single-unit items in one transaction.
//
// Stock is validated for every requested flavor before any mutation. All
// insufficient flavors are reported together as accumulated business errors,
// so a caller sees every stock problem at once instead of one per attempt.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a UoWFactory spanning orders, flavors and customers.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// All items of the order share one creation timestamp.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (CreateOrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResponse{}, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, err := h.resolveCustomer(ctx, uow, cmd, now)
	if err != nil {
		return CreateOrderResponse{}, err
	}

	flavorIDs, totals := groupLinesByFlavor(cmd.Lines())

	flavorRepo := uow.FlavorRepository()
	flavors, err := flavorRepo.GetByIDs(ctx, flavorIDs)
	if err != nil {
		return CreateOrderResponse{}, err
	}

	for _, id := range flavorIDs {
		if _, ok := flavors[id]; !ok {
			return CreateOrderResponse{}, errs.NewBusinessError(errs.CodeFlavorNotFound, "items", id.String())
		}
	}

	var stockErrs errs.BusinessErrors
	for _, id := range flavorIDs {
		if reserveErr := flavors[id].CanReserve(totals[id]); reserveErr != nil {
			var businessErr *errs.BusinessError
			if !errors.As(reserveErr, &businessErr) {
				return CreateOrderResponse{}, reserveErr
			}
			stockErrs = append(stockErrs, businessErr)
		}
	}
	if len(stockErrs) > 0 {
		return CreateOrderResponse{}, stockErrs
	}

	for _, id := range flavorIDs {
		if err = flavors[id].Reserve(totals[id]); err != nil {
			return CreateOrderResponse{}, err
		}
		if err = flavorRepo.Update(ctx, flavors[id]); err != nil {
			return CreateOrderResponse{}, err
		}
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cust.ID(), cust.Name(), now)
	if err != nil {
		return CreateOrderResponse{}, err
	}

	items, err := explodeLines(newOrder, cmd.Lines(), flavors, now)
	if err != nil {
		return CreateOrderResponse{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResponse{}, err
	}

	return CreateOrderResponse{
		OrderID:     newOrder.ID(),
		CustomerID:  cust.ID(),
		TotalAmount: newOrder.TotalAmount(),
		Items:       items,
	}, nil
}

// resolveCustomer fetches and confirms the supplied customer, or registers a
// new one when no identifier was given. A casing correction recorded during
// confirmation is persisted immediately.
func (h *CreateOrderCommandHandler) resolveCustomer(
	ctx context.Context, uow UoW, cmd CreateOrderCommand, now time.Time,
) (*customer.Customer, error) {
	customerRepo := uow.CustomerRepository()

	customerID, hasID := cmd.CustomerID()
	if !hasID {
		cust, err := customer.NewCustomer(kernel.NewUUID(), cmd.CustomerName(), false, now)
		if err != nil {
			return nil, err
		}
		if err = customerRepo.Add(ctx, cust); err != nil {
			return nil, err
		}
		return cust, nil
	}

	cust, err := customerRepo.Get(ctx, customerID)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return nil, errs.NewBusinessError(errs.CodeCustomerNotFound, "customerId")
		}
		return nil, err
	}

	renamed, err := cust.Confirm(cmd.CustomerName())
	if err != nil {
		return nil, err
	}
	if renamed {
		if err = customerRepo.Update(ctx, cust); err != nil {
			return nil, err
		}
	}

	return cust, nil
}

// groupLinesByFlavor sums requested quantities per flavor, preserving the
// order in which flavors first appear in the request.
func groupLinesByFlavor(lines []OrderLine) ([]kernel.UUID, map[kernel.UUID]int) {
	ids := make([]kernel.UUID, 0, len(lines))
	totals := make(map[kernel.UUID]int, len(lines))

	for _, line := range lines {
		if _, seen := totals[line.FlavorID]; !seen {
			ids = append(ids, line.FlavorID)
		}
		totals[line.FlavorID] += line.Quantity
	}

	return ids, totals
}

// explodeLines turns each requested line into quantity-many single-unit
// items on the order, each snapshotting the flavor's current name and price.
func explodeLines(
	newOrder *order.Order,
	lines []OrderLine,
	flavors map[kernel.UUID]*flavor.Flavor,
	now time.Time,
) ([]CreatedItemSummary, error) {
	var summaries []CreatedItemSummary

	for _, line := range lines {
		fl := flavors[line.FlavorID]
		for range line.Quantity {
			item, err := newOrder.AddItem(
				kernel.NewUUID(), fl.ID(), fl.Name(), fl.Price(), line.Notes, now,
			)
			if err != nil {
				return nil, err
			}

			summaries = append(summaries, CreatedItemSummary{
				ID:        item.ID(),
				FlavorID:  item.FlavorID(),
				Quantity:  item.Quantity(),
				Status:    item.Status(),
				UnitPrice: item.UnitPrice(),
			})
		}
	}

	return summaries, nil
}
