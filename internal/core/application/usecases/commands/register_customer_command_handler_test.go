package commands_test

import (
	"testing"

	"pastelstand/internal/core/application/usecases/commands"
	"pastelstand/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRegisterCustomerCommand("  Ana  ")
	require.NoError(t, err)
	require.Equal(t, "Ana", cmd.Name())

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCustomerCommandHandler(factory)
	resp, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Ana", resp.Name)
	require.NoError(t, resp.ID.Validate())

	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestNewRegisterCustomerCommand_BlankName(t *testing.T) {
	_, err := commands.NewRegisterCustomerCommand("   ")
	requireBusinessCode(t, err, errs.CodeCustomerNameRequired)
}

func TestConfirmCustomerCommandHandler_Handle_CorrectsCasing(t *testing.T) {
	ctx := t.Context()

	cust := mustCustomer(t, "ana")
	cmd, err := commands.NewConfirmCustomerCommand(cust.ID(), "Ana")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, cust.ID()).Return(cust, nil).Once(),
		customerRepo.On("Update", mock.Anything, cust).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmCustomerCommandHandler(factory)
	resp, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Ana", resp.Name)

	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmCustomerCommandHandler_Handle_ExactMatchSkipsUpdate(t *testing.T) {
	ctx := t.Context()

	cust := mustCustomer(t, "Ana")
	cmd, err := commands.NewConfirmCustomerCommand(cust.ID(), "Ana")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, cust.ID()).Return(cust, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmCustomerCommandHandler(factory)
	resp, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Ana", resp.Name)
	customerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestConfirmCustomerCommandHandler_Handle_Mismatch(t *testing.T) {
	ctx := t.Context()

	cust := mustCustomer(t, "Ana")
	cmd, err := commands.NewConfirmCustomerCommand(cust.ID(), "Beatriz")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, cust.ID()).Return(cust, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmCustomerCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	requireBusinessCode(t, err, errs.CodeCustomerNameMismatch)
}

func TestConfirmCustomerCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()

	cust := mustCustomer(t, "Ana")
	cmd, err := commands.NewConfirmCustomerCommand(cust.ID(), "Ana")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, cust.ID()).
			Return(nil, errs.NewObjectNotFoundError("customerId", cust.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmCustomerCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	requireBusinessCode(t, err, errs.CodeCustomerNotFound)
}
