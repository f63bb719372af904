package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddressHandler() (commands.UpsertAddressCommandHandler, *MockAddressUoW, *MockAddressUoWFactory) {
	uow := &MockAddressUoW{addresses: new(MockAddressRepository)}
	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Maybe()
	return commands.NewUpsertAddressCommandHandler(factory), uow, factory
}

func TestUpsertAddressCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	h, uow, _ := newAddressHandler()

	stored, err := address.RestoreAddress(3, userID, "Taro", "Japan", "150-0001", "Shibuya")
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.addresses.On("Upsert", ctx, mock.MatchedBy(func(a *address.Address) bool {
			return a.UserID().IsEqual(userID) && a.Line() == "Shibuya"
		})).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewUpsertAddressCommand(userID, "Taro", "Japan", "150-0001", "Shibuya")
	require.NoError(t, err)

	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID())
	uow.AssertExpectations(t)
	uow.addresses.AssertExpectations(t)
}

func TestUpsertAddressCommandHandler_Handle_InvalidFieldsNeverOpenATransaction(t *testing.T) {
	h, _, factory := newAddressHandler()

	cmd, err := commands.NewUpsertAddressCommand(kernel.NewUUID(), "", "Japan", "", "Shibuya")
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestUpsertAddressCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	h, uow, _ := newAddressHandler()
	repoErr := errors.New("insert addresses failed")

	uow.On("Begin", ctx).Return(nil).Once()
	uow.addresses.On("Upsert", ctx, mock.Anything).Return(nil, repoErr).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewUpsertAddressCommand(kernel.NewUUID(), "Taro", "Japan", "150-0001", "Shibuya")
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, repoErr)
	uow.AssertExpectations(t)
}

func TestNewUpsertAddressCommand_RequiresUser(t *testing.T) {
	_, err := commands.NewUpsertAddressCommand(kernel.UUID{}, "a", "b", "c", "d")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	assert.ErrorIs(t, commands.UpsertAddressCommand{}.Validate(), commands.ErrUpsertAddressCommandIsNotConstructed)
}
