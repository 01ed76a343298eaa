package commands_test

import (
	"testing"

	"ecofleet/internal/core/application/usecases/commands"
	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/notification"
	"ecofleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkNotificationsReadCommandHandler_Handle_All(t *testing.T) {
	ctx := testContext(t)
	userID := kernel.NewUUID()
	repo := new(MockNotificationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("MarkAllRead", ctx, userID).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	cmd, err := commands.NewMarkNotificationsReadCommand(userID, nil)
	require.NoError(t, err)

	h := commands.NewMarkNotificationsReadCommandHandler(notificationUoWFactory{uow: uow})
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
	uow.AssertExpectations(t)
}

func TestMarkNotificationsReadCommandHandler_Handle_One(t *testing.T) {
	userID := kernel.NewUUID()

	t.Run("unread becomes read", func(t *testing.T) {
		ctx := testContext(t)
		n, err := notification.NewNotification(kernel.NewUUID(), userID, nil, "t", "b")
		require.NoError(t, err)
		id := n.ID()

		repo := new(MockNotificationRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("NotificationRepository").Return(repo).Once()
		repo.On("Get", ctx, id).Return(n, nil).Once()
		repo.On("Update", ctx, n).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		cmd, err := commands.NewMarkNotificationsReadCommand(userID, &id)
		require.NoError(t, err)

		h := commands.NewMarkNotificationsReadCommandHandler(notificationUoWFactory{uow: uow})
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(1), updated)
		assert.True(t, n.IsRead())
		repo.AssertExpectations(t)
	})

	t.Run("already read is a no-op", func(t *testing.T) {
		ctx := testContext(t)
		n, err := notification.NewNotification(kernel.NewUUID(), userID, nil, "t", "b")
		require.NoError(t, err)
		n.MarkRead()
		id := n.ID()

		repo := new(MockNotificationRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("NotificationRepository").Return(repo).Once()
		repo.On("Get", ctx, id).Return(n, nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		cmd, err := commands.NewMarkNotificationsReadCommand(userID, &id)
		require.NoError(t, err)

		h := commands.NewMarkNotificationsReadCommandHandler(notificationUoWFactory{uow: uow})
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Zero(t, updated)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("foreign notification is not found", func(t *testing.T) {
		ctx := testContext(t)
		n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), nil, "t", "b")
		require.NoError(t, err)
		id := n.ID()

		repo := new(MockNotificationRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("NotificationRepository").Return(repo).Once()
		repo.On("Get", ctx, id).Return(n, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		cmd, err := commands.NewMarkNotificationsReadCommand(userID, &id)
		require.NoError(t, err)

		h := commands.NewMarkNotificationsReadCommandHandler(notificationUoWFactory{uow: uow})
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.False(t, n.IsRead())
	})
}
