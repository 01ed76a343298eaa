package commands_test

import (
	"errors"
	"testing"

	"ecofleet/internal/core/application/usecases/commands"
	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/core/ports"
	"ecofleet/internal/pkg/errs"
	"ecofleet/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const opsRecipient = "operacoes@ecofleet.local"

func newEmailHandler(
	repo *MockOrderRepository, mailer *MockMailer, recorder *metrics.Recorder,
) commands.SendDeliveryStatusEmailCommandHandler {
	return commands.NewSendDeliveryStatusEmailCommandHandler(repo, mailer, opsRecipient, recorder, discardLogger())
}

func TestSendDeliveryStatusEmailCommandHandler_Handle_Sent(t *testing.T) {
	ctx := testContext(t)
	o := newStoredOrder(t, order.InTransit, nil)
	cmd, err := commands.NewSendDeliveryStatusEmailCommand(o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	mailer := new(MockMailer)
	recorder := metrics.New(false)
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	mailer.On("Send", ctx, ports.Email{
		To:      []string{opsRecipient},
		Subject: "Atualizacao de entrega",
		Body:    "Pedido #" + o.ID().String() + " para Mercado Bom Preco mudou para status: Em transito.",
	}).Return(nil).Once()

	h := newEmailHandler(repo, mailer, recorder)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.EmailSent, result)
	mailer.AssertExpectations(t)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.EmailTasks.WithLabelValues(metrics.EmailSent)), 0)
}

func TestSendDeliveryStatusEmailCommandHandler_Handle_UsesCurrentState(t *testing.T) {
	ctx := testContext(t)
	o := newStoredOrder(t, order.Delivered, nil)
	cmd, err := commands.NewSendDeliveryStatusEmailCommand(o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	mailer := new(MockMailer)
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	mailer.On("Send", ctx, mock.MatchedBy(func(e ports.Email) bool {
		return assert.ObjectsAreEqual("Pedido #"+o.ID().String()+" para Mercado Bom Preco mudou para status: Entregue.", e.Body)
	})).Return(nil).Once()

	h := newEmailHandler(repo, mailer, nil)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.EmailSent, result)
	mailer.AssertExpectations(t)
}

func TestSendDeliveryStatusEmailCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := testContext(t)
	id := kernel.NewUUID()
	cmd, err := commands.NewSendDeliveryStatusEmailCommand(id)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	mailer := new(MockMailer)
	recorder := metrics.New(false)
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

	h := newEmailHandler(repo, mailer, recorder)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.EmailNotFound, result)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.EmailTasks.WithLabelValues(metrics.EmailNotFound)), 0)
}

func TestSendDeliveryStatusEmailCommandHandler_Handle_TransportFailureIsSwallowed(t *testing.T) {
	ctx := testContext(t)
	o := newStoredOrder(t, order.InTransit, nil)
	cmd, err := commands.NewSendDeliveryStatusEmailCommand(o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	mailer := new(MockMailer)
	recorder := metrics.New(false)
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	mailer.On("Send", ctx, mock.Anything).Return(errors.New("connection refused")).Once()

	h := newEmailHandler(repo, mailer, recorder)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.EmailFailed, result)
	mailer.AssertNumberOfCalls(t, "Send", 1)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.EmailTasks.WithLabelValues(metrics.EmailFailed)), 0)
}

func TestSendDeliveryStatusEmailCommandHandler_Handle_StorageErrorIsReturned(t *testing.T) {
	ctx := testContext(t)
	id := kernel.NewUUID()
	cmd, err := commands.NewSendDeliveryStatusEmailCommand(id)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, id).Return(nil, errors.New("connection reset")).Once()

	h := newEmailHandler(repo, new(MockMailer), nil)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestNewSendDeliveryStatusEmailCommand_ZeroID(t *testing.T) {
	_, err := commands.NewSendDeliveryStatusEmailCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
