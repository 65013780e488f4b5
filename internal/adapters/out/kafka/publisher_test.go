package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct{ mock.Mock }

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func newOrderWithEvents(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now(),
		[]order.Line{
			{ProductID: kernel.NewUUID(), ServiceID: kernel.NewUUID(), Quantity: 1},
			{ProductID: kernel.NewUUID(), ServiceID: kernel.NewUUID(), Quantity: 4},
		})
	require.NoError(t, err)
	_, err = o.ChangeStatus(kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return o
}

func TestPublisher_Publish(t *testing.T) {
	ctx := t.Context()
	o := newOrderWithEvents(t)

	var written []kafkago.Message
	writer := new(MockWriter)
	writer.On("WriteMessages", ctx, mock.Anything).
		Run(func(args mock.Arguments) { written = args.Get(1).([]kafkago.Message) }).
		Return(nil).Once()

	err := newPublisher(writer, nil).Publish(ctx, o.DomainEvents()...)
	require.NoError(t, err)
	require.Len(t, written, 2)

	for _, msg := range written {
		assert.Equal(t, o.ID().String(), string(msg.Key))
	}

	var created Message
	require.NoError(t, json.Unmarshal(written[0].Value, &created))
	assert.Equal(t, order.EventOrderCreated, created.Type)
	assert.Equal(t, o.ID(), created.OrderID)
	assert.Equal(t, 2, created.ItemCount)
	require.NotNil(t, created.ResellerID)
	assert.Equal(t, o.ResellerID(), *created.ResellerID)
	assert.Equal(t, "event-type", written[0].Headers[0].Key)

	var changed Message
	require.NoError(t, json.Unmarshal(written[1].Value, &changed))
	assert.Equal(t, order.EventOrderStatusChanged, changed.Type)
	require.NotNil(t, changed.ToStatus)
	assert.Equal(t, o.StatusID(), *changed.ToStatus)
	assert.Nil(t, changed.ResellerID)

	writer.AssertExpectations(t)
}

func TestPublisher_Publish_NoEvents(t *testing.T) {
	writer := new(MockWriter)

	require.NoError(t, newPublisher(writer, nil).Publish(t.Context()))
	writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestPublisher_Publish_WriteError(t *testing.T) {
	ctx := t.Context()
	writer := new(MockWriter)
	writer.On("WriteMessages", ctx, mock.Anything).Return(errors.New("leader not available")).Once()

	err := newPublisher(writer, nil).Publish(ctx, newOrderWithEvents(t).DomainEvents()...)

	require.ErrorContains(t, err, "write order events: leader not available")
}

func TestNewPublisher_SplitsBrokers(t *testing.T) {
	p := NewPublisher(" kafka-1:9092, ,kafka-2:9092", "orders.changed", nil)

	w, ok := p.writer.(*kafkago.Writer)
	require.True(t, ok)
	assert.Equal(t, "orders.changed", w.Topic)
	assert.Contains(t, w.Addr.String(), "kafka-1:9092")
	assert.Contains(t, w.Addr.String(), "kafka-2:9092")
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	require.NoError(t, p.Publish(t.Context(), newOrderWithEvents(t).DomainEvents()...))
	require.NoError(t, p.Close())
}
