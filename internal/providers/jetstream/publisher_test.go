package jetstream_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iryswiki/iryswiki/internal/adapter"
	"github.com/iryswiki/iryswiki/internal/domain"
	"github.com/iryswiki/iryswiki/internal/mocks"
	jsprovider "github.com/iryswiki/iryswiki/internal/providers/jetstream"
)

func TestPublisher(t *testing.T) {
	ctx := context.Background()
	event := &domain.ContentEvent{
		Type:            domain.ContentEventThreadCreated,
		Action:          domain.ActionThread,
		ID:              "thread-1",
		Author:          "0xabc",
		TransactionHash: "0xdef",
		Timestamp:       1,
	}

	t.Run("publishes to content subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		natsJS := mocks.NewMockNatsJetStream(ctrl)
		conn := mocks.NewMockNatsConn(ctrl)
		js := mocks.NewMockJetStream(ctrl)

		natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(conn, js, nil)
		js.EXPECT().
			Publish(ctx, "iryswiki.content.thread_created", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
				assert.Contains(t, string(data), `"transaction_hash":"0xdef"`)
				return &jetstream.PubAck{Stream: "IRYSWIKI", Sequence: 1}, nil
			})
		conn.EXPECT().Close()

		pub, err := jsprovider.NewPublisher(jsprovider.Config{URL: "nats://localhost:4222"}, natsJS, adapter.NewJSON())
		require.NoError(t, err)
		require.NoError(t, pub.PublishEvent(ctx, event))
		pub.Close()
	})

	t.Run("publish failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		natsJS := mocks.NewMockNatsJetStream(ctrl)
		js := mocks.NewMockJetStream(ctrl)

		natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mocks.NewMockNatsConn(ctrl), js, nil)
		js.EXPECT().Publish(gomock.Any(), "custom.content.thread_created", gomock.Any()).Return(nil, errors.New("no responders"))

		pub, err := jsprovider.NewPublisher(jsprovider.Config{SubjectPrefix: "custom"}, natsJS, adapter.NewJSON())
		require.NoError(t, err)
		assert.ErrorContains(t, pub.PublishEvent(ctx, event), "no responders")
	})

	t.Run("connect failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		natsJS := mocks.NewMockNatsJetStream(ctrl)
		natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("connection refused"))

		_, err := jsprovider.NewPublisher(jsprovider.Config{}, natsJS, adapter.NewJSON())
		assert.Error(t, err)
	})
}
