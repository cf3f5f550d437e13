package outbox_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/carbon-engine/internal/logger"
	"github.com/feral-file/carbon-engine/internal/mocks"
	"github.com/feral-file/carbon-engine/internal/outbox"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testRelayMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockOutboxStore
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	registry  *prometheus.Registry
	relay     outbox.Relay
}

func setupTestRelay(t *testing.T) *testRelayMocks {
	ctrl := gomock.NewController(t)
	tm := &testRelayMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockOutboxStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		registry:  prometheus.NewRegistry(),
	}
	tm.relay = outbox.NewRelay(outbox.Config{
		SubjectPrefix:   "ledger.outbox",
		BatchSize:       2,
		PollInterval:    time.Second,
		MaxAttempts:     5,
		PublishRetries:  2,
		InitialInterval: time.Millisecond,
		MaxElapsedTime:  time.Second,
	}, tm.store, tm.publisher, tm.clock, outbox.NewMetrics(tm.registry))
	return tm
}

func buildEntry(id string, kind schema.OutboxKind) schema.OutboxEvent {
	return schema.OutboxEvent{
		ID:        id,
		Kind:      kind,
		AssetKind: "token",
		AssetID:   5,
		Holder:    "0x00000000000000000000000000000000000000a1",
		Amount:    decimal.NewFromInt(10),
		Payload:   datatypes.JSON(`{"reference":"` + id + `"}`),
		DedupeKey: "key-" + id,
		Status:    schema.OutboxStatusPending,
	}
}

func TestRelay_RelayOnce_PublishesInOrder(t *testing.T) {
	tm := setupTestRelay(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	entries := []schema.OutboxEvent{
		buildEntry("01A", schema.OutboxKindIssued),
		buildEntry("01B", schema.OutboxKindRetired),
	}

	tm.store.EXPECT().ListPendingOutbox(ctx, 2).Return(entries, nil)
	gomock.InOrder(
		tm.publisher.EXPECT().Publish(ctx, "ledger.outbox.issued", "01A", []byte(`{"reference":"01A"}`)).Return(nil),
		tm.store.EXPECT().MarkOutboxPublished(ctx, "01A", now).Return(nil),
		tm.publisher.EXPECT().Publish(ctx, "ledger.outbox.retired", "01B", []byte(`{"reference":"01B"}`)).Return(nil),
		tm.store.EXPECT().MarkOutboxPublished(ctx, "01B", now).Return(nil),
	)
	tm.clock.EXPECT().Now().Return(now).Times(2)
	tm.store.EXPECT().CountOutboxByStatus(ctx).Return(map[schema.OutboxStatus]int64{
		schema.OutboxStatusPublished: 2,
	}, nil)

	read, err := tm.relay.RelayOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, read)

	assert.Equal(t, float64(1), counterValue(t, tm.registry, "issued", "published"))
	assert.Equal(t, float64(1), counterValue(t, tm.registry, "retired", "published"))
}

func TestRelay_RelayOnce_RecordsFailedAttempt(t *testing.T) {
	tm := setupTestRelay(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	entry := buildEntry("01C", schema.OutboxKindTransferred)

	tm.store.EXPECT().ListPendingOutbox(ctx, 2).Return([]schema.OutboxEvent{entry}, nil)
	// First try plus two retries
	tm.publisher.EXPECT().
		Publish(ctx, "ledger.outbox.transferred", "01C", gomock.Any()).
		Return(errors.New("nats: timeout")).
		Times(3)
	tm.store.EXPECT().MarkOutboxAttemptFailed(ctx, "01C", "nats: timeout", 5).Return(nil)
	tm.store.EXPECT().CountOutboxByStatus(ctx).Return(map[schema.OutboxStatus]int64{schema.OutboxStatusPending: 1}, nil)

	read, err := tm.relay.RelayOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, read)
	assert.Equal(t, float64(1), counterValue(t, tm.registry, "transferred", "failed"))
}

func TestRelay_RelayOnce_RecoversWithinRetries(t *testing.T) {
	tm := setupTestRelay(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Now()
	entry := buildEntry("01D", schema.OutboxKindIssued)

	tm.store.EXPECT().ListPendingOutbox(ctx, 2).Return([]schema.OutboxEvent{entry}, nil)
	gomock.InOrder(
		tm.publisher.EXPECT().Publish(ctx, gomock.Any(), "01D", gomock.Any()).Return(errors.New("nats: no responders")),
		tm.publisher.EXPECT().Publish(ctx, gomock.Any(), "01D", gomock.Any()).Return(nil),
	)
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().MarkOutboxPublished(ctx, "01D", now).Return(nil)
	tm.store.EXPECT().CountOutboxByStatus(ctx).Return(map[schema.OutboxStatus]int64{}, nil)

	_, err := tm.relay.RelayOnce(ctx)
	require.NoError(t, err)
}

func TestRelay_RelayOnce_StoreErrors(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		tm := setupTestRelay(t)
		defer tm.ctrl.Finish()

		tm.store.EXPECT().ListPendingOutbox(gomock.Any(), 2).Return(nil, errors.New("connection reset"))

		_, err := tm.relay.RelayOnce(context.Background())
		require.Error(t, err)
	})

	t.Run("mark published", func(t *testing.T) {
		tm := setupTestRelay(t)
		defer tm.ctrl.Finish()

		tm.store.EXPECT().ListPendingOutbox(gomock.Any(), 2).Return([]schema.OutboxEvent{
			buildEntry("01E", schema.OutboxKindIssued),
			buildEntry("01F", schema.OutboxKindIssued),
		}, nil)
		tm.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), "01E", gomock.Any()).Return(nil)
		tm.clock.EXPECT().Now().Return(time.Now())
		tm.store.EXPECT().MarkOutboxPublished(gomock.Any(), "01E", gomock.Any()).Return(errors.New("connection reset"))

		read, err := tm.relay.RelayOnce(context.Background())
		require.Error(t, err)
		assert.Equal(t, 0, read)
	})
}

func TestRelay_StartStop(t *testing.T) {
	tm := setupTestRelay(t)
	defer tm.ctrl.Finish()

	var never <-chan time.Time = make(chan time.Time)
	cycled := make(chan struct{}, 1)

	tm.store.EXPECT().ListPendingOutbox(gomock.Any(), 2).Return(nil, nil).MinTimes(1)
	tm.store.EXPECT().CountOutboxByStatus(gomock.Any()).Return(map[schema.OutboxStatus]int64{}, nil).MinTimes(1)
	tm.clock.EXPECT().After(time.Second).DoAndReturn(func(time.Duration) <-chan time.Time {
		select {
		case cycled <- struct{}{}:
		default:
		}
		return never
	}).MinTimes(1)

	done := make(chan error, 1)
	go func() {
		done <- tm.relay.Start(context.Background())
	}()

	select {
	case <-cycled:
	case <-time.After(5 * time.Second):
		t.Fatal("relay did not run a cycle")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, tm.relay.Stop(ctx))
	require.NoError(t, <-done)
	assert.Equal(t, "outbox-relay", tm.relay.Name())
}

func counterValue(t *testing.T, reg *prometheus.Registry, kind, outcome string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != "carbon_engine_outbox_publish_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["kind"] == kind && labels["outcome"] == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}
