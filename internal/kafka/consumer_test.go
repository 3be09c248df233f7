package kafka

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/sku_upload/internal/kafka/mocks"
	"github.com/Gunvolt24/sku_upload/internal/usecase"
	"github.com/Gunvolt24/sku_upload/pkg/ctxmeta"
)

type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

var testReaderConfig = kafka.ReaderConfig{Topic: "cart-summaries", GroupID: "g1", Brokers: []string{"b:9092"}}

func newTestConsumer(r reader, s messageSaver) *Consumer {
	return &Consumer{
		reader: r, service: s, log: nopLogger{},
		processTimeout: 30 * time.Millisecond,
		retryInitial:   5 * time.Millisecond,
		retryMax:       10 * time.Millisecond,
		jitterRand:     rand.New(rand.NewSource(1)),
	}
}

// blockUntilCancel — второй FetchMessage ждёт отмены контекста.
func blockUntilCancel(r *mocks.Mockreader) {
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})
}

// runOnce — запускает Run, даёт обработать первое сообщение и останавливает цикл.
func runOnce(t *testing.T, c *Consumer) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

func TestRun_CommitPolicy(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantCommit bool
	}{
		{"saved -> commit", nil, true},
		{"invalid summary -> commit and skip", fmt.Errorf("%w: empty cart id", usecase.ErrInvalidCartSummary), true},
		{"store down -> no commit", errors.New("redis down"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := mocks.NewMockreader(ctrl)
			s := mocks.NewMockmessageSaver(ctrl)

			r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
			r.EXPECT().FetchMessage(gomock.Any()).
				Return(kafka.Message{Offset: 1, Value: []byte("payload")}, nil)
			s.EXPECT().SaveFromMessage(gomock.Any(), []byte("payload")).Return(tt.serviceErr)
			if tt.wantCommit {
				r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
			}
			// без EXPECT на CommitMessages лишний коммит уронит тест как unexpected call
			blockUntilCancel(r)

			runOnce(t, newTestConsumer(r, s))
		})
	}
}

// Ошибки FetchMessage ретраятся; по отмене контекста — корректный выход
func TestRun_FetchError_RetryThenStopOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{}, errors.New("broker error")).AnyTimes()

	c := newTestConsumer(r, s)

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	if err := c.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
}

// CommitMessages вернул ошибку — только предупреждение, цикл живёт дальше
func TestRun_CommitWarnOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{Offset: 3, Value: []byte("ok")}, nil)
	s.EXPECT().SaveFromMessage(gomock.Any(), []byte("ok")).Return(nil)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(errors.New("temporary"))
	blockUntilCancel(r)

	runOnce(t, newTestConsumer(r, s))
}

// Ключ и заголовок сообщения попадают в контекст обработки
func TestRun_MessageMetaInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{
		Key:     []byte("session-1"),
		Value:   []byte("ok"),
		Headers: []kafka.Header{{Key: headerRequestID, Value: []byte("req-9")}},
	}, nil)

	var gotSession, gotRequest string
	s.EXPECT().SaveFromMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []byte) error {
			gotSession, _ = ctxmeta.SessionIDFromContext(ctx)
			gotRequest, _ = ctxmeta.RequestIDFromContext(ctx)
			return nil
		})
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
	blockUntilCancel(r)

	runOnce(t, newTestConsumer(r, s))

	if gotSession != "session-1" || gotRequest != "req-9" {
		t.Fatalf("unexpected ctx meta session=%q request=%q", gotSession, gotRequest)
	}
}

// Close прокидывается в reader.Close() один раз
func TestClose_DelegatesToReaderOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().Close().Return(nil).Times(1)

	c := newTestConsumer(r, s)
	if err := c.Close(); err != nil {
		t.Fatalf("expected nil from Close, got %v", err)
	}
	_ = c.Close()
}

func TestNextBackoff_Capped(t *testing.T) {
	c := newTestConsumer(nil, nil)
	if got := c.nextBackoff(4 * time.Millisecond); got != 8*time.Millisecond {
		t.Fatalf("want 8ms, got %s", got)
	}
	if got := c.nextBackoff(8 * time.Millisecond); got != 10*time.Millisecond {
		t.Fatalf("want cap 10ms, got %s", got)
	}
}
