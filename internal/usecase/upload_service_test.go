package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/Gunvolt24/sku_upload/internal/domain"
	"github.com/Gunvolt24/sku_upload/internal/ports/mocks"
	"github.com/Gunvolt24/sku_upload/internal/usecase"
	"github.com/Gunvolt24/sku_upload/pkg/validate"
	"github.com/golang/mock/gomock"
)

type serviceDeps struct {
	remote    *mocks.MockRemoteValidator
	submitter *mocks.MockCartSubmitter
	carts     *mocks.MockCartIDProvider
	runs      *mocks.MockRunRepository
	notifier  *mocks.MockCompletionNotifier
}

func newService(t *testing.T) (*usecase.UploadService, serviceDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := serviceDeps{
		remote:    mocks.NewMockRemoteValidator(ctrl),
		submitter: mocks.NewMockCartSubmitter(ctrl),
		carts:     mocks.NewMockCartIDProvider(ctrl),
		runs:      mocks.NewMockRunRepository(ctrl),
		notifier:  mocks.NewMockCompletionNotifier(ctrl),
	}
	svc := usecase.NewUploadService(validate.NewCSVValidator(),
		deps.remote, deps.submitter, deps.carts, deps.runs, deps.notifier, noopLogger{})
	return svc, deps
}

func csvFile(body string) domain.UploadFile {
	return domain.UploadFile{Name: "items.csv", MediaType: "text/csv", Body: strings.NewReader(body)}
}

func TestProcess_EmptySession(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Process(context.Background(), "  ", csvFile("SKU,Quantity\nA1,1\n"))
	if !errors.Is(err, usecase.ErrSessionRequired) {
		t.Fatalf("want ErrSessionRequired, got %v", err)
	}
}

func TestProcess_UnsupportedFileType(t *testing.T) {
	svc, deps := newService(t)
	deps.remote.EXPECT().ValidateCSV(gomock.Any(), gomock.Any()).Times(0)
	deps.runs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	file := domain.UploadFile{Name: "items.xlsx", MediaType: "application/vnd.ms-excel", Body: strings.NewReader("SKU,Quantity\nA1,1")}
	run, err := svc.Process(context.Background(), sessionID, file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Status != domain.RunRejected || len(run.Result.Errors) != 1 ||
		run.Result.Errors[0].Reason != domain.ReasonFileNotSupported || len(run.Result.ParsedRows) != 0 {
		t.Fatalf("unexpected run: %+v", run)
	}
	if run.Completion.Severity != domain.SeverityError || run.Completion.Title != usecase.TitleFailed {
		t.Fatalf("unexpected completion: %+v", run.Completion)
	}
	if svc.Processing(sessionID) {
		t.Fatal("processing flag must be cleared")
	}
}

func TestProcess_UnreadableBody(t *testing.T) {
	svc, deps := newService(t)
	deps.runs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	file := domain.UploadFile{Name: "items.csv", Body: iotest.ErrReader(errors.New("disk gone"))}
	run, err := svc.Process(context.Background(), sessionID, file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Status != domain.RunRejected || run.Result.Errors[0].Kind != domain.KindUnreadableFile ||
		run.Result.Errors[0].Reason != domain.ReasonFailedToRead {
		t.Fatalf("unexpected run: %+v", run.Result)
	}
}

func TestProcess_SuccessNotifiesOnceAndSaves(t *testing.T) {
	svc, deps := newService(t)
	body := "SKU,Quantity\nA1,5\n"

	var saved *domain.Run
	gomock.InOrder(
		deps.remote.EXPECT().ValidateCSV(gomock.Any(), body).Return(&domain.RemoteValidation{FilteredCSV: strPtr(body)}, nil),
		deps.carts.EXPECT().CartID(gomock.Any(), sessionID).Return(cartID, true),
		deps.submitter.EXPECT().AddItems(gomock.Any(), cartID, body).Return(&domain.SubmissionResponse{Success: true}, nil),
		deps.runs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.Run) error {
			saved = r
			return nil
		}),
		deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(1),
	)

	run, err := svc.Process(context.Background(), sessionID, csvFile(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != run || run.ID == "" || run.SessionID != sessionID || run.FileName != "items.csv" {
		t.Fatalf("unexpected saved run: %+v", saved)
	}
	if run.Status != domain.RunCompleted || run.Completion.Severity != domain.SeveritySuccess ||
		run.Completion.Title != usecase.TitleComplete {
		t.Fatalf("unexpected run: status=%s completion=%+v", run.Status, run.Completion)
	}
	if run.FinishedAt.Before(run.StartedAt) {
		t.Fatalf("finished before start: %v < %v", run.FinishedAt, run.StartedAt)
	}
}

func TestProcess_RemoteFailureIsErrorSeverity(t *testing.T) {
	svc, deps := newService(t)
	deps.remote.EXPECT().ValidateCSV(gomock.Any(), gomock.Any()).Return(nil, detailErr{msg: "timeout"})
	deps.runs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	run, err := svc.Process(context.Background(), sessionID, csvFile("SKU,Quantity\nA1,5\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Status != domain.RunFailed || run.Completion.Severity != domain.SeverityError ||
		run.Completion.Message != "Validation error: timeout" {
		t.Fatalf("unexpected run: status=%s completion=%+v", run.Status, run.Completion)
	}
}

func TestProcess_SaveFailureStillNotifies(t *testing.T) {
	svc, deps := newService(t)
	dbErr := errors.New("db down")
	deps.remote.EXPECT().ValidateCSV(gomock.Any(), gomock.Any()).Return(&domain.RemoteValidation{}, nil)
	deps.carts.EXPECT().CartID(gomock.Any(), sessionID).Return("", false)
	deps.runs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(dbErr)
	deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	run, err := svc.Process(context.Background(), sessionID, csvFile("SKU,Quantity\nA1,5\n"))
	if !errors.Is(err, dbErr) {
		t.Fatalf("want wrapped db error, got %v", err)
	}
	if run == nil || run.Status != domain.RunCompleted {
		t.Fatalf("run must be returned, got %+v", run)
	}
}

func TestProcess_NotifyFailureIsNotReturned(t *testing.T) {
	svc, deps := newService(t)
	deps.runs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

	_, err := svc.Process(context.Background(), sessionID, csvFile(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcess_ProcessingFlagDuringRun(t *testing.T) {
	svc, deps := newService(t)
	var during bool
	deps.remote.EXPECT().ValidateCSV(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (*domain.RemoteValidation, error) {
			during = svc.Processing(sessionID)
			return nil, errors.New("boom")
		})
	deps.runs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	if _, err := svc.Process(context.Background(), sessionID, csvFile("SKU,Quantity\nA1,5\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !during {
		t.Fatal("processing flag must be set while the run is in flight")
	}
	if svc.Processing(sessionID) {
		t.Fatal("processing flag must be cleared after the run")
	}
}

func TestProcess_NewerRunSupersedesOlder(t *testing.T) {
	svc, deps := newService(t)
	started := make(chan struct{})

	deps.remote.EXPECT().ValidateCSV(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (*domain.RemoteValidation, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		})
	// сохраняется только новый прогон, уведомления приходят оба
	deps.runs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	type outcome struct {
		run *domain.Run
		err error
	}
	older := make(chan outcome, 1)
	go func() {
		run, err := svc.Process(context.Background(), sessionID, csvFile("SKU,Quantity\nA1,5\n"))
		older <- outcome{run: run, err: err}
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("older run did not reach remote validation")
	}

	newer, err := svc.Process(context.Background(), sessionID, csvFile(""))
	if err != nil || newer.Status != domain.RunRejected {
		t.Fatalf("newer run: status=%v err=%v", newer, err)
	}

	var got outcome
	select {
	case got = <-older:
	case <-time.After(2 * time.Second):
		t.Fatal("older run was not cancelled")
	}
	if !errors.Is(got.err, usecase.ErrRunSuperseded) {
		t.Fatalf("want ErrRunSuperseded, got %v", got.err)
	}
	if got.run.Status != domain.RunSuperseded || got.run.Completion.Title != usecase.TitleCancelled ||
		got.run.Completion.Severity != domain.SeverityWarning {
		t.Fatalf("unexpected superseded run: %+v", got.run)
	}
	if svc.Processing(sessionID) {
		t.Fatal("processing flag must be cleared")
	}
}

func TestGetRun_RepoError(t *testing.T) {
	svc, deps := newService(t)
	repoErr := errors.New("db down")
	deps.runs.EXPECT().GetByID(gomock.Any(), "run-1").Return(nil, repoErr)

	if _, err := svc.GetRun(context.Background(), "run-1"); !errors.Is(err, repoErr) {
		t.Fatalf("want repo error, got %v", err)
	}
}

func TestRunsBySession_Proxy(t *testing.T) {
	svc, deps := newService(t)
	want := []*domain.Run{{ID: "run-2"}, {ID: "run-1"}}
	deps.runs.EXPECT().ListBySession(gomock.Any(), sessionID, 10, 5).Return(want, nil)

	got, err := svc.RunsBySession(context.Background(), sessionID, 10, 5)
	if err != nil || len(got) != 2 || got[0].ID != "run-2" {
		t.Fatalf("unexpected result: %v %v", got, err)
	}
}
