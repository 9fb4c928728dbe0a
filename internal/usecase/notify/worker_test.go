//go:build unit

package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domres "branch-reservations/internal/domain/reservation"
	"branch-reservations/internal/pkg/clock"
	"branch-reservations/internal/pkg/config"
	"branch-reservations/internal/usecase/notify"
	"branch-reservations/internal/usecase/queries"
	"branch-reservations/internal/usecase/shared"
	"branch-reservations/tests/common/builder"
	"branch-reservations/tests/common/fakeuow"
	notifymock "branch-reservations/tests/mock/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WorkerTestSuite struct {
	suite.Suite
	ctx        context.Context
	uow        *fakeuow.UoW
	clock      *clock.MockClock
	mockCtrl   *gomock.Controller
	mailer     *notifymock.MockMailer
	branches   *notifymock.MockBranchDirectory
	dispatcher notify.Dispatcher
	worker     *notify.Worker
}

func (s *WorkerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.uow = fakeuow.New()
	s.clock = clock.NewMockClock(builder.FixedNow)
	s.mockCtrl = gomock.NewController(s.T())
	s.mailer = notifymock.NewMockMailer(s.mockCtrl)
	s.branches = notifymock.NewMockBranchDirectory(s.mockCtrl)
	s.dispatcher = notify.NewOutboxDispatcher(s.uow, s.clock)
	s.worker = notify.NewWorker(s.uow, s.mailer, s.branches, notify.NewRenderer(), s.clock, config.NotifyConfig{
		PollInterval: 10 * time.Millisecond,
		BatchSize:    10,
		MaxAttempts:  3,
		BaseBackoff:  time.Second,
	})
}

func (s *WorkerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWorkerSuite(t *testing.T) {
	suite.Run(t, new(WorkerTestSuite))
}

func (s *WorkerTestSuite) enqueue(kind notify.Kind) uuid.UUID {
	snap := builder.NewReservationBuilder().WithStatus(domres.StatusAwaitingPickup).BuildSnapshot()
	s.dispatcher.Dispatch(s.ctx, notify.Intent{Kind: kind, Reservation: snap})
	jobs := s.uow.Jobs()
	s.Require().NotEmpty(jobs)
	return jobs[len(jobs)-1].ID
}

func (s *WorkerTestSuite) job(id uuid.UUID) shared.NotificationJob {
	j, ok := s.uow.Job(id)
	s.Require().True(ok)
	return j
}

func (s *WorkerTestSuite) TestConfirmationSent() {
	id := s.enqueue(notify.KindConfirmation)

	s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg notify.Message) error {
		s.Equal("juan@example.com", msg.To)
		s.Equal("Confirmación de reserva #1", msg.Subject)
		s.Contains(msg.HTMLBody, "Juan Perez")
		s.Contains(msg.HTMLBody, "500.00")
		return nil
	})

	sent, err := s.worker.ProcessOnce(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, sent)
	s.Equal(shared.JobStatusSent, s.job(id).Status)

	// nothing left to claim
	sent, err = s.worker.ProcessOnce(s.ctx)
	s.Require().NoError(err)
	s.Zero(sent)
}

func (s *WorkerTestSuite) TestPickupReadyUsesBranchDirectory() {
	s.enqueue(notify.KindPickupReady)

	s.branches.EXPECT().FindBranch(gomock.Any(), "Norte").Return(&queries.BranchView{
		Name:    "Norte",
		Address: "Av. Libertador 5000",
		Hours:   "Lun a Sab 10 a 20",
	}, nil)
	s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg notify.Message) error {
		s.Equal("Tu reserva #1 está lista para retirar", msg.Subject)
		s.Contains(msg.HTMLBody, "Av. Libertador 5000")
		s.Contains(msg.HTMLBody, "Lun a Sab 10 a 20")
		// missing phone falls back
		s.Contains(msg.HTMLBody, "Teléfono: -")
		return nil
	})

	sent, err := s.worker.ProcessOnce(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, sent)
}

func (s *WorkerTestSuite) TestPickupReadyUnknownBranchUsesPlaceholder() {
	s.enqueue(notify.KindPickupReady)

	s.branches.EXPECT().FindBranch(gomock.Any(), "Norte").Return(nil, errors.New("branch not found"))
	s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg notify.Message) error {
		s.Contains(msg.HTMLBody, "Horario habitual de atención")
		return nil
	})

	_, err := s.worker.ProcessOnce(s.ctx)

	s.Require().NoError(err)
}

func (s *WorkerTestSuite) TestFailedDeliveryBacksOffThenDies() {
	id := s.enqueue(notify.KindConfirmation)
	smtpDown := errors.New("dial tcp: connection refused")

	s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(smtpDown).Times(3)

	_, err := s.worker.ProcessOnce(s.ctx)
	s.Require().NoError(err)
	j := s.job(id)
	s.Equal(shared.JobStatusFailed, j.Status)
	s.Equal(int32(1), j.Attempts)
	s.Equal(builder.FixedNow.Add(time.Second), j.RunAt)
	s.Equal(smtpDown.Error(), j.LastError)

	// not due yet
	_, err = s.worker.ProcessOnce(s.ctx)
	s.Require().NoError(err)

	s.clock.Add(time.Second)
	_, err = s.worker.ProcessOnce(s.ctx)
	s.Require().NoError(err)
	j = s.job(id)
	s.Equal(int32(2), j.Attempts)
	s.Equal(s.clock.Now().Add(2*time.Second), j.RunAt)

	s.clock.Add(2 * time.Second)
	_, err = s.worker.ProcessOnce(s.ctx)
	s.Require().NoError(err)
	j = s.job(id)
	s.Equal(shared.JobStatusDead, j.Status)
	s.Equal(int32(3), j.Attempts)
}

func (s *WorkerTestSuite) TestRecordingFailureDoesNotResendBatch() {
	for _, id := range []int64{1, 2} {
		snap := builder.NewReservationBuilder().WithID(id).BuildSnapshot()
		s.dispatcher.Dispatch(s.ctx, notify.Intent{Kind: notify.KindConfirmation, Reservation: snap})
	}
	s.uow.FailMarkSent = 2

	delivered := map[string]int{}
	s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg notify.Message) error {
		delivered[msg.Subject]++
		return nil
	}).Times(2)

	sent, err := s.worker.ProcessOnce(s.ctx)
	s.Require().Error(err)
	s.Equal(2, sent)

	sent, err = s.worker.ProcessOnce(s.ctx)
	s.Require().NoError(err)
	s.Zero(sent)

	s.Equal(map[string]int{
		"Confirmación de reserva #1": 1,
		"Confirmación de reserva #2": 1,
	}, delivered)

	statuses := map[string]int{}
	for _, j := range s.uow.Jobs() {
		statuses[j.Status]++
	}
	s.Equal(map[string]int{shared.JobStatusSent: 1, shared.JobStatusSending: 1}, statuses)
}

func (s *WorkerTestSuite) TestExpiredClaimIsRetried() {
	id := s.enqueue(notify.KindConfirmation)
	s.uow.FailMarkSent = 1

	s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := s.worker.ProcessOnce(s.ctx)
	s.Require().Error(err)
	s.Equal(builder.FixedNow.Add(5*time.Minute), s.job(id).RunAt)

	s.clock.Add(5 * time.Minute)
	sent, err := s.worker.ProcessOnce(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, sent)
	s.Equal(shared.JobStatusSent, s.job(id).Status)
}

func (s *WorkerTestSuite) TestUndeliverableJobsAreBuried() {
	tests := []struct {
		name string
		job  shared.NotificationJob
	}{
		{
			name: "payload is not json",
			job:  shared.NotificationJob{Kind: string(notify.KindConfirmation), Payload: []byte("{broken"), RunAt: builder.FixedNow},
		},
		{
			name: "unknown kind",
			job:  shared.NotificationJob{Kind: "reservation.survey", Payload: []byte(`{"reservation_id":1}`), RunAt: builder.FixedNow},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.job.ID = uuid.New()
			s.uow.PutJob(tt.job)

			sent, err := s.worker.ProcessOnce(s.ctx)

			s.Require().NoError(err)
			s.Zero(sent)
			j := s.job(tt.job.ID)
			s.Equal(shared.JobStatusDead, j.Status)
			s.Equal(int32(1), j.Attempts)
			s.NotEmpty(j.LastError)
		})
	}
}

func (s *WorkerTestSuite) TestRunStopsOnCancel() {
	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan struct{})

	go func() {
		s.worker.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("worker did not stop")
	}
}
