package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"padrino-pay/internal/domain"
	"padrino-pay/internal/infrastructure/backend"
	"padrino-pay/internal/infrastructure/events"
	"padrino-pay/internal/repo"
	"padrino-pay/internal/screen"
	"padrino-pay/internal/session"
	"padrino-pay/internal/worker"
)

// Backend is the part of the backend API the payment workflows call.
type Backend interface {
	GetDog(ctx context.Context, id int64) (domain.DogSummary, error)
	GenerateDogWithAccessory(ctx context.Context, dog domain.DogSummary, accessory domain.AccessoryDescriptor) (*backend.GenerateImageResult, error)
	CreateDonation(ctx context.Context, donation domain.Donation) (*domain.Donation, error)
	UpdateDogStats(ctx context.Context, id int64, category string) error
}

// Dispatcher takes best-effort jobs off the request path.
type Dispatcher interface {
	Enqueue(job worker.Job) bool
}

type PaymentService interface {
	// Submit runs the workflow selected by the context type. It never returns
	// an error: failures are reported in the Outcome.
	Submit(ctx context.Context, sess session.Session, pc domain.PaymentContext) Outcome
}

// Outcome is the terminal state of one submission. Progress lists the labels
// the submit control went through.
type Outcome struct {
	Progress []string
	Success  *screen.SuccessView
	Err      error
	Alert    string
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

// LastStep is the last progress label reached, empty when none was.
func (o Outcome) LastStep() string {
	if len(o.Progress) == 0 {
		return ""
	}
	return o.Progress[len(o.Progress)-1]
}

type Option func(*paymentService)

// WithClock replaces time.Now, which transaction ids and events are stamped with.
func WithClock(now func() time.Time) Option {
	return func(s *paymentService) {
		s.now = now
	}
}

type paymentService struct {
	backend       Backend
	accessoryRepo repo.AccessoryRepo
	dispatcher    Dispatcher
	publisher     events.Publisher
	logger        *zap.Logger
	now           func() time.Time
}

func NewPaymentService(
	backend Backend,
	accessoryRepo repo.AccessoryRepo,
	dispatcher Dispatcher,
	publisher events.Publisher,
	logger *zap.Logger,
	opts ...Option,
) PaymentService {
	s := &paymentService{
		backend:       backend,
		accessoryRepo: accessoryRepo,
		dispatcher:    dispatcher,
		publisher:     publisher,
		logger:        logger,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *paymentService) Submit(ctx context.Context, sess session.Session, pc domain.PaymentContext) Outcome {
	st := &state{sess: sess, pc: pc}
	if pc.IsAccessory() {
		return s.run(ctx, s.accessoryFlow(), st)
	}
	return s.run(ctx, s.needFlow(), st)
}

// run executes the steps of f in order and stops at the first error.
func (s *paymentService) run(ctx context.Context, f flow, st *state) Outcome {
	logger := s.logger.With(
		zap.String("flow", f.name),
		zap.String("user_id", st.sess.UserID),
		zap.String("dog_id", st.pc.DogID),
	)
	logger.Info("Payment started", zap.String("price", st.pc.Price), zap.Bool("simulated_user", st.sess.Simulated))

	var out Outcome
	for _, step := range f.steps {
		if step.label != "" {
			out.Progress = append(out.Progress, step.label)
		}
		if err := step.run(ctx, st); err != nil {
			logger.Error("Payment failed", zap.String("step", step.name), zap.Error(err))
			out.Err = err
			out.Alert = f.alert(err)
			return out
		}
	}

	for _, job := range f.followUps(st) {
		if !s.dispatcher.Enqueue(job) {
			logger.Warn("Follow-up dropped", zap.String("job", job.Name))
		}
	}

	view := f.success(st)
	out.Success = &view
	logger.Info("Payment completed", zap.String("redirect", view.Navigation.Path))
	return out
}

func (s *paymentService) publishJob(event domain.PaymentEvent) worker.Job {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return worker.Job{
		Name: "publish-" + string(event.Kind),
		Run: func(ctx context.Context) error {
			return s.publisher.Publish(ctx, event)
		},
	}
}
