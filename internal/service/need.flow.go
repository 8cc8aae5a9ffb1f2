package service

import (
	"context"
	"fmt"

	"padrino-pay/internal/domain"
	"padrino-pay/internal/screen"
	"padrino-pay/internal/worker"
)

const donationFailedAlert = "Error al procesar la donacion. Por favor intenta de nuevo."

func (s *paymentService) needFlow() flow {
	return flow{
		name: "need",
		steps: []step{
			{name: "build-donation", label: "Procesando...", run: s.buildDonation},
			{name: "create-donation", run: s.createDonation},
		},
		followUps: s.needFollowUps,
		success:   needSuccess,
		alert: func(error) string {
			return donationFailedAlert
		},
	}
}

// transactionID derives the client-side transaction id from the clock.
func (s *paymentService) transactionID() string {
	return fmt.Sprintf("TXN-%d", s.now().UnixMilli())
}

func (s *paymentService) buildDonation(_ context.Context, st *state) error {
	st.dogID = parseID(st.pc.DogID)
	if st.dogID == 0 {
		return domain.ErrInvalidDogID
	}
	price, err := domain.ParseAmount(st.pc.Price)
	if err != nil {
		return err
	}
	st.price = price

	st.donation = &domain.Donation{
		SponsorID:     st.sess.UserID,
		DogID:         st.dogID,
		NeedID:        parseOptionalID(st.pc.NeedID),
		Price:         price,
		TransactionID: s.transactionID(),
		State:         domain.DonationCompleted,
	}
	return nil
}

func (s *paymentService) createDonation(ctx context.Context, st *state) error {
	created, err := s.backend.CreateDonation(ctx, *st.donation)
	if err != nil {
		return fmt.Errorf("create donation %s: %w", st.donation.TransactionID, err)
	}
	if created != nil {
		st.donation = created
	}
	return nil
}

func (s *paymentService) needFollowUps(st *state) []worker.Job {
	return []worker.Job{
		s.publishJob(domain.PaymentEvent{
			Kind:       domain.EventDonationCompleted,
			DogID:      st.dogID,
			UserID:     st.sess.UserID,
			Price:      st.price,
			Reference:  st.donation.TransactionID,
			OccurredAt: s.now(),
		}),
	}
}

func needSuccess(st *state) screen.SuccessView {
	return screen.SuccessView{
		Title:   "Donacion Exitosa",
		Message: "Gracias por tu generosidad",
		Details: []string{
			"Transaccion: " + st.donation.TransactionID,
			"Monto: $" + st.donation.Price.String(),
		},
		Notes: []string{"Redirigiendo al perfil..."},
		Navigation: domain.Navigation{
			Path:  fmt.Sprintf("/dog/%d", st.dogID),
			Delay: domain.DonationRedirectDelay,
		},
	}
}
