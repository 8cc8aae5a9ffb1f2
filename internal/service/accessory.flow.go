package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"padrino-pay/internal/domain"
	"padrino-pay/internal/screen"
	"padrino-pay/internal/worker"
)

const statsCategoryAccessory = "accesorio"

func (s *paymentService) accessoryFlow() flow {
	return flow{
		name: "accessory",
		steps: []step{
			{name: "start", label: "Procesando compra...", run: s.startAccessory},
			{name: "fetch-dog", label: "Obteniendo info del perro...", run: s.fetchDog},
			{name: "describe-accessory", run: describeAccessory},
			{name: "validate", run: validateAccessory},
			{name: "generate-image", label: "Generando imagen IA...", run: s.generateImage},
			{name: "save-purchase", label: "Guardando compra...", run: s.savePurchase},
		},
		followUps: s.accessoryFollowUps,
		success:   accessorySuccess,
		alert: func(err error) string {
			return "Error al procesar la compra: " + err.Error()
		},
	}
}

func (s *paymentService) startAccessory(_ context.Context, st *state) error {
	st.dogID = parseID(st.pc.DogID)
	return nil
}

// fetchDog never fails: a dog that cannot be fetched is replaced by defaults.
func (s *paymentService) fetchDog(ctx context.Context, st *state) error {
	if st.dogID == 0 {
		st.dog = domain.DefaultDogSummary(0)
		return nil
	}

	dog, err := s.backend.GetDog(ctx, st.dogID)
	if err != nil {
		s.logger.Warn("Could not fetch dog, using defaults", zap.Int64("dog_id", st.dogID), zap.Error(err))
		st.dog = domain.DefaultDogSummary(st.dogID)
		return nil
	}
	dog.ID = st.dogID
	st.dog = dog.WithDefaults()
	return nil
}

func describeAccessory(_ context.Context, st *state) error {
	st.accessory = domain.NewAccessoryDescriptor(st.pc.AccessoryCategory, st.pc.AccessoryName)
	return nil
}

func validateAccessory(_ context.Context, st *state) error {
	if st.dog.ID == 0 {
		return domain.ErrInvalidDogID
	}
	if strings.TrimSpace(st.pc.AccessoryCategory) == "" {
		return domain.ErrMissingCategory
	}
	price, err := domain.ParseAmount(st.pc.Price)
	if err != nil {
		return err
	}
	st.price = price
	return nil
}

func (s *paymentService) generateImage(ctx context.Context, st *state) error {
	result, err := s.backend.GenerateDogWithAccessory(ctx, st.dog, st.accessory)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrImageGeneration, err)
	}
	if result == nil || !result.Success {
		reason := "unknown error"
		if result != nil && result.Error != "" {
			reason = result.Error
		}
		return fmt.Errorf("%w: %s", domain.ErrImageGeneration, reason)
	}
	st.imageURL = result.URL()
	return nil
}

func (s *paymentService) savePurchase(ctx context.Context, st *state) error {
	saved, err := s.accessoryRepo.Insert(ctx, &domain.AccessoryPurchase{
		DogID:    st.dogID,
		UserID:   st.sess.UserID,
		Category: st.pc.AccessoryCategory,
		Name:     st.pc.AccessoryName,
		Price:    st.price,
		ImageURL: st.imageURL,
	})
	if err != nil {
		return err
	}
	if saved == nil {
		return errors.New("insert returned no purchase")
	}
	st.purchase = saved
	return nil
}

func (s *paymentService) accessoryFollowUps(st *state) []worker.Job {
	dogID := st.dogID
	return []worker.Job{
		{
			Name: "update-dog-stats",
			Run: func(ctx context.Context) error {
				return s.backend.UpdateDogStats(ctx, dogID, statsCategoryAccessory)
			},
		},
		s.publishJob(domain.PaymentEvent{
			Kind:       domain.EventAccessoryPurchased,
			DogID:      dogID,
			UserID:     st.sess.UserID,
			Price:      st.purchase.Price,
			Reference:  fmt.Sprintf("accessory-%d", st.purchase.ID),
			OccurredAt: s.now(),
		}),
	}
}

func accessorySuccess(st *state) screen.SuccessView {
	return screen.SuccessView{
		Title:    "Compra Exitosa",
		Message:  "Tu accesorio ha sido comprado",
		ImageURL: st.imageURL,
		Details: []string{
			"Accesorio: " + st.purchase.Category,
			"Monto: $" + st.purchase.Price.String(),
		},
		Notes: []string{
			"Generamos una foto especial para ti",
			"Redirigiendo a la galeria...",
		},
		Navigation: domain.Navigation{
			Path:  fmt.Sprintf("/gallery/%d", st.dogID),
			Delay: domain.AccessoryRedirectDelay,
		},
	}
}
