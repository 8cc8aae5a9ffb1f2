// Package screen holds the view models of the payment screen: the form, its
// copy, and the success view that replaces it.
package screen

import (
	"net/url"

	"padrino-pay/internal/domain"
)

const RetryLabel = "Reintentar"

// ParseContext reads the payment context from the query string. Without
// price or dogId nothing may be rendered.
func ParseContext(q url.Values) (domain.PaymentContext, error) {
	pc := domain.PaymentContext{
		Type:              domain.PaymentNeed,
		Price:             q.Get("price"),
		DogID:             q.Get("dogId"),
		AccessoryCategory: q.Get("accessoryCategory"),
		AccessoryName:     q.Get("accessoryName"),
		NeedID:            q.Get("needId"),
	}
	if q.Get("type") == string(domain.PaymentAccessory) {
		pc.Type = domain.PaymentAccessory
	}
	if pc.Price == "" || pc.DogID == "" {
		return domain.PaymentContext{}, domain.ErrMissingParams
	}
	return pc, nil
}

type Copy struct {
	Title        string
	SummaryTitle string
	SummaryLabel string
	ButtonText   string
	// Progress is shown on the button as soon as the form is submitted.
	Progress string
}

func CopyFor(pc domain.PaymentContext) Copy {
	if pc.IsAccessory() {
		return Copy{
			Title:        "Comprar Accesorio",
			SummaryTitle: "Resumen de tu compra",
			SummaryLabel: "Monto a pagar:",
			ButtonText:   "Confirmar Compra de $" + pc.Price,
			Progress:     "Procesando compra...",
		}
	}
	return Copy{
		Title:        "Realizar Donacion",
		SummaryTitle: "Resumen de tu donacion",
		SummaryLabel: "Monto a donar:",
		ButtonText:   "Confirmar Donacion de $" + pc.Price,
		Progress:     "Procesando...",
	}
}

// FormView is the payment form. After a failed submission Retry is set and
// Alert carries the message to show. Stage is the progress label the
// submission stopped at.
type FormView struct {
	Context domain.PaymentContext
	Copy    Copy
	Action  string
	Retry   bool
	Alert   string
	Stage   string
}

func NewFormView(pc domain.PaymentContext, rawQuery string) FormView {
	return FormView{
		Context: pc,
		Copy:    CopyFor(pc),
		Action:  "/payment?" + rawQuery,
	}
}

// Failed returns the form as it must look after a failed submission.
func (v FormView) Failed(alert string) FormView {
	v.Retry = true
	v.Alert = alert
	return v
}

func (v FormView) At(stage string) FormView {
	v.Stage = stage
	return v
}

func (v FormView) ButtonLabel() string {
	if v.Retry {
		return RetryLabel
	}
	return v.Copy.ButtonText
}

// SuccessView replaces the form once a submission went through.
type SuccessView struct {
	Title      string
	Message    string
	ImageURL   string
	Details    []string
	Notes      []string
	Navigation domain.Navigation
}

// DelayMillis is the navigation delay as the client timer expects it.
func (v SuccessView) DelayMillis() int64 {
	return v.Navigation.Delay.Milliseconds()
}
