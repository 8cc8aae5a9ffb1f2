package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"padrino-pay/internal/domain"
	"padrino-pay/internal/format"
	"padrino-pay/internal/screen"
	"padrino-pay/internal/service"
	"padrino-pay/internal/session"
)

const incompleteCardAlert = "Por favor completa los datos de la tarjeta."

type Handler struct {
	payments service.PaymentService
	sessions *session.Resolver
	health   HealthChecker
	logger   *zap.Logger
}

func NewHandler(payments service.PaymentService, sessions *session.Resolver, health HealthChecker, logger *zap.Logger) *Handler {
	return &Handler{payments: payments, sessions: sessions, health: health, logger: logger}
}

type cardForm struct {
	CardNumber string `form:"card_number" binding:"required"`
	Expiry     string `form:"card_expiry" binding:"required"`
	CVV        string `form:"card_cvv" binding:"required"`
	Name       string `form:"card_name" binding:"required"`
}

// normalize applies the input masks; it reports false when a field ends up
// empty once masked.
func (f *cardForm) normalize() bool {
	f.CardNumber = format.CardNumber(f.CardNumber)
	f.Expiry = format.Expiry(f.Expiry)
	f.CVV = format.CVV(f.CVV)
	f.Name = strings.TrimSpace(f.Name)
	return f.CardNumber != "" && f.Expiry != "" && f.CVV != "" && f.Name != ""
}

func (h *Handler) ShowPayment(c *gin.Context) {
	pc, err := screen.ParseContext(c.Request.URL.Query())
	if err != nil {
		h.logger.Warn("Missing payment parameters, redirecting home", zap.String("query", c.Request.URL.RawQuery))
		c.Redirect(http.StatusFound, domain.HomeNavigation().Path)
		return
	}

	if _, ok := h.resolveSession(c); !ok {
		return
	}

	c.HTML(http.StatusOK, "payment.html", screen.NewFormView(pc, c.Request.URL.RawQuery))
}

func (h *Handler) SubmitPayment(c *gin.Context) {
	pc, err := screen.ParseContext(c.Request.URL.Query())
	if err != nil {
		h.logger.Warn("Missing payment parameters on submit, redirecting home", zap.String("query", c.Request.URL.RawQuery))
		c.Redirect(http.StatusSeeOther, domain.HomeNavigation().Path)
		return
	}

	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}
	view := screen.NewFormView(pc, c.Request.URL.RawQuery)

	var form cardForm
	if err := c.ShouldBind(&form); err != nil || !form.normalize() {
		h.logger.Warn("Incomplete card details", zap.Error(err))
		c.HTML(http.StatusUnprocessableEntity, "payment.html", view.Failed(incompleteCardAlert))
		return
	}
	h.logger.Debug("Card details received",
		zap.String("card", format.MaskCardNumber(form.CardNumber)),
		zap.String("expiry", form.Expiry))

	out := h.payments.Submit(c.Request.Context(), sess, pc)
	if out.Failed() {
		_ = c.Error(out.Err)
		c.HTML(http.StatusOK, "payment.html", view.Failed(out.Alert).At(out.LastStep()))
		return
	}

	c.HTML(http.StatusOK, "success.html", out.Success)
}

func (h *Handler) Health(c *gin.Context) {
	stats := h.health.Health(c.Request.Context())
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, stats)
}

func (h *Handler) resolveSession(c *gin.Context) (session.Session, bool) {
	sess, err := h.sessions.Resolve(c)
	if err == nil {
		return sess, true
	}
	if errors.Is(err, domain.ErrNoSession) {
		c.HTML(http.StatusUnauthorized, "error.html", gin.H{
			"Title":   "Inicia sesion",
			"Message": "Necesitas iniciar sesion como padrino para continuar.",
		})
		return session.Session{}, false
	}
	h.logger.Error("Failed to resolve session", zap.Error(err))
	c.AbortWithStatus(http.StatusInternalServerError)
	return session.Session{}, false
}
