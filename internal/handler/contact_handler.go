package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"TeleCareZone-Web/internal/domain/model"
	"TeleCareZone-Web/internal/usecase"
)

// ContactHandler serves the contact page and its form.
type ContactHandler struct {
	pageData
	contactUseCase usecase.ContactUseCase
	logger         *zap.Logger
}

// NewContactHandler creates a ContactHandler
func NewContactHandler(contactUseCase usecase.ContactUseCase, site *model.SiteContent, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		pageData:       pageData{site: site},
		contactUseCase: contactUseCase,
		logger:         logger,
	}
}

// Show GET /contact
func (h *ContactHandler) Show(c *gin.Context) {
	h.render(c, model.ContactForm{}, []string{})
}

// Submit POST /contact - acknowledges the message and clears the form
func (h *ContactHandler) Submit(c *gin.Context) {
	var form model.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid Request", "The contact form could not be read.")
		return
	}

	cleared, effects := h.contactUseCase.Submit(c.Request.Context(), form)
	confirmations, navigated := applyEffects(c, effects)
	if navigated {
		return
	}

	// field values are not logged
	h.logger.Info("contact message acknowledged")
	h.render(c, cleared, confirmations)
}

func (h *ContactHandler) render(c *gin.Context, form model.ContactForm, confirmations []string) {
	c.HTML(http.StatusOK, contactTemplate, h.with("Contact", "contact", gin.H{
		"Form":          form,
		"Confirmations": confirmations,
	}))
}
