package usecase

import (
	"context"

	"TeleCareZone-Web/internal/domain/effect"
	"TeleCareZone-Web/internal/domain/model"
)

// ConfirmationMessage is shown once after a contact submission.
const ConfirmationMessage = "Thank you for your message! We will get back to you soon."

type ContactUseCase interface {
	// Submit acknowledges the form and returns it cleared along with the effects to run.
	Submit(ctx context.Context, form model.ContactForm) (model.ContactForm, []effect.Effect)
}

// contactUseCaseImpl implements ContactUseCase
type contactUseCaseImpl struct{}

// NewContactUseCase creates a ContactUseCase
func NewContactUseCase() ContactUseCase {
	return &contactUseCaseImpl{}
}

// Submit does not send or store the form.
func (u *contactUseCaseImpl) Submit(_ context.Context, _ model.ContactForm) (model.ContactForm, []effect.Effect) {
	return model.ContactForm{}, []effect.Effect{
		effect.ShowConfirmation{Message: ConfirmationMessage},
	}
}
