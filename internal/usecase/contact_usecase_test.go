package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TeleCareZone-Web/internal/domain/effect"
	"TeleCareZone-Web/internal/domain/model"
)

func TestContactUseCase_Submit(t *testing.T) {
	uc := NewContactUseCase()

	form := model.ContactForm{
		Name:    "Asha",
		Email:   "asha@example.com",
		Subject: "Appointments",
		Message: "How do I book?",
	}
	cleared, effects := uc.Submit(context.Background(), form)

	assert.True(t, cleared.IsEmpty())
	require.Len(t, effects, 1)
	assert.Equal(t, effect.ShowConfirmation{Message: ConfirmationMessage}, effects[0])
}

func TestContactUseCase_SubmitEmptyForm(t *testing.T) {
	cleared, effects := NewContactUseCase().Submit(context.Background(), model.ContactForm{})

	assert.True(t, cleared.IsEmpty())
	assert.Len(t, effects, 1)
}
