package repository

import (
	"context"

	"TeleCareZone-Web/internal/domain/model"
)

// ProfessionalsRepository reads the directory of approved professionals.
type ProfessionalsRepository interface {
	// GetApproved returns approved professionals in the order the source returns them.
	GetApproved(ctx context.Context) ([]model.Professional, error)
}
