package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"TeleCareZone-Web/internal/domain/model"
	"TeleCareZone-Web/internal/domain/repository"
	"TeleCareZone-Web/internal/infrastructure/database"
)

const professionalsTable = "professionals"

type SupabaseProfessionalsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseProfessionalsRepository(client *database.SupabaseClient) repository.ProfessionalsRepository {
	return &SupabaseProfessionalsRepository{
		client: client,
	}
}

func (r *SupabaseProfessionalsRepository) GetApproved(ctx context.Context) ([]model.Professional, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, _, err := r.client.GetClient().From(professionalsTable).
		Select("*", "exact", false).
		Eq("status", model.ProfessionalStatusApproved).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch approved professionals: %w", err)
	}

	return decodeProfessionals(data)
}

// decodeProfessionals parses a PostgREST array response.
func decodeProfessionals(data []byte) ([]model.Professional, error) {
	professionals := []model.Professional{}
	if err := json.Unmarshal(data, &professionals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal professionals: %w", err)
	}
	return professionals, nil
}
