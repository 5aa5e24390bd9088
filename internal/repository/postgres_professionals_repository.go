package repository

import (
	"context"
	"database/sql"
	"fmt"

	"TeleCareZone-Web/internal/domain/model"
	"TeleCareZone-Web/internal/domain/repository"
	"TeleCareZone-Web/internal/infrastructure/database"
)

const queryApprovedProfessionals = `
	SELECT id::text, first_name, last_name, speciality, experience_years, area_of_expertise,
	       consulting_fees, profile_photo, subdomain, theme_color, status
	FROM professionals
	WHERE status = $1
	ORDER BY id`

type PostgresProfessionalsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresProfessionalsRepository(client *database.PostgreSQLClient) repository.ProfessionalsRepository {
	return &PostgresProfessionalsRepository{
		client: client,
	}
}

// professionalRow holds the nullable columns of one professionals row
type professionalRow struct {
	ID              string
	FirstName       sql.NullString
	LastName        sql.NullString
	Speciality      sql.NullString
	ExperienceYears sql.NullFloat64
	AreaOfExpertise sql.NullString
	ConsultingFees  sql.NullFloat64
	ProfilePhoto    sql.NullString
	Subdomain       sql.NullString
	ThemeColor      sql.NullString
	Status          sql.NullString
}

// ToProfessional converts the row, mapping NULLs to zero values.
func (r *professionalRow) ToProfessional() model.Professional {
	prof := model.Professional{
		ID:              model.ID(r.ID),
		FirstName:       r.FirstName.String,
		LastName:        r.LastName.String,
		Speciality:      r.Speciality.String,
		AreaOfExpertise: r.AreaOfExpertise.String,
		ConsultingFees:  model.Number(r.ConsultingFees.Float64),
		ProfilePhoto:    r.ProfilePhoto.String,
		Subdomain:       r.Subdomain.String,
		ThemeColor:      r.ThemeColor.String,
		Status:          r.Status.String,
	}
	if r.ExperienceYears.Valid {
		years := model.Number(r.ExperienceYears.Float64)
		prof.ExperienceYears = &years
	}
	return prof
}

func (r *PostgresProfessionalsRepository) GetApproved(ctx context.Context) ([]model.Professional, error) {
	rows, err := r.client.DB.QueryContext(ctx, queryApprovedProfessionals, model.ProfessionalStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved professionals: %w", err)
	}
	defer rows.Close()

	professionals := []model.Professional{}
	for rows.Next() {
		var row professionalRow
		if err := rows.Scan(&row.ID, &row.FirstName, &row.LastName, &row.Speciality, &row.ExperienceYears,
			&row.AreaOfExpertise, &row.ConsultingFees, &row.ProfilePhoto, &row.Subdomain, &row.ThemeColor, &row.Status); err != nil {
			return nil, fmt.Errorf("failed to scan professional row: %w", err)
		}
		professionals = append(professionals, row.ToProfessional())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate professional rows: %w", err)
	}

	return professionals, nil
}
