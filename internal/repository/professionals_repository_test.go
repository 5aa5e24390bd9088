package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TeleCareZone-Web/internal/domain/model"
	"TeleCareZone-Web/internal/infrastructure/database"
)

func TestProfessionalRow_ToProfessional(t *testing.T) {
	row := professionalRow{
		ID:              "42",
		FirstName:       sql.NullString{String: "Priya", Valid: true},
		LastName:        sql.NullString{},
		ExperienceYears: sql.NullFloat64{Float64: 12, Valid: true},
		ConsultingFees:  sql.NullFloat64{Float64: 500, Valid: true},
		Subdomain:       sql.NullString{String: "priya-sharma", Valid: true},
		Status:          sql.NullString{String: "approved", Valid: true},
	}

	prof := row.ToProfessional()

	assert.Equal(t, model.ID("42"), prof.ID)
	assert.Equal(t, "Priya", prof.FirstName)
	assert.Equal(t, "", prof.LastName)
	require.NotNil(t, prof.ExperienceYears)
	assert.Equal(t, 12.0, prof.ExperienceYears.Float64())
	assert.Equal(t, 500.0, prof.ConsultingFees.Float64())

	row.ExperienceYears = sql.NullFloat64{}
	assert.Nil(t, row.ToProfessional().ExperienceYears)
}

func TestDecodeProfessionals(t *testing.T) {
	professionals, err := decodeProfessionals([]byte(`[{"id":1,"first_name":"Rajesh","consulting_fees":"700.00","subdomain":"rajesh-kumar"}]`))
	require.NoError(t, err)
	require.Len(t, professionals, 1)
	assert.Equal(t, 700.0, professionals[0].ConsultingFees.Float64())

	professionals, err = decodeProfessionals([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, professionals)

	_, err = decodeProfessionals([]byte(`{"message":"permission denied"}`))
	assert.Error(t, err)
}

func TestPostgresProfessionalsRepository_GetApproved(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	client, err := database.NewPostgreSQLClient(ctx, dsn)
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.HealthCheck(ctx))

	professionals, err := NewPostgresProfessionalsRepository(client).GetApproved(ctx)
	require.NoError(t, err)
	for _, prof := range professionals {
		assert.Equal(t, model.ProfessionalStatusApproved, prof.Status)
	}
}
