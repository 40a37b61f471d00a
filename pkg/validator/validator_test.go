package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type createEventInput struct {
	Name      string `json:"name" validate:"required"`
	Date      string `json:"date" validate:"required"`
	HostEmail string `json:"hostEmail" validate:"required,email"`
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	err := ValidateStruct(createEventInput{Date: "2026-06-01", HostEmail: "host@example.com"})
	require.Error(t, err)

	ve, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, ve, 1)
	require.Equal(t, "name", ve[0].Field)
	require.Equal(t, "required", ve[0].Tag)
}

func TestValidateStructEmailRule(t *testing.T) {
	err := ValidateStruct(createEventInput{Name: "Birthday", Date: "2026-06-01", HostEmail: "not-an-email"})
	require.Error(t, err)

	ve, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Equal(t, "hostEmail", ve[0].Field)
	require.Equal(t, "email", ve[0].Tag)
}

func TestValidateStructPasses(t *testing.T) {
	require.NoError(t, ValidateStruct(createEventInput{
		Name:      "Housewarming",
		Date:      "2026-09-12",
		HostEmail: "host@example.com",
	}))
}
