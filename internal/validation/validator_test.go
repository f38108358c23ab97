package validation

import (
	"testing"

	"github.com/dmitrijs2005/signon/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	Password string `json:"password" validate:"required,pwd"`
	Confirm  string `json:"confirmPassword" validate:"eqfield=Password"`
	Level    string `json:"islLevel" validate:"omitempty,oneof=beginner intermediate advanced"`
	Age      int    `json:"age" validate:"omitempty,gte=1,lte=120"`
	Bio      string `json:"bio" validate:"max=10"`
}

func validForm() form {
	return form{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
		Confirm:  "secret1",
	}
}

func TestStruct_Valid(t *testing.T) {
	require.NoError(t, Struct(validForm()))
}

func TestStruct_FieldMessages(t *testing.T) {
	f := form{
		Name:     "   ",
		Email:    "not-an-email",
		Phone:    "12345",
		Password: "abc",
		Confirm:  "abd",
		Level:    "expert",
		Age:      200,
		Bio:      "far too long for ten",
	}

	err := Struct(f)
	require.Error(t, err)

	ve, ok := common.IsValidation(err)
	require.True(t, ok)

	assert.Equal(t, "is required", ve.Fields["name"])
	assert.Equal(t, "must be a valid email", ve.Fields["email"])
	assert.Contains(t, ve.Fields["phone"], "international format")
	assert.Equal(t, "must be at least 6 characters", ve.Fields["password"])
	assert.Equal(t, "must match password", ve.Fields["confirmPassword"])
	assert.Equal(t, "must be one of: beginner, intermediate, advanced", ve.Fields["islLevel"])
	assert.Equal(t, "must be less than or equal to 120", ve.Fields["age"])
	assert.Equal(t, "must be at most 10 characters", ve.Fields["bio"])
}

func TestToDetails_Nil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
