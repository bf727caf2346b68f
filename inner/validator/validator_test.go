package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	FirstName  string `json:"first_name" validate:"notblank,max=10"`
	LastName   string `json:"last_name" validate:"required"`
	Age        int    `json:"age" validate:"gte=0"`
	Department string `validate:"notblank"`
}

func TestValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(testRequest{FirstName: "Ann", LastName: "Lee", Department: "IT"})

	assert.NoError(t, err)
}

func TestValidator_UsesJsonFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(testRequest{FirstName: "   ", LastName: "", Age: -1, Department: "IT"})

	var validationErrs ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Len(t, validationErrs.Errors, 3)

	assert.Equal(t, "first_name", validationErrs.Errors[0].Field)
	assert.Equal(t, "notblank", validationErrs.Errors[0].Tag)
	assert.Equal(t, "last_name", validationErrs.Errors[1].Field)
	assert.Equal(t, "required", validationErrs.Errors[1].Tag)
	assert.Equal(t, "age", validationErrs.Errors[2].Field)
	assert.Equal(t, "-1", validationErrs.Errors[2].Value)

	assert.Equal(t, []string{
		"first_name can't be blank",
		"last_name can't be blank",
		"age must be greater than or equal to 0",
	}, validationErrs.Messages())
	assert.Equal(t, "first_name can't be blank; last_name can't be blank; age must be greater than or equal to 0", err.Error())
}

func TestValidator_FieldWithoutJsonTag(t *testing.T) {
	v := New()

	err := v.Validate(testRequest{FirstName: "Ann", LastName: "Lee"})

	var validationErrs ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Len(t, validationErrs.Errors, 1)
	assert.Equal(t, "Department", validationErrs.Errors[0].Field)
}

func TestValidator_MaxLength(t *testing.T) {
	v := New()

	err := v.Validate(testRequest{FirstName: "Bartholomew", LastName: "Lee", Department: "IT"})

	require.Error(t, err)
	assert.Equal(t, "first_name is too long (maximum is 10 characters)", err.Error())
}

func TestValidator_NotAStruct(t *testing.T) {
	v := New()

	err := v.Validate("not a struct")

	require.Error(t, err)
	var validationErrs ValidationErrors
	assert.False(t, errors.As(err, &validationErrs))
}

func TestMustRegisterValidation_PanicsOnRegistrationError(t *testing.T) {
	assert.PanicsWithValue(t, `register "" validation: function Key cannot be empty`, func() {
		mustRegisterValidation(validator.New(), "", validators.NotBlank)
	})
	assert.NotPanics(t, func() {
		mustRegisterValidation(validator.New(), "notblank", validators.NotBlank)
	})
}
