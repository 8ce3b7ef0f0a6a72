package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name    string `form:"name" json:"full_name" validate:"required,max=200"`
	Email   string `form:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required"`
}

type enumForm struct {
	Kind        string  `json:"kind" validate:"required,is-experience-kind"`
	Proficiency string  `json:"proficiency" validate:"is-proficiency"`
	Degree      string  `json:"degree_level" validate:"is-degree-level"`
	Status      *string `json:"status" validate:"omitempty,is-project-status"`
}

func TestValidate_FieldNamesFromTags(t *testing.T) {
	v := New()

	err := v.Validate(&contactForm{Email: "not-an-email"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["name"])
	assert.Equal(t, "Enter a valid email address", vErr.Errors["email"])
	assert.Equal(t, "This field is required", vErr.Errors["message"])
	assert.Contains(t, vErr.Error(), "field 'email'")
}

func TestValidate_MaxLength(t *testing.T) {
	v := New()
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}

	err := v.Validate(&contactForm{Name: string(long), Email: "a@b.co", Message: "hi"})
	require.Error(t, err)
	assert.Equal(t, "Ensure this value has at most 200 characters", err.(*ValidationError).Errors["name"])
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, New().Validate(&contactForm{Name: "Ann", Email: "ann@example.com", Message: "hi"}))
}

func TestCustomEnumRules(t *testing.T) {
	v := New()

	status := "In Progress"
	assert.NoError(t, v.Validate(&enumForm{Kind: "skill", Proficiency: "Expert", Degree: "hs", Status: &status}))
	assert.NoError(t, v.Validate(&enumForm{Kind: "job"}))

	bad := "Abandoned"
	err := v.Validate(&enumForm{Kind: "hobby", Proficiency: "Guru", Degree: "phd", Status: &bad})
	require.Error(t, err)
	errs := err.(*ValidationError).Errors
	assert.Len(t, errs, 4)
	assert.Equal(t, "Must be one of: job, skill", errs["kind"])
	assert.Contains(t, errs["proficiency"], "Expert")
	assert.Contains(t, errs["degree_level"], "cert")
	assert.Contains(t, errs["status"], "Upcoming")
}
