package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewinters/portfolio-backend/errs"
)

func TestProjectInputValidate(t *testing.T) {
	valid := ProjectInput{Title: "A", Description: "d"}
	assert.NoError(t, valid.Validate())

	missingTitle := ProjectInput{Description: "d"}
	err := missingTitle.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrMissingRequiredField))

	var apiErr *errs.ApiErr
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "title", apiErr.Field)
	assert.Equal(t, 400, apiErr.StatusCode)

	missingDescription := ProjectInput{Title: "A"}
	err = missingDescription.Validate()
	require.Error(t, err)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "description", apiErr.Field)

	badStatus := ProjectInput{Title: "A", Description: "d", Status: "archived"}
	err = badStatus.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidField))
}

func TestProjectInputApplyDefaults(t *testing.T) {
	now := time.Date(2024, 10, 31, 23, 59, 0, 0, time.UTC)

	in := ProjectInput{Title: "A", Description: "d"}
	in.ApplyDefaults(now)

	assert.NotNil(t, in.Technologies)
	assert.Empty(t, in.Technologies)
	assert.NotNil(t, in.Tags)
	assert.Empty(t, in.Tags)
	assert.Equal(t, StatusDraft, in.Status)
	assert.Equal(t, "2024-10-31", in.Date)
	assert.False(t, in.IsPublic)
}

func TestProjectInputApplyDefaultsKeepsProvidedValues(t *testing.T) {
	in := ProjectInput{
		Title:        "A",
		Description:  "d",
		Technologies: []string{"Go"},
		Tags:         []string{"backend"},
		Status:       StatusPublished,
		Date:         "2023-01-02",
	}
	in.ApplyDefaults(time.Now())

	assert.Equal(t, []string{"Go"}, in.Technologies)
	assert.Equal(t, []string{"backend"}, in.Tags)
	assert.Equal(t, StatusPublished, in.Status)
	assert.Equal(t, "2023-01-02", in.Date)
}

func TestCredentialsValidate(t *testing.T) {
	assert.NoError(t, Credentials{Username: "admin", Password: "pw"}.Validate())

	err := Credentials{Password: "pw"}.Validate()
	require.Error(t, err)
	var apiErr *errs.ApiErr
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "username", apiErr.Field)

	err = Credentials{Username: "admin"}.Validate()
	require.Error(t, err)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "password", apiErr.Field)
}
