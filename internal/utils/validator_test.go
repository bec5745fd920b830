package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrivision-backend/domain"
)

func TestMain(m *testing.M) {
	InitValidator()
	m.Run()
}

func TestEmailBasic(t *testing.T) {
	t.Parallel()

	valid := []string{
		"alice@example.com",
		"a.b+c_d-e@some-host.co.uk",
		"user123@host1.io",
	}
	for _, email := range valid {
		assert.NoError(t, Validate.Var(email, "email_basic"), "expected %q to pass", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@domain",
		"user@.com",
		"user name@example.com",
		"user@exam ple.com",
	}
	for _, email := range invalid {
		assert.Error(t, Validate.Var(email, "email_basic"), "expected %q to fail", email)
	}
}

func TestDecimalPlaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		tag   string
		ok    bool
	}{
		{"small integer fits", 120, "decimal2", true},
		{"two places fit decimal2", 12.34, "decimal2", true},
		{"three places exceed decimal2", 12.345, "decimal2", false},
		{"four places fit decimal4", 0.1234, "decimal4", true},
		{"five places exceed decimal4", 0.12345, "decimal4", false},
		{"three places fit decimal3", 1.125, "decimal3", true},
		{"one place fits decimal4", 0.5, "decimal4", true},
		{"six integer digits fit decimal2", 123456.78, "decimal2", true},
		{"seven integer digits exceed decimal2", 1234567.89, "decimal2", false},
		{"integer digits exceed decimal4", 12.3, "decimal4", false},
		{"negative exceeding digits fails", -1234567.89, "decimal2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate.Var(tt.value, tt.tag)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTranslateValidationError(t *testing.T) {
	t.Parallel()

	type payload struct {
		Email string `json:"email" validate:"required,email_basic"`
	}

	err := TranslateValidationError(Validate.Struct(payload{Email: "not-an-email"}))
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "email", ve.Field)
	assert.Equal(t, "email_basic", ve.Constraint)

	assert.NoError(t, TranslateValidationError(nil))

	passthrough := errors.New("not a field error")
	assert.Equal(t, passthrough, TranslateValidationError(passthrough))
}
