package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type payload struct {
	MovieID string `json:"movieId" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

func TestDescribeValidationErrors(t *testing.T) {
	t.Parallel()

	v := validator.New()

	err := v.Struct(payload{})
	require.Error(t, err)
	msg := Describe(err)
	require.Contains(t, msg, "is required")

	err = v.Struct(payload{MovieID: "m1", Rating: 9})
	require.Error(t, err)
	require.Contains(t, Describe(err), "must be at most 5")
}

func TestDescribeJSONErrors(t *testing.T) {
	t.Parallel()

	var out payload
	err := json.Unmarshal([]byte(`{"rating": "five"}`), &out)
	require.Error(t, err)
	require.Equal(t, "invalid JSON payload", Describe(err))

	require.Equal(t, "", Describe(nil))
}
