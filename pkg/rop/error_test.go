package rop_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropcmd/pkg/rop"
)

func TestBaseError_DefaultMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", rop.NewError("").Error())
	assert.Equal(t, "not found", rop.NewTypedError("app.errors.not_found", "").Error())
	assert.Equal(t, "custom", rop.NewTypedError("app.errors.not_found", "custom").Error())
	assert.Equal(t, rop.DefaultErrorType, rop.NewTypedError("", "x").Type())
}

func TestBaseError_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, rop.ErrorsEqual(rop.NewError("a"), rop.NewError("a")))
	assert.False(t, rop.ErrorsEqual(rop.NewError("a"), rop.NewTypedError("other", "a")))
	assert.False(t, rop.ErrorsEqual(rop.NewError("a"), errors.New("a")))
	assert.True(t, rop.ErrorsEqual(nil, nil))
	assert.False(t, rop.ErrorsEqual(nil, rop.NewError("a")))

	var typedNil *rop.BaseError
	assert.True(t, rop.ErrorsEqual(typedNil, nil))
}

func TestAsJSON(t *testing.T) {
	t.Parallel()

	assert.Nil(t, rop.AsJSON(nil))
	assert.Equal(t, map[string]any{
		"type":    "app.errors.not_found",
		"message": "missing book",
		"data":    map[string]any{},
	}, rop.AsJSON(rop.NewTypedError("app.errors.not_found", "missing book")))

	assert.Equal(t, map[string]any{
		"type":    "error",
		"message": "plain",
		"data":    map[string]any{},
	}, rop.AsJSON(errors.New("plain")))
}

func TestBaseError_MarshalJSON(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(rop.NewError("boom"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"rop.error","message":"boom","data":{}}`, string(raw))
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")
	assert.Empty(t, rop.GetErrors(nil))
	assert.Equal(t, []error{a}, rop.GetErrors(a))
	assert.Equal(t, []error{a, b}, rop.GetErrors(errors.Join(a, b)))
}
