package matcher_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropcmd/pkg/rop"
	"github.com/ib-77/ropcmd/pkg/rop/errs"
	"github.com/ib-77/ropcmd/pkg/rop/matcher"
)

func returns(tag string) matcher.Handler {
	return func(context.Context, rop.Result[any]) (any, error) {
		return tag, nil
	}
}

func TestMatch_MostSpecificErrorWins(t *testing.T) {
	t.Parallel()

	m := matcher.New(
		matcher.On(rop.StatusFailure, returns("any failure")),
		matcher.On(rop.StatusFailure, returns("structured"), matcher.ErrorType[rop.Error]()),
		matcher.On(rop.StatusFailure, returns("invalid params"), matcher.ErrorType[*errs.InvalidParameters]()),
		matcher.On(rop.StatusSuccess, returns("success")),
	)
	ctx := context.Background()

	got, err := m.Call(ctx, rop.Failure[int](errs.NewInvalidParameters("Publish", []string{"author can't be blank"})))
	require.NoError(t, err)
	assert.Equal(t, "invalid params", got)

	got, err = m.Call(ctx, rop.Failure[int](rop.NewError("boom")))
	require.NoError(t, err)
	assert.Equal(t, "structured", got)

	got, err = m.Call(ctx, rop.Failure[int](errors.New("plain")))
	require.NoError(t, err)
	assert.Equal(t, "any failure", got)

	got, err = m.Call(ctx, rop.Success(1))
	require.NoError(t, err)
	assert.Equal(t, "success", got)
}

func TestMatch_DeclarationOrderBreaksTies(t *testing.T) {
	t.Parallel()

	m := matcher.New(
		matcher.On(rop.StatusSuccess, returns("first")),
		matcher.On(rop.StatusSuccess, returns("second")),
	)

	got, err := m.Call(context.Background(), rop.Success("x"))
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestMatch_ValueFilters(t *testing.T) {
	t.Parallel()

	m := matcher.New(
		matcher.On(rop.StatusSuccess, returns("string"), matcher.ValueType[string]()),
		matcher.On(rop.StatusSuccess, returns("stringer"), matcher.ValueType[interface{ String() string }]()),
	)
	ctx := context.Background()

	got, err := m.Call(ctx, rop.Success("x"))
	require.NoError(t, err)
	assert.Equal(t, "string", got)

	_, err = m.Call(ctx, rop.Success(rop.StatusHalted))
	assert.ErrorIs(t, err, matcher.ErrNoMatch, "named string types are not assignable to string")

	got, err = m.Call(ctx, rop.Success(rop.DefaultKind))
	require.NoError(t, err)
	assert.Equal(t, "stringer", got)

	_, err = m.Call(ctx, rop.Success[any](nil))
	assert.ErrorIs(t, err, matcher.ErrNoMatch)
}

func TestMatch_NoMatch(t *testing.T) {
	t.Parallel()

	m := matcher.New(matcher.On(rop.StatusSuccess, returns("success")))

	assert.False(t, m.Matches(rop.Halt(0, context.Canceled)))
	_, err := m.Call(context.Background(), rop.Halt(0, context.Canceled))
	require.ErrorIs(t, err, matcher.ErrNoMatch)
	assert.Contains(t, err.Error(), "halted")
}

func TestMatch_ResultersAndNilHandler(t *testing.T) {
	t.Parallel()

	m := matcher.New(matcher.On(rop.StatusFailure, nil))
	got, err := m.Call(context.Background(), rop.Failure[string](errors.New("x")))
	require.NoError(t, err)
	assert.Nil(t, got)

	extended := m.With(matcher.On(rop.StatusSuccess, returns("added")))
	assert.Len(t, m.Clauses(), 1)
	assert.Len(t, extended.Clauses(), 2)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	plain := matcher.On(rop.StatusFailure, nil)
	general := matcher.On(rop.StatusFailure, nil, matcher.ErrorType[error]())
	specific := matcher.On(rop.StatusFailure, nil, matcher.ErrorType[*errs.MultipleErrors]())
	unrelated := matcher.On(rop.StatusFailure, nil, matcher.ErrorType[*errs.NotImplemented]())
	byValue := matcher.On(rop.StatusFailure, nil, matcher.ValueType[int]())

	assert.Equal(t, 1, matcher.Compare(general, plain))
	assert.Equal(t, -1, matcher.Compare(plain, general))
	assert.Equal(t, 1, matcher.Compare(specific, general))
	assert.Equal(t, 0, matcher.Compare(specific, unrelated))
	assert.Equal(t, 0, matcher.Compare(specific, specific))
	assert.Equal(t, 1, matcher.Compare(byValue, specific), "value filters weigh first")
}

func TestList(t *testing.T) {
	t.Parallel()

	successes := matcher.New(matcher.On(rop.StatusSuccess, returns("from successes")))
	failures := matcher.New(
		matcher.On(rop.StatusFailure, returns("from failures")),
		matcher.On(rop.StatusSuccess, returns("shadowed")),
	)
	l := matcher.List{successes, failures}
	ctx := context.Background()

	got, err := l.Call(ctx, rop.Success(1))
	require.NoError(t, err)
	assert.Equal(t, "from successes", got)

	got, err = l.Call(ctx, rop.Failure[int](errors.New("x")))
	require.NoError(t, err)
	assert.Equal(t, "from failures", got)

	assert.False(t, l.Matches(rop.Halt(0, nil)))
	_, err = l.Call(ctx, rop.Halt(0, nil))
	assert.ErrorIs(t, err, matcher.ErrNoMatch)
}

func TestOnAny_SharesHandlerAcrossStatuses(t *testing.T) {
	t.Parallel()

	m := matcher.New(
		matcher.On(rop.StatusSuccess, returns("success")),
		matcher.OnAny([]rop.Status{rop.StatusFailure, rop.StatusHalted}, returns("stopped")),
	)
	ctx := context.Background()

	got, err := m.Call(ctx, rop.Failure[int](errors.New("x")))
	require.NoError(t, err)
	assert.Equal(t, "stopped", got)

	got, err = m.Call(ctx, rop.Halt(0, context.Canceled))
	require.NoError(t, err)
	assert.Equal(t, "stopped", got)

	got, err = m.Call(ctx, rop.Success(1))
	require.NoError(t, err)
	assert.Equal(t, "success", got)

	assert.Equal(t, []rop.Status{rop.StatusFailure, rop.StatusHalted}, m.Clauses()[1].Statuses())
}
