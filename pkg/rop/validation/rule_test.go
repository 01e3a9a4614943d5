package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"author":        "author",
		"InstanceOf":    "instance_of",
		"instanceOf":    "instance_of",
		"instance-of":   "instance_of",
		" INSTANCE_OF ": "instance_of",
		"userID":        "user_id",
	}
	for in, want := range cases {
		assert.Equal(t, want, Canonicalize(in), in)
	}
}

func TestRule_MethodName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "validate", Block("title", func(any) bool { return true }, nil).MethodName())
	assert.Equal(t, "validate_author", Method("Author", nil).MethodName())
	assert.Equal(t, "validate_instance_of", Validate("count", "InstanceOf", nil).MethodName())
}

func TestRule_NameKeepsKeyword(t *testing.T) {
	t.Parallel()

	r := Validate(" authorName ", "Presence", Options{OptionAs: "author"})
	assert.Equal(t, "authorName", r.Name())
	assert.Equal(t, "presence", r.Type())
	assert.Equal(t, "author", r.As())
	assert.Equal(t, "userID", Validate("userID", "presence", nil).As())
	assert.Equal(t, "validate_user_id", Method("userID", nil).MethodName())
}

func TestRule_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, Validate("author", "presence", nil).Equal(Validate("author", "PRESENCE", Options{})))
	assert.False(t, Validate("Author", "presence", nil).Equal(Validate("author", "presence", nil)))
	assert.False(t, Validate("author", "presence", nil).Equal(Validate("author", "blank", nil)))
	assert.False(t, Validate("author", "presence", Options{"as": "a"}).Equal(Validate("author", "presence", nil)))

	fn := func(any) bool { return true }
	assert.True(t, Block("x", fn, nil).Equal(Block("x", fn, nil)))
	assert.False(t, Block("x", fn, nil).Equal(Block("x", nil, nil)))
}

func TestRule_OptionsAreCopied(t *testing.T) {
	t.Parallel()

	opts := Options{OptionMessage: "m"}
	r := Validate("a", "presence", opts)
	opts[OptionMessage] = "changed"
	got := r.Options()
	got[OptionMessage] = "mutated"

	assert.Equal(t, "m", r.Options()[OptionMessage])
}
