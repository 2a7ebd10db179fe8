package dataclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordType(t *testing.T) {
	t.Run("valid declaration", func(t *testing.T) {
		rt, err := NewRecordType("user",
			String("name", Required()),
			Int("age", WithDefault(0)),
		)
		require.NoError(t, err)
		assert.Equal(t, "user", rt.Name())
		assert.Equal(t, 2, rt.Len())

		f, ok := rt.Field("age")
		require.True(t, ok)
		assert.Equal(t, KindInt, f.Kind())
		assert.False(t, f.IsRequired())

		_, ok = rt.Field("missing")
		assert.False(t, ok)
	})

	t.Run("empty type name", func(t *testing.T) {
		_, err := NewRecordType("", String("name"))
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("empty field name", func(t *testing.T) {
		_, err := NewRecordType("user", String(""))
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("duplicate field name", func(t *testing.T) {
		_, err := NewRecordType("user", String("name"), Int("name"))
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("zero-value field has no kind", func(t *testing.T) {
		_, err := NewRecordType("user", Field{name: "broken"})
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("object kind requires element type", func(t *testing.T) {
		_, err := NewRecordType("user", Object("address", nil))
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))

		_, err = NewRecordType("user", ObjectList("tags", nil))
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("list requires a scalar element kind", func(t *testing.T) {
		_, err := NewRecordType("batch", List("ids", KindObject))
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))

		_, err = NewRecordType("batch", List("ids", KindUnknown))
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))

		_, err = NewRecordType("batch", List("ids", KindInt))
		assert.NoError(t, err)
	})

	t.Run("datetime list requires layout", func(t *testing.T) {
		_, err := NewRecordType("batch", List("stamps", KindDatetime, WithLayout("")))
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("datetime requires layout", func(t *testing.T) {
		_, err := NewRecordType("event", Datetime("at", WithLayout("")))
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("all declaration problems reported at once", func(t *testing.T) {
		_, err := NewRecordType("user",
			String(""),
			Object("address", nil),
			String("name"),
			Int("name"),
		)
		require.Error(t, err)
		msg := err.Error()
		assert.Contains(t, msg, "cannot be empty")
		assert.Contains(t, msg, "nested record type")
		assert.Contains(t, msg, "more than once")
	})
}

func TestMustRecordType(t *testing.T) {
	assert.NotPanics(t, func() {
		MustRecordType("user", String("name"))
	})
	assert.Panics(t, func() {
		MustRecordType("user", String(""))
	})
}

func TestInstanceSetGet(t *testing.T) {
	rt := MustRecordType("user",
		String("name", Required()),
		Int("age"),
	)

	t.Run("set coerces through the field descriptor", func(t *testing.T) {
		inst := NewInstance(rt)
		require.NoError(t, inst.Set("name", "alice"))
		require.NoError(t, inst.Set("age", "42"))

		v, ok := inst.Get("age")
		require.True(t, ok)
		assert.Equal(t, int64(42), v)
	})

	t.Run("set rejects a value the descriptor rejects", func(t *testing.T) {
		inst := NewInstance(rt)
		err := inst.Set("age", 2.5)
		require.Error(t, err)
		assert.True(t, IsCoercionError(err))
	})

	t.Run("set on an undeclared field", func(t *testing.T) {
		inst := NewInstance(rt)
		err := inst.Set("nickname", "al")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("nil resolves the default policy", func(t *testing.T) {
		inst := NewInstance(rt)
		err := inst.Set("name", nil)
		require.Error(t, err)
		assert.True(t, IsMissingFieldError(err))

		require.NoError(t, inst.Set("age", nil))
		v, ok := inst.Get("age")
		require.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("get on an undeclared field", func(t *testing.T) {
		inst := NewInstance(rt)
		_, ok := inst.Get("nickname")
		assert.False(t, ok)
	})
}
