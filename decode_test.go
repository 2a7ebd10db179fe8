package dataclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	rt := MustRecordType("user",
		String("name", Required()),
		Int("age"),
		Float("score"),
	)

	t.Run("decoded numbers import without a float detour", func(t *testing.T) {
		raw, err := DecodeJSON([]byte(`{"name": "alice", "age": 9007199254740993, "score": 0.5}`))
		require.NoError(t, err)

		inst, err := Import(rt, raw)
		require.NoError(t, err)

		v, _ := inst.Get("age")
		assert.Equal(t, int64(9007199254740993), v)
		v, _ = inst.Get("score")
		assert.Equal(t, 0.5, v)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := DecodeJSON([]byte(`{"name":`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("non-object document", func(t *testing.T) {
		_, err := DecodeJSON([]byte(`[1, 2, 3]`))
		assert.Error(t, err)
	})
}

func TestDecodeYAML(t *testing.T) {
	rt := MustRecordType("config",
		String("host", Required()),
		Int("port", WithDefault(5432)),
		ObjectList("replicas", MustRecordType("replica",
			String("host", Required()),
		)),
	)

	t.Run("nested yaml imports cleanly", func(t *testing.T) {
		raw, err := DecodeYAML([]byte(`
host: db.internal
replicas:
  - host: replica-1
  - host: replica-2
`))
		require.NoError(t, err)

		inst, err := Import(rt, raw)
		require.NoError(t, err)

		v, _ := inst.Get("port")
		assert.Equal(t, int64(5432), v)
		v, _ = inst.Get("replicas")
		assert.Len(t, v, 2)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := DecodeYAML([]byte("host: [unclosed"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})
}
