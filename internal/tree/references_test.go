package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferences_Resolve(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("db", map[string]any{"host": "localhost"}))
	require.NoError(t, tr.Add("app", map[string]any{"connection": "%db.host%"}))

	assert.Equal(t, "localhost", mustGet(t, tr, "app.connection"))
}

func TestReferences_Deferred(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("app", map[string]any{"connection": "%db.host%"}))
	assert.Equal(t, "%db.host%", mustGet(t, tr, "app.connection"))

	require.NoError(t, tr.Add("db", map[string]any{"host": "localhost"}))
	assert.Equal(t, "localhost", mustGet(t, tr, "app.connection"))
}

func TestReferences_NativeTypeForWholeStringPlaceholder(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("db", map[string]any{"port": 5432, "params": map[string]any{"user": "u"}}))
	require.NoError(t, tr.Add("app", map[string]any{
		"port":   "%db.port%",
		"params": "%db.params%",
		"list":   []any{"%db.port%"},
	}))

	assert.Equal(t, 5432, mustGet(t, tr, "app.port"))
	assert.Equal(t, map[string]any{"user": "u"}, mustGet(t, tr, "app.params"))
	assert.Equal(t, 5432, mustGet(t, tr, "app.list.0"))
}

func TestReferences_ResolvedMappingIsNotAliased(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("db", map[string]any{"params": map[string]any{"user": "u"}}))
	require.NoError(t, tr.Add("app", map[string]any{"params": "%db.params%"}))
	require.NoError(t, tr.Add("app.params.user", "v"))

	assert.Equal(t, "v", mustGet(t, tr, "app.params.user"))
	assert.Equal(t, "u", mustGet(t, tr, "db.params.user"))
}

func TestReferences_EmbeddedPlaceholders(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("db", map[string]any{"host": "localhost", "port": 5432, "tls": true}))
	require.NoError(t, tr.Add("app", map[string]any{
		"dsn":     "postgres://%db.host%:%db.port%/app",
		"prefix":  "tls=%db.tls%",
		"partial": "%db.host%:%db.missing%",
	}))

	assert.Equal(t, "postgres://localhost:5432/app", mustGet(t, tr, "app.dsn"))
	assert.Equal(t, "tls=true", mustGet(t, tr, "app.prefix"))
	assert.Equal(t, "localhost:%db.missing%", mustGet(t, tr, "app.partial"))
}

func TestReferences_EmbeddedNonScalarFails(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("db", map[string]any{"params": map[string]any{"user": "u"}, "host": "h"}))

	err := tr.Add("app", map[string]any{"bad": "%db.host%-%db.params%"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReferenceComposition)

	err = tr.Add("other", map[string]any{"bad": "prefix-%db.params%"})
	assert.ErrorIs(t, err, ErrInvalidReferenceComposition)
}

func TestReferences_UnresolvedWholeStringUntouched(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("app", map[string]any{"a": "%nope%", "pct": "100%", "two": "50% and 60%"}))

	assert.Equal(t, "%nope%", mustGet(t, tr, "app.a"))
	assert.Equal(t, "100%", mustGet(t, tr, "app.pct"))
	assert.Equal(t, "50% and 60%", mustGet(t, tr, "app.two"))
}

func TestReferences_BackslashAddress(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("db", map[string]any{"host": "h"}))
	require.NoError(t, tr.Add("app", map[string]any{"host": `%db\host%`}))

	assert.Equal(t, "h", mustGet(t, tr, "app.host"))
}

func TestReferences_Chained(t *testing.T) {
	for i := 0; i < 50; i++ {
		tr := New()

		require.NoError(t, tr.Add("ns", map[string]any{"a": "%ns.b%", "b": "%ns.c%", "c": "v"}))

		require.Equal(t, "v", mustGet(t, tr, "ns.a"), "attempt %d", i)
		require.Equal(t, "v", mustGet(t, tr, "ns.b"), "attempt %d", i)
	}
}

func TestReferences_ChainedAcrossNamespacesAndEmbedded(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("app", map[string]any{"url": "http://%net.addr%/api"}))
	require.NoError(t, tr.Add("net", map[string]any{"addr": "%net.host%:%net.port%", "host": "h", "port": 80}))

	assert.Equal(t, "http://h:80/api", mustGet(t, tr, "app.url"))
}

func TestReferences_CycleTerminates(t *testing.T) {
	for i := 0; i < 20; i++ {
		tr := New()

		require.NoError(t, tr.Add("ns", map[string]any{"a": "%ns.b%", "b": "%ns.a%"}))

		assert.Equal(t, "%ns.a%", mustGet(t, tr, "ns.a"))
		assert.Equal(t, "%ns.a%", mustGet(t, tr, "ns.b"))
	}
}

func TestReferences_FailedAddLeavesTreeUnchanged(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("db", map[string]any{"params": map[string]any{"user": "u"}, "host": "h"}))
	before := tr.All()

	err := tr.Add("db", map[string]any{"dsn": "%db.host%-%db.params%", "host": "other"})
	require.ErrorIs(t, err, ErrInvalidReferenceComposition)

	assert.Equal(t, before, tr.All())
	_, ok := tr.Get("db.dsn")
	assert.False(t, ok)
}
