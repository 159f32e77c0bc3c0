package tree

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Add / Get ─────────────────────────────────────────────────────────────────

func TestAddGet_ScalarRoundTrip(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("app.name", "confkeeper", Overwrite()))

	v, ok := tr.Get("app.name")
	require.True(t, ok)
	assert.Equal(t, "confkeeper", v)
}

func TestAdd_OverwriteIsIdempotent(t *testing.T) {
	tr := New()
	data := map[string]any{"host": "localhost", "port": 5432}

	require.NoError(t, tr.Add("db", data, Overwrite()))
	first, _ := tr.Get("db")

	require.NoError(t, tr.Add("db", data, Overwrite()))
	second, _ := tr.Get("db")

	assert.Equal(t, first, second)
}

func TestAdd_MergesMappings(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("ns", map[string]any{"a": 1}))
	require.NoError(t, tr.Add("ns", map[string]any{"b": 2}))

	v, ok := tr.Get("ns")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, v)
}

func TestAdd_MergeIsShallow(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("db", map[string]any{"params": map[string]any{"user": "u", "pass": "p"}}))
	require.NoError(t, tr.Add("db", map[string]any{"params": map[string]any{"pass": "x"}}))

	v, ok := tr.Get("db.params")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"pass": "x"}, v)
}

func TestAdd_NestedPathUpdatesExistingSubtree(t *testing.T) {
	tr := New()
	dbConfig := map[string]any{
		"driver": "mysql",
		"params": map[string]any{"user": "testuser", "pass": "testpass", "host": "localhost"},
	}

	require.NoError(t, tr.Add("database", dbConfig))
	require.NoError(t, tr.Add("database.params.user", "newuser"))
	require.NoError(t, tr.Add("database.params.main", true))

	params, ok := tr.Map("database.params")
	require.True(t, ok)
	assert.Equal(t, "newuser", params["user"])
	assert.Equal(t, "localhost", params["host"])
	assert.Equal(t, true, params["main"])

	driver, ok := tr.String("database.driver")
	require.True(t, ok)
	assert.Equal(t, "mysql", driver)
}

func TestAdd_OverwriteReplacesSubtree(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("db.params", map[string]any{"user": "u", "host": "h"}))
	require.NoError(t, tr.Add("db.params", map[string]any{"user": "v"}, Overwrite()))

	v, _ := tr.Get("db.params")
	assert.Equal(t, map[string]any{"user": "v"}, v)
}

func TestAdd_ScalarIntermediateIsReplaced(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("app.cache", "off"))
	require.NoError(t, tr.Add("app.cache.enabled", true))

	enabled, ok := tr.Bool("app.cache.enabled")
	require.True(t, ok)
	assert.True(t, enabled)
}

func TestAdd_EmptyNamespace(t *testing.T) {
	tr := New()

	assert.ErrorIs(t, tr.Add("..\\.", 1), ErrEmptyNamespace)
	assert.ErrorIs(t, tr.Add("", 1), ErrEmptyNamespace)
	assert.Empty(t, tr.Namespaces())
}

func TestAdd_DoesNotAliasCallerData(t *testing.T) {
	tr := New()
	params := map[string]any{"user": "u"}

	require.NoError(t, tr.Add("db", map[string]any{"params": params}))
	params["user"] = "changed"

	user, _ := tr.String("db.params.user")
	assert.Equal(t, "u", user)
}

func TestAdd_TypedMappingIsMergeable(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("ns", map[string]string{"a": "1"}))
	require.NoError(t, tr.Add("ns", map[string]any{"b": "2"}))

	a, ok := tr.String("ns.a")
	require.True(t, ok)
	assert.Equal(t, "1", a)
	assert.Equal(t, map[string]any{"ns": map[string]any{"a": "1", "b": "2"}}, tr.All())
}

func TestAdd_TypedSequenceIsIndexable(t *testing.T) {
	tr := New()

	require.NoError(t, tr.Add("ns", map[string]any{
		"hosts": []string{"a", "b"},
		"ports": [2]int{80, 443},
		"byId":  map[int]string{7: "x"},
		"raw":   []byte("keep"),
	}))

	host, ok := tr.String("ns.hosts.1")
	require.True(t, ok)
	assert.Equal(t, "b", host)

	port, ok := tr.Int("ns.ports.0")
	require.True(t, ok)
	assert.Equal(t, 80, port)

	id, _ := tr.String("ns.byId.7")
	assert.Equal(t, "x", id)

	raw, _ := tr.Get("ns.raw")
	assert.Equal(t, []byte("keep"), raw)
}

func TestAdd_TypedValuesGoThroughSubstitution(t *testing.T) {
	tr := New(WithConstants(map[string]string{"CONF_HOST": "db"}))

	require.NoError(t, tr.Add("ns", map[string][]string{"hosts": {"CONF_HOST"}}))

	host, _ := tr.String("ns.hosts.0")
	assert.Equal(t, "db", host)
}

func TestGet_ReturnsCopy(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Add("db", map[string]any{"params": map[string]any{"user": "u"}}))

	params, ok := tr.Map("db.params")
	require.True(t, ok)
	params["user"] = "changed"

	user, _ := tr.String("db.params.user")
	assert.Equal(t, "u", user)
}

func TestGet_MissingPath(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Add("db", map[string]any{"host": "h"}))

	v, ok := tr.Get("nonexistent.path")
	assert.False(t, ok)
	assert.Nil(t, v)

	_, ok = tr.Get("db.host.deeper")
	assert.False(t, ok)
}

func TestGet_NilIsAbsent(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Add("db", map[string]any{"debug": nil}))

	_, ok := tr.Get("db.debug")
	assert.False(t, ok)
}

func TestGet_BackslashSeparator(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Add(`phpwithoutenv\params`, map[string]any{"user": "testuser"}))

	v, ok := tr.Get(`phpwithoutenv\params\user`)
	require.True(t, ok)
	assert.Equal(t, "testuser", v)

	v, ok = tr.Get("phpwithoutenv..params.user")
	require.True(t, ok)
	assert.Equal(t, "testuser", v)
}

func TestGet_SequenceIndex(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Add("app", map[string]any{"hosts": []any{"a", "b"}}))

	v, ok := tr.Get("app.hosts.1")
	require.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = tr.Get("app.hosts.2")
	assert.False(t, ok)
	_, ok = tr.Get("app.hosts.x")
	assert.False(t, ok)
}

func TestGet_EmptyPathReturnsWholeTree(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Add("a", 1))
	require.NoError(t, tr.Add("b", map[string]any{"c": true}))

	v, ok := tr.Get("")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"a": 1, "b": map[string]any{"c": true}}, v)
}

// ── typed helpers ─────────────────────────────────────────────────────────────

func TestTypedHelpers_WrongType(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Add("app", map[string]any{"port": 8080, "name": "x"}))

	_, ok := tr.String("app.port")
	assert.False(t, ok)
	_, ok = tr.Bool("app.name")
	assert.False(t, ok)
	_, ok = tr.Map("app.name")
	assert.False(t, ok)

	port, ok := tr.Int("app.port")
	require.True(t, ok)
	assert.Equal(t, 8080, port)
}

// ── All / Restore / Namespaces ────────────────────────────────────────────────

func TestRestore_ReplacesContentVerbatim(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Add("old", 1))

	tr.Restore(map[string]any{"app": map[string]any{"ref": "%missing.path%", "dir": "__DIR__"}})

	_, ok := tr.Get("old")
	assert.False(t, ok)

	ref, _ := tr.String("app.ref")
	assert.Equal(t, "%missing.path%", ref)
	dir, _ := tr.String("app.dir")
	assert.Equal(t, "__DIR__", dir)
}

func TestAll_RoundTripsThroughRestore(t *testing.T) {
	src := New()
	require.NoError(t, src.Add("db", map[string]any{"host": "h", "params": map[string]any{"port": 1}}))
	require.NoError(t, src.Add("app", map[string]any{"conn": "%db.host%"}))

	dst := New()
	dst.Restore(src.All())

	assert.Equal(t, src.All(), dst.All())
	assert.Equal(t, []string{"app", "db"}, dst.Namespaces())
}

func TestTree_ConcurrentReaders(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Add("db", map[string]any{"host": "h"}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, ok := tr.Get("db.host")
			assert.True(t, ok)
			assert.Equal(t, "h", v)
		}()
	}
	wg.Wait()
}
