package connector

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
)

type configStorage struct {
	JmxName `jmx:"app-core.cuba:type=ConfigStorage"`

	PrintAppProperties  func(prefix string) (string, error)
	GetAppPropertyNames func() ([]string, error)
	SetCacheSize        func(size int) error
	ClearCache          func(ctx context.Context) error
	Reload              func() error           `jmx:"op=reloadAll"`
	Version             func() (string, error) `jmx:"attr=Version"`

	unexported func() error
}

type recorder struct {
	objectName string
	ops        []entities.RemoteOperation
	reply      json.RawMessage
	err        error
}

func (r *recorder) Invoke(_ context.Context, op entities.RemoteOperation) (json.RawMessage, error) {
	r.ops = append(r.ops, op)
	return r.reply, r.err
}

func recording(rec *recorder) Option {
	return WithHandlerFactory(func(_ entities.JmxHost, objectName string) interfaces.CallHandler {
		rec.objectName = objectName
		return rec
	})
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestJmx_OperationMapping(t *testing.T) {
	t.Parallel()

	rec := &recorder{reply: json.RawMessage(`"ok"`)}
	c := New(recording(rec), WithLogger(quietLogger()))

	cs, err := Jmx[configStorage](c)
	require.NoError(t, err)
	assert.Equal(t, "app-core.cuba:type=ConfigStorage", rec.objectName)
	assert.Nil(t, cs.unexported)

	out, err := cs.PrintAppProperties("cuba.web")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	rec.reply = json.RawMessage(`["a","b"]`)
	names, err := cs.GetAppPropertyNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	rec.reply = nil
	require.NoError(t, cs.SetCacheSize(5))
	require.NoError(t, cs.ClearCache(context.Background()))
	require.NoError(t, cs.Reload())

	rec.reply = json.RawMessage(`"7.2"`)
	version, err := cs.Version()
	require.NoError(t, err)
	assert.Equal(t, "7.2", version)

	assert.Equal(t, []entities.RemoteOperation{
		{Kind: entities.RemoteExec, Name: "printAppProperties", Args: []any{"cuba.web"}},
		{Kind: entities.RemoteRead, Name: "AppPropertyNames", Args: []any{}},
		{Kind: entities.RemoteWrite, Name: "CacheSize", Args: []any{5}},
		{Kind: entities.RemoteExec, Name: "clearCache", Args: []any{}},
		{Kind: entities.RemoteExec, Name: "reloadAll", Args: []any{}},
		{Kind: entities.RemoteRead, Name: "Version", Args: []any{}},
	}, rec.ops)
}

func TestJmx_TransportErrorIsReturned(t *testing.T) {
	t.Parallel()

	failure := errors.New("connection refused")
	rec := &recorder{err: failure}
	cs, err := Jmx[configStorage](New(recording(rec), WithLogger(quietLogger())))
	require.NoError(t, err)

	out, err := cs.PrintAppProperties("x")
	assert.ErrorIs(t, err, failure)
	assert.Empty(t, out)
}

func TestJmx_InvalidContracts(t *testing.T) {
	t.Parallel()

	type unnamed struct {
		Ping func() error
	}
	type emptyName struct {
		JmxName `jmx:" "`
		Ping    func() error
	}
	type badResult struct {
		JmxName `jmx:"a:type=B"`
		Ping    func() string
	}
	type variadic struct {
		JmxName `jmx:"a:type=B"`
		Ping    func(args ...string) error
	}
	type badTag struct {
		JmxName `jmx:"a:type=B"`
		Ping    func() error `jmx:"nonsense"`
	}

	created := false
	c := New(WithLogger(quietLogger()), WithHandlerFactory(func(entities.JmxHost, string) interfaces.CallHandler {
		created = true
		return &recorder{}
	}))

	var cfg *entities.ConfigurationError
	_, err := Jmx[unnamed](c)
	assert.ErrorAs(t, err, &cfg)
	_, err = Jmx[emptyName](c)
	assert.ErrorAs(t, err, &cfg)
	_, err = Jmx[badResult](c)
	assert.ErrorAs(t, err, &cfg)
	_, err = Jmx[variadic](c)
	assert.ErrorAs(t, err, &cfg)
	_, err = Jmx[badTag](c)
	assert.ErrorAs(t, err, &cfg)
	_, err = Jmx[int](c)
	assert.ErrorAs(t, err, &cfg)

	assert.False(t, created, "no handler is created for an invalid contract")
}

func TestJolokiaEndpoint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http://localhost:7777/jolokia/", JolokiaEndpoint(":7777"))
	assert.Equal(t, "http://app:8080/jolokia/", JolokiaEndpoint("app:8080"))
	assert.Equal(t, "https://app/agent/", JolokiaEndpoint("https://app/agent"))
}

func TestJolokiaHandler(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		requests []map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "jmx" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		mu.Lock()
		requests = append(requests, req)
		mu.Unlock()

		if req["operation"] == "fail" {
			_, _ = w.Write([]byte(`{"status":404,"error_type":"javax.management.InstanceNotFoundException","error":"not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":200,"value":42}`))
	}))
	defer srv.Close()

	host := entities.JmxHost{Address: srv.URL, User: "jmx", Password: "secret"}
	h := NewJolokiaHandler(srv.Client(), host, "app:type=Stats")

	raw, err := h.Invoke(context.Background(), entities.RemoteOperation{Kind: entities.RemoteRead, Name: "Count"})
	require.NoError(t, err)
	assert.JSONEq(t, `42`, string(raw))

	_, err = h.Invoke(context.Background(), entities.RemoteOperation{Kind: entities.RemoteWrite, Name: "Enabled", Args: []any{false}})
	require.NoError(t, err)

	_, err = h.Invoke(context.Background(), entities.RemoteOperation{Kind: entities.RemoteExec, Name: "fail", Args: []any{"x"}})
	var jerr *JolokiaError
	require.ErrorAs(t, err, &jerr)
	assert.Equal(t, 404, jerr.Status)
	assert.Equal(t, "javax.management.InstanceNotFoundException", jerr.Type)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, requests, 3)
	assert.Equal(t, map[string]any{"type": "read", "mbean": "app:type=Stats", "attribute": "Count"}, requests[0])
	assert.Equal(t, map[string]any{"type": "write", "mbean": "app:type=Stats", "attribute": "Enabled", "value": false}, requests[1])
	assert.Equal(t, []any{"x"}, requests[2]["arguments"])

	unauthorized := NewJolokiaHandler(srv.Client(), entities.JmxHost{Address: srv.URL}, "app:type=Stats")
	_, err = unauthorized.Invoke(context.Background(), entities.RemoteOperation{Kind: entities.RemoteRead, Name: "Count"})
	require.ErrorAs(t, err, &jerr)
	assert.Equal(t, http.StatusUnauthorized, jerr.Status)
}
