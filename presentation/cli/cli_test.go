package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		jmxAttribute = false
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestComponentsCommand(t *testing.T) {
	out, err := execute(t, "components")
	require.NoError(t, err)

	for _, name := range []string{"Button", "CheckBox", "LookupField", "PopupButton"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "masquerade/domain/interfaces")
}

func TestJmxCommand(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"status":200,"value":"cuba.web.x = 1"}`))
	}))
	defer srv.Close()
	t.Setenv("MASQUERADE_JMX_HOST", srv.URL)

	out, err := execute(t, "jmx", "app-core.cuba:type=ConfigStorage", "printAppProperties", "cuba.web")
	require.NoError(t, err)
	assert.Equal(t, "\"cuba.web.x = 1\"\n", out)
	assert.Equal(t, "exec", got["type"])
	assert.Equal(t, "printAppProperties", got["operation"])
	assert.Equal(t, []any{"cuba.web"}, got["arguments"])

	got = nil
	_, err = execute(t, "jmx", "app-core.cuba:type=ConfigStorage", "--attribute", "Enabled")
	require.NoError(t, err)
	assert.Equal(t, "read", got["type"])
	assert.Equal(t, "Enabled", got["attribute"])
}

func TestJmxOperation_AttributeArity(t *testing.T) {
	jmxAttribute = true
	t.Cleanup(func() { jmxAttribute = false })

	_, err := jmxOperation("Size", []string{"1", "2"})
	assert.Error(t, err)

	op, err := jmxOperation("Size", []string{"1"})
	require.NoError(t, err)
	assert.Equal(t, "write", string(op.Kind))
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("MASQUERADE_DRIVER", "lynx")

	_, err := execute(t, "components")
	assert.ErrorContains(t, err, "unknown driver")
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() {
		SetVersion("dev")
		_ = rootCmd.Flags().Set("version", "false")
	})

	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}
