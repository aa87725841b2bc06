package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-apinsible/internal/prompt"
)

const (
	apipieFixture  = "../../internal/apidoc/apipie/testdata/apidoc.json"
	swaggerFixture = "../../internal/openapi/parser/testdata/swagger.json"
)

type scriptedDriver struct {
	inputs  []string
	selects []int
}

func (d *scriptedDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	val := d.inputs[0]
	d.inputs = d.inputs[1:]
	return val, nil
}

func (d *scriptedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return -1, errors.New("no select scripted")
	}
	val := d.selects[0]
	d.selects = d.selects[1:]
	return val, nil
}

func execute(t *testing.T, driver prompt.Driver, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := RootCmd(driver)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func apipieServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	data, err := os.ReadFile(apipieFixture)
	require.NoError(t, err)

	var paths []string
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path != "/apidoc/v2.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func TestGenerateFromServer(t *testing.T) {
	srv, paths := apipieServer(t)

	stdout, _, err := execute(t, nil, "domain", "--server", srv.URL)
	require.NoError(t, err)

	assert.Equal(t, []string{"/apidoc/v2.json"}, *paths)
	assert.Contains(t, stdout, "class ForemanDomainModule(ForemanTaxonomicEntityAnsibleModule):")
	assert.Contains(t, stdout, "            dns=dict(required=False, type='entity'),\n")
	assert.NotContains(t, stdout, "organization_ids")
}

func TestGenerateInfoFromFile(t *testing.T) {
	stdout, _, err := execute(t, nil, "domain", "--type", "info", "--apidoc", apipieFixture)
	require.NoError(t, err)

	assert.Contains(t, stdout, "class ForemanDomainInfo(ForemanInfoAnsibleModule):")
	assert.Contains(t, stdout, "subnet=dict(required=False, type='entity'),")
	assert.NotContains(t, stdout, "per_page=")
}

func TestGenerateOpenAPI(t *testing.T) {
	stdout, _, err := execute(t, nil, "domain", "--format", "openapi", "--apidoc", swaggerFixture)
	require.NoError(t, err)
	assert.Contains(t, stdout, "name=dict(required=True, type='str'),")

	_, _, err = execute(t, nil, "domain", "--format", "openapi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--apidoc is required")
}

func TestGenerateWritesOutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "foreman_domain.py")

	stdout, stderr, err := execute(t, nil, "domain", "--apidoc", apipieFixture, "--output", target)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "module written")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "class ForemanDomainModule(")
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	_, _, err := execute(t, nil, "domain", "--type", "report", "--apidoc", apipieFixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")

	_, _, err = execute(t, nil, "--apidoc", apipieFixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resource name is required")

	_, _, err = execute(t, nil, "operatingsystem", "--apidoc", apipieFixture)
	require.Error(t, err)

	srv, _ := apipieServer(t)
	stdout, _, err := execute(t, nil, "domain", "--server", srv.URL, "--api-version", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Empty(t, stdout)
}

func TestGenerateVerifySSLRejectsSelfSignedServer(t *testing.T) {
	srv, _ := apipieServer(t)

	_, _, err := execute(t, nil, "domain", "--server", srv.URL, "--verify-ssl")
	require.Error(t, err)
}

func TestGenerateInteractive(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"domain"}, selects: []int{0}}

	stdout, _, err := execute(t, driver, "--interactive", "--apidoc", apipieFixture)
	require.NoError(t, err)
	assert.Contains(t, stdout, "class ForemanDomainInfo(")
}

func TestServerDefaultsFromEnvironment(t *testing.T) {
	t.Setenv(serverEnv, "https://foreman.example.com")

	cmd := RootCmd(nil)
	flag := cmd.Flags().Lookup("server")
	require.NotNil(t, flag)
	assert.Equal(t, "https://foreman.example.com", flag.DefValue)
}

func TestChoiceValue(t *testing.T) {
	value := newChoiceValue("type", "resource", []string{"info", "resource"})
	assert.Equal(t, "resource", value.String())
	assert.Equal(t, "type", value.Type())
	require.NoError(t, value.Set(" info "))
	assert.Equal(t, "info", value.String())
	assert.Error(t, value.Set("report"))
	assert.Equal(t, "info", value.String())
}
