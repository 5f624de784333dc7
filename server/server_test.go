//go:build !js
// +build !js

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/simukka/brewfx/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMenu = "testdata/menu-config.json"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	catalog, err := LoadCatalog(testMenu)
	require.NoError(t, err)

	ts := httptest.NewServer(NewServer(zerolog.Nop(), palette.NewModel(), catalog, t.TempDir()).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog(testMenu)
	require.NoError(t, err)
	require.Len(t, c.Drinks, 3)

	latte := c.Drinks[0]
	assert.Equal(t, "latte", latte.ID)
	assert.Equal(t, "Espresso and steamed milk", latte.ShortDesc)
	assert.Equal(t, []string{"Oat milk available", "Served hot or iced"}, latte.Extras)
	assert.Equal(t, "cup", latte.Icon)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog("testdata/nope.json")
	assert.Error(t, err)
}

func TestParseCatalog_RequiresIDs(t *testing.T) {
	_, err := ParseCatalog([]byte(`{"drinks": [{"name": "Nameless"}]}`))
	assert.Error(t, err)
}

func TestCatalog_Unthemed(t *testing.T) {
	c, err := LoadCatalog(testMenu)
	require.NoError(t, err)
	assert.Equal(t, []string{"chai"}, c.Unthemed(palette.NewModel()))
}

func TestServer_Menu(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Drinks []MenuItem `json:"drinks"`
	}
	resp := getJSON(t, ts.URL+"/api/menu", &body)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	require.Len(t, body.Drinks, 3)
	themed := map[string]bool{}
	for _, d := range body.Drinks {
		themed[d.ID] = d.Themed
	}
	assert.Equal(t, map[string]bool{"latte": true, "mocha": true, "chai": false}, themed)
}

func TestServer_PaletteKnownDrink(t *testing.T) {
	ts := newTestServer(t)
	model := palette.NewModel()

	var v PaletteView
	getJSON(t, ts.URL+"/api/palette/mocha", &v)

	assert.Equal(t, palette.Mocha, v.ID)
	assert.Equal(t, model.AccentColor(palette.Mocha, palette.Dark), v.AccentDark)
	assert.Len(t, v.Particles, len(model.ParticleColors(palette.Mocha)))
	assert.True(t, strings.HasPrefix(v.Liquid.BaseColor, "#"))
	assert.Greater(t, v.Liquid.FillLevel, 0.0)
}

func TestServer_PaletteUnknownFallsBack(t *testing.T) {
	ts := newTestServer(t)

	var v PaletteView
	getJSON(t, ts.URL+"/api/palette/chai", &v)

	assert.Equal(t, "chai", v.Requested)
	assert.Equal(t, palette.DefaultID, v.ID)
	assert.Equal(t, 0.0, v.Liquid.FillLevel)
	assert.Equal(t, NewPaletteView(palette.NewModel(), palette.DefaultID).Particles, v.Particles)
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	getJSON(t, ts.URL+"/api/health", &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestServer_Index(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, buf.String(), `id="spice-canvas"`)
	assert.Contains(t, buf.String(), `id="liquid-canvas"`)
}

func TestServer_NilCatalogServesEmptyMenu(t *testing.T) {
	ts := httptest.NewServer(NewServer(zerolog.Nop(), palette.NewModel(), nil, t.TempDir()).Handler())
	defer ts.Close()

	var body struct {
		Drinks []MenuItem `json:"drinks"`
	}
	getJSON(t, ts.URL+"/api/menu", &body)
	assert.NotNil(t, body.Drinks)
	assert.Empty(t, body.Drinks)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger("json", &buf)
	require.NoError(t, err)

	logger.Info().Str("drink", "latte").Msg("hello")
	assert.Contains(t, buf.String(), `"drink":"latte"`)

	_, err = newLogger("xml", &buf)
	assert.Error(t, err)
}

func TestRenderSwatches(t *testing.T) {
	out := renderSwatches(palette.NewModel(), []string{palette.Latte, "chai"})

	assert.Contains(t, out, palette.Latte)
	assert.Contains(t, out, "particles")
	assert.Contains(t, out, "liquid")
	// unknown drinks render as the default, which has no liquid row
	assert.Equal(t, 1, strings.Count(out, "liquid"))
	assert.Contains(t, out, palette.DefaultID)
}

func TestCatalogCheckCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetArgs([]string{"catalog", "check", "--menu", testMenu, "--log-format", "json"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "3 drinks, 2 themed")
	assert.Contains(t, out.String(), "chai: no palette")
}

func TestCatalogCheckCommand_ReadsEnvironment(t *testing.T) {
	t.Setenv("BREWFX_MENU", testMenu)
	t.Setenv("BREWFX_LOG_FORMAT", "json")

	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetArgs([]string{"catalog", "check"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "3 drinks")
}

func TestRootCommand_RejectsUnknownLogFormat(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetArgs([]string{"catalog", "check", "--menu", testMenu, "--log-format", "yaml"})

	assert.Error(t, root.Execute())
}
