package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/foomo/elementwalker/vo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	confComplete = `
---
baseurl: http://127.0.0.1:8080/docs/Element
output: out/elements.json
timeout: 3s
delay: 0s
agent: test-agent
checkrobots: true
metricsfile: out/metrics.prom
report: true
elements:
  - div
  - " table "
  - ""
...
`
	confMinimal = `
---
report: true
...
`
	confBrokenBaseURL = `
---
baseurl: /no/host
...
`
	confNegativeDelay = `
---
delay: -1s
...
`
)

func TestLoad(t *testing.T) {
	cnf, errCnf := Load([]byte(confComplete))
	require.NoError(t, errCnf)
	assert.Equal(t, "http://127.0.0.1:8080/docs/Element/", cnf.BaseURL)
	assert.Equal(t, "out/elements.json", cnf.Output)
	assert.Equal(t, time.Second*3, cnf.Timeout)
	assert.Equal(t, time.Duration(0), cnf.Delay)
	assert.Equal(t, "test-agent", cnf.Agent)
	assert.True(t, cnf.CheckRobots)
	assert.Equal(t, "out/metrics.prom", cnf.MetricsFile)
	assert.Equal(t, []vo.ElementName{"div", "table"}, cnf.ElementNames())

	cnf, errCnf = Load([]byte(confMinimal))
	require.NoError(t, errCnf)
	assert.True(t, cnf.Report)
	assert.Equal(t, DefaultBaseURL, cnf.BaseURL)
	assert.Equal(t, DefaultOutput, cnf.Output)
	assert.Equal(t, DefaultTimeout, cnf.Timeout)
	assert.Equal(t, DefaultDelay, cnf.Delay)
	assert.Equal(t, "", cnf.Agent)
	assert.False(t, cnf.CheckRobots)
	assert.Equal(t, Catalog(), cnf.ElementNames())
}

func TestLoadErrors(t *testing.T) {
	_, errCnf := Load([]byte(confBrokenBaseURL))
	assert.Error(t, errCnf)
	_, errCnf = Load([]byte(confNegativeDelay))
	assert.Error(t, errCnf)
	_, errCnf = Load([]byte("baseurl: ["))
	assert.Error(t, errCnf)
}

func TestGet(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(confComplete), 0o644))
	cnf, errCnf := Get(filename)
	require.NoError(t, errCnf)
	assert.Equal(t, "test-agent", cnf.Agent)

	_, errCnf = Get(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, errCnf)
}

func TestCatalog(t *testing.T) {
	names := Catalog()
	assert.Len(t, names, 127)
	assert.Equal(t, vo.ElementName("a"), names[0])
	assert.Equal(t, vo.ElementName("xmp"), names[len(names)-1])
	seen := map[vo.ElementName]bool{}
	for _, n := range names {
		assert.False(t, seen[n], "duplicate %s", n)
		seen[n] = true
	}
	names[0] = "changed"
	assert.Equal(t, vo.ElementName("a"), Catalog()[0])
}
