// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type nested struct {
	File   string            `gluamapper:"file"`
	Levels map[string]string `gluamapper:"levels"`
}

type testConfig struct {
	Workers  int     `gluamapper:"workers"`
	KeySpace int     `gluamapper:"key_space"`
	Rate     float64 `gluamapper:"rate"`
	Name     string  `gluamapper:"name"`
	Logging  nested  `gluamapper:"logging"`
}

const testScript = `
local M = {}
M.workers = 3
M.key_space = 250
M.rate = 12.5
M.name = arg.name or "default"
M.logging = {
    file = "test.log",
    levels = {
        DEFAULT = "info",
    },
}
return M
`

func writeScript(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParse(t *testing.T) {
	fileName, cleanup := writeScript(t, testScript)
	defer cleanup()

	config := &testConfig{Workers: 99}
	err := configuration.ParseConfigurationFile(fileName, config, nil)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, 3, config.Workers, "workers")
	assert.Equal(t, 250, config.KeySpace, "key space")
	assert.Equal(t, 12.5, config.Rate, "rate")
	assert.Equal(t, "default", config.Name, "name")
	assert.Equal(t, "test.log", config.Logging.File, "log file")
	assert.Equal(t, "info", config.Logging.Levels["DEFAULT"], "log level")
}

func TestParseWithVariables(t *testing.T) {
	fileName, cleanup := writeScript(t, testScript)
	defer cleanup()

	config := &testConfig{}
	err := configuration.ParseConfigurationFile(fileName, config, map[string]string{"name": "soak"})
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "soak", config.Name, "name from variable")
}

func TestParseErrors(t *testing.T) {
	fileName, cleanup := writeScript(t, "return 42")
	defer cleanup()

	config := &testConfig{}
	err := configuration.ParseConfigurationFile(fileName, config, nil)
	assert.Equal(t, fault.ErrConfigNotTable, err, "non-table result")

	err = configuration.ParseConfigurationFile(fileName, *config, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-pointer")

	n := 0
	err = configuration.ParseConfigurationFile(fileName, &n, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "pointer to non-struct")

	err = configuration.ParseConfigurationFile(fileName+".missing", config, nil)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	bad, cleanupBad := writeScript(t, "return {")
	defer cleanupBad()
	err = configuration.ParseConfigurationFile(bad, config, nil)
	assert.NotNil(t, err, "syntax error")
}
