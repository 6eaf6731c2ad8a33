// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ledgerwatch/log/v3"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryGetLogLevel(t *testing.T) {
	for s, want := range map[string]log.Lvl{
		"info":  log.LvlInfo,
		"DEBUG": log.LvlDebug,
		"trace": log.LvlTrace,
		"warn":  log.LvlWarn,
		"3":     log.LvlInfo,
		"4":     log.LvlDebug,
		"0":     log.LvlCrit,
	} {
		lvl, err := tryGetLogLevel(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, lvl, s)
	}
	_, err := tryGetLogLevel("loud")
	require.Error(t, err)
	_, err = tryGetLogLevel("-1")
	require.Error(t, err)
	_, err = tryGetLogLevel("9")
	require.Error(t, err)
}

func TestDirLogging(t *testing.T) {
	defer log.Root().SetHandler(log.DiscardHandler())

	dir := t.TempDir()
	logger := initSeparatedLogging("rpcdaemon", dir, log.LvlCrit, log.LvlDebug, false, true)
	logger.Debug("written to file", "k", 1)
	logger.Trace("filtered out")

	data, err := os.ReadFile(filepath.Join(dir, "rpcdaemon.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"written to file"`)
	assert.NotContains(t, string(data), "filtered out")
}

func TestDirLoggingTerminalFormat(t *testing.T) {
	defer log.Root().SetHandler(log.DiscardHandler())

	dir := t.TempDir()
	logger := initSeparatedLogging("rpcdaemon", dir, log.LvlCrit, log.LvlInfo, false, false)
	logger.Warn("plain line", "k", 1)
	logger.Debug("too verbose")

	data, err := os.ReadFile(filepath.Join(dir, "rpcdaemon.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "plain line")
	assert.Contains(t, string(data), "k=1")
	assert.NotContains(t, string(data), "too verbose")
}

func TestSetupLoggerCmd(t *testing.T) {
	defer log.Root().SetHandler(log.DiscardHandler())

	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	CobraFlags(cmd)
	dir := t.TempDir()
	cmd.SetArgs([]string{"--log.dir.path", dir, "--log.dir.prefix", "custom", "--log.console.verbosity", "crit"})
	require.NoError(t, cmd.Execute())

	logger := SetupLoggerCmd("rpcdaemon", cmd)
	logger.Info("hello")
	data, err := os.ReadFile(filepath.Join(dir, "custom.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
