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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ledgerwatch/log/v3"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLoggerCtx configures the root logger from urfave/cli flags and returns it.
func SetupLoggerCtx(filePrefix string, ctx *cli.Context) log.Logger {
	var consoleJson = ctx.Bool(LogJsonFlag.Name) || ctx.Bool(LogConsoleJsonFlag.Name)
	var dirJson = ctx.Bool(LogDirJsonFlag.Name)

	consoleLevel, lErr := tryGetLogLevel(ctx.String(LogConsoleVerbosityFlag.Name))
	if lErr != nil {
		// try verbosity flag
		consoleLevel, lErr = tryGetLogLevel(ctx.String(LogVerbosityFlag.Name))
		if lErr != nil {
			consoleLevel = log.LvlInfo
		}
	}

	dirLevel, dErr := tryGetLogLevel(ctx.String(LogDirVerbosityFlag.Name))
	if dErr != nil {
		dirLevel = log.LvlInfo
	}

	if prefix := ctx.String(LogDirPrefixFlag.Name); prefix != "" {
		filePrefix = prefix
	}
	return initSeparatedLogging(filePrefix, ctx.String(LogDirPathFlag.Name), consoleLevel, dirLevel, consoleJson, dirJson)
}

// SetupLoggerCmd configures the root logger from the flags registered by CobraFlags.
func SetupLoggerCmd(filePrefix string, cmd *cobra.Command) log.Logger {
	flags := cmd.Flags()

	logJsonVal, ljerr := flags.GetBool(LogJsonFlag.Name)
	if ljerr != nil {
		logJsonVal = false
	}

	logConsoleJsonVal, lcjerr := flags.GetBool(LogConsoleJsonFlag.Name)
	if lcjerr != nil {
		logConsoleJsonVal = false
	}

	var consoleJson = logJsonVal || logConsoleJsonVal
	dirJson, djerr := flags.GetBool(LogDirJsonFlag.Name)
	if djerr != nil {
		dirJson = false
	}

	consoleLevel, lErr := tryGetLogLevel(flagValue(cmd, LogConsoleVerbosityFlag.Name))
	if lErr != nil {
		// try verbosity flag
		consoleLevel, lErr = tryGetLogLevel(flagValue(cmd, LogVerbosityFlag.Name))
		if lErr != nil {
			consoleLevel = log.LvlInfo
		}
	}

	dirLevel, dErr := tryGetLogLevel(flagValue(cmd, LogDirVerbosityFlag.Name))
	if dErr != nil {
		dirLevel = log.LvlInfo
	}

	if prefix := flagValue(cmd, LogDirPrefixFlag.Name); prefix != "" {
		filePrefix = prefix
	}
	return initSeparatedLogging(filePrefix, flagValue(cmd, LogDirPathFlag.Name), consoleLevel, dirLevel, consoleJson, dirJson)
}

func flagValue(cmd *cobra.Command, name string) string {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Value.String()
	}
	return ""
}

func initSeparatedLogging(
	filePrefix string,
	dirPath string,
	consoleLevel log.Lvl,
	dirLevel log.Lvl,
	consoleJson bool,
	dirJson bool) log.Logger {

	logger := log.Root()

	if consoleJson {
		logger.SetHandler(log.LvlFilterHandler(consoleLevel, log.StreamHandler(os.Stderr, log.JsonFormat())))
	} else if (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb" {
		logger.SetHandler(log.LvlFilterHandler(consoleLevel, log.StreamHandler(colorable.NewColorableStderr(), log.TerminalFormat())))
	} else {
		logger.SetHandler(log.LvlFilterHandler(consoleLevel, log.StreamHandler(os.Stderr, log.TerminalFormatNoColor())))
	}

	if len(dirPath) == 0 {
		logger.Info("no log dir set, console logging only")
		return logger
	}

	err := os.MkdirAll(dirPath, 0764)
	if err != nil {
		logger.Warn("failed to create log dir, console logging only", "err", err)
		return logger
	}

	dirFormat := log.TerminalFormatNoColor()
	if dirJson {
		dirFormat = log.JsonFormat()
	}

	rotating := &lumberjack.Logger{
		Filename:   filepath.Join(dirPath, filePrefix+".log"),
		MaxSize:    100, // megabytes
		MaxBackups: 3,
		MaxAge:     28, //days
	}
	userLog := log.StreamHandler(rotating, dirFormat)

	mux := log.MultiHandler(logger.GetHandler(), log.LvlFilterHandler(dirLevel, userLog))
	logger.SetHandler(mux)
	logger.Info("logging to file system", "log dir", dirPath, "file prefix", filePrefix, "log level", dirLevel, "json", dirJson)
	return logger
}

// tryGetLogLevel accepts level names and the numeric verbosity (0=crit .. 5=trace).
func tryGetLogLevel(s string) (log.Lvl, error) {
	lvl, err := log.LvlFromString(strings.ToLower(strings.TrimSpace(s)))
	if err == nil {
		return lvl, nil
	}
	l, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown level: %q", s)
	}
	if l < 0 || log.Lvl(l) > log.LvlTrace {
		return 0, fmt.Errorf("verbosity out of range: %d", l)
	}
	return log.Lvl(l), nil
}
