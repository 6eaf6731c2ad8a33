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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ledgerwatch/log/v3"
	"github.com/spf13/cobra"

	"github.com/erigontech/rpcgateway/cmd/rpcdaemon/cli"
	"github.com/erigontech/rpcgateway/cmd/rpcdaemon/cli/httpcfg"
	"github.com/erigontech/rpcgateway/cmd/rpcdaemon/commands"
	"github.com/erigontech/rpcgateway/cmd/rpcdaemon/health"
	"github.com/erigontech/rpcgateway/core/state"
	"github.com/erigontech/rpcgateway/kv"
	"github.com/erigontech/rpcgateway/turbo/logging"
	"github.com/erigontech/rpcgateway/turbo/transactions"
)

func main() {
	cmd, cfg := cli.RootCommand()
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer rootCancel()

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := logging.SetupLoggerCmd("rpcdaemon", cmd)
		return run(cmd.Context(), *cfg, logger)
	}

	if err := cmd.ExecuteContext(rootCtx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg httpcfg.HttpCfg, logger log.Logger) error {
	backend, conn, err := cli.RemoteServices(cfg, logger)
	if err != nil {
		logger.Error("Could not connect to backend", "err", err)
		return err
	}
	defer conn.Close()

	if err := cli.WaitForBackend(ctx, backend, cfg.HandshakeTimeout, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("backend handshake: %w", err)
	}

	db, err := cli.OpenDB(cfg, logger)
	if err != nil {
		logger.Error("Could not open chaindata", "err", err)
		return err
	}
	var (
		chaindata kv.DatabaseReader
		tracer    *transactions.TraceExecutor
	)
	if db != nil {
		defer db.Close()
		var cache *state.ReadCache
		if cfg.StateCache > 0 {
			if cache, err = state.NewReadCache(cfg.StateCache); err != nil {
				return err
			}
		}
		chaindata = db
		tracer = transactions.NewTraceExecutor(db, cfg.TraceWorkers, cache, logger)
	}

	apiList := commands.APIList(backend, chaindata, tracer, cfg)
	healthCheck := health.New(commands.NewNetAPIImpl(backend), commands.NewWeb3APIImpl(backend), logger)
	if err := cli.StartRpcServer(ctx, cfg, apiList, healthCheck.Check, logger); err != nil {
		logger.Error(err.Error())
		return err
	}
	return nil
}
