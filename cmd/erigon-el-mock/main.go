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
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/erigontech/rpcgateway/ethdb/privateapi"
	"github.com/erigontech/rpcgateway/gointerfaces/grpcutil"
	"github.com/erigontech/rpcgateway/gointerfaces/remote"
	"github.com/erigontech/rpcgateway/turbo/logging"
)

var (
	addrFlag = cli.StringFlag{
		Name:  "private.api.addr",
		Usage: "address the ETHBACKEND service listens on",
		Value: "127.0.0.1:9090",
	}
	etherbaseFlag = cli.StringFlag{
		Name:  "etherbase",
		Usage: "address reported by Etherbase",
	}
	networkIDFlag = cli.Uint64Flag{
		Name:  "networkid",
		Usage: "network id reported by NetVersion",
		Value: 5,
	}
	peersFlag = cli.Uint64Flag{
		Name:  "peers",
		Usage: "peer count reported by NetPeerCount",
	}
	nodeNameFlag = cli.StringFlag{
		Name:  "node.name",
		Usage: "client version reported by ClientVersion",
		Value: "erigon/el-mock",
	}
	rateLimitFlag = cli.UintFlag{
		Name:  "grpc.rate.limit",
		Usage: "maximum concurrent streams per connection",
		Value: 16,
	}
)

func main() {
	app := &cli.App{
		Name:   "erigon-el-mock",
		Usage:  "serves ETHBACKEND from memory for rpcdaemon development",
		Flags:  append([]cli.Flag{&addrFlag, &etherbaseFlag, &networkIDFlag, &peersFlag, &nodeNameFlag, &rateLimitFlag}, logging.Flags...),
		Action: serve,
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(ctx *cli.Context) error {
	logger := logging.SetupLoggerCtx("erigon-el-mock", ctx)

	etherbase := ctx.String(etherbaseFlag.Name)
	if etherbase != "" && !common.IsHexAddress(etherbase) {
		return fmt.Errorf("invalid --%s: %q", etherbaseFlag.Name, etherbase)
	}
	backend := &privateapi.StaticBackend{
		Coinbase:  common.HexToAddress(etherbase),
		NetworkID: ctx.Uint64(networkIDFlag.Name),
		Peers:     ctx.Uint64(peersFlag.Name),
		Name:      ctx.String(nodeNameFlag.Name),
	}

	lis, err := net.Listen("tcp", ctx.String(addrFlag.Name))
	if err != nil {
		logger.Warn("[Exec] could not serve service", "reason", err)
		return err
	}

	s := grpcutil.NewServer(uint32(ctx.Uint(rateLimitFlag.Name)), nil)
	remote.RegisterETHBACKENDServer(s, privateapi.NewEthBackendServer(backend, logger))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus(remote.ETHBACKEND_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	go func() {
		<-ctx.Context.Done()
		healthServer.Shutdown()
		s.GracefulStop()
	}()

	logger.Info("Serving mock ETHBACKEND", "addr", lis.Addr().String())
	if err := s.Serve(lis); err != nil {
		logger.Error("failed to serve", "err", err)
		return err
	}
	return nil
}
