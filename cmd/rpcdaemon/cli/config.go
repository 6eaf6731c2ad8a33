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

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/cenkalti/backoff/v4"
	"github.com/ledgerwatch/log/v3"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"google.golang.org/grpc"
	"gopkg.in/yaml.v3"

	"github.com/erigontech/rpcgateway/cmd/rpcdaemon/cli/httpcfg"
	"github.com/erigontech/rpcgateway/cmd/rpcdaemon/rpcservices"
	"github.com/erigontech/rpcgateway/gointerfaces/grpcutil"
	"github.com/erigontech/rpcgateway/gointerfaces/remote"
	"github.com/erigontech/rpcgateway/kv"
	"github.com/erigontech/rpcgateway/kv/leveldb"
	"github.com/erigontech/rpcgateway/metrics"
	"github.com/erigontech/rpcgateway/node"
	"github.com/erigontech/rpcgateway/rpc"
	"github.com/erigontech/rpcgateway/turbo/logging"
)

const ConfigFlag = "config"

func RootCommand() (*cobra.Command, *httpcfg.HttpCfg) {
	rootCmd := &cobra.Command{
		Use:   "rpcdaemon",
		Short: "rpcdaemon is JSON RPC server that connects to Erigon node for remote ETHBACKEND access",
	}
	logging.CobraFlags(rootCmd)

	cfg := httpcfg.Default()
	flags := rootCmd.PersistentFlags()
	flags.String(ConfigFlag, "", "Sets flags from a .toml or .yaml file, keys are flag names. Flags given on the command line win")
	flags.StringVar(&cfg.PrivateApiAddr, "private.api.addr", cfg.PrivateApiAddr, "private api network address, for example: 127.0.0.1:9090")
	flags.StringVar(&cfg.HttpListenAddress, "http.addr", cfg.HttpListenAddress, "HTTP-RPC server listening interface")
	flags.IntVar(&cfg.HttpPort, "http.port", cfg.HttpPort, "HTTP-RPC server listening port")
	flags.StringVar(&cfg.EngineHTTPListenAddress, "engine.addr", cfg.EngineHTTPListenAddress, "HTTP-RPC server listening interface for engineAPI")
	flags.IntVar(&cfg.EnginePort, "engine.port", cfg.EnginePort, "HTTP-RPC server listening port for the engineAPI")
	flags.StringVar(&cfg.JWTSecretPath, "authrpc.jwtsecret", "", "Path to the token that ensures safe connection between CL and EL")
	flags.StringVar(&cfg.TLSCertfile, "tls.cert", "", "certificate for client side TLS handshake")
	flags.StringVar(&cfg.TLSKeyFile, "tls.key", "", "key file for client side TLS handshake")
	flags.StringVar(&cfg.TLSCACert, "tls.cacert", "", "CA certificate for client side TLS handshake")
	flags.StringSliceVar(&cfg.HttpCORSDomain, "http.corsdomain", cfg.HttpCORSDomain, "Comma separated list of domains from which to accept cross origin requests (browser enforced)")
	flags.StringSliceVar(&cfg.HttpVirtualHost, "http.vhosts", cfg.HttpVirtualHost, "Comma separated list of virtual hostnames from which to accept requests (server enforced). Accepts '*' wildcard.")
	flags.BoolVar(&cfg.HttpCompression, "http.compression", cfg.HttpCompression, "Enable http compression")
	flags.StringSliceVar(&cfg.API, "http.api", cfg.API, "API's offered over the HTTP-RPC interface: eth,net,web3,debug,engine")
	flags.StringVar(&cfg.RpcAllowListFilePath, "rpc.accessList", "", "Specify granular (method-by-method) API allowlist")
	flags.UintVar(&cfg.RpcBatchConcurrency, "rpc.batch.concurrency", cfg.RpcBatchConcurrency, "Does limit amount of goroutines to process 1 batch request. Means 1 bach request can't overload server. 1 batch still can have unlimited amount of request")
	flags.IntVar(&cfg.RpcBatchLimit, "rpc.batch.limit", cfg.RpcBatchLimit, "Maximum number of requests in a batch")
	flags.BoolVar(&cfg.TraceRequests, "http.trace", false, "Trace HTTP requests with INFO level")
	flags.Var(&byteSizeValue{&cfg.GRPCMaxRecvSize}, "grpc.max.recv.size", "Maximum size of a message received from the backend, e.g. 200MB")
	flags.StringVar(&cfg.Chaindata, "chaindata", "", "path to the chaindata database, enables debug_traceCall")
	flags.IntVar(&cfg.TraceWorkers, "trace.workers", cfg.TraceWorkers, "Number of calls traced concurrently")
	flags.IntVar(&cfg.StateCache, "state.cache", cfg.StateCache, "Amount of historical state reads kept in memory. Set 0 to disable the cache")
	flags.DurationVar(&cfg.HandshakeTimeout, "backend.handshake.timeout", cfg.HandshakeTimeout, "How long to wait for a compatible backend at startup")
	flags.BoolVar(&cfg.MetricsEnabled, "metrics", false, "Enable metrics collection and reporting")
	flags.StringVar(&cfg.MetricsHTTP, "metrics.addr", cfg.MetricsHTTP, "Enable stand-alone metrics HTTP server listening interface")
	flags.IntVar(&cfg.MetricsPort, "metrics.port", cfg.MetricsPort, "Metrics HTTP server listening port, 0 serves metrics only on the HTTP-RPC listener")

	if err := rootCmd.MarkPersistentFlagFilename("rpc.accessList", "json"); err != nil {
		panic(err)
	}
	if err := rootCmd.MarkPersistentFlagFilename(ConfigFlag, "toml", "yaml"); err != nil {
		panic(err)
	}
	if err := rootCmd.MarkPersistentFlagDirname("chaindata"); err != nil {
		panic(err)
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if path, _ := cmd.Flags().GetString(ConfigFlag); path != "" {
			if err := SetFlagsFromConfigFile(cmd, path); err != nil {
				return err
			}
		}
		return nil
	}

	return rootCmd, &cfg
}

// SetFlagsFromConfigFile applies the key/value pairs of a .toml or .yaml file
// to every flag not set on the command line.
func SetFlagsFromConfigFile(cmd *cobra.Command, filePath string) error {
	fileConfig := make(map[string]interface{})

	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	switch filepath.Ext(filePath) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileConfig)
	case ".toml":
		err = toml.Unmarshal(data, &fileConfig)
	default:
		return errors.New("config files only accepted are .yaml and .toml")
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", filePath, err)
	}

	flags := cmd.Flags()
	for key, value := range fileConfig {
		flag := flags.Lookup(key)
		if flag == nil {
			return fmt.Errorf("unknown flag %q in %s", key, filePath)
		}
		if flag.Changed {
			continue
		}
		if reflect.ValueOf(value).Kind() == reflect.Slice {
			sliceInterface := value.([]interface{})
			s := make([]string, len(sliceInterface))
			for i, v := range sliceInterface {
				s[i] = fmt.Sprintf("%v", v)
			}
			if err := flags.Set(key, strings.Join(s, ",")); err != nil {
				return fmt.Errorf("failed setting %s flag with values=%s error=%s", key, s, err)
			}
			continue
		}
		if err := flags.Set(key, fmt.Sprintf("%v", value)); err != nil {
			return fmt.Errorf("failed setting %s flag with value=%v error=%s", key, value, err)
		}
	}
	return nil
}

var _ pflag.Value = (*byteSizeValue)(nil)

type byteSizeValue struct{ v *datasize.ByteSize }

func (b *byteSizeValue) String() string {
	if b.v == nil {
		return ""
	}
	return b.v.HR()
}

func (b *byteSizeValue) Set(s string) error { return b.v.UnmarshalText([]byte(s)) }

func (b *byteSizeValue) Type() string { return "datasize" }

// RemoteServices dials the backend. The connection is lazy: use WaitForBackend
// before serving.
func RemoteServices(cfg httpcfg.HttpCfg, logger log.Logger, dialOpts ...grpc.DialOption) (*rpcservices.RemoteBackend, *grpc.ClientConn, error) {
	if cfg.PrivateApiAddr == "" {
		return nil, nil, errors.New("--private.api.addr must be specified")
	}
	creds, err := grpcutil.TLS(cfg.TLSCACert, cfg.TLSCertfile, cfg.TLSKeyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("open tls cert: %w", err)
	}
	conn, err := grpcutil.Connect(creds, cfg.PrivateApiAddr, cfg.GRPCMaxRecvSize, dialOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to execution service privateApi: %w", err)
	}

	var observer rpcservices.CallObserver = rpcservices.NoopObserver{}
	if cfg.MetricsEnabled {
		observer = rpcservices.NewMetricsObserver()
	}
	return rpcservices.NewRemoteBackend(remote.NewETHBACKENDClient(conn), logger, observer), conn, nil
}

// WaitForBackend retries the version handshake with exponential backoff until
// the backend answers or timeout passes. Incompatible versions fail at once.
func WaitForBackend(ctx context.Context, backend *rpcservices.RemoteBackend, timeout time.Duration, logger log.Logger) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 250 * time.Millisecond
	policy.MaxInterval = 10 * time.Second
	policy.MaxElapsedTime = timeout

	return backoff.RetryNotify(func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		err := backend.EnsureVersionCompatibility(attemptCtx)
		if errors.Is(err, rpcservices.ErrIncompatibleVersion) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(policy, ctx), func(err error, next time.Duration) {
		logger.Warn("backend is not ready", "err", err, "retry in", next)
	})
}

// OpenDB opens --chaindata read-only. It returns a nil database when the flag is empty.
func OpenDB(cfg httpcfg.HttpCfg, logger log.Logger) (kv.RwDB, error) {
	if cfg.Chaindata == "" {
		logger.Info("no --chaindata given, debug namespace disabled")
		return nil, nil
	}
	logger.Trace("Creating chain db", "path", cfg.Chaindata)
	db, err := leveldb.Open(cfg.Chaindata, true, logger)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// StartRpcServer serves rpcAPI until ctx is done. Engine API methods get their
// own JWT protected listener.
func StartRpcServer(ctx context.Context, cfg httpcfg.HttpCfg, rpcAPI []rpc.API, healthCheck func(*http.Request) error, logger log.Logger) error {
	var defaultAPIList []rpc.API
	var engineAPI []rpc.API

	for _, api := range rpcAPI {
		if api.Namespace != "engine" {
			defaultAPIList = append(defaultAPIList, api)
		} else {
			engineAPI = append(engineAPI, api)
		}
	}

	allowListForRPC, err := rpc.ParseAllowListFile(cfg.RpcAllowListFilePath)
	if err != nil {
		return fmt.Errorf("could not parse rpc.accessList: %w", err)
	}

	// register apis and create handler stack
	httpEndpoint := fmt.Sprintf("%s:%d", cfg.HttpListenAddress, cfg.HttpPort)
	srv, err := newServer(cfg, defaultAPIList, allowListForRPC, logger)
	if err != nil {
		return fmt.Errorf("could not start register RPC apis: %w", err)
	}
	defer srv.Stop()

	routes := node.RouterConfig{Health: healthCheck}
	if cfg.MetricsEnabled {
		routes.Metrics = metrics.Handler()
	}
	httpHandler := node.NewHTTPHandlerStack(srv, cfg.HttpCORSDomain, cfg.HttpVirtualHost, cfg.HttpCompression)
	listener, addr, err := node.StartHTTPEndpoint(httpEndpoint, node.DefaultHTTPTimeouts, node.NewRouter(httpHandler, routes), logger)
	if err != nil {
		return fmt.Errorf("could not start RPC api: %w", err)
	}
	logger.Info("HTTP endpoint opened", "url", addr.String(), "apis", srv.Namespaces())
	defer func() {
		_ = node.StopHTTPEndpoint(listener, cfg.ShutdownTimeout)
		logger.Info("HTTP endpoint closed", "url", httpEndpoint)
	}()

	if len(engineAPI) > 0 {
		engineListener, enginesrv, engineHttpEndpoint, err := createEngineListener(cfg, engineAPI, allowListForRPC, logger)
		if err != nil {
			return fmt.Errorf("could not start RPC api for engine: %w", err)
		}
		defer func() {
			enginesrv.Stop()
			_ = node.StopHTTPEndpoint(engineListener, cfg.ShutdownTimeout)
			logger.Info("Engine HTTP endpoint close", "url", engineHttpEndpoint)
		}()
	}

	if cfg.MetricsEnabled && cfg.MetricsPort > 0 {
		metricsSrv, err := metrics.Setup(fmt.Sprintf("%s:%d", cfg.MetricsHTTP, cfg.MetricsPort), logger)
		if err != nil {
			return err
		}
		defer func() { _ = node.StopHTTPEndpoint(metricsSrv, cfg.ShutdownTimeout) }()
	}

	<-ctx.Done()
	logger.Info("Exiting...")
	return nil
}

func newServer(cfg httpcfg.HttpCfg, apis []rpc.API, allowList rpc.AllowList, logger log.Logger) (*rpc.Server, error) {
	srv := rpc.NewServer(cfg.RpcBatchConcurrency, cfg.TraceRequests, logger)
	srv.SetAllowList(allowList)
	srv.SetBatchLimit(cfg.RpcBatchLimit)
	for _, api := range apis {
		if err := srv.RegisterName(api.Namespace, api.Service); err != nil {
			return nil, err
		}
	}
	rpc.PreAllocateRPCMetricLabels(srv.Methods())
	return srv, nil
}

func createEngineListener(cfg httpcfg.HttpCfg, engineApi []rpc.API, allowList rpc.AllowList, logger log.Logger) (*http.Server, *rpc.Server, string, error) {
	engineHttpEndpoint := fmt.Sprintf("%s:%d", cfg.EngineHTTPListenAddress, cfg.EnginePort)

	jwtSecret, err := rpc.ObtainJWTSecret(cfg.JWTSecretPath, logger)
	if err != nil {
		return nil, nil, "", err
	}

	enginesrv, err := newServer(cfg, engineApi, allowList, logger)
	if err != nil {
		return nil, nil, "", fmt.Errorf("could not start register RPC engine api: %w", err)
	}

	engineHttpHandler := node.NewHTTPHandlerStack(enginesrv, cfg.HttpCORSDomain, cfg.HttpVirtualHost, cfg.HttpCompression)
	engineListener, addr, err := node.StartHTTPEndpoint(engineHttpEndpoint, node.DefaultHTTPTimeouts, node.NewRouter(engineHttpHandler, node.RouterConfig{JwtSecret: jwtSecret}), logger)
	if err != nil {
		enginesrv.Stop()
		return nil, nil, "", fmt.Errorf("could not start RPC api: %w", err)
	}
	logger.Info("HTTP endpoint opened for Engine API", "url", addr.String())

	return engineListener, enginesrv, addr.String(), nil
}
