/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package sdk builds the ledger clients from configuration.
package sdk

import (
	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/platform/common/services/logging"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/core/commands"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/core/packages"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/core/updates"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/config"
	grpc2 "github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/grpc"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

var logger = logging.MustGetLogger()

// ConfigKey is the key of the ledger section of the configuration
const ConfigKey = "ledger"

type MetricsConfig struct {
	Enabled bool
}

type Config struct {
	Endpoint       grpc2.Endpoint
	KeepAlive      *grpc2.ClientKeepAliveConfig
	MaxRecvMsgSize int
	// AccessToken is sent with every call, unless the call overrides it
	AccessToken string
	Metrics     MetricsConfig
}

type options struct {
	registerer     prometheus.Registerer
	tracerProvider trace.TracerProvider
	dialOpts       []grpc.DialOption
}

type Option func(*options)

// WithRegisterer registers the metrics with r instead of the default registerer
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = r
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) {
		o.dialOpts = append(o.dialOpts, opts...)
	}
}

// SDK holds one connection to the ledger and the clients sharing it
type SDK struct {
	cc       *grpc.ClientConn
	updates  *updates.Client
	commands *commands.Client
	packages *packages.Client
}

func New(c Config, opts ...Option) (*SDK, error) {
	o := &options{registerer: prometheus.DefaultRegisterer}
	for _, opt := range opts {
		opt(o)
	}

	cc, err := grpc2.NewClient(grpc2.ClientConfig{
		Endpoint:       c.Endpoint,
		KeepAlive:      c.KeepAlive,
		MaxRecvMsgSize: c.MaxRecvMsgSize,
		Name:           "LedgerSDK",
	}, o.dialOpts...)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed connecting to ledger")
	}

	updateOpts := []updates.Option{updates.WithDefaultAccessToken(c.AccessToken)}
	commandOpts := []commands.Option{commands.WithDefaultAccessToken(c.AccessToken)}
	if o.tracerProvider != nil {
		updateOpts = append(updateOpts, updates.WithTracerProvider(o.tracerProvider))
		commandOpts = append(commandOpts, commands.WithTracerProvider(o.tracerProvider))
	}
	if c.Metrics.Enabled {
		p := metrics.NewProvider(o.registerer)
		updateOpts = append(updateOpts, updates.WithMetrics(updates.NewMetrics(p)))
		commandOpts = append(commandOpts, commands.WithMetrics(commands.NewMetrics(p)))
	}
	logger.Infof("ledger sdk for [%s], metrics [%v]", c.Endpoint.Address, c.Metrics.Enabled)

	return &SDK{
		cc:       cc,
		updates:  updates.NewClient(cc, updateOpts...),
		commands: commands.NewClient(cc, commandOpts...),
		packages: packages.NewClient(cc, packages.WithDefaultAccessToken(c.AccessToken)),
	}, nil
}

// NewFromConfig reads the ledger section of p. The TLS root cert path is relative to the config file.
func NewFromConfig(p *config.Provider, opts ...Option) (*SDK, error) {
	var c Config
	if err := p.UnmarshalKey(ConfigKey, &c); err != nil {
		return nil, errors.Wrapf(err, "failed reading [%s]", ConfigKey)
	}
	c.Endpoint.TLSRootCertFile = p.GetPath(config.Join(ConfigKey, "endpoint", "tlsRootCertFile"))
	return New(c, opts...)
}

func (s *SDK) Updates() *updates.Client {
	return s.updates
}

func (s *SDK) Commands() *commands.Client {
	return s.commands
}

func (s *SDK) Packages() *packages.Client {
	return s.packages
}

// Close closes the connection, the clients cannot be used afterwards
func (s *SDK) Close() error {
	return s.cc.Close()
}
