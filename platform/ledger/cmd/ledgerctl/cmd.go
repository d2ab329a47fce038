/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerctl

import (
	"io"
	"os"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/sdk"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/config"
	grpc2 "github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/grpc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
)

// Where the results are written to
var outWriter io.Writer = os.Stdout

type globalFlags struct {
	configPath string
	endpoint   string
	token      string
	tlsCA      string
	output     string
}

// dialOptions are added to every connection, tests use them to reach an in-process ledger
var dialOptions []grpc.DialOption

// EnvPrefix prefixes the environment variables standing in for the global flags,
// LEDGERCTL_TOKEN for --token
const EnvPrefix = "ledgerctl"

func NewCmd() *cobra.Command {
	g := &globalFlags{}
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:          "ledgerctl",
		Short:        "Read transactions off a Daml ledger and submit commands to it.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			g.configPath = v.GetString("configPath")
			g.endpoint = v.GetString("endpoint")
			g.token = v.GetString("token")
			g.tlsCA = v.GetString("tlsCA")
			g.output = v.GetString("output")
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVarP(&g.configPath, "configPath", "c", "", "Sets the directory holding ledger.yaml, the flags below override it")
	flags.StringVarP(&g.endpoint, "endpoint", "e", "", "Sets the ledger API endpoint (host:port)")
	flags.StringVarP(&g.token, "token", "t", "", "Sets the access token sent with every call")
	flags.StringVarP(&g.tlsCA, "tlsCA", "a", "", "Sets the CA certificate file that verifies the server, enables TLS")
	flags.StringVarP(&g.output, "output", "o", "json", "Sets the output format, json or yaml")

	cmd.AddCommand(newUpdatesCmd(g))
	cmd.AddCommand(newCommandsCmd(g))
	cmd.AddCommand(newPackagesCmd(g))
	return cmd
}

func (g *globalFlags) sdk() (*sdk.SDK, error) {
	var c sdk.Config
	if len(g.configPath) != 0 {
		p, err := config.NewProvider(g.configPath)
		if err != nil {
			return nil, err
		}
		if err := p.UnmarshalKey(sdk.ConfigKey, &c); err != nil {
			return nil, errors.Wrapf(err, "failed reading [%s]", sdk.ConfigKey)
		}
		c.Endpoint.TLSRootCertFile = p.TranslatePath(c.Endpoint.TLSRootCertFile)
	}
	if len(g.endpoint) != 0 {
		c.Endpoint.Address = g.endpoint
	}
	if len(g.token) != 0 {
		c.AccessToken = g.token
	}
	if len(g.tlsCA) != 0 {
		c.Endpoint.TLSEnabled = true
		c.Endpoint.TLSRootCertFile = g.tlsCA
	}
	if len(c.Endpoint.Address) == 0 {
		return nil, errors.Wrapf(grpc2.ErrInvalidAddress, "endpoint must be specified")
	}
	return sdk.New(c, sdk.WithDialOptions(dialOptions...))
}

func (g *globalFlags) printer() (*printer, error) {
	return newPrinter(outWriter, g.output)
}
