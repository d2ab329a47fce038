/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/platform/common/services/logging"
	viperutil "github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/config/viper"
	"github.com/spf13/viper"
)

const (
	CmdRoot = "ledger"
	// PathEnv overrides the directories the config file is searched in
	PathEnv = "LEDGER_CFG_PATH"
)

const OfficialPath = "/etc/daml-ledger-go"

var logOutput io.Writer = os.Stderr

// Provider reads ledger.yaml. Environment variables prefixed with LEDGER_ override its keys,
// LEDGER_ENDPOINT_ADDRESS sets endpoint.address.
type Provider struct {
	confPath string
	Backend  *viper.Viper

	mergeConfigMutex sync.Mutex
}

func NewProvider(confPath string) (*Provider, error) {
	p := &Provider{confPath: confPath}
	if err := p.load(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Provider) GetDuration(key string) time.Duration {
	return p.Backend.GetDuration(key)
}

func (p *Provider) GetBool(key string) bool {
	return p.Backend.GetBool(key)
}

func (p *Provider) GetInt(key string) int {
	return p.Backend.GetInt(key)
}

func (p *Provider) GetStringSlice(key string) []string {
	return p.Backend.GetStringSlice(key)
}

func (p *Provider) GetString(key string) string {
	return p.Backend.GetString(key)
}

func (p *Provider) IsSet(key string) bool {
	return p.Backend.IsSet(key)
}

func (p *Provider) UnmarshalKey(key string, rawVal any) error {
	return viperutil.EnhancedExactUnmarshal(p.Backend, key, rawVal)
}

// GetPath returns the path under key, relative paths are resolved against the config file's directory
func (p *Provider) GetPath(key string) string {
	return p.TranslatePath(p.Backend.GetString(key))
}

func (p *Provider) TranslatePath(path string) string {
	if path == "" {
		return ""
	}
	return TranslatePath(filepath.Dir(p.Backend.ConfigFileUsed()), path)
}

func (p *Provider) ConfigFileUsed() string {
	return p.Backend.ConfigFileUsed()
}

// MergeConfig merges raw yaml into the configuration
func (p *Provider) MergeConfig(raw []byte) error {
	p.mergeConfigMutex.Lock()
	defer p.mergeConfigMutex.Unlock()

	return p.Backend.MergeConfig(bytes.NewReader(raw))
}

func (p *Provider) load() error {
	p.Backend = viper.New()
	if err := p.initViper(p.Backend, CmdRoot); err != nil {
		return err
	}

	if err := p.Backend.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return errors.Errorf("could not find config file. "+
				"Please make sure that %s is set to a path "+
				"which contains %s.yaml", PathEnv, CmdRoot)
		}
		return errors.WithMessagef(err, "error when reading %s config file", CmdRoot)
	}

	if err := p.substituteEnv(); err != nil {
		return err
	}

	var lc logging.Config
	if err := p.UnmarshalKey("logging", &lc); err != nil {
		return errors.WithMessagef(err, "error when reading the logging section")
	}
	lc.Writer = logOutput
	return logging.Init(lc)
}

// substituteEnv overrides keys with the environment, viper does not apply it to UnmarshalKey.
// Example: LEDGER_LOGGING_SPEC sets logging.spec.
func (p *Provider) substituteEnv() error {
	prefix := strings.ToUpper(CmdRoot) + "_"
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, prefix) || strings.HasPrefix(e, PathEnv+"=") {
			continue
		}

		name, val, _ := strings.Cut(e, "=")
		if len(val) == 0 {
			continue
		}
		key := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(name, prefix), "_", "."))

		keys := strings.Split(key, ".")
		parent := strings.Join(keys[:len(keys)-1], ".")
		if len(keys) < 2 || !p.Backend.IsSet(parent) {
			_, _ = fmt.Fprintln(logOutput, "applying "+name+" - parent not found in "+CmdRoot+".yaml: "+parent)
			p.Backend.Set(key, val)
			continue
		}

		if len(p.Backend.GetStringMap(key)) > 0 {
			_, _ = fmt.Fprintln(logOutput, "-- skipping "+name+": cannot override maps")
			continue
		}

		root := p.Backend.GetStringMap(keys[0])
		if err := setDeepValue(root, keys, val); err != nil {
			return errors.Wrapf(err, "error when substituting %s", name)
		}
		p.Backend.Set(keys[0], root)
		_, _ = fmt.Fprintln(logOutput, "applying "+name)
	}
	return nil
}

func setDeepValue(m map[string]any, keys []string, value any) error {
	if len(keys) < 2 {
		return errors.New("can't set root key")
	}

	current := m
	for i := 1; i < len(keys)-1; i++ {
		next, ok := current[keys[i]].(map[string]any)
		if !ok {
			return errors.New("expected map at key " + keys[i])
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
	return nil
}

// initViper sets the directories the config file is searched in.
// PathEnv, when set, is the only one. Otherwise confPath, the working directory and OfficialPath, in order.
func (p *Provider) initViper(v *viper.Viper, configName string) error {
	if altPath := os.Getenv(PathEnv); altPath != "" {
		if !dirExists(altPath) {
			return errors.Errorf("%s %s does not exist", PathEnv, altPath)
		}
		v.AddConfigPath(altPath)
	} else {
		if len(p.confPath) != 0 {
			v.AddConfigPath(p.confPath)
		}
		v.AddConfigPath("./")
		if dirExists(OfficialPath) {
			v.AddConfigPath(OfficialPath)
		}
	}
	v.SetConfigName(configName)
	return nil
}

func dirExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

func TranslatePath(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
