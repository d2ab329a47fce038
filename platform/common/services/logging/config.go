/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"io"
	"sync"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger/fabric-lib-go/common/flogging"
)

// Config is the logging section of ledger.yaml
type Config struct {
	// Format is "json", "logfmt" or a pattern of fabenc verbs such as %{level} and %{message}.
	// Empty selects DefaultFormat.
	Format string `mapstructure:"format"`
	// Spec enables levels per logger, e.g. "dlg.ledger.core=debug:warn". Empty means info.
	Spec string `mapstructure:"spec"`
	// Writer receives the records, os.Stderr when nil
	Writer io.Writer `mapstructure:"-"`
}

const (
	DefaultFormat = "%{color}%{time:2006-01-02 15:04:05.000 MST} [%{module}] %{shortfunc} -> %{level:.4s}%{color:reset} %{message}"
	DefaultSpec   = "info"
)

// Init applies c to every logger, including the ones already created
func Init(c Config) error {
	if len(c.Format) == 0 {
		c.Format = DefaultFormat
	}
	if len(c.Spec) == 0 {
		c.Spec = DefaultSpec
	}
	if err := flogging.Global.Apply(flogging.Config{Format: c.Format, LogSpec: c.Spec, Writer: c.Writer}); err != nil {
		return errors.Wrapf(err, "invalid logging configuration [format=%q, spec=%q]", c.Format, c.Spec)
	}
	return nil
}

var (
	replacersMutex sync.RWMutex
	replacers      = map[string]string{
		"github.com_hyperledger-labs_daml-ledger-go_platform": "dlg",
	}
)

// RegisterReplacer registers a new replacer for the logger name
func RegisterReplacer(s string, replaceWith string) {
	replacersMutex.Lock()
	defer replacersMutex.Unlock()

	_, ok := replacers[s]
	if ok {
		panic("replacer already exists")
	}

	replacers[s] = replaceWith
}

// Replacers returns the current replacers
func Replacers() map[string]string {
	replacersMutex.RLock()
	defer replacersMutex.RUnlock()
	return replacers
}
