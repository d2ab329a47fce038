/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"

	kitmetrics "github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/prometheus"
	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	prom "github.com/prometheus/client_golang/prometheus"
)

var (
	replacersMutex sync.RWMutex
	replacers      = map[string]string{
		"github.com_hyperledger-labs_daml-ledger-go_platform": "dlg",
	}
)

func RegisterReplacer(s string, replaceWith string) {
	replacersMutex.Lock()
	defer replacersMutex.Unlock()

	if _, ok := replacers[s]; ok {
		panic("replacer already exists")
	}
	replacers[s] = replaceWith
}

func Replacers() map[string]string {
	replacersMutex.RLock()
	defer replacersMutex.RUnlock()
	return replacers
}

type CounterOpts struct {
	Namespace  string
	Subsystem  string
	Name       string
	Help       string
	LabelNames []string
}

type HistogramOpts struct {
	Namespace  string
	Subsystem  string
	Name       string
	Help       string
	Buckets    []float64
	LabelNames []string
}

// Provider creates collectors named after the package that asks for them,
// e.g. dlg_ledger_core_updates_calls for a counter named calls asked by core/updates.
type Provider struct {
	// Registerer defaults to the prometheus default registerer
	Registerer prom.Registerer
	// SkipRegisterErr reuses the collector already registered under the same name instead of panicking
	SkipRegisterErr bool
}

func NewProvider(r prom.Registerer) *Provider {
	return &Provider{Registerer: r, SkipRegisterErr: true}
}

func (p *Provider) applyNamespaceSubsystem(namespace, subsystem *string) {
	ns, ss := parseFullPkgName(GetPackageName(), Replacers())
	if len(*namespace) == 0 {
		*namespace = ns
	}
	if len(*subsystem) == 0 {
		*subsystem = ss
	}
}

// NewCounter returns a counter whose With takes label name and value pairs
func (p *Provider) NewCounter(o CounterOpts) kitmetrics.Counter {
	p.applyNamespaceSubsystem(&o.Namespace, &o.Subsystem)

	cv := prom.NewCounterVec(prom.CounterOpts{
		Namespace: o.Namespace,
		Subsystem: o.Subsystem,
		Name:      o.Name,
		Help:      o.Help,
	}, o.LabelNames)
	return prometheus.NewCounter(register(p, cv))
}

func (p *Provider) NewHistogram(o HistogramOpts) kitmetrics.Histogram {
	p.applyNamespaceSubsystem(&o.Namespace, &o.Subsystem)

	hv := prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: o.Namespace,
		Subsystem: o.Subsystem,
		Name:      o.Name,
		Help:      o.Help,
		Buckets:   o.Buckets,
	}, o.LabelNames)
	return prometheus.NewHistogram(register(p, hv))
}

// GetPackageName returns the package of the caller of the Provider method
func GetPackageName() string {
	pc, _, _, ok := runtime.Caller(3)
	if !ok {
		panic("GetPackageName: unable to retrieve caller information using runtime.Caller")
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		panic(fmt.Sprintf("GetPackageName: unable to retrieve function for PC: %v", pc))
	}
	fullFuncName := fn.Name()
	lastSlash := strings.LastIndex(fullFuncName, "/")
	dotAfterSlash := strings.Index(fullFuncName[lastSlash:], ".")
	return fullFuncName[:lastSlash+dotAfterSlash]
}

func parseFullPkgName(fullPkgName string, replacements map[string]string, params ...string) (string, string) {
	parts := append(strings.Split(fullPkgName, "/"), params...)
	subsystem := parts[len(parts)-1]
	namespace := strings.Join(parts[:len(parts)-1], "_")

	// longest first, so that a replacer is never shadowed by a prefix of itself
	olds := make([]string, 0, len(replacements))
	for old := range replacements {
		olds = append(olds, old)
	}
	sort.Slice(olds, func(i, j int) bool { return len(olds[i]) > len(olds[j]) })
	for _, old := range olds {
		namespace = strings.ReplaceAll(namespace, old, replacements[old])
	}
	namespace = strings.NewReplacer(".", "_", "-", "_").Replace(namespace)
	return namespace, subsystem
}

func register[C prom.Collector](p *Provider, c C) C {
	r := p.Registerer
	if r == nil {
		r = prom.DefaultRegisterer
	}
	err := r.Register(c)
	if err == nil {
		return c
	}
	are := prom.AlreadyRegisteredError{}
	if p.SkipRegisterErr && errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}
	if p.SkipRegisterErr {
		return c
	}
	panic(err)
}
