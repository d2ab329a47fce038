/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "", Keys(map[string]int{}).String())
	assert.Equal(t, "Alice, Bob", Keys(map[string]int{"Bob": 1, "Alice": 2}).String())
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Format: "%{level} %{message}", Spec: "dlg.common.services=debug:warn", Writer: &buf}))
	t.Cleanup(func() { _ = Init(Config{}) })

	l := MustGetLogger()
	l.Debugf("shown")
	assert.Contains(t, buf.String(), "DEBUG shown")

	assert.ErrorContains(t, Init(Config{Spec: "a=b=c"}), "invalid logging configuration")
	assert.ErrorContains(t, Init(Config{Format: "%{unknown}"}), "invalid logging configuration")
}

func TestLoggerName(t *testing.T) {
	tests := []struct {
		pkg      string
		params   []string
		expected string
	}{
		{
			pkg:      "github.com/hyperledger-labs/daml-ledger-go/platform/ledger/core/updates",
			expected: "dlg.ledger.core.updates",
		},
		{
			pkg:      "github.com/hyperledger-labs/daml-ledger-go/platform/ledger/core/updates",
			params:   []string{"stream"},
			expected: "dlg.ledger.core.updates.stream",
		},
		{
			pkg:      "main",
			expected: "main",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, loggerName(tt.pkg, tt.params...))
	}
}
