/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"

	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/cmd/ledgerctl"
)

func main() {
	// On failure Cobra prints the usage message and error string, so we only
	// need to exit with a non-0 status
	if ledgerctl.NewCmd().Execute() != nil {
		os.Exit(1)
	}
}
