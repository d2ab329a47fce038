/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package testlogger_test

import (
	"testing"

	"github.com/hyperledger-labs/daml-ledger-go/platform/common/services/logging"
	. "github.com/onsi/gomega"
)

func TestMustGetLogger_WithParams(t *testing.T) {
	RegisterTestingT(t)
	l := logging.MustGetLogger("some", "thing")

	name := l.Zap().Name()

	Expect(name).To(HaveSuffix("dlg.common.services.logging.testlogger_test.some.thing"))
}

func TestMustGetLogger_WithOutParams(t *testing.T) {
	RegisterTestingT(t)
	l := logging.MustGetLogger()

	name := l.Zap().Name()

	Expect(name).To(HaveSuffix("dlg.common.services.logging.testlogger_test"))
}

func level1() (string, error) {
	return level2()
}

func level2() (string, error) {
	return logging.GetPackageName()
}

func TestGetPackageName(t *testing.T) {
	RegisterTestingT(t)

	pkg, err := level1()
	Expect(err).NotTo(HaveOccurred())

	Expect(pkg).To(BeIdenticalTo("github.com/hyperledger-labs/daml-ledger-go/platform/common/services/logging/testlogger_test"))
}

func TestNewTestLogger(t *testing.T) {
	RegisterTestingT(t)
	l, recorder := logging.NewTestLogger(t, logging.Named("updates"))

	l.Infof("received [%d] transactions", 3)

	Expect(recorder.MessagesContaining("received")).To(ConsistOf("received [3] transactions"))
}
