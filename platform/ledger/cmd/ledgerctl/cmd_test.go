/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerctl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/api/ledgerpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"gopkg.in/yaml.v2"
)

type ledger struct {
	ledgerpb.UnimplementedUpdateServiceServer
	ledgerpb.UnimplementedPackageServiceServer
	ledgerpb.UnimplementedCommandServiceServer
	requests    chan *ledgerpb.GetUpdatesRequest
	submissions chan *ledgerpb.Commands
}

func (l *ledger) GetUpdates(req *ledgerpb.GetUpdatesRequest, srv ledgerpb.UpdateService_GetUpdatesServer) error {
	l.requests <- req
	var end int64
	if req.EndInclusive != nil {
		end = *req.EndInclusive
	}
	for i := req.BeginExclusive + 1; i <= end; i++ {
		if err := srv.Send(&ledgerpb.GetUpdatesResponse{OffsetCheckpoint: &ledgerpb.OffsetCheckpoint{Offset: i}}); err != nil {
			return err
		}
		err := srv.Send(&ledgerpb.GetUpdatesResponse{Transaction: &ledgerpb.Transaction{
			UpdateId: fmt.Sprintf("u%d", i),
			Offset:   i,
			Events: []*ledgerpb.Event{{Archived: &ledgerpb.ArchivedEvent{
				Offset:     i,
				ContractId: "c1",
				TemplateId: &ledgerpb.Identifier{PackageId: "pkg", ModuleName: "Iou", EntityName: "Iou"},
			}}},
		}})
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *ledger) GetUpdateById(_ context.Context, req *ledgerpb.GetUpdateByIdRequest) (*ledgerpb.GetUpdateResponse, error) {
	return nil, status.Errorf(codes.NotFound, "update [%s] not found", req.UpdateId)
}

func (l *ledger) GetPackageStatus(_ context.Context, req *ledgerpb.GetPackageStatusRequest) (*ledgerpb.GetPackageStatusResponse, error) {
	if req.PackageId == "known" {
		return &ledgerpb.GetPackageStatusResponse{PackageStatus: ledgerpb.PackageStatus_PACKAGE_STATUS_REGISTERED}, nil
	}
	return &ledgerpb.GetPackageStatusResponse{}, nil
}

func (l *ledger) SubmitAndWait(_ context.Context, req *ledgerpb.SubmitAndWaitRequest) (*ledgerpb.SubmitAndWaitResponse, error) {
	l.submissions <- req.Commands
	return &ledgerpb.SubmitAndWaitResponse{UpdateId: "u-" + req.Commands.CommandId, CompletionOffset: 4}, nil
}

func (l *ledger) SubmitAndWaitForTransaction(_ context.Context, req *ledgerpb.SubmitAndWaitForTransactionRequest) (*ledgerpb.SubmitAndWaitForTransactionResponse, error) {
	l.submissions <- req.Commands
	return &ledgerpb.SubmitAndWaitForTransactionResponse{Transaction: &ledgerpb.Transaction{
		UpdateId:  "u-" + req.Commands.CommandId,
		CommandId: req.Commands.CommandId,
		Offset:    4,
	}}, nil
}

func setup(t *testing.T) *ledger {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(ledgerpb.ServerCodec())
	l := &ledger{requests: make(chan *ledgerpb.GetUpdatesRequest, 4), submissions: make(chan *ledgerpb.Commands, 4)}
	ledgerpb.RegisterUpdateServiceServer(srv, l)
	ledgerpb.RegisterPackageServiceServer(srv, l)
	ledgerpb.RegisterCommandServiceServer(srv, l)
	go func() { _ = srv.Serve(lis) }()

	dialOptions = []grpc.DialOption{grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) })}
	t.Cleanup(func() {
		dialOptions = nil
		outWriter = os.Stdout
		srv.Stop()
	})
	return l
}

func run(t *testing.T, args ...string) (string, error) {
	out := &bytes.Buffer{}
	outWriter = out
	cmd := NewCmd()
	cmd.SetArgs(append([]string{"--endpoint", "passthrough:///bufnet"}, args...))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestStream(t *testing.T) {
	l := setup(t)

	out, err := run(t, "updates", "stream", "-p", "Alice,Bob", "--begin", "0", "--end", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	var tx transactionView
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &tx))
	assert.Equal(t, int64(3), tx.Offset)
	require.Len(t, tx.Events, 1)
	require.NotNil(t, tx.Events[0].Archived)
	assert.Equal(t, "c1", tx.Events[0].Archived.ContractID)

	req := <-l.requests
	parties := req.UpdateFormat.IncludeTransactions.EventFormat.FiltersByParty
	assert.Len(t, parties, 2)
	assert.True(t, req.UpdateFormat.IncludeTransactions.EventFormat.Verbose)
}

func TestStreamWithTemplateAndLimit(t *testing.T) {
	l := setup(t)

	out, err := run(t, "updates", "stream", "--template", "pkg:Iou:Iou", "--end", "5", "-n", "2", "-o", "yaml")
	require.NoError(t, err)

	docs := strings.Split(strings.TrimPrefix(out, "---\n"), "---\n")
	require.Len(t, docs, 2)
	var tx transactionView
	require.NoError(t, yaml.Unmarshal([]byte(docs[1]), &tx))
	assert.Equal(t, int64(2), tx.Offset)

	req := <-l.requests
	anyParty := req.UpdateFormat.IncludeTransactions.EventFormat.FiltersForAnyParty
	require.NotNil(t, anyParty)
	require.Len(t, anyParty.Cumulative, 1)
	assert.Equal(t, "Iou", anyParty.Cumulative[0].TemplateFilter.TemplateId.EntityName)
}

func TestStreamRejectsBadInput(t *testing.T) {
	setup(t)

	_, err := run(t, "updates", "stream", "--end", "5")
	assert.ErrorContains(t, err, "parties must be specified")

	_, err = run(t, "updates", "stream", "-p", "Alice", "--begin", "5", "--end", "3")
	assert.ErrorContains(t, err, "end offset precedes begin offset")

	_, err = run(t, "updates", "stream", "--template", "Iou")
	assert.ErrorContains(t, err, "package:module:entity")

	_, err = run(t, "updates", "stream", "-p", "Alice", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestGetNotFound(t *testing.T) {
	setup(t)

	_, err := run(t, "updates", "get", "--id", "missing", "-p", "Alice")
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestPackageStatus(t *testing.T) {
	setup(t)

	out, err := run(t, "packages", "status", "known", "unknown")
	require.NoError(t, err)
	assert.Equal(t,
		`{"packageId":"known","status":"Registered"}`+"\n"+`{"packageId":"unknown","status":"Unspecified"}`+"\n",
		out)
}

func TestEndpointFromEnvironment(t *testing.T) {
	setup(t)
	t.Setenv("LEDGERCTL_ENDPOINT", "passthrough:///bufnet")

	out := &bytes.Buffer{}
	outWriter = out
	cmd := NewCmd()
	cmd.SetArgs([]string{"packages", "status", "known"})
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Registered")

	t.Setenv("LEDGERCTL_ENDPOINT", "")
	cmd = NewCmd()
	cmd.SetArgs([]string{"packages", "status", "known"})
	cmd.SetErr(&bytes.Buffer{})
	assert.ErrorContains(t, cmd.Execute(), "endpoint must be specified")
}

func TestSubmit(t *testing.T) {
	l := setup(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "create.bin")
	second := filepath.Join(dir, "exercise.bin")
	require.NoError(t, os.WriteFile(first, []byte{0x0a, 0x00}, 0o600))
	require.NoError(t, os.WriteFile(second, []byte{0x12, 0x00}, 0o600))

	out, err := run(t, "commands", "submit", "--command-id", "cmd-1", "-p", "Alice", "-f", first, "-f", second, "--dedup", "1m")
	require.NoError(t, err)
	assert.Equal(t, `{"commandId":"cmd-1","updateId":"u-cmd-1","offset":4}`+"\n", out)

	cmds := <-l.submissions
	assert.Equal(t, [][]byte{{0x0a, 0x00}, {0x12, 0x00}}, cmds.Commands)
	assert.Equal(t, []string{"Alice"}, cmds.ActAs)
	assert.Equal(t, time.Minute, cmds.DeduplicationDuration.AsDuration())

	out, err = run(t, "commands", "submit", "--command-id", "cmd-2", "-p", "Alice", "-f", first, "--transaction")
	require.NoError(t, err)
	var tx transactionView
	require.NoError(t, json.Unmarshal([]byte(out), &tx))
	assert.Equal(t, "u-cmd-2", tx.UpdateID)
	assert.Nil(t, (<-l.submissions).DeduplicationDuration)
}

func TestSubmitRejectsBadInput(t *testing.T) {
	setup(t)

	_, err := run(t, "commands", "submit", "--command-id", "cmd-1", "-p", "Alice")
	assert.ErrorContains(t, err, "submission carries no commands")

	_, err = run(t, "commands", "submit", "--command-id", "cmd-1", "-p", "Alice", "-f", filepath.Join(t.TempDir(), "missing.bin"))
	assert.ErrorContains(t, err, "failed reading command")
}
