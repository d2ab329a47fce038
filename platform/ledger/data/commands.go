/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package data

import (
	"slices"
	"time"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/proto"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/api/ledgerpb"
	"google.golang.org/protobuf/types/known/durationpb"
)

// CommandsSubmission is a batch of commands the ledger applies atomically on behalf of ActAs.
// Commands and DisclosedContracts hold encoded Command and DisclosedContract messages; the client
// does not interpret them.
// At most one of DeduplicationDuration and DeduplicationOffset is set; with neither, the
// participant applies its maximum deduplication period.
type CommandsSubmission struct {
	WorkflowID                   string
	UserID                       string
	CommandID                    string
	Commands                     [][]byte
	DeduplicationDuration        *time.Duration
	DeduplicationOffset          *int64
	MinLedgerTimeAbs             time.Time
	MinLedgerTimeRel             time.Duration
	ActAs                        []string
	ReadAs                       []string
	SubmissionID                 string
	DisclosedContracts           [][]byte
	SynchronizerID               string
	PackageIDSelectionPreference []string
}

func (s *CommandsSubmission) Validate() error {
	if len(s.CommandID) == 0 {
		return ErrEmptyCommandID
	}
	if len(s.Commands) == 0 {
		return errors.Wrapf(ErrNoCommands, "command [%s]", s.CommandID)
	}
	if len(s.ActAs) == 0 {
		return errors.Wrapf(ErrMissingActAs, "command [%s]", s.CommandID)
	}
	if s.DeduplicationDuration != nil && s.DeduplicationOffset != nil {
		return errors.Wrapf(ErrConflictingDeduplication, "command [%s]", s.CommandID)
	}
	return nil
}

// Parties are the acting parties followed by the reading parties that do not also act
func (s *CommandsSubmission) Parties() []string {
	out := slices.Clone(s.ActAs)
	for _, p := range s.ReadAs {
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *CommandsSubmission) ToProto() *ledgerpb.Commands {
	out := &ledgerpb.Commands{
		WorkflowId:                   s.WorkflowID,
		UserId:                       s.UserID,
		CommandId:                    s.CommandID,
		Commands:                     cloneRaw(s.Commands),
		DeduplicationOffset:          cloneOffset(s.DeduplicationOffset),
		MinLedgerTimeAbs:             proto.ToTimestamp(s.MinLedgerTimeAbs),
		MinLedgerTimeRel:             proto.ToDuration(s.MinLedgerTimeRel),
		ActAs:                        slices.Clone(s.ActAs),
		ReadAs:                       slices.Clone(s.ReadAs),
		SubmissionId:                 s.SubmissionID,
		DisclosedContracts:           cloneRaw(s.DisclosedContracts),
		SynchronizerId:               s.SynchronizerID,
		PackageIdSelectionPreference: slices.Clone(s.PackageIDSelectionPreference),
	}
	if s.DeduplicationDuration != nil {
		out.DeduplicationDuration = durationpb.New(*s.DeduplicationDuration)
	}
	return out
}

func CommandsSubmissionFromProto(c *ledgerpb.Commands) *CommandsSubmission {
	out := &CommandsSubmission{
		WorkflowID:                   c.WorkflowId,
		UserID:                       c.UserId,
		CommandID:                    c.CommandId,
		Commands:                     cloneRaw(c.Commands),
		DeduplicationOffset:          cloneOffset(c.DeduplicationOffset),
		MinLedgerTimeAbs:             proto.FromTimestamp(c.MinLedgerTimeAbs),
		MinLedgerTimeRel:             proto.FromDuration(c.MinLedgerTimeRel),
		ActAs:                        slices.Clone(c.ActAs),
		ReadAs:                       slices.Clone(c.ReadAs),
		SubmissionID:                 c.SubmissionId,
		DisclosedContracts:           cloneRaw(c.DisclosedContracts),
		SynchronizerID:               c.SynchronizerId,
		PackageIDSelectionPreference: slices.Clone(c.PackageIdSelectionPreference),
	}
	if c.DeduplicationDuration != nil {
		d := c.DeduplicationDuration.AsDuration()
		out.DeduplicationDuration = &d
	}
	return out
}
