/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerctl

import (
	"os"
	"time"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/data"
	"github.com/spf13/cobra"
)

type completionView struct {
	CommandID string `json:"commandId" yaml:"commandId"`
	UpdateID  string `json:"updateId" yaml:"updateId"`
	Offset    int64  `json:"offset" yaml:"offset"`
}

type submitFlags struct {
	commandID   string
	userID      string
	workflowID  string
	actAs       []string
	readAs      []string
	files       []string
	dedup       time.Duration
	transaction bool
}

func newCommandsCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "Submit commands.",
	}
	f := &submitFlags{}
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Submit encoded commands and wait for their completion.",
		Long: `Submit the commands read from --file, each file holding one encoded Command message,
and wait until the ledger commits or rejects them. With --transaction the committed
transaction is printed as seen by the acting and reading parties.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := f.submission()
			if err != nil {
				return err
			}
			p, err := g.printer()
			if err != nil {
				return err
			}
			s, err := g.sdk()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if f.transaction {
				tx, err := s.Commands().SubmitAndWaitForTransactionForParties(cmd.Context(), sub)
				if err != nil {
					return err
				}
				return p.print(viewOf(tx))
			}
			completion, err := s.Commands().SubmitAndWait(cmd.Context(), sub)
			if err != nil {
				return err
			}
			return p.print(completionView{CommandID: sub.CommandID, UpdateID: completion.UpdateID, Offset: completion.Offset})
		},
	}
	flags := submit.Flags()
	flags.StringVar(&f.commandID, "command-id", "", "Sets the command id, the ledger deduplicates on it")
	flags.StringVar(&f.userID, "user-id", "", "Sets the user submitting, defaults to the user of the token")
	flags.StringVar(&f.workflowID, "workflow-id", "", "Sets the workflow id")
	flags.StringSliceVarP(&f.actAs, "act-as", "p", nil, "Sets the parties acting")
	flags.StringSliceVar(&f.readAs, "read-as", nil, "Sets the additional parties reading")
	flags.StringSliceVarP(&f.files, "file", "f", nil, "Reads an encoded command from the file, repeatable")
	flags.DurationVar(&f.dedup, "dedup", 0, "Sets the deduplication duration, 0 for the participant's maximum")
	flags.BoolVar(&f.transaction, "transaction", false, "Prints the committed transaction instead of its offset")
	cmd.AddCommand(submit)
	return cmd
}

func (f *submitFlags) submission() (*data.CommandsSubmission, error) {
	sub := &data.CommandsSubmission{
		WorkflowID: f.workflowID,
		UserID:     f.userID,
		CommandID:  f.commandID,
		ActAs:      f.actAs,
		ReadAs:     f.readAs,
	}
	if f.dedup > 0 {
		sub.DeduplicationDuration = &f.dedup
	}
	for _, file := range f.files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed reading command from [%s]", file)
		}
		sub.Commands = append(sub.Commands, raw)
	}
	return sub, sub.Validate()
}
