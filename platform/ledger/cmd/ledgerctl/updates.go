/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerctl

import (
	"context"
	"os"
	"os/signal"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/platform/common/utils/collections/iterators"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/core/updates"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/data"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type streamFlags struct {
	parties    []string
	begin      int64
	end        int64
	templates  []string
	interfaces []string
	verbose    bool
	blobs      bool
	limit      int
}

func newUpdatesCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updates",
		Short: "Stream or look up transactions.",
	}
	cmd.AddCommand(newStreamCmd(g))
	cmd.AddCommand(newGetCmd(g))
	return cmd
}

func newStreamCmd(g *globalFlags) *cobra.Command {
	f := &streamFlags{}
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Stream the transactions in (begin, end].",
		Long: `Stream the transactions in (begin, end], one per line.
Without --end the stream follows the ledger until interrupted.
Without --template and --interface every contract visible to the parties is read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return f.run(ctx, g)
		},
	}
	flags := cmd.Flags()
	flags.StringSliceVarP(&f.parties, "parties", "p", nil, "Sets the parties to read as")
	flags.Int64VarP(&f.begin, "begin", "b", 0, "Sets the exclusive begin offset")
	flags.Int64Var(&f.end, "end", -1, "Sets the inclusive end offset, negative to follow the ledger")
	flags.StringSliceVar(&f.templates, "template", nil, "Reads the contracts of the template, given as package:module:entity")
	flags.StringSliceVar(&f.interfaces, "interface", nil, "Reads the contracts implementing the interface, given as package:module:entity")
	flags.BoolVarP(&f.verbose, "verbose", "v", true, "Asks for verbose values")
	flags.BoolVar(&f.blobs, "blobs", false, "Asks for the created event blobs")
	flags.IntVarP(&f.limit, "limit", "n", 0, "Stops after n transactions, 0 for no limit")
	return cmd
}

func (f *streamFlags) selector() (updates.Selector, error) {
	if len(f.templates) == 0 && len(f.interfaces) == 0 {
		if len(f.parties) == 0 {
			return nil, errors.New("parties must be specified when reading every contract")
		}
		format := data.DefaultTransactionFormat(f.parties)
		format.EventFormat.Verbose = f.verbose
		if f.blobs {
			for p := range format.EventFormat.FiltersByParty {
				wildcard := data.IncludeCreatedEventBlob
				format.EventFormat.FiltersByParty[p] = data.CumulativeFilter{Wildcard: &wildcard}
			}
		}
		return updates.WithFormat(format), nil
	}

	filter := data.ContractFilter{IncludeCreatedEventBlob: f.blobs}
	for _, s := range f.templates {
		id, err := data.ParseIdentifier(s)
		if err != nil {
			return nil, err
		}
		filter.Templates = append(filter.Templates, id)
	}
	for _, s := range f.interfaces {
		id, err := data.ParseIdentifier(s)
		if err != nil {
			return nil, err
		}
		filter.Interfaces = append(filter.Interfaces, id)
	}
	return updates.ForContracts(filter, f.verbose, f.parties...), nil
}

// run receives on one goroutine and prints on another, so that a slow terminal does not stall
// the reading of the next transaction off the wire
func (f *streamFlags) run(ctx context.Context, g *globalFlags) error {
	selector, err := f.selector()
	if err != nil {
		return err
	}
	var end *int64
	if f.end >= 0 {
		end = &f.end
	}
	req, err := updates.NewRequest(f.begin, end, selector)
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

	// a failure on either side cancels the call
	eg, gctx := errgroup.WithContext(ctx)
	stream, err := s.Updates().Updates(gctx, req)
	if err != nil {
		return err
	}
	defer stream.Close()

	views := make(chan *transactionView)
	eg.Go(func() error {
		defer close(views)
		it := iterators.Map(iterators.Limit[data.Transaction](stream, f.limit), func(tx *data.Transaction) (*transactionView, error) {
			v := viewOf(tx)
			return &v, nil
		})
		return iterators.ForEach(it, func(v *transactionView) error {
			select {
			case views <- v:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	})
	eg.Go(func() error {
		for v := range views {
			if err := p.print(v); err != nil {
				return err
			}
		}
		return nil
	})
	err = eg.Wait()
	if ctx.Err() != nil {
		// interrupted
		return nil
	}
	return err
}

type getFlags struct {
	parties []string
	offset  int64
	id      string
}

func newGetCmd(g *globalFlags) *cobra.Command {
	f := &getFlags{}
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Look up a transaction by offset or by update id.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd.Context(), g)
		},
	}
	flags := cmd.Flags()
	flags.StringSliceVarP(&f.parties, "parties", "p", nil, "Sets the parties to read as")
	flags.Int64Var(&f.offset, "offset", 0, "Sets the offset of the transaction")
	flags.StringVar(&f.id, "id", "", "Sets the update id of the transaction")
	cmd.MarkFlagsMutuallyExclusive("offset", "id")
	cmd.MarkFlagsOneRequired("offset", "id")
	_ = cmd.MarkFlagRequired("parties")
	return cmd
}

func (f *getFlags) run(ctx context.Context, g *globalFlags) error {
	p, err := g.printer()
	if err != nil {
		return err
	}
	s, err := g.sdk()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	var tx *data.Transaction
	if len(f.id) != 0 {
		tx, err = s.Updates().GetTransactionByID(ctx, f.id, f.parties)
	} else {
		tx, err = s.Updates().GetTransactionByOffset(ctx, f.offset, f.parties)
	}
	if err != nil {
		return err
	}
	return p.print(viewOf(tx))
}
