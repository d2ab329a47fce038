/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerctl

import (
	"github.com/spf13/cobra"
)

type packageStatusView struct {
	PackageID string `json:"packageId" yaml:"packageId"`
	Status    string `json:"status" yaml:"status"`
}

func newPackagesCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "Query the packages of the participant.",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "status <package id>...",
		Short: "Tell whether the packages are known to the participant.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := g.printer()
			if err != nil {
				return err
			}
			s, err := g.sdk()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			for _, id := range args {
				status, err := s.Packages().GetPackageStatus(cmd.Context(), id)
				if err != nil {
					return err
				}
				if err := p.print(packageStatusView{PackageID: id, Status: status.String()}); err != nil {
					return err
				}
			}
			return nil
		},
	})
	return cmd
}
