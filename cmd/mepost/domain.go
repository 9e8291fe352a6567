package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mepost/mepost-go"
	"github.com/mepost/mepost-go/domainauth"
)

var errNotVerified = errors.New("domain not verified")

func newDomainCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domain",
		Short: "Manage sending domains",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <domain>",
			Short: "Register a sending domain and print the DNS records to publish",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.AddDomainResponse], error) {
					return c.AddDomain(ctx, mepost.AddDomainRequest{Domain: args[0]})
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List sending domains",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.BaseResult[mepost.CompanyDomain]], error) {
					return c.ListDomains(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "remove <domain>",
			Short: "Remove a sending domain",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.RemoveDomainResponse], error) {
					return c.RemoveDomain(ctx, mepost.RemoveDomainRequest{Domain: args[0]})
				})
			},
		},
		newDomainVerifyCmd(o),
	)

	return cmd
}

func newDomainVerifyCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <domain>",
		Short: "Report which DNS records of a domain are still unverified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
			defer cancel()

			resp, err := c.ListDomains(ctx)
			if err != nil {
				return err
			}
			d, ok := domainauth.Find(resp.Data.Data, args[0])
			if !ok {
				return fmt.Errorf("domain %s: %w", args[0], mepost.ErrDomainNotFound)
			}

			report := domainauth.Check(d)
			if err := printJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if !report.IsPassing() {
				return fmt.Errorf("%s: %w", args[0], errNotVerified)
			}
			return nil
		},
	}
}
