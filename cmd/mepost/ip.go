package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mepost/mepost-go"
)

func newIPCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ip",
		Short: "Manage dedicated outbound IPs",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List outbound IPs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[[]mepost.IPAddress], error) {
					return c.ListIPs(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "info <ip>",
			Short: "Show one outbound IP",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.IPAddress], error) {
					return c.GetIPInfo(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "start-warmup <ip>",
			Short: "Start warming up an IP",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.StartWarmUpResponse], error) {
					return c.StartWarmUp(ctx, mepost.StartWarmUpRequest{IPAddress: args[0]})
				})
			},
		},
		&cobra.Command{
			Use:   "cancel-warmup <ip>",
			Short: "Stop warming up an IP",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.CancelWarmUpResponse], error) {
					return c.CancelWarmUp(ctx, mepost.CancelWarmUpRequest{IPAddress: args[0]})
				})
			},
		},
		&cobra.Command{
			Use:   "set-group <ip> <group-name>",
			Short: "Move an IP into an IP group",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.SetIPGroupResponse], error) {
					return c.SetIPGroup(ctx, mepost.SetIPGroupRequest{IPAddress: args[0], GroupName: args[1]})
				})
			},
		},
	)

	return cmd
}

func newIPGroupCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ip-group",
		Short: "Manage outbound IP groups",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create an IP group",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.IPGroup], error) {
					return c.CreateIPGroup(ctx, mepost.CreateIPGroupRequest{GroupName: args[0]})
				})
			},
		},
		&cobra.Command{
			Use:   "get <name>",
			Short: "Show an IP group and its addresses",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.IPGroup], error) {
					return c.GetIPGroup(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List IP groups",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[[]mepost.IPGroup], error) {
					return c.ListIPGroups(ctx)
				})
			},
		},
	)

	return cmd
}
