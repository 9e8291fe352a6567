package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mepost/mepost-go"
)

func newMessageCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Send messages and inspect their delivery",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "info <schedule-id> <email>",
			Short: "Show opens and clicks of a message for one recipient",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.GetMessageInfoResponse], error) {
					return c.GetMessageInfo(ctx, args[0], args[1])
				})
			},
		},
		&cobra.Command{
			Use:   "schedule <schedule-id>",
			Short: "Show delivery statistics of a schedule",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.GetScheduleInfoResponse], error) {
					return c.GetScheduleInfo(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "cancel <schedule-id>",
			Short: "Cancel a scheduled message",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.Schedule], error) {
					return c.CancelScheduledMessage(ctx, mepost.CancelScheduledMessageRequest{ScheduledMessageID: args[0]})
				})
			},
		},
		newSendCmd(o, "send-transactional", "Send a transactional message",
			func(ctx context.Context, c *mepost.Client, req mepost.SendTransactionalRequest) (*mepost.Response[mepost.Schedule], error) {
				return c.SendTransactional(ctx, req)
			}),
		newSendCmd(o, "send-marketing", "Send a marketing message",
			func(ctx context.Context, c *mepost.Client, req mepost.SendMarketingRequest) (*mepost.Response[mepost.Schedule], error) {
				return c.SendMarketing(ctx, req)
			}),
		newSendCmd(o, "send-transactional-template", "Send a transactional message from a stored template",
			func(ctx context.Context, c *mepost.Client, req mepost.SendByTemplateRequest) (*mepost.Response[mepost.Schedule], error) {
				return c.SendTransactionalByTemplate(ctx, req)
			}),
		newSendCmd(o, "send-marketing-template", "Send a marketing message from a stored template",
			func(ctx context.Context, c *mepost.Client, req mepost.SendByTemplateRequest) (*mepost.Response[mepost.Schedule], error) {
				return c.SendMarketingByTemplate(ctx, req)
			}),
	)

	return cmd
}

// newSendCmd builds a command that reads a Req as JSON and sends it.
func newSendCmd[Req any](o *rootOptions, use, short string, send func(context.Context, *mepost.Client, Req) (*mepost.Response[mepost.Schedule], error)) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short + ". The request body is read as JSON from --file, or from stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req Req
			if err := readPayload(cmd, file, &req); err != nil {
				return err
			}
			return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.Schedule], error) {
				return send(ctx, c, req)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON request body; - reads stdin")
	return cmd
}
