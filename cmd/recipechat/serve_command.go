package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"recipechat/internal/daemon"
	"recipechat/internal/logging"
	"recipechat/internal/preflight"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the recipe chat HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			rt, err := ctx.openRuntime(signalCtx)
			if err != nil {
				return err
			}

			for _, r := range preflight.Failed(preflight.RunAll(signalCtx, rt.cfg)) {
				logging.WarnWithContext(rt.logger, "preflight check failed", "preflight_failed",
					logging.String("check", r.Name),
					logging.String("detail", r.Detail),
					logging.String(logging.FieldImpact, "feature degraded; deterministic answers still work"),
				)
			}

			d, err := daemon.New(rt.cfg, rt.service, rt.logger, rt)
			if err != nil {
				_ = rt.Close()
				return fmt.Errorf("create daemon: %w", err)
			}
			defer d.Close()

			if err := d.Start(signalCtx); err != nil {
				return fmt.Errorf("start daemon: %w", err)
			}
			status := d.Status()
			rt.logger.Info("serving recipe chat API",
				logging.String("address", status.Address),
				logging.Bool("auth", rt.cfg.Paths.APIToken != ""),
				logging.Bool("cache", rt.cache != nil),
				logging.Bool("llm", rt.cfg.LLMEnabled()),
			)

			<-signalCtx.Done()
			rt.logger.Info("recipechat shutting down")
			return nil
		},
	}
}
