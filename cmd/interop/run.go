package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/germtb/interop/demo"
	"github.com/germtb/interop/logger"
)

type runOptions struct {
	serve    string
	duration time.Duration
	quiet    bool
}

func newRunCmd(global *globalOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the timers until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, global, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.serve, "serve", "", "serve the live page on this address, e.g. :8080")
	flags.DurationVar(&opts.duration, "duration", 0, "stop after this long (0 runs until interrupted)")
	flags.BoolVar(&opts.quiet, "quiet", false, "do not print mount changes")
	return cmd
}

func runDemo(cmd *cobra.Command, global *globalOptions, opts *runOptions) error {
	cfg, err := global.load(cmd)
	if err != nil {
		return err
	}

	appOpts := demo.Options{Logger: logger.Default()}
	if !opts.quiet {
		appOpts.Observer = newDisplay(cmd.OutOrStdout()).Show
	}
	app, err := demo.New(cfg, appOpts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Run(ctx)
	})
	if opts.serve != "" {
		srv := &http.Server{
			Addr:              opts.serve,
			Handler:           pageHandler(app.Document),
			ReadHeaderTimeout: 5 * time.Second,
			BaseContext:       func(net.Listener) context.Context { return ctx },
		}
		g.Go(func() error {
			logger.Default().Info("serving page", "addr", opts.serve)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return errors.Wrap(err, "serve page")
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}
	return g.Wait()
}
