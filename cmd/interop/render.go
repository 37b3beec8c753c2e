package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/germtb/interop/demo"
	"github.com/germtb/interop/logger"
)

func newRenderCmd(global *globalOptions) *cobra.Command {
	var elapsed int
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every mount once and print the page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := global.load(cmd)
			if err != nil {
				return err
			}
			app, err := demo.New(cfg, demo.Options{Logger: logger.Default()})
			if err != nil {
				return err
			}
			if err := app.RenderAll(elapsed); err != nil {
				return err
			}
			page, err := app.Document.HTML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), page)
			return err
		},
	}
	cmd.Flags().IntVar(&elapsed, "elapsed", 0, "elapsed seconds to render")
	return cmd
}
