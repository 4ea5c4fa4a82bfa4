package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/stockout/internal/config"
)

var force bool

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list built-in item presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "name\tinventory\tprice\tproduction\tdemand\tpopularity\tfluctuation\thorizon")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%g\t%g\t%g%% / %gh\t%gh\n",
					name, p.InitialInventory, p.BasePrice, p.ProductionRate, p.BaseDemand,
					p.Popularity, p.FluctuationPct, p.FluctuationPeriod, p.Horizon)
			}
			return tw.Flush()
		},
	}
}

func newInitConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file with the resolved parameters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "stockout.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			cfg, name, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(path, config.FromSimulation(name, cfg)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	bindSimFlags(cmd)
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
