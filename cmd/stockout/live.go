package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/stockout/internal/viz"
)

func newLiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live",
		Short: "replay a run interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	bindSimFlags(cmd)
	return cmd
}

func runLive(cmd *cobra.Command, args []string) error {
	res, err := simulate(cmd)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(viz.NewReplay(res), tea.WithAltScreen()).Run()
	return err
}
