package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Asiantown/GeoEvents/pkg/datafile"
	"github.com/Asiantown/GeoEvents/pkg/plot"
	"github.com/Asiantown/GeoEvents/scenario"
)

var (
	plotSummary  string
	plotOutput   string
	plotTitle    string
	plotSubtitle string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render a scenario summary CSV as an HTML report",
	RunE:  runPlot,
}

func init() {
	plotCmd.Flags().StringVar(&plotSummary, "summary", "", "summary CSV written by the scenarios command")
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "", "HTML report path")
	plotCmd.Flags().StringVar(&plotTitle, "title", "", "report title")
	plotCmd.Flags().StringVar(&plotSubtitle, "subtitle", "", "report subtitle")
	_ = plotCmd.MarkFlagRequired("summary")
	_ = plotCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	var rows []scenario.Summary
	if err := withInput(plotSummary, func(r io.Reader) error {
		var rerr error
		rows, rerr = datafile.ReadSummary(r)
		return rerr
	}); err != nil {
		return fmt.Errorf("read summary: %w", err)
	}
	if err := withOutput(plotOutput, cmd.OutOrStdout(), func(w io.Writer) error {
		return plot.Render(w, rows, plotTitle, plotSubtitle)
	}); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
