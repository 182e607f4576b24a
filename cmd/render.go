package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"vislib-axis/config"
	"vislib-axis/internal/chart"
	"vislib-axis/internal/database"
	"vislib-axis/internal/yaxis"
)

var (
	renderYMin            float64
	renderYMax            float64
	renderWidth           float64
	renderHeight          float64
	renderMode            string
	renderDefaultYExtents bool
	renderFormat          string
	renderOut             string
	renderPreset          string
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().Float64Var(&renderYMin, "ymin", 0, "Smallest data value")
	renderCmd.Flags().Float64Var(&renderYMax, "ymax", 0, "Largest data value")
	renderCmd.Flags().Float64Var(&renderWidth, "width", 60, "Container width in pixels")
	renderCmd.Flags().Float64Var(&renderHeight, "height", 300, "Container height in pixels, margins included")
	renderCmd.Flags().StringVar(&renderMode, "mode", string(yaxis.ModeNormal), "Chart mode: normal, stacked, grouped, percentage, wiggle or silhouette")
	renderCmd.Flags().BoolVar(&renderDefaultYExtents, "default-y-extents", false, "Keep the data extents instead of extending them to zero")
	renderCmd.Flags().StringVar(&renderFormat, "format", "svg", "Output format: svg or png")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file, stdout when empty")
	renderCmd.Flags().StringVar(&renderPreset, "preset", "", "Render a saved preset instead of the flags")
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one axis to a file or stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		y, width, height, err := renderAxis()
		if err != nil {
			return err
		}

		var data []byte
		switch renderFormat {
		case "svg":
			data, err = y.SVG(width, height)
		case "png":
			data, err = y.Image(chart.PNG, width, height, painterOption())
		default:
			return errors.Errorf("unknown format %q", renderFormat)
		}
		if err != nil {
			return err
		}
		if data == nil {
			log.Infof("Axis is not drawn in %s mode", y.Mode())
			return nil
		}
		return writeOutput(cmd.OutOrStdout(), data)
	},
}

// renderAxis builds the axis from the flags or the named preset.
func renderAxis() (*yaxis.YAxis, float64, float64, error) {
	cfg := yaxis.Config{
		YMin: renderYMin,
		YMax: renderYMax,
		Attributes: yaxis.Attributes{
			DefaultYExtents: renderDefaultYExtents,
			Margin:          margin(),
		},
	}
	width, height := renderWidth, renderHeight
	modeName := renderMode

	if renderPreset != "" {
		if err := database.InitDB(config.GetString("db_path")); err != nil {
			return nil, 0, 0, err
		}
		defer database.CloseDB()

		p, err := database.GetPreset(renderPreset)
		if err != nil {
			return nil, 0, 0, errors.Wrapf(err, "could not load preset %s", renderPreset)
		}
		cfg.YMin, cfg.YMax = p.YMin, p.YMax
		cfg.Attributes.DefaultYExtents = p.DefaultYExtents
		width, height = p.Width, p.Height
		modeName = p.Mode
	}

	mode, err := yaxis.ParseMode(modeName)
	if err != nil {
		return nil, 0, 0, err
	}
	cfg.Attributes.Mode = mode
	return yaxis.New(cfg, yaxis.WithFormatter(formatter())), width, height, nil
}

func writeOutput(stdout io.Writer, data []byte) error {
	if renderOut == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(renderOut, data, 0644); err != nil {
		return errors.Wrapf(err, "could not write %s", renderOut)
	}
	log.Infof("Axis written to %s", renderOut)
	return nil
}
