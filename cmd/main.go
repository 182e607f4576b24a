package main

import (
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"vislib-axis/config"
	"vislib-axis/internal/chart"
	"vislib-axis/internal/format"
	"vislib-axis/internal/yaxis"
	"vislib-axis/lib/translation"
)

var rootCmd = &cobra.Command{
	Use:   "vislib-axis",
	Short: "Render y axes for charts",
	Long: `Renders the vertical value axis of a chart as SVG or PNG, either once from the
command line or as an HTTP service with saved presets.`,
	SilenceUsage: true,
}

func init() {
	config.InitConfig()
	setupLogging()
}

func main() {
	translation.Configure("locales", config.GetString("lang"))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	log.SetLevel(log.ErrorLevel)
	if config.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	log.Debugf("Starting vislib-axis with config:\n%s", spew.Sdump(config.AllSettings()))
}

func margin() yaxis.Margin {
	return yaxis.Margin{
		Top:    config.GetFloat64("margin_top"),
		Right:  config.GetFloat64("margin_right"),
		Bottom: config.GetFloat64("margin_bottom"),
		Left:   config.GetFloat64("margin_left"),
	}
}

// formatter picks label formatting for the configured language. Locale
// values like en_US.UTF-8 are accepted.
func formatter() *format.Formatter {
	lang := strings.SplitN(config.GetString("lang"), ".", 2)[0]
	tag, err := language.Parse(lang)
	if err != nil {
		log.Errorf("Unknown language %q, using English labels: %v", lang, err)
		return format.English
	}
	return format.New(tag)
}

func painterOption() chart.PainterOption {
	return chart.PainterOption{
		FontSize: config.GetFloat64("font_size"),
	}
}
