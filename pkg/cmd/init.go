package cmd

import (
	"strings"

	"github.com/ksysoev/weatherkit/pkg/core"
	"github.com/spf13/cobra"
)

type args struct {
	version    string
	LogLevel   string
	ConfigPath string
	TextFormat bool
}

type weatherFlags struct {
	Language  string
	Timezone  string
	Output    string
	DataSets  []string
	Latitude  float64
	Longitude float64
}

// InitCommands initializes and returns the root command for the application.
func InitCommands(version string) *cobra.Command {
	args := &args{
		version: version,
	}

	cmd := &cobra.Command{
		Use:           "wkcli",
		Short:         "WeatherKit command line client",
		Long:          "wkcli signs WeatherKit developer tokens and queries the WeatherKit REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&args.ConfigPath, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&args.LogLevel, "loglevel", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&args.TextFormat, "logtext", false, "log in text format, otherwise JSON")

	cmd.AddCommand(weatherCommand(args))
	cmd.AddCommand(tokenCommand(args))

	return cmd
}

func weatherCommand(arg *args) *cobra.Command {
	flags := &weatherFlags{}

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Fetch weather data for a coordinate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWeather(cmd.Context(), arg, flags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Float64Var(&flags.Latitude, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&flags.Longitude, "lon", 0, "longitude")
	cmd.Flags().StringVar(&flags.Language, "lang", core.DefaultLanguage, "response language")
	cmd.Flags().StringVar(&flags.Timezone, "timezone", core.DefaultTimezone, "timezone of the forecast")
	cmd.Flags().StringSliceVar(&flags.DataSets, "datasets", []string{
		string(core.DataSetCurrentWeather),
		string(core.DataSetForecastHourly),
	}, "data sets to request ("+strings.Join([]string{
		string(core.DataSetCurrentWeather),
		string(core.DataSetForecastDaily),
		string(core.DataSetForecastHourly),
		string(core.DataSetForecastNextHour),
		string(core.DataSetWeatherAlerts),
	}, ", ")+")")
	cmd.Flags().StringVar(&flags.Output, "output", "json", "output format (json, yaml)")

	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

func tokenCommand(arg *args) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print a valid developer token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToken(cmd.Context(), arg, cmd.OutOrStdout())
		},
	}
}
