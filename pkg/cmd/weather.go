package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ksysoev/weatherkit/pkg/core"
	"gopkg.in/yaml.v3"
)

func runWeather(ctx context.Context, arg *args, flags *weatherFlags, out io.Writer) error {
	c, cleanup, err := newClient(arg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx = withRequestID(ctx)

	data, err := c.GetWeather(ctx, flags.Latitude, flags.Longitude,
		core.WithLanguage(flags.Language),
		core.WithTimezone(flags.Timezone),
		core.WithDataSets(toDataSets(flags.DataSets)...),
	)
	if err != nil {
		return err
	}

	return writeOutput(out, flags.Output, data)
}

func toDataSets(names []string) []core.DataSet {
	sets := make([]core.DataSet, len(names))
	for i, n := range names {
		sets[i] = core.DataSet(n)
	}

	return sets
}

func writeOutput(out io.Writer, format string, data any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)

		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	return nil
}
