package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/rankit"
)

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, tc := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(tc, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestQueryFlags(t *testing.T) {
	flags := queryFlags()

	t.Run("db is required", func(t *testing.T) {
		var dbFlag *cli.StringFlag
		for _, flag := range flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "db" {
				dbFlag = f
				break
			}
		}
		require.NotNil(t, dbFlag)
		assert.True(t, dbFlag.Required)
	})

	t.Run("threshold defaults to the engine default", func(t *testing.T) {
		var thresholdFlag *cli.Float64Flag
		for _, flag := range flags {
			if f, ok := flag.(*cli.Float64Flag); ok && f.Name == "threshold" {
				thresholdFlag = f
				break
			}
		}
		require.NotNil(t, thresholdFlag)
		assert.Equal(t, rankit.DefaultThreshold, thresholdFlag.Value)
	})

	t.Run("workers defaults to serial", func(t *testing.T) {
		var workersFlag *cli.IntFlag
		for _, flag := range flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "workers" {
				workersFlag = f
				break
			}
		}
		require.NotNil(t, workersFlag)
		assert.Equal(t, 1, workersFlag.Value)
	})
}

func TestBuiltinLineItems(t *testing.T) {
	items := builtinLineItems()
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.NotEmpty(t, item.Name)
		assert.GreaterOrEqual(t, item.AmountCents, int64(0))
	}
}

func TestLineItemsFromFile(t *testing.T) {
	t.Run("reads one item per line", func(t *testing.T) {
		path := t.TempDir() + "/items.jsonl"
		data := `{"Name":"Cloud Hosting","Category":"Cloud","AmountCents":48200}

{"Name":"GPU Server Purchase","Vendor":"Supermicro","AmountCents":1249900}
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		items, err := lineItemsFromFile(path)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Cloud Hosting", items[0].Name)
		assert.Equal(t, "Supermicro", items[1].Vendor)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := lineItemsFromFile("/no/such/file.jsonl")
		assert.Error(t, err)
	})

	t.Run("malformed line reports its number", func(t *testing.T) {
		path := t.TempDir() + "/bad.jsonl"
		require.NoError(t, os.WriteFile(path, []byte("{\"Name\":\"ok\"}\nnot json\n"), 0644))

		_, err := lineItemsFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})
}
