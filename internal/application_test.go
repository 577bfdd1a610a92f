package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hub/internal/config"
	"github.com/rocketscienceinc/tictactoe-hub/internal/tictactoe"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dictionaryPath := filepath.Join(t.TempDir(), "dic.txt")
	require.NoError(t, os.WriteFile(dictionaryPath, []byte("cat\ndog\nsun\n"), 0o600))

	return &config.Config{
		Seed:           42,
		DictionaryPath: dictionaryPath,
		Results:        config.Results{History: 10},
	}
}

func runScript(t *testing.T, conf *config.Config, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")

	require.NoError(t, run(context.Background(), logger, conf, input, &out))

	return out.String()
}

// computerGame selects a variant and lets two computer players finish it.
func computerGame(variant tictactoe.Variant) []string {
	return []string{strconv.Itoa(int(variant)), "", "c", "", "c"}
}

func TestRun(t *testing.T) {
	t.Run("Computer players finish every bounded variant", func(t *testing.T) {
		// Infinity and 4x4 have no move limit, so random play has no fixed end.
		for _, variant := range tictactoe.Variants() {
			if variant == tictactoe.VariantInfinity || variant == tictactoe.VariantFourByFour {
				continue
			}

			t.Run(variant.String(), func(t *testing.T) {
				// Given
				conf := testConfig(t)
				script := append(computerGame(variant), "0")

				// When
				out := runScript(t, conf, script...)

				// Then
				assert.Contains(t, out, "=== "+variant.String()+" ===")
				assert.True(t, strings.Contains(out, "wins!") || strings.Contains(out, "Draw!"), out)
				assert.Contains(t, out, "Goodbye!")
			})
		}
	})

	t.Run("Finished games show up in recent results", func(t *testing.T) {
		conf := testConfig(t)
		script := append(computerGame(tictactoe.VariantStandard), "15", "0")

		out := runScript(t, conf, script...)

		assert.Contains(t, out, "Recent results:")
		assert.Contains(t, out, "Standard Tic-Tac-Toe: ")
	})

	t.Run("Results are empty before any game", func(t *testing.T) {
		out := runScript(t, testConfig(t), "15", "0")

		assert.Contains(t, out, "No games played yet.")
	})

	t.Run("Invalid choices are reported and the menu continues", func(t *testing.T) {
		out := runScript(t, testConfig(t), "99", "abc", "0")

		assert.Equal(t, 2, strings.Count(out, "Invalid choice"))
		assert.Contains(t, out, "Goodbye!")
	})

	t.Run("Missing dictionary returns to the menu", func(t *testing.T) {
		// Given
		conf := testConfig(t)
		conf.DictionaryPath = filepath.Join(t.TempDir(), "missing.txt")

		// When
		out := runScript(t, conf, strconv.Itoa(int(tictactoe.VariantWord)), "0")

		// Then
		assert.Contains(t, out, "Could not play Word Tic-Tac-Toe")
		assert.Contains(t, out, "Goodbye!")
	})

	t.Run("End of input exits quietly", func(t *testing.T) {
		out := runScript(t, testConfig(t), "14", "alice")

		assert.NotContains(t, out, "Goodbye!")
	})

	t.Run("Unreachable Redis fails at startup", func(t *testing.T) {
		conf := testConfig(t)
		conf.Results.Enabled = true
		conf.Redis = config.Redis{Host: "127.0.0.1", Port: 1}

		err := run(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)), conf, strings.NewReader(""), io.Discard)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not connect to redis storage")
	})
}
