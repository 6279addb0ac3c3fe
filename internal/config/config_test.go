package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ownerfi/listing-validate/pkg/constants"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigurationDefaults(t *testing.T) {
	path := writeConfigFile(t, "logging:\n  level: debug\n")

	conf, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", conf.Logging.Level)
	assert.Equal(t, float64(constants.MinPlausiblePrice), conf.Rules.MinPrice)
	assert.Equal(t, float64(constants.MaxPlausiblePrice), conf.Rules.MaxPrice)
	assert.Equal(t, float64(constants.UsuryInterestRate), conf.Rules.UsuryInterestRate)
	assert.Equal(t, float64(constants.EscrowTolerancePercent), conf.Rules.EscrowTolerancePercent)
}

func TestLoadConfigurationOverrides(t *testing.T) {
	path := writeConfigFile(t, `logging:
  level: info
  format: json
output:
  format: csv
rules:
  minPrice: 25000
  escrowTolerancePercent: 40
`)

	conf, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, "csv", conf.Output.Format)
	assert.Equal(t, 25000.0, conf.Rules.MinPrice)
	assert.Equal(t, 40.0, conf.Rules.EscrowTolerancePercent)
	// Untouched thresholds keep their defaults.
	assert.Equal(t, float64(constants.MaxPlausiblePrice), conf.Rules.MaxPrice)
	assert.Equal(t, float64(constants.MaxInterestRate), conf.Rules.MaxInterestRate)
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefaultConfigurationIsCoherent(t *testing.T) {
	conf := DefaultConfiguration()
	assert.Empty(t, conf.ValidateConfiguration())
}

func TestValidateConfigurationWarnings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Configuration)
		expected int
	}{
		{
			name:     "Inverted price bounds",
			mutate:   func(c *Configuration) { c.Rules.MaxPrice = c.Rules.MinPrice - 1 },
			expected: 1,
		},
		{
			name:     "Usury above max rate",
			mutate:   func(c *Configuration) { c.Rules.UsuryInterestRate = c.Rules.MaxInterestRate + 5 },
			expected: 1,
		},
		{
			name: "Escrow bands out of order",
			mutate: func(c *Configuration) {
				c.Rules.EscrowInfoPercent = c.Rules.EscrowWarningPercent + 1
			},
			expected: 1,
		},
		{
			name: "Multiple problems reported together",
			mutate: func(c *Configuration) {
				c.Rules.MinPrice = 0
				c.Rules.TermYearsLong = c.Rules.MaxTermYears + 10
			},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := DefaultConfiguration()
			tt.mutate(conf)
			assert.Len(t, conf.ValidateConfiguration(), tt.expected)
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, formatName := range []string{constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON} {
		assert.NoError(t, ValidateOutputFormat(formatName))
	}
	assert.Error(t, ValidateOutputFormat("xml"))
	assert.Error(t, ValidateOutputFormat(""))
}
