package cli

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestShowGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"show_default", nil},
		{"show_json", []string{"--format", "json"}},
		{"show_from_file", []string{"--from", filepath.Join("testdata", "input", "ada.yaml")}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeShow(t, tt.args...)
			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(out))
		})
	}
}
