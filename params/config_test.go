package params_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/Lantah/go-lantah-base/params"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "scint.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	type TC struct {
		Content string
		Config  *params.ScintConfig
		Mark    error
	}

	tcs := []TC{
		{
			Content: "",
			Config:  params.DefaultConfig(),
			Mark:    oops.New("unexpected"),
		},
		{
			Content: "DefaultType = \"i128\"\nOutput = \"text\"\nScale = 7\n",
			Config: &params.ScintConfig{
				DefaultType: "i128",
				Output:      params.OutputText,
				Scale:       7,
			},
			Mark: oops.New("unexpected"),
		},
		{
			Content: "Scale = 2\n",
			Config: &params.ScintConfig{
				Output: params.OutputJSON,
				Scale:  2,
			},
			Mark: oops.New("unexpected"),
		},
		{
			Content: "DefaultType = \"i32\"\n",
			Mark:    oops.New("unexpected"),
		},
		{
			Content: "Output = \"xml\"\n",
			Mark:    oops.New("unexpected"),
		},
		{
			Content: "Scale = 78\n",
			Mark:    oops.New("unexpected"),
		},
		{
			Content: "Output = \n",
			Mark:    oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]", i), func(t *testing.T) {
			config, err := params.LoadConfig(writeConfig(t, tc.Content))
			if tc.Config == nil {
				require.Error(t, err, tc.Mark)
				require.True(t, params.Error.Has(err), tc.Mark)

				return
			}

			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Config, config, tc.Mark)
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := params.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	require.True(t, params.Error.Has(err))
}

func TestSetConfig(t *testing.T) {
	defer params.SetConfig(params.DefaultConfig())

	config := &params.ScintConfig{Output: params.OutputText}
	params.SetConfig(config)
	require.Same(t, config, params.GetConfig())
}

func TestVersionWithCommit(t *testing.T) {
	require.Equal(t, params.VersionWithMeta, params.VersionWithCommit("", ""))
	require.Equal(t, params.VersionWithMeta+"-0123abcd-20260101", params.VersionWithCommit("0123abcdef", "20260101"))
}
