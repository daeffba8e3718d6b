package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type renderCase struct {
	name                 string
	contents             []string
	envVars              map[string]string
	expectedMerged       string
	expectedRenderConfig string
	expectedError        error
}

func TestConfigRenderMerge(t *testing.T) {
	executeCases(t, []renderCase{
		{
			name:                 "later files override earlier ones",
			contents:             []string{"BatchSize=1\n", "BatchSize=2\nCacheSize=16\n", "BatchSize=3\n"},
			expectedRenderConfig: "BatchSize = 3\nCacheSize = 16\n",
		},
		{
			name:                 "overridden by a var nobody defines",
			contents:             []string{"Port=5576\n", "Port={{RPCPort}}\n"},
			expectedRenderConfig: "Port = {{RPCPort}}\n",
			expectedError:        ErrMissingVars,
		},
	})
}

func TestConfigRenderVarChains(t *testing.T) {
	executeCases(t, []renderCase{
		{
			name:                 "chain",
			contents:             []string{"MaxPending={{Pending}}\n", "Pending={{Default}}\nDefault=100\n"},
			expectedRenderConfig: "Default = 100\nMaxPending = 100\nPending = 100\n",
		},
		{
			name:                 "cycle of 3",
			contents:             []string{"A= {{B}}\n", "B= {{C}}\nC={{A}}\n"},
			expectedMerged:       "A = {{B}}\nB = {{C}}\nC = {{A}}\n",
			expectedRenderConfig: "A = {{B}}\nB = {{C}}\nC = {{A}}\n",
			expectedError:        ErrCycleVars,
		},
		{
			name:                 "self reference",
			contents:             []string{"A= {{A}}\n", ""},
			expectedRenderConfig: "A = {{A}}\n",
			expectedError:        ErrCycleVars,
		},
		{
			name:                 "cycle broken by an env var",
			contents:             []string{"A= {{B}}\n", "B= {{C}}\nC={{A}}\n"},
			envVars:              map[string]string{"UTCR_B": "4"},
			expectedRenderConfig: "A = 4\nB = 4\nC = 4\n",
		},
	})
}

func TestConfigRenderStrings(t *testing.T) {
	executeCases(t, []renderCase{
		{
			name:                 "composed path",
			contents:             []string{"PathRWData=\"/data\"\n", "DBPath= \"{{PathRWData}}/home.sqlite\"\n"},
			expectedRenderConfig: "DBPath = \"/data/home.sqlite\"\nPathRWData = \"/data\"\n",
		},
		{
			name:                 "env var keeps the string type",
			contents:             []string{"PathRWData=\"/data\"\n", "DBPath=\"{{PathRWData}}\"\n"},
			envVars:              map[string]string{"UTCR_PathRWData": "/env"},
			expectedRenderConfig: "DBPath = \"/env\"\nPathRWData = \"/data\"\n",
		},
		{
			name:                 "var defined only in the environment",
			contents:             []string{"DeploymentID={{ID}}\n"},
			envVars:              map[string]string{"UTCR_ID": "\"prod\""},
			expectedRenderConfig: "DeploymentID = \"prod\"\n",
		},
	})
}

func TestConfigRenderComplexStruct(t *testing.T) {
	defaultValues := `
[HomeBridge]
  DBPath = "/tmp/home.sqlite"
  CustodyAccount = "0x00000000000000000000000000000000000000c0"
[HomeToForeignRelayer]
  DBPath = "/tmp/relayer.sqlite"
`
	configFile := `
[HomeToForeignRelayer]
  DBPath = "{{HomeBridge.DBPath}}.relayer"
`
	var tests = []renderCase{
		{
			name:     "values of other sections",
			contents: []string{defaultValues, configFile},
			expectedRenderConfig: "\n[HomeBridge]\n  CustodyAccount = \"0x00000000000000000000000000000000000000c0\"\n" +
				"  DBPath = \"/tmp/home.sqlite\"\n\n[HomeToForeignRelayer]\n  DBPath = \"/tmp/home.sqlite.relayer\"\n",
		},
		// HomeBridge.DBPath keeps its value, the env var only changes the var reference
		{
			name:     "env var overrides the referenced value",
			contents: []string{defaultValues, configFile},
			envVars:  map[string]string{"UTCR_HomeBridge_DBPath": "/data/home"},
			expectedRenderConfig: "\n[HomeBridge]\n  CustodyAccount = \"0x00000000000000000000000000000000000000c0\"\n" +
				"  DBPath = \"/tmp/home.sqlite\"\n\n[HomeToForeignRelayer]\n  DBPath = \"/data/home.relayer\"\n",
		},
	}
	executeCases(t, tests)
}

func TestConfigRenderConvertFileToToml(t *testing.T) {
	jsonFile := `{
  "PathRWData": "/data",
  "HomeBridge": {
    "CacheSize": 16,
    "DestinationAddressScheme": "evm"
  }
}
`
	data, err := convertFileToToml(jsonFile, "json")
	require.NoError(t, err)
	require.Equal(t, "PathRWData = \"/data\"\n\n[HomeBridge]\n  CacheSize = 16.0\n  DestinationAddressScheme = \"evm\"\n", data)

	_, err = convertFileToToml("A: 1", "yaml")
	require.ErrorIs(t, err, ErrUnsupportedConfigFileType)
}

func executeCases(t *testing.T, tests []renderCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := make([]FileData, len(tt.contents))
			for i, content := range tt.contents {
				files[i] = FileData{Name: fmt.Sprintf("file%d", i), Content: content}
			}
			env := tt.envVars
			sut := &ConfigRender{
				Files: files,
				LookupEnv: func(key string) (string, bool) {
					v, ok := env[key]
					return v, ok
				},
				EnvPrefix: "UTCR",
			}
			if tt.expectedMerged != "" {
				merged, err := sut.Merge()
				require.NoError(t, err)
				require.Equal(t, tt.expectedMerged, merged)
			}
			res, err := sut.Render()
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			if len(tt.expectedRenderConfig) > 0 {
				require.Equal(t, tt.expectedRenderConfig, res)
			}
		})
	}
}
