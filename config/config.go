package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/lockbridge/bridge"
	"github.com/0xPolygon/lockbridge/common"
	"github.com/0xPolygon/lockbridge/log"
	"github.com/0xPolygon/lockbridge/relayer"
	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagComponents is the flag for components.
	FlagComponents = "components"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"
	// FlagMinConfig prints only the vars that depend on the deployment
	FlagMinConfig = "min"

	EnvVarPrefix       = "LOCKBRIDGE"
	ConfigType         = "toml"
	SaveConfigFileName = "lockbridge_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)
)

type ForbiddenField struct {
	FieldName string
	Reason    string
}

// forbiddenFieldsOnConfig lists the removed or renamed fields that are reported
// when still present in a config file
var forbiddenFieldsOnConfig = []ForbiddenField{}

/*
Config represents the configuration of a lockbridge node: the two bridge
instances, the relayers moving transfers between them and the JSON-RPC server.
The file is [TOML format]

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config
	// Common Config that affects all the services
	Common common.Config
	// HomeBridge holds the native asset, locks it and unlocks it
	HomeBridge bridge.Config
	// ForeignBridge mints and burns the wrapped representation
	ForeignBridge bridge.Config
	// RPC is the config for the RPC server
	RPC jRPC.Config
	// HomeToForeignRelayer redeems the locks of HomeBridge on ForeignBridge
	HomeToForeignRelayer relayer.Config
	// ForeignToHomeRelayer redeems the burns of ForeignBridge on HomeBridge
	ForeignToHomeRelayer relayer.Config
}

// Load loads the configuration
func Load(ctx *cli.Context) (*Config, error) {
	configFilePath := ctx.StringSlice(FlagCfg)
	filesData, err := readFiles(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	return LoadFile(filesData, saveConfigPath)
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileContent := string(content)
		if ext := strings.TrimPrefix(filepath.Ext(file), "."); ext != ConfigType {
			fileContent, err = convertFileToToml(fileContent, ext)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, ext, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

// LoadFile renders the defaults and files, optionally saves the result under
// saveConfigPath, and decodes it
func LoadFile(files []FileData, saveConfigPath string) (*Config, error) {
	fileData := make([]FileData, 0, len(files)+2) //nolint:mnd
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	renderedCfg, err := NewConfigRender(fileData, EnvVarPrefix).Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, SaveConfigFileName)
		if err := os.WriteFile(fullPath, []byte(renderedCfg), DefaultCreationFilePermissions); err != nil {
			err = fmt.Errorf("error writing config file: %s. Err: %w", fullPath, err)
			log.Error(err)
			return nil, err
		}
	}
	return LoadFileFromString(renderedCfg, ConfigType)
}

// LoadFileFromString decodes an already rendered configuration
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	if err := loadString(cfg, configFileData, configType, true, EnvVarPrefix); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks both bridges are usable and tells them apart
func (c *Config) Validate() error {
	if c.HomeBridge.Name != bridge.HomeName {
		return fmt.Errorf("HomeBridge.Name must be %q, got %q", bridge.HomeName, c.HomeBridge.Name)
	}
	if c.ForeignBridge.Name != bridge.ForeignName {
		return fmt.Errorf("ForeignBridge.Name must be %q, got %q", bridge.ForeignName, c.ForeignBridge.Name)
	}
	if c.HomeBridge.DBPath == c.ForeignBridge.DBPath {
		return fmt.Errorf("HomeBridge and ForeignBridge can't share the DBPath %s", c.HomeBridge.DBPath)
	}
	if err := c.HomeBridge.Validate(); err != nil {
		return err
	}
	return c.ForeignBridge.Validate()
}

func loadString(cfg *Config, configData string, configType string, allowEnvVars bool, envPrefix string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if allowEnvVars {
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	if err := v.ReadConfig(bytes.NewBufferString(configData)); err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(","))),
	}
	if err := v.Unmarshal(cfg, decodeHooks...); err != nil {
		return err
	}
	for _, key := range v.AllKeys() {
		if f := getForbiddenField(key); f != nil {
			log.Warnf("forbidden field %s in config file: %s", key, f.Reason)
		}
	}
	return nil
}

func getForbiddenField(fieldName string) *ForbiddenField {
	for _, forbiddenField := range forbiddenFieldsOnConfig {
		if forbiddenField.FieldName == fieldName || strings.HasPrefix(fieldName, forbiddenField.FieldName) {
			return &forbiddenField
		}
	}
	return nil
}

// SaveConfigToString encodes cfg as TOML
func SaveConfigToString(cfg Config) (string, error) {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Schema returns the JSON schema of Config
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:               "mapstructure",
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})
	schema.Title = "lockbridge config file"
	return json.MarshalIndent(schema, "", "  ")
}
