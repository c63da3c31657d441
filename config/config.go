package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/agglayer/cascadekit/blocknotifier"
	"github.com/agglayer/cascadekit/claimreconciler"
	"github.com/agglayer/cascadekit/dispatcher"
	"github.com/agglayer/cascadekit/etherman"
	"github.com/agglayer/cascadekit/journal"
	"github.com/agglayer/cascadekit/log"
	"github.com/agglayer/cascadekit/pprof"
	"github.com/agglayer/cascadekit/prometheus"
	"github.com/agglayer/cascadekit/signal"
	"github.com/agglayer/cascadekit/signer"
	"github.com/agglayer/cascadekit/statusservice"
	"github.com/agglayer/cascadekit/submitter"
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
	// FlagDisableDefaultConfigVars is the flag to force all variables to be set on config-files
	FlagDisableDefaultConfigVars = "disable-default-config-vars"
	// FlagAllowDeprecatedFields is the flag to allow deprecated fields
	FlagAllowDeprecatedFields = "allow-deprecated-fields"

	EnvVarPrefix       = "CASCADE"
	ConfigType         = "toml"
	SaveConfigFileName = "cascadekit_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)

	blockFinalityMoved = "Etherman.BlockFinality is deprecated, " +
		"use BlockNotifier.BlockFinality instead"
	maxRetriesRenamed = "Submitter.MaxRetries is deprecated, " +
		"use Submitter.MaxAttempts instead"
	gasPriceSplit = "Submitter.GasPrice is deprecated, " +
		"use Submitter.BaseFee and Submitter.MaxFee instead"
	claimIntervalRenamed = "ClaimReconciler.Interval is deprecated, " +
		"use ClaimReconciler.Period instead"
	bridgeCacheTTLRenamed = "Dispatcher.BridgeCacheTTL is deprecated, " +
		"use Dispatcher.BridgeCacheRetention instead"
)

type DeprecatedFieldsError struct {
	// key is the rule and the value is the field's name that matches the rule
	Fields map[DeprecatedField][]string
}

func NewErrDeprecatedFields() *DeprecatedFieldsError {
	return &DeprecatedFieldsError{
		Fields: make(map[DeprecatedField][]string),
	}
}

func (e *DeprecatedFieldsError) AddDeprecatedField(fieldName string, rule DeprecatedField) {
	p := e.Fields[rule]
	e.Fields[rule] = append(p, fieldName)
}

func (e *DeprecatedFieldsError) Error() string {
	res := "found deprecated fields:"
	for rule, fieldsMatches := range e.Fields {
		res += fmt.Sprintf("\n\t- %s: %s", rule.Reason, strings.Join(fieldsMatches, ", "))
	}
	return res
}

type DeprecatedField struct {
	// If the field name ends with a dot means that match a section
	FieldNamePattern string
	Reason           string
}

var (
	deprecatedFieldsOnConfig = []DeprecatedField{
		{
			FieldNamePattern: "Etherman.BlockFinality",
			Reason:           blockFinalityMoved,
		},
		{
			FieldNamePattern: "Submitter.MaxRetries",
			Reason:           maxRetriesRenamed,
		},
		{
			FieldNamePattern: "Submitter.GasPrice",
			Reason:           gasPriceSplit,
		},
		{
			FieldNamePattern: "ClaimReconciler.Interval",
			Reason:           claimIntervalRenamed,
		},
		{
			FieldNamePattern: "Dispatcher.BridgeCacheTTL",
			Reason:           bridgeCacheTTLRenamed,
		},
	}
)

/*
Config represents the configuration of the cascadekit relayer
The file is [TOML format]

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config `mapstructure:"Log"`

	// Etherman is the connection to the watched chain
	Etherman etherman.Config `mapstructure:"Etherman"`

	// Signer holds the key used to send emitCascade and claimYield transactions
	Signer signer.SignerConfig `mapstructure:"Signer"`

	// BlockNotifier configures how new blocks are detected
	BlockNotifier blocknotifier.Config `mapstructure:"BlockNotifier"`

	// Dispatcher configures the contracts watched and the selector allow-list
	Dispatcher dispatcher.Config `mapstructure:"Dispatcher"`

	// Signal holds the fields written verbatim in every signal
	Signal signal.Config `mapstructure:"Signal"`

	// Submitter is the fee policy of the submission engine
	Submitter submitter.Config `mapstructure:"Submitter"`

	// ClaimReconciler configures the periodic yield claims
	ClaimReconciler claimreconciler.Config `mapstructure:"ClaimReconciler"`

	// Journal is the optional sqlite log of outcomes
	Journal journal.Config `mapstructure:"Journal"`

	// REST contains the configuration settings for the REST status service
	REST statusservice.Config `mapstructure:"REST"`

	// RPC is the config for the JSON-RPC server
	RPC jRPC.Config `mapstructure:"RPC"`

	// Prometheus is the configuration of the prometheus service
	Prometheus prometheus.Config `mapstructure:"Prometheus"`

	// Profiling is the configuration of the profiling service
	Profiling pprof.Config `mapstructure:"Profiling"`
}

// Load loads the configuration
func Load(ctx *cli.Context) (*Config, error) {
	configFilePath := ctx.StringSlice(FlagCfg)
	filesData, err := readFiles(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	defaultConfigVars := !ctx.Bool(FlagDisableDefaultConfigVars)
	allowDeprecatedFields := ctx.Bool(FlagAllowDeprecatedFields)
	return LoadFile(filesData, saveConfigPath, defaultConfigVars, allowDeprecatedFields)
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0, len(files))
	for _, file := range files {
		fileContent, err := readFileToString(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileExtension := getFileExtension(file)
		if fileExtension != ConfigType {
			fileContent, err = convertFileToToml(fileContent, fileExtension)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, fileExtension, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

func getFileExtension(fileName string) string {
	return strings.ToLower(fileName[strings.LastIndex(fileName, ".")+1:])
}

// LoadFileFromString decodes an already rendered configuration
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	err := loadString(cfg, configFileData, configType, true, EnvVarPrefix)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

func SaveConfigToFile(cfg *Config, saveConfigPath string) error {
	marshaled, err := toml.Marshal(cfg)
	if err != nil {
		log.Errorf("Can't marshal config to toml. Err: %w", err)
		return err
	}
	return SaveDataToFile(saveConfigPath, "final config file", marshaled)
}

func SaveDataToFile(fullPath, reason string, data []byte) error {
	log.Infof("Writing %s to: %s", reason, fullPath)
	err := os.WriteFile(fullPath, data, DefaultCreationFilePermissions)
	if err != nil {
		err = fmt.Errorf("error writing %s to file %s. Err: %w", reason, fullPath, err)
		log.Error(err)
		return err
	}
	return nil
}

// LoadFile merges the built-in defaults with files, renders the vars and decodes the result
func LoadFile(files []FileData, saveConfigPath string,
	setDefaultVars bool, allowDeprecatedFields bool) (*Config, error) {
	log.Infof("Loading configuration: saveConfigPath: %s, setDefaultVars: %t, allowDeprecatedFields: %t",
		saveConfigPath, setDefaultVars, allowDeprecatedFields)
	fileData := make([]FileData, 0, len(files)+3) //nolint:mnd
	if setDefaultVars {
		log.Info("Setting default vars")
		fileData = append(fileData, FileData{Name: "default_mandatory_vars", Content: DefaultMandatoryVars})
	}
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	merger := NewConfigRender(fileData, EnvVarPrefix)

	renderedCfg, err := merger.Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, fmt.Sprintf("%s.merged", SaveConfigFileName))
		err = SaveDataToFile(fullPath, "merged config file", []byte(renderedCfg))
		if err != nil {
			return nil, err
		}
	}
	cfg, err := LoadFileFromString(renderedCfg, ConfigType)
	// If allowDeprecatedFields is true, we ignore the deprecated fields
	if err != nil && allowDeprecatedFields {
		var customErr *DeprecatedFieldsError
		if errors.As(err, &customErr) {
			log.Warnf("detected deprecated fields: %s", err.Error())
			err = nil
		}
	}

	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, SaveConfigFileName)
		err = SaveConfigToFile(cfg, fullPath)
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func loadString(cfg *Config, configData string, configType string,
	allowEnvVars bool, envPrefix string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if allowEnvVars {
		replacer := strings.NewReplacer(".", "_")
		v.SetEnvKeyReplacer(replacer)
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	err := v.ReadConfig(bytes.NewBufferString(configData))
	if err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)),
	}

	err = v.Unmarshal(cfg, decodeHooks...)
	if err != nil {
		return err
	}
	return checkDeprecatedFields(v.AllKeys())
}

func checkDeprecatedFields(keysOnConfig []string) error {
	err := NewErrDeprecatedFields()
	for _, key := range keysOnConfig {
		forbbidenInfo := getDeprecatedField(key)
		if forbbidenInfo != nil {
			err.AddDeprecatedField(key, *forbbidenInfo)
		}
	}
	if len(err.Fields) > 0 {
		return err
	}
	return nil
}

func getDeprecatedField(fieldName string) *DeprecatedField {
	for _, deprecatedField := range deprecatedFieldsOnConfig {
		pattern := strings.ToLower(deprecatedField.FieldNamePattern)
		if pattern == strings.ToLower(fieldName) {
			return &deprecatedField
		}
		// If the field name ends with a dot, it means FieldNamePattern*
		if pattern[len(pattern)-1] == '.' && strings.HasPrefix(strings.ToLower(fieldName), pattern) {
			return &deprecatedField
		}
	}
	return nil
}
