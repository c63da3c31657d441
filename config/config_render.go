package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/valyala/fasttemplate"
)

const (
	templateStartTag = "{{"
	templateEndTag   = "}}"
	// a var can reference other vars up to this depth
	maxRenderPasses = 10
)

var (
	ErrUndefinedVar   = errors.New("undefined config var")
	ErrCyclicVars     = errors.New("config vars nested too deep or cyclic")
	ErrUnsupportedFmt = errors.New("unsupported config file format")
)

// FileData is the content of one config file, already in TOML
type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges config files and resolves the {{Var}} placeholders
type ConfigRender struct {
	FilesData []FileData
	// EnvPrefix is the prefix of the env vars that override a placeholder: <EnvPrefix>_<Var>
	EnvPrefix string
}

func NewConfigRender(filesData []FileData, envPrefix string) *ConfigRender {
	return &ConfigRender{
		FilesData: filesData,
		EnvPrefix: envPrefix,
	}
}

// Render merges the files, later ones overriding earlier keys, and replaces every placeholder.
// A placeholder is resolved from the env var <EnvPrefix>_<Var> first and then from the merged keys
func (c *ConfigRender) Render() (string, error) {
	merged, err := c.Merge()
	if err != nil {
		return "", err
	}
	rendered := merged
	for i := 0; i < maxRenderPasses; i++ {
		next, err := c.renderPass(rendered)
		if err != nil {
			return "", err
		}
		if next == rendered {
			// a self referencing var renders to itself
			if strings.Contains(rendered, templateStartTag) {
				return "", fmt.Errorf("%w: placeholders left after rendering", ErrCyclicVars)
			}
			return rendered, nil
		}
		rendered = next
	}
	return "", fmt.Errorf("%w: more than %d passes", ErrCyclicVars, maxRenderPasses)
}

// Merge returns the TOML resulting from loading every file in order
func (c *ConfigRender) Merge() (string, error) {
	k := koanf.New(".")
	for _, file := range c.FilesData {
		if err := k.Load(rawbytes.Provider([]byte(file.Content)), toml.Parser()); err != nil {
			return "", fmt.Errorf("error parsing config file %s. Err: %w", file.Name, err)
		}
	}
	out, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("error marshalling merged config. Err: %w", err)
	}
	return string(out), nil
}

func (c *ConfigRender) renderPass(data string) (string, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(data)), toml.Parser()); err != nil {
		return "", fmt.Errorf("error parsing rendered config. Err: %w", err)
	}
	return fasttemplate.ExecuteFuncStringWithErr(data, templateStartTag, templateEndTag,
		func(w io.Writer, tag string) (int, error) {
			value, err := c.lookupVar(k, strings.TrimSpace(tag))
			if err != nil {
				return 0, err
			}
			return w.Write([]byte(value))
		})
}

func (c *ConfigRender) lookupVar(k *koanf.Koanf, name string) (string, error) {
	if c.EnvPrefix != "" {
		envName := c.EnvPrefix + "_" + name
		if value, ok := os.LookupEnv(envName); ok {
			return value, nil
		}
		if value, ok := os.LookupEnv(strings.ToUpper(envName)); ok {
			return value, nil
		}
	}
	if !k.Exists(name) {
		return "", fmt.Errorf("%w: %s", ErrUndefinedVar, name)
	}
	return fmt.Sprint(k.Get(name)), nil
}

func convertFileToToml(fileData string, fileType string) (string, error) {
	var parser koanf.Parser
	switch strings.ToLower(fileType) {
	case "json":
		parser = json.Parser()
	case ConfigType:
		return fileData, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFmt, fileType)
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(fileData)), parser); err != nil {
		return "", err
	}
	out, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func readFileToString(file string) (string, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
