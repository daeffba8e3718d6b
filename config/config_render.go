package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/0xPolygon/lockbridge/log"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

var (
	ErrCycleVars                 = errors.New("cycle vars")
	ErrMissingVars               = errors.New("missing vars")
	ErrUnsupportedConfigFileType = errors.New("unsupported config file type")

	// A = {{B}} is not valid TOML, it's quoted as A = "{{B:int}}" while parsing
	bareVarRe   = regexp.MustCompile(`=\s*\{\{([^}:]+)\}\}`)
	quotedVarRe = regexp.MustCompile(`=\s*\"\{\{([^}:]+):int\}\}\"`)
	typeMarkRe  = regexp.MustCompile(`\{\{([^}:]+):int\}\}`)
)

type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges TOML files, later files overriding earlier ones, and
// resolves the {{Var}} references between values. A var is looked up first in
// the environment as <EnvPrefix>_<Var> (dots replaced by _) and then in the
// merged values.
type ConfigRender struct {
	Files     []FileData
	LookupEnv func(key string) (string, bool)
	EnvPrefix string
}

func NewConfigRender(files []FileData, envPrefix string) *ConfigRender {
	return &ConfigRender{
		Files:     files,
		LookupEnv: os.LookupEnv,
		EnvPrefix: envPrefix,
	}
}

// Render merges all the files and resolves their vars
func (c *ConfigRender) Render() (string, error) {
	merged, err := c.Merge()
	if err != nil {
		return "", fmt.Errorf("fail to merge files. Err: %w", err)
	}
	return c.ResolveVars(merged)
}

// Merge returns the merged TOML without resolving any var
func (c *ConfigRender) Merge() (string, error) {
	k := koanf.New(".")
	for _, f := range c.Files {
		content := quoteVars(f.Content)
		if err := k.Load(rawbytes.Provider([]byte(content)), toml.Parser()); err != nil {
			log.Errorf("error loading file %s. Err:%v. Content: %v", f.Name, err, content)
			return "", fmt.Errorf("fail to load %s as toml. Err: %w", f.Name, err)
		}
	}
	marshaled, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("fail to marshal to toml. Err: %w", err)
	}
	return unquoteVars(string(marshaled)), nil
}

// ResolveVars replaces every var of data. Vars not defined anywhere fail with
// ErrMissingVars, vars depending on each other (A = {{B}}, B = {{A}}) with
// ErrCycleVars.
func (c *ConfigRender) ResolveVars(data string) (string, error) {
	tpl, values, err := c.parse(data)
	if err != nil {
		return "", err
	}
	rendered := stripTypeMarks(c.execute(tpl, values))
	if missing := c.missingVars(tpl, values); len(missing) > 0 {
		return rendered, fmt.Errorf("missing vars: %v. Err: %w", missing, ErrMissingVars)
	}
	resolved, err := c.resolveChains(rendered)
	if err != nil {
		return data, err
	}
	return resolved, nil
}

// resolveChains renders again while vars remain (A = {{B}}, B = {{C}}, C = 1).
// A pass that resolves nothing means a cycle.
func (c *ConfigRender) resolveChains(data string) (string, error) {
	current := unquoteVars(data)
	pending := c.GetVars(current)
	if len(pending) == 0 {
		return data, nil
	}
	log.Debugf("pending vars: %v", pending)
	for len(pending) > 0 {
		tpl, values, err := c.parse(current)
		if err != nil {
			return "", fmt.Errorf("fail to read template of chained vars. Err: %w", err)
		}
		next := stripTypeMarks(unquoteVars(c.execute(tpl, values)))
		stillPending := c.GetVars(next)
		if len(stillPending) == len(pending) {
			return data, fmt.Errorf("not resolved cycle vars: %v. Err: %w", stillPending, ErrCycleVars)
		}
		current, pending = next, stillPending
	}
	return current, nil
}

// parse returns data as template and the values it defines. Vars must be
// unquoted (A={{B}} not A="{{B}}").
func (c *ConfigRender) parse(data string) (*fasttemplate.Template, map[string]interface{}, error) {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to load template. Err:%w", err)
	}
	quoted := quoteVars(data)
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(quoted)), toml.Parser()); err != nil {
		return nil, nil, fmt.Errorf("error parsing values. Content: %s. Err: %w", quoted, err)
	}
	return tpl, k.All(), nil
}

func (c *ConfigRender) execute(tpl *fasttemplate.Template, values map[string]interface{}) string {
	return tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if v, ok := c.lookupEnv(tag); ok {
			return w.Write([]byte(v))
		}
		if v, ok := values[tag]; ok {
			return w.Write([]byte(fmt.Sprintf("%v", v)))
		}
		return w.Write([]byte(startTag + tag + endTag))
	})
}

func (c *ConfigRender) missingVars(tpl *fasttemplate.Template, values map[string]interface{}) []string {
	var missing []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if _, ok := c.lookupEnv(tag); ok {
			return 0, nil
		}
		if _, ok := values[tag]; !ok && !contains(missing, tag) {
			missing = append(missing, tag)
		}
		return 0, nil
	})
	return missing
}

// GetVars returns the vars still present in data
func (c *ConfigRender) GetVars(data string) []string {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return []string{}
	}
	var vars []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		vars = append(vars, tag)
		return 0, nil
	})
	return vars
}

func (c *ConfigRender) lookupEnv(tag string) (string, bool) {
	return c.LookupEnv(c.EnvPrefix + "_" + strings.ReplaceAll(tag, ".", "_"))
}

func quoteVars(data string) string {
	return bareVarRe.ReplaceAllString(data, `= "{{${1}:int}}"`)
}

func unquoteVars(data string) string {
	return quotedVarRe.ReplaceAllString(data, `= {{${1}}}`)
}

func stripTypeMarks(data string) string {
	return typeMarkRe.ReplaceAllString(data, `{{${1}}}`)
}

func contains(vars []string, search string) bool {
	for _, v := range vars {
		if v == search {
			return true
		}
	}
	return false
}

func convertFileToToml(fileData string, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "json":
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider([]byte(fileData)), json.Parser()); err != nil {
			return fileData, fmt.Errorf("error loading json file. Err: %w", err)
		}
		tomlData, err := toml.Parser().Marshal(k.Raw())
		if err != nil {
			return fileData, fmt.Errorf("error converting json to toml. Err: %w", err)
		}
		return string(tomlData), nil
	case "yml", "yaml", "ini":
		return fileData, fmt.Errorf("cant convert from %s to TOML. Err: %w", fileType, ErrUnsupportedConfigFileType)
	default:
		log.Warnf("filetype %s unknown, assuming is a TOML file", fileType)
		return fileData, nil
	}
}
