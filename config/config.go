package config

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v2"

	"github.com/kzaag/dbc/dialect"
)

const Version = "1"

/*
	preconfig is getting parsed before the actual config.
	it carries version metadata and define directives:

	defines:
	  - db: my_database

	will replace any occurrence of ${db} with my_database anywhere
	in the document before the schema is parsed. defines may reference
	each other and are evaluated top to bottom.
*/
type PreConfig struct {
	Version string
	Defines []map[string]string
}

/* user supplied load options */
type Overrides struct {
	/* replaces define values by key before evaluation */
	Set map[string]string
	/* disables ansi formatting on warnings */
	Raw bool
}

type Config struct {
	/* exactly one of Single / Multi is set after a successful load */
	Single *Database
	Multi  *Multi
	/* directory the config was loaded from, used to resolve paths */
	Base string
	PreConfig
}

/* resolves the entry to use: Single, or Multi selection by name */
func (c *Config) Database(name string) (*Database, error) {
	if c.Single != nil {
		return c.Single, nil
	}
	return c.Multi.Select(name)
}

func EvaluateDefines(pc *PreConfig, f []byte) []byte {
	for i := range pc.Defines {
		for k := range pc.Defines[i] {
			f = bytes.Replace(f, []byte("${"+k+"}"), []byte(pc.Defines[i][k]), -1)
		}
	}
	return f
}

func MergeUserDefines(pc *PreConfig, o *Overrides) {
	if o == nil || o.Set == nil {
		return
	}
	for i := range pc.Defines {
		for c := range pc.Defines[i] {
			if v, ok := o.Set[c]; ok {
				pc.Defines[i][c] = v
			}
		}
	}
}

/* evaluates defines which reference other defines */
func ExpandDefines(pc *PreConfig) {
	for i := range pc.Defines {
		for k, v := range pc.Defines[i] {
			for j := range pc.Defines {
				for k2, v2 := range pc.Defines[j] {
					if k2 != k {
						pc.Defines[j][k2] = strings.Replace(v2, "${"+k+"}", v, -1)
					}
				}
			}
		}
	}
}

func prepareConfig(j []byte, o *Overrides) (*PreConfig, []byte, error) {
	var pc PreConfig
	if err := yaml.Unmarshal(j, &pc); err != nil {
		return nil, nil, err
	}

	if pc.Version != "" && pc.Version != Version {
		return nil, nil, fmt.Errorf(
			"config: document requested version %s which is incompatible with module version %s",
			pc.Version, Version)
	}

	MergeUserDefines(&pc, o)

	for i := range pc.Defines {
		if len(pc.Defines[i]) != 1 {
			return nil, nil, fmt.Errorf(
				"config: invalid define at index %d - defines must be single key maps", i)
		}
		for k := range pc.Defines[i] {
			if pc.Defines[i][k] == "${}" {
				return nil, nil, fmt.Errorf("config: directive %q not set", k)
			}
		}
	}

	ExpandDefines(&pc)

	return &pc, EvaluateDefines(&pc, j), nil
}

/*
	parses a document body into either a single Database or a Multi.
	mirrors model selection: try each shape in order, return the first
	that parses and validates, otherwise aggregate everything.
*/
func parseBody(j []byte, raw bool) (*Database, *Multi, error) {
	var result *multierror.Error

	var single Database
	err := yaml.UnmarshalStrict(j, &single)
	if err == nil {
		if verr := single.Validate(raw); verr == nil {
			return &single, nil, nil
		} else {
			result = multierror.Append(
				result, fmt.Errorf("config: as single database: %w", verr))
		}
	} else {
		result = multierror.Append(
			result, fmt.Errorf("config: as single database: %w", err))
	}

	var multi Multi
	err = yaml.Unmarshal(j, &multi)
	if err == nil {
		if verr := multi.Validate(raw); verr == nil {
			return nil, &multi, nil
		} else {
			result = multierror.Append(
				result, fmt.Errorf("config: as multi database: %w", verr))
		}
	} else {
		result = multierror.Append(
			result, fmt.Errorf("config: as multi database: %w", err))
	}

	return nil, nil, result.ErrorOrNil()
}

/*
	strips preconfig keys and unwraps an optional top level db: key,
	preserving document order of whatever remains
*/
func documentBody(j []byte) ([]byte, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(j, &doc); err != nil {
		return nil, err
	}

	var body yaml.MapSlice
	for _, item := range doc {
		k, _ := item.Key.(string)
		if k == "version" || k == "defines" {
			continue
		}
		body = append(body, item)
	}

	if len(body) == 1 {
		if k, _ := body[0].Key.(string); k == "db" {
			return yaml.Marshal(body[0].Value)
		}
	}

	return yaml.Marshal(body)
}

func createFromText(c *Config, j []byte, o *Overrides) error {

	pc, j, err := prepareConfig(j, o)
	if err != nil {
		return err
	}

	j, err = documentBody(j)
	if err != nil {
		return err
	}

	raw := o != nil && o.Raw
	if c.Single, c.Multi, err = parseBody(j, raw); err != nil {
		return err
	}

	c.PreConfig = *pc
	c.resolvePaths()

	return nil
}

/* sqlite paths are relative to the config file, not the cwd */
func (c *Config) resolvePaths() {
	fix := func(db *Database) {
		if db.Dialect == string(dialect.SQLite) &&
			db.Path != "" && c.Base != "" && !filepath.IsAbs(db.Path) {
			db.Path = filepath.Join(c.Base, db.Path)
		}
	}
	if c.Single != nil {
		fix(c.Single)
	}
	if c.Multi != nil {
		for _, db := range c.Multi.Databases {
			if db != nil {
				fix(db)
			}
		}
	}
}

func getBufFromDir(dir string) (string, []byte, error) {

	var bf []byte

	fs, err := ioutil.ReadDir(dir)
	if err != nil {
		return "", nil, err
	}

	for i := 0; i < len(fs); i++ {
		n := path.Join(dir, fs[i].Name())
		if strings.HasSuffix(n, ".yml") || strings.HasSuffix(n, ".yaml") {
			if bf, err = ioutil.ReadFile(n); err != nil {
				return "", nil, err
			}
			return n, bf, nil
		}
	}

	return "", nil, fmt.Errorf("stat *.yml: no such file or directory")
}

func setConfigDir(c *Config, fpath string) error {
	var err error
	if c.Base != "" || fpath == "" {
		return nil
	}
	if fpath, err = filepath.Abs(fpath); err != nil {
		return err
	}
	c.Base = filepath.Dir(fpath)
	return nil
}

func NewFromBytes(bf []byte, fpath string, o *Overrides) (*Config, error) {
	var c = new(Config)
	if err := setConfigDir(c, fpath); err != nil {
		return nil, err
	}
	return c, createFromText(c, bf, o)
}

/*
	loads a config from an explicit file, or discovers the first
	*.yml in the given directory ("." when path is empty)
*/
func NewFromPath(configPath string, o *Overrides) (*Config, error) {
	var bf []byte
	var err error
	var fpath string
	var fi os.FileInfo

	if configPath == "" {
		if fpath, bf, err = getBufFromDir("."); err != nil {
			return nil, err
		}
	} else {
		if fi, err = os.Stat(configPath); err != nil {
			return nil, err
		}
		if fi.IsDir() {
			if fpath, bf, err = getBufFromDir(configPath); err != nil {
				return nil, err
			}
		} else {
			if bf, err = ioutil.ReadFile(configPath); err != nil {
				return nil, err
			}
			fpath = configPath
		}
	}

	return NewFromBytes(bf, fpath, o)
}
