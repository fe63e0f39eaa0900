package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v2"
)

/*
	multi database configuration. yaml maps do not keep document order
	and the first entry is the last-resort default, so order is
	captured separately through a MapSlice pass.
*/
type Multi struct {
	Databases map[string]*Database
	Order     []string

	/* caller supplied fallbacks, consulted by Select in this order */
	Fallback     *Database
	FallbackName string
}

func (m *Multi) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw map[string]*Database
	if err := unmarshal(&raw); err != nil {
		return err
	}

	var ms yaml.MapSlice
	if err := unmarshal(&ms); err != nil {
		return err
	}

	m.Databases = raw
	m.Order = make([]string, 0, len(ms))
	for _, item := range ms {
		k, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("config: database name must be a string, got %v", item.Key)
		}
		m.Order = append(m.Order, k)
	}

	return nil
}

func (m *Multi) Validate(raw bool) error {
	var result *multierror.Error

	if len(m.Databases) == 0 {
		result = multierror.Append(result, errors.New(messages["empty_multi"]))
	}

	defaults := 0
	for _, name := range m.Order {
		db := m.Databases[name]
		if db == nil {
			result = multierror.Append(
				result, fmt.Errorf("config: entry %q must be a mapping", name))
			continue
		}
		if db.Default {
			defaults++
		}
		if err := db.Validate(raw); err != nil {
			result = multierror.Append(
				result, fmt.Errorf("config: entry %q: %w", name, err))
		}
	}

	if defaults > 1 {
		result = multierror.Append(result, errors.New(messages["multi_default"]))
	}

	return result.ErrorOrNil()
}

/*
	default database selection.
	precedence: explicit name -> entry flagged default: true ->
	Fallback config -> FallbackName -> first entry in document order.
*/
func (m *Multi) Select(name string) (*Database, error) {

	if name != "" {
		db, ok := m.Databases[name]
		if !ok {
			return nil, fmt.Errorf("config: database %q was not found in the configuration", name)
		}
		return db, nil
	}

	for _, n := range m.Order {
		if db := m.Databases[n]; db != nil && db.Default {
			return db, nil
		}
	}

	if m.Fallback != nil {
		return m.Fallback, nil
	}

	if m.FallbackName != "" {
		db, ok := m.Databases[m.FallbackName]
		if !ok {
			return nil, fmt.Errorf("config: database %q was not found in the configuration", m.FallbackName)
		}
		return db, nil
	}

	if len(m.Order) > 0 {
		return m.Databases[m.Order[0]], nil
	}

	return nil, errors.New(messages["empty_multi"])
}
