package config

import (
	"errors"

	"github.com/hashicorp/go-multierror"

	"github.com/kzaag/dbc/cmn"
	"github.com/kzaag/dbc/dialect"
)

var messages = map[string]string{
	"missing_connection": `connection parameter information is missing.
		Provide a uri or complete connection parameters`,
	"missing_dialect": "dialect is missing and no connection string provided",
	"uri_or_params": `either uri or connection_params must be provided
		for non-sqlite dialects`,
	"uri_and_params": "both uri and connection_params are provided. Uri will be used",
	"sqlite_path":    "path is required when dialect is sqlite",
	"missing_driver": "driver is required when using ODBC connections",
	"invalid_fetch":  "fetch_return must be one of: data, tuple, object",
	"paging_error":   "paging is enabled but page_size is missing or set to 0",
	"multi_default":  "more than one database entry is flagged as default",
	"empty_multi":    "configuration contains no database entries",
}

func init() {
	for k, v := range messages {
		messages[k] = cmn.FlattenStr(v)
	}
}

/*
	field-presence validation for a single database entry.
	all failures are collected so one round trip reports everything.
	raw disables ansi formatting on emitted warnings.
*/
func (d *Database) Validate(raw bool) error {
	var result *multierror.Error

	d.Normalize()

	if d.Dialect == "" {
		result = multierror.Append(result, errors.New(messages["missing_dialect"]))
	} else if _, err := dialect.Parse(d.Dialect); err != nil {
		result = multierror.Append(result, err)
	}

	switch d.FetchReturn {
	case ReturnData, ReturnTuple, ReturnObject:
	default:
		result = multierror.Append(result, errors.New(messages["invalid_fetch"]))
	}

	if d.Paging.Enabled && d.Paging.PageSize == 0 {
		result = multierror.Append(result, errors.New(messages["paging_error"]))
	}

	hasParams := d.ConnectionParams.Host != "" ||
		d.ConnectionParams.Username != "" ||
		d.ConnectionParams.Driver != ""

	if dialect.Dialect(d.Dialect) == dialect.SQLite {
		if d.Path == "" {
			result = multierror.Append(result, errors.New(messages["sqlite_path"]))
		}
	} else {
		if d.Uri == "" && !hasParams {
			result = multierror.Append(result, errors.New(messages["uri_or_params"]))
		}
		if d.Uri == "" && hasParams &&
			d.ConnectionParams.Host == "" && d.ConnectionParams.Username == "" {
			result = multierror.Append(result, errors.New(messages["missing_connection"]))
		}
		if d.Uri != "" && hasParams {
			cmn.CndPrintfln(raw, cmn.PrintflnWarn, "%s", messages["uri_and_params"])
		}
	}

	if d.UseOdbc && d.ConnectionParams.Driver == "" {
		result = multierror.Append(result, errors.New(messages["missing_driver"]))
	}

	return result.ErrorOrNil()
}
