// Package parameters handles the configuration strings used to select and configure
// display backends: a name optionally followed by a colon and a comma-separated list
// of key=value pairs, e.g. "console:color,clear=false".
package parameters

import (
	"github.com/pkg/errors"
	"slices"
	"strconv"
	"strings"
)

// Params represent generic configuration parameters.
type Params map[string]string

// Parse splits a configuration string into its name and its parameters.
// The config "gif:out=run.gif,side=16" has name "gif" and parameters {"out": "run.gif", "side": "16"}.
func Parse(config string) (name string, params Params) {
	name = config
	rest := ""
	if split := strings.Index(config, ":"); split != -1 {
		name = config[:split]
		rest = config[split+1:]
	}
	return strings.TrimSpace(name), NewFromConfigString(rest)
}

// NewFromConfigString create params from a comma-separated list of key=value pairs.
// Keys without a value are mapped to "" (interpreted as true by GetParamOr for bools).
// See GetParamOr and PopParamOr to parse values from this map.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		subParts := strings.SplitN(part, "=", 2) // Split into up to 2 parts to handle '=' in values
		if len(subParts) == 1 {
			params[subParts[0]] = ""
		} else {
			params[subParts[0]] = subParts[1]
		}
	}
	return params
}

// PopParamOr is like GetParamOr, but it also deletes from the params map the retrieved parameter.
// This allows CheckAllUsed to report unknown parameters at the end.
func PopParamOr[T interface {
	bool | int | uint64 | float64 | string
}](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr attempts to parse a parameter to the given type if the key is present, or returns the defaultValue
// if not.
//
// For bool types, a key without a value is interpreted as true.
func GetParamOr[T interface {
	bool | int | uint64 | float64 | string
}](params Params, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	var parsed any
	var err error
	switch any(defaultValue).(type) {
	case string:
		parsed = value
	case int:
		parsed, err = strconv.Atoi(value)
	case uint64:
		parsed, err = strconv.ParseUint(value, 10, 64)
	case float64:
		parsed, err = strconv.ParseFloat(value, 64)
	case bool:
		switch strings.ToLower(value) {
		case "", "true", "1", "yes":
			parsed = true
		case "false", "0", "no":
			parsed = false
		default:
			err = errors.New("invalid bool")
		}
	}
	if err != nil {
		return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q as %T", key, value, defaultValue)
	}
	return parsed.(T), nil
}

// CheckAllUsed returns an error listing the parameters left in params, presumably
// unknown ones, after the known ones were consumed with PopParamOr.
func CheckAllUsed(params Params) error {
	if len(params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return errors.Errorf("unknown parameters %q", keys)
}
