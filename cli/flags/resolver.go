package flags

import (
	"strings"

	"github.com/gbackup/gbackup/config"
	"github.com/pkg/errors"
)

// ErrHelp is returned when the arguments ask for the usage text. It is not a
// failure.
var ErrHelp = errors.New("help requested")

type ArgumentError struct {
	error
}

func NewArgumentError(message string, args ...interface{}) ArgumentError {
	return ArgumentError{errors.Errorf(message, args...)}
}

type option struct {
	names []string
	set   func(*config.Configuration, string)
}

var options = []option{
	{
		names: []string{"source_directory", "src_dir"},
		set:   func(c *config.Configuration, value string) { c.SourceDirectory = value },
	},
	{
		names: []string{"destination_directory", "dest_dir"},
		set:   func(c *config.Configuration, value string) { c.DestinationDirectory = value },
	},
	{
		names: []string{"ignore_file"},
		set:   func(c *config.Configuration, value string) { c.IgnoreFile = value },
	},
	{
		names: []string{"key_file"},
		set:   func(c *config.Configuration, value string) { c.KeyFile = value },
	},
}

func lookupOption(name string) (option, bool) {
	for _, o := range options {
		for _, candidate := range o.names {
			if candidate == name {
				return o, true
			}
		}
	}
	return option{}, false
}

func IsHelpFlag(arg string) bool {
	return arg == "--help" || arg == "-h"
}

func containsHelpFlag(args []string) bool {
	for _, arg := range args {
		if IsHelpFlag(arg) {
			return true
		}
	}
	return false
}

type Resolver struct {
	defaults config.Configuration
}

func NewResolver(defaults config.Configuration) Resolver {
	return Resolver{defaults: defaults}
}

// Resolve overlays "--option value" pairs on the defaults. A repeated option
// keeps its last value. ErrHelp wins over any other problem with the
// argument list.
func (r Resolver) Resolve(args []string) (config.Configuration, error) {
	resolved := r.defaults

	if len(args) == 0 {
		return resolved, nil
	}
	if len(args) == 1 && IsHelpFlag(args[0]) {
		return config.Configuration{}, ErrHelp
	}
	if len(args)%2 == 1 || len(args) > 2*len(options) {
		if containsHelpFlag(args) {
			return config.Configuration{}, ErrHelp
		}
		return config.Configuration{}, NewArgumentError("invalid argument count: received %d", len(args))
	}

	for i := 0; i < len(args); i += 2 {
		name, value := args[i], args[i+1]
		if IsHelpFlag(name) {
			return config.Configuration{}, ErrHelp
		}

		o, ok := lookupOption(strings.TrimLeft(name, "-"))
		if !ok {
			return config.Configuration{}, NewArgumentError("unknown option: %s", name)
		}
		o.set(&resolved, value)
	}

	return resolved, nil
}
