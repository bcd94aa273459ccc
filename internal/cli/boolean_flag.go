package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	toggleFlagTypeName         = "bool"
	toggleFlagTrueLiteral      = "true"
	toggleFlagAcceptedValues   = "true, false, yes, no, on, off, 1, 0"
	toggleFlagInvalidValueText = "invalid boolean value"
)

var toggleFlagLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// toggleFlag is a boolean flag that also accepts yes/no and on/off spellings, so a flag can
// switch off a default enabled by the configuration file (e.g. "--pdf no").
type toggleFlag struct {
	target  *bool
	flagKey string
}

func (value *toggleFlag) Set(input string) error {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		normalized = toggleFlagTrueLiteral
	}
	parsed, ok := toggleFlagLiterals[normalized]
	if !ok {
		return fmt.Errorf("%s %q for --%s; accepted values: %s", toggleFlagInvalidValueText, input, value.flagKey, toggleFlagAcceptedValues)
	}
	*value.target = parsed
	return nil
}

func (value *toggleFlag) String() string {
	if value == nil || value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *toggleFlag) Type() string {
	return toggleFlagTypeName
}

func registerToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, usage string) {
	*target = false
	flagSet.Var(&toggleFlag{target: target, flagKey: name}, name, usage)
	if lookup := flagSet.Lookup(name); lookup != nil {
		lookup.DefValue = strconv.FormatBool(false)
		lookup.NoOptDefVal = toggleFlagTrueLiteral
	}
}

// normalizeToggleFlagArguments rewrites "--flag value" into "--flag=value" when value is a
// boolean literal and another positional argument still follows, because pflag only binds
// optional values written with "=". A literal that is the last positional argument stays a
// positional argument, so "--pdf 1" documents the folder "1".
// Arguments after "--" are left untouched.
func normalizeToggleFlagArguments(flagSet *pflag.FlagSet, arguments []string) []string {
	toggleNames := map[string]struct{}{}
	flagSet.VisitAll(func(flag *pflag.Flag) {
		if flag.Value.Type() == toggleFlagTypeName {
			toggleNames[flag.Name] = struct{}{}
		}
	})

	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		currentArgument := arguments[index]
		if currentArgument == "--" {
			normalized = append(normalized, arguments[index:]...)
			break
		}
		if strings.HasPrefix(currentArgument, "--") && !strings.Contains(currentArgument, "=") && index+1 < len(arguments) {
			flagName := strings.TrimPrefix(currentArgument, "--")
			nextArgument := arguments[index+1]
			_, isToggle := toggleNames[flagName]
			_, isLiteral := toggleFlagLiterals[strings.ToLower(strings.TrimSpace(nextArgument))]
			if isToggle && isLiteral && hasPositionalArgument(flagSet, arguments[index+2:]) {
				normalized = append(normalized, currentArgument+"="+nextArgument)
				index++
				continue
			}
		}
		normalized = append(normalized, currentArgument)
	}
	return normalized
}

// hasPositionalArgument reports whether arguments contain a value that pflag would treat as
// positional. Values consumed by non-boolean flags written as "--flag value" do not count.
func hasPositionalArgument(flagSet *pflag.FlagSet, arguments []string) bool {
	for index := 0; index < len(arguments); index++ {
		currentArgument := arguments[index]
		if currentArgument == "--" {
			return index+1 < len(arguments)
		}
		if !strings.HasPrefix(currentArgument, "-") || currentArgument == "-" {
			return true
		}
		if !strings.HasPrefix(currentArgument, "--") || strings.Contains(currentArgument, "=") {
			continue
		}
		flag := flagSet.Lookup(strings.TrimPrefix(currentArgument, "--"))
		if flag != nil && flag.NoOptDefVal == "" {
			index++
		}
	}
	return false
}
