package cli

import "github.com/spf13/pflag"

// flagAliases maps accepted alternative flag names to their canonical name.
var flagAliases = map[string]string{
	"style": "border",
}

// normalizeAliases resolves alias names so an alias and its canonical flag
// share one pflag.Flag, including its Changed state.
func normalizeAliases(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}
