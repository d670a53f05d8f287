package env

import (
	"os"
	"sort"
)

// OS looks variables up in the environment of the current process.
type OS struct{}

// Lookup returns the value of the named variable and whether it is set.
func (OS) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Collect returns the set variables among names. Unset names are left out.
func Collect(names ...string) map[string]string {
	vars := make(map[string]string, len(names))
	for _, name := range names {
		if v, ok := os.LookupEnv(name); ok {
			vars[name] = v
		}
	}
	return vars
}

// SortedKeys returns the keys of vars in lexical order.
func SortedKeys(vars map[string]string) []string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
