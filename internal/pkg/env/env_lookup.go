package env

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

// TrySetBoolFromEnv leaves val untouched when the variable is missing or not a bool.
func TrySetBoolFromEnv(envName string, val *bool) {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return
	}

	parsed, err := strconv.ParseBool(envVal)
	if err != nil {
		return
	}

	*val = parsed
}

// TrySetListFromEnv splits a comma separated variable, dropping empty items.
func TrySetListFromEnv(envName string, val *[]string) {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return
	}

	items := make([]string, 0)
	for _, item := range strings.Split(envVal, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	*val = items
}

// LoadDotEnv populates the process environment from the given files.
// Missing files are not an error, already set variables are not overridden.
func LoadDotEnv(filenames ...string) error {
	for _, filename := range filenames {
		err := godotenv.Load(filename)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return nil
}
