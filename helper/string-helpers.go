package helper

import (
	"path"
	"strings"

	"github.com/lakepipe/lakepipe/constants"
)

// ReplaceFileSuffix swaps oldSuffix for newSuffix on key.
// Keys without oldSuffix are returned unchanged.
func ReplaceFileSuffix(key, oldSuffix, newSuffix string) string {
	if !strings.HasSuffix(key, oldSuffix) {
		return key
	}
	return strings.TrimSuffix(key, oldSuffix) + newSuffix
}

// TableNameFromObjectKey converts an object key or gs:// URI into a BigQuery
// compatible table name: take the base name, strip the .csv suffix and
// replace dashes with underscores.
func TableNameFromObjectKey(key string) string {
	name := path.Base(strings.TrimPrefix(key, constants.GcsURLScheme))
	name = strings.TrimSuffix(name, constants.CsvFileSuffix)
	return strings.ReplaceAll(name, "-", "_")
}

// CsvFilesFromTokens splits a CSV of object names and trims spaces.
// An empty input yields an empty slice so callers can apply defaults.
func CsvFilesFromTokens(s string) []string {
	retval := make([]string, 0)
	for _, tok := range strings.Split(s, ",") {
		if t := strings.TrimSpace(tok); t != "" {
			retval = append(retval, t)
		}
	}
	return retval
}
