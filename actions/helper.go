package actions

import (
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/lakepipe/lakepipe/constants"
	"github.com/lakepipe/lakepipe/gcp/bq"
	"github.com/lakepipe/lakepipe/gcp/catalog"
	"github.com/lakepipe/lakepipe/gcp/gcs"
	"github.com/lakepipe/lakepipe/logger"
)

func newLogger(logLevel string, stackDumpOnPanic bool) logger.Logger {
	if logLevel == "" {
		logLevel = "info"
	}
	return logger.NewLogger("lakepipe", logLevel, stackDumpOnPanic)
}

func getGcsClientFactory(f GcsClientFactory) GcsClientFactory {
	if f != nil {
		return f
	}
	return gcs.NewClient
}

func getCatalogAPIFactory(f CatalogAPIFactory) CatalogAPIFactory {
	if f != nil {
		return f
	}
	return catalog.NewAPI
}

func getBqAPIFactory(f BqAPIFactory) BqAPIFactory {
	if f != nil {
		return f
	}
	return bq.NewAPI
}

// listCsvFiles returns the sorted *.csv file names found directly in dir.
func listCsvFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read local CSV directory %v", dir)
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), constants.CsvFileSuffix) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// getCsvFiles applies the default file list when none was supplied.
func getCsvFiles(files []string) []string {
	if len(files) > 0 {
		return files
	}
	return constants.DefaultCsvFiles
}
