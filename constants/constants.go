package constants

const (
	EnvVarPrefix     = "LP" // prefix for environment variable overrides of CLI flags
	EnvVarGcpProject = "GOOGLE_CLOUD_PROJECT"

	// Provisioning defaults.
	DefaultRegion          = "us-central1"
	DefaultLakeID          = "my-csv-lake"
	DefaultLakeDisplayName = "My CSV Data Lake"
	DefaultZoneID          = "raw-csv-data"
	DefaultZoneDisplayName = "Raw CSV Zone"
	DefaultAssetID         = "csv-files-asset"
	DefaultDatasetID       = "raw_csv_data_bq"

	// Object key prefixes and suffixes.
	DefaultUploadPrefix = "csv_data"
	CsvFileSuffix       = ".csv"
	ParquetFileSuffix   = ".parquet"
	GcsURLScheme        = "gs://"

	// CSV discovery options applied to zones, assets and external tables.
	CsvHeaderRows = 1
	CsvDelimiter  = ","

	// Seconds to pause after asset creation for Dataplex discovery to start.
	// This is a fixed delay, not a completion guarantee.
	DefaultDiscoveryWaitSeconds = 60

	ConnectionTypeGcs = "gcs"
)

// DefaultCsvFiles is the well-known set of CSV extracts expected under the
// source prefix when no explicit file list is supplied.
var DefaultCsvFiles = []string{
	"allergies.csv", "careplans.csv", "claims.csv", "claims_transactions.csv",
	"conditions.csv", "devices.csv", "encounters.csv", "imaging_studies.csv",
	"immunizations.csv", "medications.csv", "observations.csv", "organizations.csv",
	"patients.csv", "payer_transitions.csv", "payers.csv", "procedures.csv",
	"providers.csv", "supplies.csv",
}
