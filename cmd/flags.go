package cmd

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lakepipe/lakepipe/config"
	"github.com/lakepipe/lakepipe/constants"
	"github.com/lakepipe/lakepipe/helper"
)

type cliFlag struct {
	name      string // name of flag
	val       string // default value
	shortHand string // single character name for the flag
	desc      string // description of the flag; the long text
}

type cliFlags map[string]cliFlag

var switches = cliFlags{
	"mock": cliFlag{name: "mock", shortHand: "m", desc: "mock switch for testing"},
	"log-level": cliFlag{name: "log-level", shortHand: "l",
		desc: "Log level: \"error | warn | info | debug\""},
	"project": cliFlag{name: "project", shortHand: "p",
		desc: "GCP project ID (or set GOOGLE_CLOUD_PROJECT)"},
	"region": cliFlag{name: "region", shortHand: "r",
		desc: "GCP region for the lake and the BigQuery dataset"},
	"bucket": cliFlag{name: "bucket", shortHand: "b",
		desc: "GCS bucket holding the landed CSV files"},
	"lake": cliFlag{name: "lake", shortHand: "L",
		desc: "Dataplex lake ID"},
	"lake-name": cliFlag{name: "lake-name", shortHand: "N",
		desc: "Dataplex lake display name"},
	"zone": cliFlag{name: "zone", shortHand: "z",
		desc: "Dataplex raw zone ID"},
	"zone-name": cliFlag{name: "zone-name", shortHand: "Z",
		desc: "Dataplex raw zone display name"},
	"asset": cliFlag{name: "asset", shortHand: "a",
		desc: "Dataplex asset ID mapping the bucket into the zone"},
	"dataset": cliFlag{name: "dataset", shortHand: "D",
		desc: "BigQuery dataset ID for the external tables"},
	"upload-prefix": cliFlag{name: "upload-prefix", shortHand: "u",
		desc: "Bucket prefix under which CSV files are landed"},
	"csv-files": cliFlag{name: "csv-files", shortHand: "f",
		desc: "CSV of object names to process. Leave blank to use the built-in\n" +
			"Synthea file list"},
	"source-dir": cliFlag{name: "source-dir", shortHand: "s",
		desc: "Local directory of CSV files to upload before provisioning"},
	"discovery-wait": cliFlag{name: "discovery-wait", shortHand: "w",
		desc: "Seconds to pause after asset creation so Dataplex discovery can run\n" +
			"before the external tables are created (use 0 to skip)"},
	"dry-run": cliFlag{name: "dry-run", shortHand: "d",
		desc: "Print the provisioning plan without calling GCP"},
}

// addFlag adds a flag to cobra.Command c, based on the type of targetVar (which must be a pointer).
// The name of the flag is looked up in map, cliFlags.
// The default value comes from the environment variable for the supplied name if set,
// else from the Main config file, else the supplied defaultValue is applied.
// The flag is marked as required in Cobra based on the value of required.
// Supply a value for desc2 to append to the existing description found in map cliFlags.
func (f *cliFlags) addFlag(c *cobra.Command, targetVar interface{}, name string, defaultValue string, required bool, desc2 string) {
	v := reflect.ValueOf(targetVar)
	if v.Kind() != reflect.Ptr {
		fmt.Println("error adding flag: targetVar must be a pointer")
		os.Exit(1)
	}
	sw := f.getCliFlag(name, defaultValue, config.Main.Get) // get the cliFlag details, with defaults taken from env, config or the supplied defaultValue
	desc := sw.desc + desc2                                 // create the full flag description for use below
	// Apply the flag.
	switch p := targetVar.(type) {
	case *string:
		c.Flags().StringVarP(p, sw.name, sw.shortHand, sw.val, desc)
		// Signal that the flag was set so defaults take effect.
		if sw.val != "" { // if there is a value via env, config or default...
			mustSetFlag(c.Flags(), sw.name, sw.val)
		}
	case *bool:
		defaultBool := strings.ToLower(sw.val) == "true"
		c.Flags().BoolVarP(p, sw.name, sw.shortHand, defaultBool, desc)
		// Signal that the flag was set so defaults take effect.
		if defaultBool {
			mustSetFlag(c.Flags(), sw.name, "true")
		} else {
			mustSetFlag(c.Flags(), sw.name, "false")
		}
	case *int:
		defaultInt, err := strconv.Atoi(sw.val)
		if err != nil {
			fmt.Printf("the value for flag %q must be an integer: %v\n", sw.name, err)
			os.Exit(1)
		}
		c.Flags().IntVarP(p, sw.name, sw.shortHand, defaultInt, desc)
		// Signal that the flag was set so defaults take effect.
		if sw.val != "" { // if there is a value via env, config or default...
			mustSetFlag(c.Flags(), sw.name, sw.val)
		}
	default:
		panic("Error: unhandled CLI flag target value type")
	}
	// Optionally mark the flag as mandatory.
	if required { // if the flag is required...
		_ = c.MarkFlagRequired(sw.name)
	}
}

// getCliFlag fetches the value of name from the environment first,
// else reads the Main config file to find it.
// If a value cannot be found then use the supplied defaultValue in its place.
func (f *cliFlags) getCliFlag(name string, defaultValue string, fnGetConfig func(key string, out interface{}) error) cliFlag {
	s, ok := switches[name]
	if !ok {
		panic(fmt.Sprintf("unregistered CLI flag, %q", name))
	}
	if err := helper.ReadValueFromEnv(helper.FlagNameToEnvVar(name), &s.val); err == nil && s.val != "" { // if the env var supplied a value...
		return s
	}
	err := fnGetConfig(s.name, &s.val)
	if errors.As(err, &config.KeyNotFoundError{}) || errors.As(err, &config.FileNotFoundError{}) || s.val == "" { // if there was no key found...
		// Apply the default.
		s.val = defaultValue
	}
	return s
}

func mustSetFlag(f *pflag.FlagSet, name string, val string) {
	if err := f.Set(name, val); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// getGsURLArgsFunc returns a func that cobra uses to validate that we have 1 arg
// of the form gs://<bucket>[/<prefix>]. It saves arg[0] into target.
func getGsURLArgsFunc(target *string, customErrMsg string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 || !strings.HasPrefix(args[0], constants.GcsURLScheme) {
			if customErrMsg != "" {
				return errors.New(customErrMsg)
			}
			return errors.New("requires a target gs://<bucket>[/<prefix>]")
		}
		*target = args[0]
		return nil
	}
}

// getDirAndGsURLArgsFunc returns a func that cobra uses to validate that we have 2 args:
// a local directory followed by a gs:// URL.
func getDirAndGsURLArgsFunc(dir *string, target *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 || strings.HasPrefix(args[0], constants.GcsURLScheme) || !strings.HasPrefix(args[1], constants.GcsURLScheme) {
			return errors.New("requires a local directory and a target gs://<bucket>[/<prefix>]")
		}
		*dir = args[0]
		*target = args[1]
		return nil
	}
}

// getGsURLPairArgsFunc returns a func that cobra uses to validate that we have 2 gs:// URLs.
// It saves arg[0] as the source and arg[1] as the target.
func getGsURLPairArgsFunc(src *string, tgt *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 || !strings.HasPrefix(args[0], constants.GcsURLScheme) || !strings.HasPrefix(args[1], constants.GcsURLScheme) {
			return errors.New("requires source and target gs://<bucket>[/<prefix>]")
		}
		*src = args[0]
		*tgt = args[1]
		return nil
	}
}
