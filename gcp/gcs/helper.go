package gcs

import (
	"fmt"
	"path"
	"strings"

	"github.com/lakepipe/lakepipe/constants"
)

type GcsBucket struct {
	Name   string `errorTxt:"bucket name" mandatory:"yes"`
	Prefix string `errorTxt:"bucket prefix"`
}

// ParseGsURL expects bucketPrefix to be of the form [gs://]<bucket>[/<prefix>]
// It returns a GcsBucket populated with the components of bucketPrefix.
// If there is a parsing error it returns an error.
func ParseGsURL(bucketPrefix string) (retval GcsBucket, err error) {
	s := strings.TrimPrefix(bucketPrefix, constants.GcsURLScheme)
	s = strings.Trim(s, "/")
	if s == "" {
		return retval, fmt.Errorf("unable to parse bucket from %q; use format %v<bucket>[/<prefix>]", bucketPrefix, constants.GcsURLScheme)
	}
	tokens := strings.SplitN(s, "/", 2)
	retval.Name = tokens[0]
	if len(tokens) == 2 {
		retval.Prefix = strings.Trim(tokens[1], "/")
	}
	return retval, nil
}

func (b GcsBucket) GetScheme() (string, error) {
	return constants.ConnectionTypeGcs, nil
}

// URL returns the gs:// URL of the bucket and prefix.
func (b GcsBucket) URL() string {
	return constants.GcsURLScheme + path.Join(b.Name, b.Prefix)
}

// ObjectURL returns the full gs:// URL of key under the bucket prefix.
func (b GcsBucket) ObjectURL(key string) string {
	return constants.GcsURLScheme + path.Join(b.Name, b.Prefix, key)
}
