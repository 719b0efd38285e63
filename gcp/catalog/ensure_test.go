package catalog

import (
	"context"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lakepipe/lakepipe/logger"
)

var testLog = logger.NewLogger("lakepipe", "error", false)

func TestEnsureLakeCreateThenReuse(t *testing.T) {
	ctx := context.Background()
	m := NewMockAPI()

	lake1, err := EnsureLake(ctx, testLog, m, "proj", "us-central1", "my-csv-lake", "My CSV Data Lake")
	if err != nil {
		t.Fatal("unexpected error on first ensure: ", err)
	}
	lake2, err := EnsureLake(ctx, testLog, m, "proj", "us-central1", "my-csv-lake", "My CSV Data Lake")
	if err != nil {
		t.Fatal("unexpected error on second ensure: ", err)
	}

	// One real creation and one reuse via get.
	if len(m.Lakes) != 1 {
		t.Fatalf("got %v lakes; expected 1", len(m.Lakes))
	}
	if m.GetLakeCalls != 1 {
		t.Fatalf("got %v get calls; expected 1", m.GetLakeCalls)
	}
	if lake1.GetName() != lake2.GetName() {
		t.Fatalf("ensure returned different lakes: %q vs %q", lake1.GetName(), lake2.GetName())
	}
	if lake1.GetName() != "projects/proj/locations/us-central1/lakes/my-csv-lake" {
		t.Fatalf("unexpected lake name %q", lake1.GetName())
	}
}

func TestEnsureLakeNonConflictError(t *testing.T) {
	m := NewMockAPI()
	m.CreateLakeErr = status.Error(codes.PermissionDenied, "nope")

	_, err := EnsureLake(context.Background(), testLog, m, "proj", "us-central1", "my-csv-lake", "")
	if err == nil {
		t.Fatal("expected the permission error to propagate")
	}
	if status.Code(errorCause(err)) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied in cause chain, got %v", err)
	}
	if m.GetLakeCalls != 0 {
		t.Fatal("a non-conflict error must not fall back to get")
	}
}

func TestEnsureZoneSpec(t *testing.T) {
	ctx := context.Background()
	m := NewMockAPI()

	zone, err := EnsureZone(ctx, testLog, m, "proj", "us-central1", "my-csv-lake", "raw-csv-data", "Raw CSV Zone")
	if err != nil {
		t.Fatal("unexpected error: ", err)
	}
	if !strings.HasSuffix(zone.GetName(), "lakes/my-csv-lake/zones/raw-csv-data") {
		t.Fatalf("unexpected zone name %q", zone.GetName())
	}
	spec := zone.GetDiscoverySpec()
	if !spec.GetEnabled() {
		t.Fatal("discovery should be enabled")
	}
	if spec.GetCsvOptions().GetHeaderRows() != 1 || spec.GetCsvOptions().GetDelimiter() != "," {
		t.Fatalf("unexpected csv options %v", spec.GetCsvOptions())
	}
	if spec.GetCsvOptions().GetDisableTypeInference() {
		t.Fatal("type inference should stay enabled")
	}
	// us-central1 maps to a multi-region zone.
	if got := zone.GetResourceSpec().GetLocationType(); got.String() != "MULTI_REGION" {
		t.Fatalf("got location type %v; expected MULTI_REGION", got)
	}
}

func TestEnsureZoneSingleRegion(t *testing.T) {
	m := NewMockAPI()
	zone, err := EnsureZone(context.Background(), testLog, m, "proj", "asia-northeast1", "lake", "zone", "")
	if err != nil {
		t.Fatal("unexpected error: ", err)
	}
	if got := zone.GetResourceSpec().GetLocationType(); got.String() != "SINGLE_REGION" {
		t.Fatalf("got location type %v; expected SINGLE_REGION", got)
	}
}

func TestEnsureAssetCreateThenReuse(t *testing.T) {
	ctx := context.Background()
	m := NewMockAPI()

	a1, err := EnsureAsset(ctx, testLog, m, "proj", "us-central1", "lake", "zone", "csv-files-asset", "demo-lnd-cs-0")
	if err != nil {
		t.Fatal("unexpected error on first ensure: ", err)
	}
	if got := a1.GetResourceSpec().GetName(); got != "projects/proj/buckets/demo-lnd-cs-0" {
		t.Fatalf("unexpected asset resource name %q", got)
	}
	if a1.GetResourceSpec().GetType().String() != "STORAGE_BUCKET" {
		t.Fatalf("unexpected asset resource type %v", a1.GetResourceSpec().GetType())
	}

	if _, err := EnsureAsset(ctx, testLog, m, "proj", "us-central1", "lake", "zone", "csv-files-asset", "demo-lnd-cs-0"); err != nil {
		t.Fatal("unexpected error on second ensure: ", err)
	}
	if len(m.Assets) != 1 || m.GetAssetCalls != 1 {
		t.Fatalf("expected 1 asset and 1 get call; got %v assets and %v gets", len(m.Assets), m.GetAssetCalls)
	}
}

// errorCause unwinds pkg/errors wrapping to the original error.
func errorCause(err error) error {
	type causer interface {
		Cause() error
	}
	for err != nil {
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return err
}
