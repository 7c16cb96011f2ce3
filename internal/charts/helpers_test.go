package charts_test

import (
	"testing"

	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

func mustDataset(t *testing.T, records []models.LaunchRecord) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.New(records)
	if err != nil {
		t.Fatalf("failed to build dataset: %v", err)
	}
	return ds
}
