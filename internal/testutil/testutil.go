// Package testutil provides test utilities and helpers.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"launchdash/internal/dataset"
)

// LaunchCSV is a small launch dataset covering every site and booster category.
//
//	CCAFS LC-40:  4 launches, 2 successes
//	VAFB SLC-4E:  2 launches, 1 success
//	KSC LC-39A:   3 launches, 2 successes
//	CCAFS SLC-40: 1 launch,   1 success
const LaunchCSV = `,Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category
0,1,CCAFS LC-40,0,0,F9 v1.0  B0003,v1.0
1,2,CCAFS LC-40,1,525,F9 v1.0  B0005,v1.0
2,3,VAFB SLC-4E,0,500,F9 v1.1  B1003,v1.1
3,4,KSC LC-39A,1,2490,F9 FT B1031.1,FT
4,5,KSC LC-39A,1,5300,F9 FT B1032.1,FT
5,6,CCAFS LC-40,0,4535,F9 v1.1,v1.1
6,7,KSC LC-39A,0,6070,F9 B4 B1040.1,B4
7,8,VAFB SLC-4E,1,9600,F9 B4 B1041.1,B4
8,9,CCAFS SLC-40,1,3669,F9 B5 B1046.2,B5
9,10,CCAFS LC-40,1,9600,F9 B5 B1048.3,B5
`

// Fixture totals for LaunchCSV.
const (
	LaunchCount  = 10
	SuccessCount = 6
	MaxPayload   = 9600
)

// Dataset parses LaunchCSV and fails the test on error.
func Dataset(t testing.TB) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.Parse(strings.NewReader(LaunchCSV))
	if err != nil {
		t.Fatalf("failed to parse test dataset: %v", err)
	}
	return ds
}

// WriteCSV writes content to a temporary file and returns its path.
func WriteCSV(t testing.TB, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "launches.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test csv: %v", err)
	}
	return path
}
