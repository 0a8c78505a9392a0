package argsum_api

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTreeScript(t *testing.T) {
	expect := `library(ape)
a=read.table("out.distance_matrix", header=TRUE, row.names=1)
h=hclust(dist(a))
write.tree(as.phylo(h), file="out.tre")
`
	if actual := treeScript("out.distance_matrix", "out.tre"); actual != expect {
		t.Errorf("expected script %q, got %q", expect, actual)
	}
}

// Running against a missing distance matrix fails whether or not R is
// installed, and must leave the script behind for inspection.
func TestTreeFromDistanceMatrixFails(t *testing.T) {
	dir := t.TempDir()
	treeFile := filepath.Join(dir, "out.tre")

	err := TreeFromDistanceMatrix(filepath.Join(dir, "missing.distance_matrix"), treeFile)
	if err == nil {
		t.Fatal("expected an error for a missing distance matrix")
	}
	var toolErr *ExternalToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected an ExternalToolError, got %v", err)
	}

	if _, err := os.Stat(treeFile + ".tmp.R"); err != nil {
		t.Errorf("expected the clustering script to be kept after a failure: %v", err)
	}
}
