package argsum_api

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// treeScript returns the R commands that read a distance matrix file, run
// hierarchical clustering on it and write the tree in newick format
func treeScript(distanceFile, treeFile string) string {
	return fmt.Sprintf(`library(ape)
a=read.table("%s", header=TRUE, row.names=1)
h=hclust(dist(a))
write.tree(as.phylo(h), file="%s")
`, distanceFile, treeFile)
}

// TreeFromDistanceMatrix runs R on a generated clustering script to turn
// the distance matrix file into a newick tree at treeFile. The script and
// the R log are removed on success and left behind for inspection when R
// fails.
func TreeFromDistanceMatrix(distanceFile, treeFile string) error {
	absDistance, err := filepath.Abs(distanceFile)
	if err != nil {
		return err
	}
	absTree, err := filepath.Abs(treeFile)
	if err != nil {
		return err
	}

	script := treeFile + ".tmp.R"
	if err := os.WriteFile(script, []byte(treeScript(absDistance, absTree)), 0o644); err != nil {
		return errors.Wrap(err, "failed to write the clustering script")
	}

	// R CMD BATCH writes its log to <script>out in the working directory,
	// so run it from the directory holding the script
	cmd := exec.Command("R", "CMD", "BATCH", "--no-save", filepath.Base(script))
	cmd.Dir = filepath.Dir(script)
	cmd.Env = os.Environ()
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &ExternalToolError{Command: strings.Join(cmd.Args, " "), Err: err}
	}

	if err := os.Remove(script + "out"); err != nil {
		return err
	}
	return os.Remove(script)
}
