// Command reportfig renders report figure pages from JSON template
// documents.
//
//	reportfig render figure.json -o figure.pdf
//	reportfig blank figure.json
//	reportfig render figure.json -c site.toml
package main

import (
	"os"

	"github.com/lvillar/reportfig/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.SetVersion(version, commit)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
