// Command apiconv is a linter that checks API actions against the status
// codes they document.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/apiconv"
)

func main() {
	singlechecker.Main(apiconv.Analyzer)
}
