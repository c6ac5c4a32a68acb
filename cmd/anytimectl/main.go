// Command anytimectl is the CLI front end over the core streaming
// inference packages. It is a thin external collaborator: it imports
// spec/hoeffding/ebernstein/bernoulli/twosample/recommend/ndjson, never
// the reverse, and none of cobra, yaml, zerolog, godotenv,
// or lumberjack leak into the core.
package main

import (
	"os"

	"github.com/nibzard/anytime/cmd/anytimectl/internal/commands"
)

func main() {
	os.Exit(commands.Execute())
}
