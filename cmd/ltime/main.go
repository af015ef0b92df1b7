// ltime - rewrite ISO-8601 timestamps into your timezone
//
// ltime reads log lines from standard input or files and rewrites every
// zoned ISO-8601 timestamp into the target timezone, leaving all other text
// as it was.
package main

import (
	"os"
	_ "time/tzdata" // IANA zones for hosts without a zoneinfo database

	"github.com/joho/godotenv"

	"github.com/ccollicutt/ltime/internal/cli"
	"github.com/ccollicutt/ltime/pkg/zone"
)

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	zone.InitLocal()

	os.Exit(cli.Execute())
}
