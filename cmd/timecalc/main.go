// Command timecalc evaluates clock-time and duration arithmetic from the
// command line:
//
//	timecalc time 23:00 add:hours:25 increment:second
//	timecalc duration PT1H30M multiply:3 subtract:PT45M
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
