// Copyright © 2016 Geoff Holden <geoff@geoffholden.com>

package main

import "github.com/mattleung10/PicoLog-Thermocouple-Converter/cmd"

func main() {
	cmd.Execute()
}
