// Command paksafe runs the PakSafe locker controller on a GPIO host, replays
// scenarios in simulation and prints the controller's transition table.
package main

import "github.com/paksafe/paksafe/paksafe/cmd"

func main() {
	cmd.Execute()
}
