// Command neck runs a guided neck-care routine in the terminal.
package main

import "github.com/xvierd/neck-cli/cmd"

func main() {
	cmd.Execute()
}
