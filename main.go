// SPDX-License-Identifier: MPL-2.0

package main

import cmd "cmdlens/cmd/cmdlens"

func main() {
	cmd.Execute()
}
