// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "rfxboot/cmd/rfxboot"
)

func main() {
	cmd.Execute()
}
