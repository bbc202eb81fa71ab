// main.go
package main

import "padel-booking/cmd"

func main() {
	cmd.Execute()
}
