package main

import "ornithe-meta/cmd"

func main() {
	cmd.Execute()
}
