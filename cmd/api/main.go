package main

import "github.com/Overland-East-Bay/participant-api/cmd/api/cmd"

func main() {
	cmd.Execute()
}
