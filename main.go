package main

import "skillswap-backend/cmd"

func main() {
	cmd.Run()
}
