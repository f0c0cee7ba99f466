package main

import "github.com/ThatOtherAndrew/Handcloud/cmd"

func main() {
	cmd.Execute()
}
