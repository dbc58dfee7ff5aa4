package main

import "github.com/YangQing-Lin/git-ignore/cmd"

func main() {
	cmd.Execute()
}
