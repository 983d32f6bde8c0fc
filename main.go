package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	cli "QuickExplorer/CLI"
	utils "QuickExplorer/Utils"
)

func main() {
	timer := utils.StartTimer()

	welcome := color.New(color.FgHiBlue, color.Bold).SprintFunc()
	fmt.Fprintln(os.Stderr, welcome("\n🚀 Welcome to QuickExplorer, your folder-first directory browser"))

	cli.Execute()

	color.New(color.FgHiMagenta).Fprintf(os.Stderr, "⏱️  Process time: %.3f s\n", timer.Seconds())
}
