package main

import "github.com/fatih/color"

// Terminal colors for command output
var (
	dimColor     = color.New(color.FgHiBlack).SprintFunc()
	matchColor   = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen).SprintFunc()
	warnColor    = color.New(color.FgYellow).SprintFunc()
	headerColor  = color.New(color.Bold).SprintFunc()
)
