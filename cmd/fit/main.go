// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/fitvcs/fit/pkg/command"
	"github.com/fitvcs/fit/pkg/fit"
)

type App struct {
	command.Globals
	Init    command.Init    `cmd:"init" help:"Create an empty fit repository"`
	Add     command.Add     `cmd:"add" help:"Add file contents to the index"`
	RM      command.Remove  `cmd:"rm" help:"Remove files from the working tree and from the index"`
	Status  command.Status  `cmd:"status" help:"Show the working tree status"`
	Commit  command.Commit  `cmd:"commit" help:"Record changes to the repository"`
	Log     command.Log     `cmd:"log" help:"Show commit logs"`
	CatFile command.Cat     `cmd:"cat-file" aliases:"cat" help:"Provide contents or details of repository objects"`
	Show    command.Show    `cmd:"show" help:"Show various types of objects"`
	Reset   command.Reset   `cmd:"reset" help:"Reset current HEAD to the specified state"`
	Branch  command.Branch  `cmd:"branch" help:"List, create, or delete branches"`
	Diff    command.Diff    `cmd:"diff" help:"Show changes between commits, or the index and HEAD"`
	Merge   command.Merge   `cmd:"merge" help:"Join two development histories together"`
	Stash   command.Stash   `cmd:"stash" help:"Stash the changes in a dirty working directory away"`
	Config  command.Config  `cmd:"config" help:"Get and set repository options"`
	Version command.Version `cmd:"version" help:"Display version information"`
}

func main() {
	var app App
	ctx := kong.Parse(&app,
		kong.Name("fit"),
		kong.Description("fit - a small, local, content-addressed version control engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&app.Globals)
	if err == nil {
		return
	}
	if e, ok := err.(*fit.ErrExitCode); ok {
		os.Exit(e.ExitCode)
	}
	os.Exit(1)
}
