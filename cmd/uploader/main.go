package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/iammatthias/s3-image-uploader/internal/buildinfo"
	"github.com/iammatthias/s3-image-uploader/internal/cli"
	"github.com/iammatthias/s3-image-uploader/internal/config"
	"github.com/iammatthias/s3-image-uploader/internal/uploader"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	fs := flag.NewFlagSet("uploader", flag.ExitOnError)
	note := fs.String("f", "", "markdown note to upload into")
	drop := fs.Bool("drop", false, "treat the batch as a drag-and-drop event")

	// Settings flags, parsed separately by the config package; registered
	// here so the shared command line stays valid.
	fs.String("c", "", "path to settings file")
	fs.String("config", "", "path to settings file")
	fs.String("b", "", "bucket name")
	fs.String("r", "", "storage region")
	fs.String("e", "", "custom API endpoint")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}

	if *note == "" || fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: uploader -f note.md [flags] file [file...]")
		os.Exit(2)
	}

	source := uploader.SourcePaste
	if *drop {
		source = uploader.SourceDrop
	}

	ctx := context.Background()
	settings := config.LoadSettings()
	app := cli.NewApp(settings)

	if err := app.Run(ctx, *note, fs.Args(), source); err != nil {
		log.Fatalf("%v", err)
	}
}
