package config

import (
	"flag"
	"os"

	"github.com/iammatthias/s3-image-uploader/internal/flagx"
)

// parseFlags populates selected Settings fields from command-line flags.
//
// Supported flags:
//
//	-b string   bucket name
//	-r string   storage region
//	-e string   custom API endpoint (enables custom-endpoint mode)
//
// Only these flags are consumed; flagx.FilterArgs keeps the parser from
// tripping over flags owned by other components.
func parseFlags(s *Settings) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-r", "-e"})

	fs := flag.NewFlagSet("settings", flag.ContinueOnError)

	fs.StringVar(&s.Bucket, "b", s.Bucket, "bucket name")
	fs.StringVar(&s.Region, "r", s.Region, "storage region")
	endpoint := fs.String("e", "", "custom API endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *endpoint != "" {
		s.UseCustomEndpoint = true
		s.CustomEndpoint = *endpoint
	}
}
