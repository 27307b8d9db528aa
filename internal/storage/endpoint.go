// Package storage talks to the object-storage backend: endpoint resolution,
// the S3 client and the HTTP transport bridge between them.
package storage

import (
	"fmt"
	"strings"
)

// Config holds the resolved storage settings for one batch. It is built
// from persisted settings when a batch starts and never mutated afterwards,
// so concurrent pipelines can share it freely.
type Config struct {
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string

	// Endpoint is a custom API endpoint (MinIO, R2, ...). Empty selects
	// the standard regional endpoint.
	Endpoint string

	// ForcePathStyle addresses objects as endpoint/bucket/key instead of
	// bucket.endpoint/key.
	ForcePathStyle bool

	// PublicURL overrides the derived public URL prefix (CDN fronting the
	// bucket). Empty derives the prefix from the endpoint.
	PublicURL string
}

// Endpoints carries the two URLs derived from a Config: where to send API
// requests and the prefix embed links are built from.
type Endpoints struct {
	APIEndpoint     string
	PublicURLPrefix string
}

// ResolveEndpoints derives the API endpoint and public URL prefix for cfg.
// It is pure; callers re-resolve whenever settings change.
func ResolveEndpoints(cfg Config) Endpoints {
	api := cfg.Endpoint
	if api != "" {
		api = NormalizeURL(api)
	} else {
		api = fmt.Sprintf("https://s3.%s.amazonaws.com/", cfg.Region)
	}

	var prefix string
	switch {
	case cfg.PublicURL != "":
		prefix = NormalizeURL(cfg.PublicURL)
	case cfg.ForcePathStyle:
		prefix = api + cfg.Bucket + "/"
	default:
		// Virtual-hosted style: inject the bucket as a subdomain.
		prefix = strings.Replace(api, "://", "://"+cfg.Bucket+".", 1)
	}

	return Endpoints{APIEndpoint: api, PublicURLPrefix: prefix}
}

// NormalizeURL trims whitespace and guarantees a scheme prefix and a
// trailing slash.
func NormalizeURL(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}
	return s
}
