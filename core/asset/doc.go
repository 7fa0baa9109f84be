// Package asset resolves request paths to static files for requests that no
// route matched.
//
// A Loader returns ErrNotFound when nothing exists for a path, which the
// dispatcher turns into a regular not-found response. Three loaders are
// provided:
//
//	asset.Dir("./public")           // local directory
//	asset.FS(embeddedFiles)         // any fs.FS, e.g. embed.FS
//	asset.S3(ctx, asset.S3Config{   // S3 or an S3-compatible service
//		Bucket: "assets",
//		Region: "eu-central-1",
//		Prefix: "public",
//	})
//
// Paths containing ".." segments are rejected with ErrInvalidPath.
// Directories resolve to their index.html and are never listed.
package asset
