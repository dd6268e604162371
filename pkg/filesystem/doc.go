// Package filesystem provides the afero filesystems zat reads templates
// from and writes output to, plus the existence checks shared by the
// configuration and processing layers.
//
// Production code uses the OS filesystem; tests use an in-memory one so
// whole template repositories can be built and processed without touching
// disk.
package filesystem
