// Package polymd scaffolds web-component projects from a template tree.
package polymd

// Version is the current polymd release.
const Version = "0.3.0"
