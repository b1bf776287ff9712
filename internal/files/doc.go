// Package files locates dataset files on disk.
//
// When a command is pointed at a directory rather than a file, Discovery
// picks the most recently modified .json or .xlsx dataset in it.
package files
