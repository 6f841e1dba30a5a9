package filesystem

import (
	"os"

	"mediascribe/domain/extraction"
	"mediascribe/domain/transcription"
)

// Checker implements the domain FileChecker ports using the os package
type Checker struct{}

// NewChecker creates a new filesystem checker
func NewChecker() *Checker {
	return &Checker{}
}

// Exists returns true if the path exists
func (c *Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile returns true if the path is a regular file
func (c *Checker) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Ensure Checker implements both feature ports
var (
	_ extraction.FileChecker    = (*Checker)(nil)
	_ transcription.FileChecker = (*Checker)(nil)
)
