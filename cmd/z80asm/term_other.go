//go:build !linux

package main

// isTerminal has no portable implementation outside the linux ioctl path;
// other platforms just never colorize.
func isTerminal(int) bool { return false }
