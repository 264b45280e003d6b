//go:build linux

package main

import "golang.org/x/sys/unix"

// isTerminal reports whether fd refers to a terminal, the same
// ioctl-succeeds-means-tty check vibe67's filewatcher_unix.go uses for its
// own platform-specific syscall access (there via inotify, here via
// TCGETS) rather than pulling in a dedicated terminal-detection library.
func isTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	return err == nil
}
