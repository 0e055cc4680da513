//go:build !windows

package source

import "syscall"

var errIsDir error = syscall.EISDIR
