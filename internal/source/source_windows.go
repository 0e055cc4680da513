//go:build windows

package source

import "errors"

var errIsDir = errors.New("is a directory")
