// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/nlzss

package nlzss

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrInvalidHeader      = errors.New("header tag is not 0x10 or 0x11")
	ErrInputTooShort      = errors.New("not enough data for header")
	ErrUnexpectedEOF      = errors.New("unexpected end of input while reading flags")
	ErrUnexpectedEOFToken = errors.New("unexpected end of input inside flags block")
	ErrInvalidBackRef     = errors.New("back-reference before start of output")
	ErrSizeLimit          = errors.New("declared decoded size exceeds limit")
	ErrNilReader          = errors.New("reader is nil")
)
