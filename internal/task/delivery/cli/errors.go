package cli

import "errors"

var (
	ErrUsage         = errors.New("usage: add <title> | <priority> | <deadline>")
	ErrUnknownFormat = errors.New("unknown batch format, use yaml, json or toml")
)
