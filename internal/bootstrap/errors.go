package bootstrap

import "errors"

// ErrUnsupportedFormat is returned by [LoadConfig] when the configuration
// file extension matches no loader.
var ErrUnsupportedFormat = errors.New("unsupported configuration file format")
