// Package config holds the inputs csvgen reads from disk and environment.
//
// A [Layout] is a YAML description of input and output columns that can be
// generated without running the wizard. [Settings] carries runtime options
// such as the row ceiling and object storage credentials.
package config
