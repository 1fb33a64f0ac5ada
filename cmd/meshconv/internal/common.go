package common

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rbxasset/meshconv/pkg/filemesh"
	"github.com/rbxasset/meshconv/pkg/objconv"
	"github.com/rbxasset/meshconv/pkg/place"
)

// Errf returns formatted error in errFmt format if err is not nil.
func Errf(errFmt string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf(errFmt, err)
}

// ExitOnErr prints error and exits with a code depending on the error type
//
//	0 if nil
//	1 internal errors and unexpected failures
//	2 malformed input documents
//	3 valid documents carrying something this tool does not handle
//
// If errFmt is non-empty, err is wrapped into it first.
func ExitOnErr(cmd *cobra.Command, errFmt string, err error) {
	if err == nil {
		return
	}

	if errFmt != "" {
		err = fmt.Errorf(errFmt, err)
	}

	const (
		_ = iota
		internal
		badInput
		unsupported
	)

	var code int

	switch {
	case errors.Is(err, filemesh.ErrMalformedHeader),
		errors.Is(err, filemesh.ErrMalformedBody),
		errors.Is(err, filemesh.ErrTruncated),
		errors.Is(err, objconv.ErrNoMeshData):
		code = badInput
	case errors.Is(err, filemesh.ErrUnsupportedVersion),
		errors.Is(err, filemesh.ErrUnsupportedFeature),
		errors.Is(err, place.ErrBinaryPlace):
		code = unsupported
	default:
		code = internal
	}

	cmd.PrintErrln(err)
	os.Exit(code)
}
