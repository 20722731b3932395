package services

import (
	"github.com/pkg/errors"
	"github.com/zeebo/errs"
)

var (
	// ErrConfig marks configuration problems such as a missing credential
	ErrConfig = errs.Class("configuration")

	// ErrContract marks upstream data or files that changed shape incompatibly
	ErrContract = errs.Class("upstream contract")

	// ErrOptionsMismatch is returned after a mismatch table has been reported
	ErrOptionsMismatch = errors.New("option lists differ")

	// ErrTableDrift is returned by a check run when the build script is out of date
	ErrTableDrift = errors.New("distribution table is out of date")
)
