package main

import (
	"fmt"

	"github.com/tangzhangming/meantree/internal/i18n"
	"github.com/tangzhangming/meantree/internal/logging"
)

// diagnosticsCarrier 是携带源码诊断的错误
type diagnosticsCarrier interface {
	error
	diagnostics() []logging.Diagnostic
}

// 错误类型定义
type accessError struct {
	path string
	err  error
}

func (e *accessError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrCannotAccess, e.path), e.err)
}

func (e *accessError) Unwrap() error { return e.err }

type configError struct {
	path string
	err  error
}

func (e *configError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrCannotLoad, e.path), e.err)
}

func (e *configError) Unwrap() error { return e.err }

type readFileError struct {
	path string
	err  error
}

func (e *readFileError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrCannotReadFile, e.path), e.err)
}

func (e *readFileError) Unwrap() error { return e.err }

type parseError struct {
	path  string
	diags []logging.Diagnostic
}

func (e *parseError) Error() string {
	return i18n.T(i18n.ErrParseFailed, e.path, len(e.diags))
}

func (e *parseError) diagnostics() []logging.Diagnostic { return e.diags }

type transpileError struct {
	path  string
	diags []logging.Diagnostic
}

func (e *transpileError) Error() string {
	return i18n.T(i18n.ErrTranspileFailed, e.path, len(e.diags))
}

func (e *transpileError) diagnostics() []logging.Diagnostic { return e.diags }

type generateError struct {
	path string
	err  error
}

func (e *generateError) Error() string {
	return e.err.Error()
}

func (e *generateError) Unwrap() error { return e.err }

type noFilesError struct {
	dir string
}

func (e *noFilesError) Error() string {
	return i18n.T(i18n.ErrNoInputFiles, e.dir)
}

type createDirError struct {
	path string
	err  error
}

func (e *createDirError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrCannotCreateDir, e.path), e.err)
}

func (e *createDirError) Unwrap() error { return e.err }

type writeFileError struct {
	path string
	err  error
}

func (e *writeFileError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrCannotWriteFile, e.path), e.err)
}

func (e *writeFileError) Unwrap() error { return e.err }
