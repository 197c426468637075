package cerr

import "github.com/cockroachdb/errors"

var _ error = ContextualError{}
var _ interface{ Unwrap() error } = ContextualError{}

type F = map[string]any

type Context struct {
	ContextFields F
}

// ContextualError carries the fields that were known at the point of failure
// so that they can be logged next to the message
type ContextualError struct {
	Context
	cause error
}

func (c ContextualError) Error() string {
	return c.cause.Error()
}

func (c ContextualError) Unwrap() error {
	return c.cause
}

func Fields(fields F) Context {
	copied := F{}
	for key, val := range fields {
		copied[key] = val
	}

	return Context{ContextFields: copied}
}

func Field(key string, val any) Context {
	return Fields(F{key: val})
}

func (c Context) Field(key string, val any) Context {
	next := Fields(c.ContextFields)
	next.ContextFields[key] = val
	return next
}

func (c Context) Wrap(err error) Wrapper {
	return Wrapper{
		context: c,
		cause:   err,
	}
}

func (c Context) Error(msg string) error {
	return ContextualError{
		Context: c,
		cause:   errors.NewWithDepth(1, msg),
	}
}

type Wrapper struct {
	context Context
	cause   error
}

func (w Wrapper) Error(msg string) error {
	if w.cause == nil {
		return ContextualError{
			Context: w.context,
			cause:   errors.NewWithDepth(1, msg),
		}
	}

	return ContextualError{
		Context: w.context,
		cause:   errors.WrapWithDepth(1, w.cause, msg),
	}
}

func Wrap(err error) Wrapper {
	return Context{ContextFields: F{}}.Wrap(err)
}

func Error(msg string) error {
	return ContextualError{
		Context: Context{ContextFields: F{}},
		cause:   errors.NewWithDepth(1, msg),
	}
}
