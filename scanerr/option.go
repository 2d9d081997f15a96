package scanerr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithCause(err error) Option    { return func(e *Error) { e.cause = err } }

// WithElement sets the offending element name
func WithElement(name string) Option {
	return func(e *Error) {
		if e.Info == nil {
			e.Info = &errorInfo{}
		}
		e.Info.BadElement = name
	}
}
