package sources

// Option configures a Fetch call.
type Option func(*fetchOptions)

// fetchOptions holds per-fetch settings.
type fetchOptions struct {
	noCache bool
}

// apply builds fetchOptions from a list of Options.
func apply(opts []Option) *fetchOptions {
	o := &fetchOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithNoCache forces a fresh download, ignoring any cached item files.
func WithNoCache() Option {
	return func(o *fetchOptions) {
		o.noCache = true
	}
}
