package runtime

// Must panics if err is non-nil. Reserved for startup wiring that cannot
// sensibly continue (e.g. flag/env binding).
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
