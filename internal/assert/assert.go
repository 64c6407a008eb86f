package assert

// NotNil panics on a nil value, it is meant for constructor arguments that
// are programmer errors when missing.
func NotNil(value any) {
	if value == nil {
		panic("expected value to be not nil")
	}
}
