package research

import "fmt"

// ConfigError indicates the research client was configured with credentials
// that cannot work, caught before any network call is made.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("research config error: %s", e.Message)
}

// InputError indicates the analyzer was invoked without the place data it
// needs to build a prompt.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("research input error: %s", e.Message)
}
