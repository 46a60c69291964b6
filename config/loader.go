package config

// Loader fills a target from some configuration source
type Loader interface {
	// Load loads the configuration into the target
	Load(target any) error

	// Watch invokes callback whenever the source changes
	Watch(callback func()) error
}
