package ctxutil

// SimpleKey is a context key identified by its name.
type SimpleKey string

func (k SimpleKey) String() string {
	return string(k)
}
