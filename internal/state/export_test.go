package state

// SetRename replaces the rename step of JSONFile saves until the returned
// func is called.
func SetRename(f func(oldpath, newpath string) error) (restore func()) {
	prev := rename
	rename = f
	return func() { rename = prev }
}
