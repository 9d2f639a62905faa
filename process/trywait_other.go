//go:build !linux

package process

func exited(int) (bool, error) {
	return false, unsupported("polling a child for exit")
}
