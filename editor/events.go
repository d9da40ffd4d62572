package editor

import "github.com/jeremyd1/text-editor/buffer"

type ChangeEvent struct {
	Version uint64
	Cursor  buffer.Point

	Text string
}

// SavedMsg reports a completed Save.
type SavedMsg struct {
	Path    string
	Version uint64
	Bytes   int64
}

// SaveErrMsg reports a failed Save.
type SaveErrMsg struct {
	Path string
	Err  error
}

func (e SaveErrMsg) Error() string { return e.Err.Error() }

func (e SaveErrMsg) Unwrap() error { return e.Err }
