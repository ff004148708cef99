package filesystem

import (
	"fmt"
	"io"
	"os"
)

// Copy copies the regular file src to dst and keeps its modification time.
func Copy(src, dst string) (err error) {
	sourceFileStat, err := os.Stat(src)
	if err != nil {
		return err
	}

	if !sourceFileStat.Mode().IsRegular() {
		return fmt.Errorf("path '%s' does not denote a file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return fmt.Errorf("copy '%s': %w", src, err)
	}

	modTime := sourceFileStat.ModTime()
	return os.Chtimes(dst, modTime, modTime)
}
