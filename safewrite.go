package forma

import (
	"fmt"
	"os"
	"path"
)

const tmpFolder = "./"

// SafeWrite noisily saves the canvas to a tmp file and then moves it in place
func (s Seed) SafeWrite(ctx *Context, prefix, ext string) error {
	fname := s.GetFilename(prefix, ext)
	if err := safeWrite(ctx, fname); err != nil {
		fmt.Printf("Problem saving %s: %v\n", fname, err)
		return err
	}
	fmt.Printf("Saved to %s\n", fname)
	return nil
}

// SafeWriteBytes noisily saves raw file contents, same tmp+rename dance
func (s Seed) SafeWriteBytes(data []byte, prefix, ext string) (string, error) {
	fname := s.GetFilename(prefix, ext)
	if err := safeWriteBytes(data, fname); err != nil {
		fmt.Printf("Problem saving %s: %v\n", fname, err)
		return fname, err
	}
	fmt.Printf("Saved to %s\n", fname)
	return fname, nil
}

// MaybeCreateDir creates dir (and parents) unless it already exists
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}

// safeWrite writes to a temp file then renames atomically
func safeWrite(ctx *Context, fname string) error {
	if err := MaybeCreateDir(path.Dir(fname)); err != nil {
		return err
	}

	ext := path.Ext(fname)
	tmpfile, err := os.CreateTemp(tmpFolder, "forma.*"+ext)
	if err != nil {
		return err
	}
	tmpfile.Close() // the writers below open it by name

	switch ext {
	case ".png":
		err = ctx.WritePNG(tmpfile.Name())
	case ".svg":
		err = ctx.WriteSVG(tmpfile.Name())
	case ".pdf":
		err = ctx.WritePDF(tmpfile.Name())
	default:
		err = fmt.Errorf("unsupported file format %s", ext)
	}
	if err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	// Note: the folders here need to be on the same drive
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		return err
	}
	return os.Chmod(fname, 0664)
}

// safeWriteBytes is safeWrite for contents already rendered in memory
func safeWriteBytes(data []byte, fname string) error {
	if err := MaybeCreateDir(path.Dir(fname)); err != nil {
		return err
	}

	tmpfile, err := os.CreateTemp(tmpFolder, "forma.*"+path.Ext(fname))
	if err != nil {
		return err
	}
	if _, err := tmpfile.Write(data); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return err
	}
	if err := tmpfile.Close(); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		return err
	}
	return os.Chmod(fname, 0664)
}
