// This file is part of cdgplay.
//
// cdgplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cdgplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cdgplay.  If not, see <https://www.gnu.org/licenses/>.

package archivefs

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// ArchiveExtensions is the list of file extensions for the supported archive
// types.
var ArchiveExtensions = [...]string{".ZIP"}

// IsArchive returns true if the filename has an extension listed in
// ArchiveExtensions.
func IsArchive(filename string) bool {
	return slices.Contains(ArchiveExtensions[:], strings.ToUpper(filepath.Ext(filename)))
}

// TrimArchiveExt removes the file extension of any supported archive type
// from the end of the string.
func TrimArchiveExt(s string) string {
	if IsArchive(s) {
		return strings.TrimSuffix(s, filepath.Ext(s))
	}
	return s
}

// Path represents a single file in the file system, which may be inside an
// archive.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// path of the file inside the archive. always uses forward slashes
	inZip string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// IsDir returns true if Path is currently set to a directory. The root of an
// archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Set the path. Elements of the path that are archives are treated as
// directories.
func (afs *Path) Set(pth string) error {
	afs.Close()

	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split() removes a leading separator
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	var current string

	for _, l := range lst {
		current = filepath.Join(current, l)

		if afs.zf != nil {
			afs.inZip = path.Join(afs.inZip, l)

			f, err := afs.zf.Open(afs.inZip)
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: %w", err)
			}
			fi, err := f.Stat()
			f.Close()
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: %w", err)
			}

			afs.isDir = fi.IsDir()
			continue
		}

		fi, err := os.Stat(current)
		if err != nil {
			afs.Close()
			return fmt.Errorf("archivefs: %w", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		zf, err := zip.OpenReader(current)
		if err == nil {
			afs.zf = zf
			afs.isDir = true
			continue
		}

		if !errors.Is(err, zip.ErrFormat) {
			afs.Close()
			return fmt.Errorf("archivefs: %w", err)
		}
	}

	afs.current = current

	return nil
}

// Open and return an io.ReadSeeker for the file previously specified by
// Set().
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, fmt.Errorf("archivefs: %s is a directory", afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(afs.inZip)
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: %w", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: %w", err)
		}

		return bytes.NewReader(b), len(b), nil
	}

	b, err := os.ReadFile(afs.current)
	if err != nil {
		return nil, 0, fmt.Errorf("archivefs: %w", err)
	}

	return bytes.NewReader(b), len(b), nil
}

// Files returns the path of every file in the archive, in the order they
// appear in the archive. Returns nil if the path is not inside an archive.
func (afs Path) Files() []string {
	if afs.zf == nil {
		return nil
	}

	var files []string
	for _, f := range afs.zf.File {
		if !f.FileInfo().IsDir() {
			files = append(files, f.Name)
		}
	}
	return files
}

// Close any open zip files and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZip = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// Open and return an io.ReadSeeker for the specified filename. Filename can be
// inside an archive.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func Open(filename string) (io.ReadSeeker, int, error) {
	var afs Path
	if err := afs.Set(filename); err != nil {
		return nil, 0, err
	}
	defer afs.Close()
	return afs.Open()
}

// Find returns the path, suitable for Open(), of the first file in the archive
// with one of the extensions. Extensions are compared case insensitively and
// the order of extensions is the order of preference.
func Find(archive string, extensions ...string) (string, error) {
	var afs Path
	if err := afs.Set(archive); err != nil {
		return "", err
	}
	defer afs.Close()

	if !afs.InArchive() {
		return "", fmt.Errorf("archivefs: %s is not an archive", archive)
	}

	files := afs.Files()
	for _, ext := range extensions {
		for _, f := range files {
			if strings.EqualFold(path.Ext(f), ext) {
				return filepath.Join(afs.String(), filepath.FromSlash(f)), nil
			}
		}
	}

	return "", fmt.Errorf("archivefs: no file in %s with extension %s", filepath.Base(archive), strings.Join(extensions, ", "))
}
