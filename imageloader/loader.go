// This file is part of avrsim.
//
// avrsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// avrsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with avrsim.  If not, see <https://www.gnu.org/licenses/>.
package imageloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/avrsim/avrsim/curated"
)

// FileError is the pattern for errors that occur while reading an image.
const FileError = "imageloader: %v"

// Loader is used to specify the firmware image to load into the simulator.
type Loader struct {
	// filename of the image. a http or https URL is also accepted
	Filename string

	// expected hash of the file. an empty string indicates that the hash is
	// unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded file
	Hash string

	// the raw content of the file
	Data []byte

	// the decoded image. nil until Load() has succeeded
	Image *Image
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the filename without the path and extension.
func (ld Loader) ShortName() string {
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return ld.Image != nil
}

// Load reads and decodes the image. Calling Load() a second time has no
// effect.
func (ld *Loader) Load() error {
	if ld.Image != nil {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var err error

	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(FileError, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(FileError, fmt.Sprintf("%s: %s", ld.Filename, resp.Status))
		}
		ld.Data, err = io.ReadAll(resp.Body)

	case "file":
		ld.Data, err = os.ReadFile(ld.Filename)

	default:
		// a single letter scheme is a windows drive letter
		if len(scheme) == 1 {
			ld.Data, err = os.ReadFile(ld.Filename)
		} else {
			return curated.Errorf(FileError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
		}
	}

	if err != nil {
		return curated.Errorf(FileError, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(FileError, "unexpected hash value")
	}
	ld.Hash = hash

	img, err := Decode(bytes.NewReader(ld.Data))
	if err != nil {
		return err
	}
	ld.Image = img

	return nil
}
