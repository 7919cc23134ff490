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
// Package imageloader reads firmware images in the Intel HEX format. This is
// the format produced by avr-objcopy and is the format that the simulator
// expects.
//
// The Loader type loads the image from a file or from a HTTP URL. The
// Decode() function works on any io.Reader and the Encode() function
// writes an image back in the same format. The two functions are inverses of
// one another for the program bytes: decoding an encoded image produces the
// same bytes.
//
// Errors are curated. The patterns CorruptImage and TruncatedImage identify
// problems with the content of the image, FileError identifies problems with
// reading it.
package imageloader
