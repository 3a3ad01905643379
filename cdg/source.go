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

package cdg

import (
	"errors"
	"io"

	"github.com/cdgplay/cdgplay/curated"
	"github.com/cdgplay/cdgplay/logger"
)

// Source implementations supply one packet at a time. ReadPacket() returns
// false at the end of the stream. A partial packet at the end of a stream is
// never returned.
type Source interface {
	ReadPacket() (Packet, bool)
}

// Seeker is a Source that can be repositioned to any packet in the stream.
// Backwards seeking in a Session requires a Seeker.
type Seeker interface {
	Source

	// SeekPacket repositions the source so that the next call to ReadPacket()
	// returns the packet at index n. n may be equal to Len(), in which case
	// the next read is the end of the stream
	SeekPacket(n int) error

	// Len returns the number of complete packets in the stream
	Len() int
}

// Error patterns returned by Seeker implementations.
const (
	SeekOutOfRange = "cdg: seek out of range: packet %d of %d"
)

// BufferSource is a Seeker for a stream that is entirely in memory.
type BufferSource struct {
	data   []byte
	offset int
}

// NewBufferSource is the preferred method of initialisation for the
// BufferSource type. The data is not copied and should not be altered while
// the BufferSource is being used. Any bytes after the last complete packet are
// ignored.
func NewBufferSource(data []byte) *BufferSource {
	return &BufferSource{data: data}
}

// ReadPacket implements the Source interface.
func (src *BufferSource) ReadPacket() (Packet, bool) {
	if src.offset+PacketSize > len(src.data) {
		return Packet{}, false
	}
	p, ok := NewPacket(src.data[src.offset : src.offset+PacketSize])
	if ok {
		src.offset += PacketSize
	}
	return p, ok
}

// SeekPacket implements the Seeker interface.
func (src *BufferSource) SeekPacket(n int) error {
	if n < 0 || n > src.Len() {
		return curated.Errorf(SeekOutOfRange, n, src.Len())
	}
	src.offset = n * PacketSize
	return nil
}

// Len implements the Seeker interface.
func (src *BufferSource) Len() int {
	return len(src.data) / PacketSize
}

// Position returns the index of the next packet to be read.
func (src *BufferSource) Position() int {
	return src.offset / PacketSize
}

// StreamSource is a forward only Source that reads packets from an
// io.Reader.
type StreamSource struct {
	r   io.Reader
	buf [PacketSize]byte
	err error

	// permission for log entries about the end of the stream. replaced by
	// the State of a Session using the source
	perm logger.Permission
}

// NewStreamSource is the preferred method of initialisation for the
// StreamSource type.
func NewStreamSource(r io.Reader) *StreamSource {
	return &StreamSource{r: r, perm: logger.Allow}
}

// setPermission implements the permissioned interface.
func (src *StreamSource) setPermission(perm logger.Permission) {
	src.perm = perm
}

// ReadPacket implements the Source interface. A read error or a short read
// ends the stream.
func (src *StreamSource) ReadPacket() (Packet, bool) {
	if src.err != nil {
		return Packet{}, false
	}

	_, err := io.ReadFull(src.r, src.buf[:])
	if err != nil {
		src.err = err
		if errors.Is(err, io.ErrUnexpectedEOF) {
			logger.Log(src.perm, logTag, "stream ends with a partial packet")
		} else if !errors.Is(err, io.EOF) {
			logger.Logf(src.perm, logTag, "stream: %v", err)
		}
		return Packet{}, false
	}

	return NewPacket(src.buf[:])
}

// Err returns the error that ended the stream. Returns nil if the stream has
// not ended or if it ended normally, including with a partial packet.
func (src *StreamSource) Err() error {
	if src.err == nil || errors.Is(src.err, io.EOF) || errors.Is(src.err, io.ErrUnexpectedEOF) {
		return nil
	}
	return src.err
}

// PullFunc is a forward only Source implemented by a function. The function
// should return false at the end of the stream.
type PullFunc func() (Packet, bool)

// ReadPacket implements the Source interface.
func (f PullFunc) ReadPacket() (Packet, bool) {
	return f()
}
