// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package datalog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/NVIDIA/unitframe/pkg/defaults"
	cnserrors "github.com/NVIDIA/unitframe/pkg/errors"
)

// FrameSize is the encoded size of a FlashProFrame in bytes.
var FrameSize = binary.Size(FlashProFrame{})

// commentHeader precedes the ASCII comment text.
type commentHeader struct {
	Offset float64 // seconds
	Length int32
}

// ReadFrame decodes one little-endian frame from r. It returns io.EOF
// unwrapped when r is exhausted before the frame starts.
func ReadFrame(r io.Reader) (FlashProFrame, error) {
	var f FlashProFrame
	if err := binary.Read(r, binary.LittleEndian, &f); err != nil {
		if errors.Is(err, io.EOF) {
			return f, io.EOF
		}
		return f, decodeError("frame", err)
	}
	return f, nil
}

// ReadFrames decodes frames from r until it is exhausted.
func ReadFrames(r io.Reader) ([]FlashProFrame, error) {
	var frames []FlashProFrame
	for {
		f, err := ReadFrame(r)
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
				fmt.Sprintf("failed to read frame %d", len(frames)), err,
				map[string]any{"frame": len(frames)})
		}
		frames = append(frames, f)
	}
}

// WriteFrame encodes f to w in little-endian order.
func WriteFrame(w io.Writer, f FlashProFrame) error {
	if err := binary.Write(w, binary.LittleEndian, f); err != nil {
		return cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to write frame", err)
	}
	return nil
}

// ReadComment decodes a comment record: a header holding the offset in
// seconds and the text length, followed by the ASCII text.
func ReadComment(r io.Reader) (KProComment, error) {
	var h commentHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return KProComment{}, decodeError("comment header", err)
	}
	if h.Length < 0 || int(h.Length) > defaults.MaxCommentLength {
		return KProComment{}, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("comment length %d is out of range", h.Length),
			map[string]any{"length": h.Length, "max": defaults.MaxCommentLength})
	}
	if math.IsNaN(h.Offset) || math.IsInf(h.Offset, 0) {
		return KProComment{}, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "comment offset is not a finite number")
	}

	text := make([]byte, h.Length)
	if _, err := io.ReadFull(r, text); err != nil {
		return KProComment{}, decodeError("comment text", err)
	}
	return KProComment{
		Offset: time.Duration(h.Offset * float64(time.Second)),
		Text:   string(text),
	}, nil
}

// WriteComment encodes c to w. Characters outside ASCII are written as '?'.
func WriteComment(w io.Writer, c KProComment) error {
	text := asciiOnly(c.Text)
	if len(text) > defaults.MaxCommentLength {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("comment length %d exceeds %d", len(text), defaults.MaxCommentLength),
			map[string]any{"length": len(text), "max": defaults.MaxCommentLength})
	}
	h := commentHeader{Offset: c.Offset.Seconds(), Length: int32(len(text))}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to write comment header", err)
	}
	if _, err := io.WriteString(w, text); err != nil {
		return cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to write comment text", err)
	}
	return nil
}

func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0x7f {
			return '?'
		}
		return r
	}, s)
}

func decodeError(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, fmt.Sprintf("truncated %s", what), err)
	}
	return cnserrors.Wrap(cnserrors.ErrCodeInternal, fmt.Sprintf("failed to read %s", what), err)
}
