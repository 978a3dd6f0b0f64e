// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"os"
	"strings"

	"github.com/sbinet/npyio/npy"
	"github.com/sbinet/npyio/npz"
)

// array is a decoded NumPy array widened to float64 or int.
type array struct {
	shape []int
	f     []float64
	i     []int
}

// dtype strips the byte-order mark from a NumPy type string. Only
// little-endian and byte-order-free types are accepted.
func dtype(descr string) (string, error) {
	if len(descr) < 2 {
		return "", fmt.Errorf("dtype %q", descr)
	}
	switch descr[0] {
	case '<', '|', '=':
		return descr[1:], nil
	default:
		return "", fmt.Errorf("unsupported byte order in dtype %q", descr)
	}
}

// decode reads one array through read, choosing the Go slice type from the
// header's dtype.
func decode(hdr npy.Header, read func(ptr interface{}) error) (array, error) {
	if hdr.Descr.Fortran {
		return array{}, fmt.Errorf("fortran-ordered arrays are not supported")
	}
	t, err := dtype(hdr.Descr.Type)
	if err != nil {
		return array{}, err
	}
	a := array{shape: append([]int(nil), hdr.Descr.Shape...)}

	switch t {
	case "f8":
		err = read(&a.f)
	case "f4":
		var v []float32
		if err = read(&v); err == nil {
			a.f = make([]float64, len(v))
			for k, x := range v {
				a.f[k] = float64(x)
			}
		}
	case "i8":
		var v []int64
		if err = read(&v); err == nil {
			a.i = widen(v)
		}
	case "i4":
		var v []int32
		if err = read(&v); err == nil {
			a.i = widen(v)
		}
	case "i2":
		var v []int16
		if err = read(&v); err == nil {
			a.i = widen(v)
		}
	case "u8":
		var v []uint64
		if err = read(&v); err == nil {
			a.i = widen(v)
		}
	case "u4":
		var v []uint32
		if err = read(&v); err == nil {
			a.i = widen(v)
		}
	case "u1":
		var v []uint8
		if err = read(&v); err == nil {
			a.i = widen(v)
		}
	default:
		return array{}, fmt.Errorf("unsupported dtype %q", hdr.Descr.Type)
	}
	if err != nil {
		return array{}, err
	}

	return a, nil
}

type integer interface {
	~int16 | ~int32 | ~int64 | ~uint8 | ~uint32 | ~uint64
}

func widen[T integer](v []T) []int {
	out := make([]int, len(v))
	for k, x := range v {
		out[k] = int(x)
	}

	return out
}

// floats returns the array as float64, converting integer data.
func (a array) floats() []float64 {
	if a.f != nil || a.i == nil {
		return a.f
	}
	out := make([]float64, len(a.i))
	for k, x := range a.i {
		out[k] = float64(x)
	}

	return out
}

// readNPY decodes a single .npy file.
func readNPY(path string) (array, error) {
	f, err := os.Open(path)
	if err != nil {
		return array{}, err
	}
	defer f.Close()

	r, err := npy.NewReader(f)
	if err != nil {
		return array{}, err
	}

	return decode(r.Header, r.Read)
}

// npzFile is an open .npz archive with entry names resolved with or without
// the ".npy" suffix.
type npzFile struct {
	r    *npz.Reader
	keys map[string]string
}

func openNPZ(path string) (*npzFile, error) {
	r, err := npz.Open(path)
	if err != nil {
		return nil, err
	}
	keys := make(map[string]string)
	for _, k := range r.Keys() {
		keys[strings.TrimSuffix(k, ".npy")] = k
	}

	return &npzFile{r: r, keys: keys}, nil
}

func (z *npzFile) Close() error { return z.r.Close() }

func (z *npzFile) has(name string) bool {
	_, ok := z.keys[name]
	return ok
}

// read decodes the entry called name (without extension).
func (z *npzFile) read(name string) (array, error) {
	key, ok := z.keys[name]
	if !ok {
		return array{}, fmt.Errorf("no entry %q", name)
	}
	hdr := z.r.Header(key)
	if hdr == nil {
		return array{}, fmt.Errorf("entry %q has no header", name)
	}

	return decode(*hdr, func(ptr interface{}) error { return z.r.Read(key, ptr) })
}
